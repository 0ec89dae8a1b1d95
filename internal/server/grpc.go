package server

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/alfredjeanlab/kundli/internal/model"
	"github.com/alfredjeanlab/kundli/internal/rpc"
)

// ServiceName is the gRPC service the kundli server registers.
const ServiceName = "kundli.v1.Kundli"

// Full method names of the kundli gRPC service.
const (
	MethodComputeKundli   = "/" + ServiceName + "/ComputeKundli"
	MethodGetChart        = "/" + ServiceName + "/GetChart"
	MethodListCharts      = "/" + ServiceName + "/ListCharts"
	MethodDeleteChart     = "/" + ServiceName + "/DeleteChart"
	MethodComputeTransits = "/" + ServiceName + "/ComputeTransits"
	MethodChartSummary    = "/" + ServiceName + "/ChartSummary"
	MethodVarga           = "/" + ServiceName + "/Varga"
	MethodComputeChart    = "/" + ServiceName + "/ComputeChart"
	MethodHealth          = "/" + ServiceName + "/Health"
)

// NewGRPCServer creates a gRPC server with standard interceptors,
// registers the kundli service, reflection, and returns the server ready to serve.
func NewGRPCServer(ks *KundliServer, authToken string) *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			RecoveryInterceptor(ks.logger),
			LoggingInterceptor(ks.logger),
			AuthInterceptor(authToken),
		),
	)

	ks.Register(srv)
	reflection.Register(srv)

	return srv
}

// Register adds the kundli service to reg.
func (s *KundliServer) Register(reg grpc.ServiceRegistrar) {
	method := func(full string, h func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error)) grpc.MethodDesc {
		return grpc.MethodDesc{MethodName: full[len(ServiceName)+2:], Handler: h}
	}
	reg.RegisterService(&grpc.ServiceDesc{
		ServiceName: ServiceName,
		HandlerType: (*any)(nil),
		Methods: []grpc.MethodDesc{
			method(MethodComputeKundli, rpc.Unary(MethodComputeKundli, s.rpcComputeKundli)),
			method(MethodGetChart, rpc.Unary(MethodGetChart, s.rpcGetChart)),
			method(MethodListCharts, rpc.Unary(MethodListCharts, s.rpcListCharts)),
			method(MethodDeleteChart, rpc.Unary(MethodDeleteChart, s.rpcDeleteChart)),
			method(MethodComputeTransits, rpc.Unary(MethodComputeTransits, s.rpcComputeTransits)),
			method(MethodChartSummary, rpc.Unary(MethodChartSummary, s.rpcChartSummary)),
			method(MethodVarga, rpc.Unary(MethodVarga, s.rpcVarga)),
			method(MethodComputeChart, rpc.Unary(MethodComputeChart, s.rpcComputeChart)),
			method(MethodHealth, rpc.Unary(MethodHealth, s.rpcHealth)),
		},
		Metadata: "kundli/v1/kundli.proto",
	}, s)
}

func (s *KundliServer) rpcComputeKundli(ctx context.Context, req *model.BirthRequest) (*model.KundliResponse, error) {
	rec, existed, err := s.ComputeKundli(ctx, *req)
	if err != nil {
		return nil, s.grpcError(MethodComputeKundli, err)
	}
	return &model.KundliResponse{ID: rec.ID, Existed: existed, Kundli: rec}, nil
}

func (s *KundliServer) rpcGetChart(ctx context.Context, req *model.ChartQuery) (*model.ChartRecord, error) {
	rec, err := s.GetChart(ctx, req.ID)
	if err != nil {
		return nil, s.grpcError(MethodGetChart, err)
	}
	return rec, nil
}

func (s *KundliServer) rpcListCharts(ctx context.Context, req *model.ChartFilter) (*model.ChartList, error) {
	list, err := s.ListCharts(ctx, *req)
	if err != nil {
		return nil, s.grpcError(MethodListCharts, err)
	}
	return list, nil
}

func (s *KundliServer) rpcDeleteChart(ctx context.Context, req *model.ChartQuery) (*model.Empty, error) {
	if err := s.DeleteChart(ctx, req.ID); err != nil {
		return nil, s.grpcError(MethodDeleteChart, err)
	}
	return &model.Empty{}, nil
}

func (s *KundliServer) rpcComputeTransits(ctx context.Context, req *model.TransitQuery) (*model.TransitReport, error) {
	lagna, at, err := s.transitArgs(*req)
	if err != nil {
		return nil, s.grpcError(MethodComputeTransits, err)
	}
	tr, err := s.ComputeTransits(ctx, lagna, at)
	if err != nil {
		return nil, s.grpcError(MethodComputeTransits, err)
	}
	return tr, nil
}

func (s *KundliServer) rpcChartSummary(ctx context.Context, req *model.ChartQuery) (*model.ChartSummary, error) {
	at, err := s.resolveDate(req.Date)
	if err != nil {
		return nil, s.grpcError(MethodChartSummary, err)
	}
	sum, err := s.ChartSummary(ctx, req.ID, at)
	if err != nil {
		return nil, s.grpcError(MethodChartSummary, err)
	}
	return sum, nil
}

func (s *KundliServer) rpcVarga(ctx context.Context, req *model.ChartQuery) (*model.VargaChart, error) {
	v, err := s.Varga(ctx, req.ID, req.Division)
	if err != nil {
		return nil, s.grpcError(MethodVarga, err)
	}
	return v, nil
}

func (s *KundliServer) rpcComputeChart(ctx context.Context, req *model.ChartRequest) (*model.Report, error) {
	report, err := s.ComputeChart(ctx, *req)
	if err != nil {
		return nil, s.grpcError(MethodComputeChart, err)
	}
	return report, nil
}

func (s *KundliServer) rpcHealth(ctx context.Context, _ *model.Empty) (*model.Health, error) {
	return s.Health(ctx), nil
}
