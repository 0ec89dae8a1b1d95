package ephemeris

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/alfredjeanlab/kundli/internal/rpc"
)

// gRPC method names of the ephemeris service.
const (
	ServiceName       = "ephemeris.v1.Ephemeris"
	methodNatal       = "/" + ServiceName + "/ComputeNatal"
	methodPlanets     = "/" + ServiceName + "/ComputePlanets"
	methodNatalName   = "ComputeNatal"
	methodPlanetsName = "ComputePlanets"
)

// GRPCSource talks to an ephemeris service over gRPC.
type GRPCSource struct {
	conn    *grpc.ClientConn
	timeout time.Duration
}

// NewGRPCSource connects to addr. Extra dial options are applied after the default
// insecure transport credentials.
func NewGRPCSource(addr string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCSource, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("grpc dial: %w", err)
	}
	return &GRPCSource{conn: conn, timeout: timeout}, nil
}

// Natal computes the ascendant and planetary positions for a birth.
func (s *GRPCSource) Natal(ctx context.Context, instant time.Time, lat, lon float64) (*Snapshot, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var snap Snapshot
	req := natalRequest{Instant: instant.UTC(), Latitude: lat, Longitude: lon}
	if err := rpc.Invoke(ctx, s.conn, methodNatal, req, &snap); err != nil {
		return nil, unavailable("natal", err)
	}
	return &snap, nil
}

// Current computes planetary positions at instant.
func (s *GRPCSource) Current(ctx context.Context, instant time.Time) ([]Body, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var resp planetsResponse
	if err := rpc.Invoke(ctx, s.conn, methodPlanets, planetsRequest{Instant: instant.UTC()}, &resp); err != nil {
		return nil, unavailable("planets", err)
	}
	return resp.Planets, nil
}

// Close releases the connection.
func (s *GRPCSource) Close() error {
	return s.conn.Close()
}

func (s *GRPCSource) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// RegisterService exposes src as the ephemeris gRPC service on reg. It lets a
// snapshot file stand in for a real ephemeris during development.
func RegisterService(reg grpc.ServiceRegistrar, src Source) {
	h := &sourceHandler{src: src}
	reg.RegisterService(&grpc.ServiceDesc{
		ServiceName: ServiceName,
		HandlerType: (*any)(nil),
		Methods: []grpc.MethodDesc{
			{MethodName: methodNatalName, Handler: rpc.Unary(methodNatal, h.natal)},
			{MethodName: methodPlanetsName, Handler: rpc.Unary(methodPlanets, h.planets)},
		},
		Metadata: "ephemeris/v1/ephemeris.proto",
	}, h)
}

type sourceHandler struct {
	src Source
}

func (h *sourceHandler) natal(ctx context.Context, req *natalRequest) (*Snapshot, error) {
	snap, err := h.src.Natal(ctx, req.Instant, req.Latitude, req.Longitude)
	if err != nil {
		return nil, status.Error(codes.Unavailable, err.Error())
	}
	return snap, nil
}

func (h *sourceHandler) planets(ctx context.Context, req *planetsRequest) (*planetsResponse, error) {
	bodies, err := h.src.Current(ctx, req.Instant)
	if err != nil {
		return nil, status.Error(codes.Unavailable, err.Error())
	}
	return &planetsResponse{Planets: bodies}, nil
}
