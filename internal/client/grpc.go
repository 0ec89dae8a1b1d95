package client

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/alfredjeanlab/kundli/internal/model"
	"github.com/alfredjeanlab/kundli/internal/rpc"
	"github.com/alfredjeanlab/kundli/internal/server"
)

// GRPCClient implements KundliClient using the gRPC transport.
type GRPCClient struct {
	conn  *grpc.ClientConn
	token string
}

// NewGRPCClient connects to the given gRPC address and returns a client.
// Extra dial options are appended after the insecure transport credentials.
func NewGRPCClient(addr, token string, opts ...grpc.DialOption) (*GRPCClient, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("grpc dial: %w", err)
	}
	return &GRPCClient{conn: conn, token: token}, nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func (c *GRPCClient) invoke(ctx context.Context, method string, req, resp any) error {
	if c.token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+c.token)
	}
	return rpc.Invoke(ctx, c.conn, method, req, resp)
}

func (c *GRPCClient) ComputeKundli(ctx context.Context, req *model.BirthRequest) (*model.KundliResponse, error) {
	var resp model.KundliResponse
	if err := c.invoke(ctx, server.MethodComputeKundli, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *GRPCClient) GetChart(ctx context.Context, id string) (*model.ChartRecord, error) {
	var rec model.ChartRecord
	if err := c.invoke(ctx, server.MethodGetChart, model.ChartQuery{ID: id}, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *GRPCClient) ListCharts(ctx context.Context, filter model.ChartFilter) (*model.ChartList, error) {
	var list model.ChartList
	if err := c.invoke(ctx, server.MethodListCharts, filter, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *GRPCClient) DeleteChart(ctx context.Context, id string) error {
	return c.invoke(ctx, server.MethodDeleteChart, model.ChartQuery{ID: id}, nil)
}

func (c *GRPCClient) Varga(ctx context.Context, id string, division int) (*model.VargaChart, error) {
	var v model.VargaChart
	if err := c.invoke(ctx, server.MethodVarga, model.ChartQuery{ID: id, Division: division}, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *GRPCClient) ChartSummary(ctx context.Context, id, date string) (*model.ChartSummary, error) {
	var sum model.ChartSummary
	if err := c.invoke(ctx, server.MethodChartSummary, model.ChartQuery{ID: id, Date: date}, &sum); err != nil {
		return nil, err
	}
	return &sum, nil
}

func (c *GRPCClient) ComputeTransits(ctx context.Context, q model.TransitQuery) (*model.TransitReport, error) {
	var tr model.TransitReport
	if err := c.invoke(ctx, server.MethodComputeTransits, q, &tr); err != nil {
		return nil, err
	}
	return &tr, nil
}

func (c *GRPCClient) ComputeChart(ctx context.Context, req *model.ChartRequest) (*model.Report, error) {
	var report model.Report
	if err := c.invoke(ctx, server.MethodComputeChart, req, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *GRPCClient) Health(ctx context.Context) (string, error) {
	var h model.Health
	if err := c.invoke(ctx, server.MethodHealth, model.Empty{}, &h); err != nil {
		return "", err
	}
	return h.Status, nil
}
