// Package client provides a transport-agnostic interface for the kundli service
// with HTTP/JSON and gRPC implementations.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/alfredjeanlab/kundli/internal/model"
)

// KundliClient is the interface that all kundli CLI commands use to talk to
// the server. It is implemented by HTTPClient (default) and GRPCClient.
type KundliClient interface {
	// Charts
	ComputeKundli(ctx context.Context, req *model.BirthRequest) (*model.KundliResponse, error)
	GetChart(ctx context.Context, id string) (*model.ChartRecord, error)
	ListCharts(ctx context.Context, filter model.ChartFilter) (*model.ChartList, error)
	DeleteChart(ctx context.Context, id string) error

	// Derived views
	Varga(ctx context.Context, id string, division int) (*model.VargaChart, error)
	ChartSummary(ctx context.Context, id, date string) (*model.ChartSummary, error)
	ComputeTransits(ctx context.Context, q model.TransitQuery) (*model.TransitReport, error)
	ComputeChart(ctx context.Context, req *model.ChartRequest) (*model.Report, error)

	// Health
	Health(ctx context.Context) (string, error)

	// Lifecycle
	Close() error
}

// Transport names accepted by New.
const (
	TransportHTTP = "http"
	TransportGRPC = "grpc"
)

// New returns a client for the named transport.
func New(transport, addr, token string) (KundliClient, error) {
	switch transport {
	case "", TransportHTTP:
		return NewHTTPClient(addr, token), nil
	case TransportGRPC:
		c, err := NewGRPCClient(addr, token)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown transport %q (want http or grpc)", transport)
	}
}

// IsNotFound reports whether err is a not-found answer from either transport.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return status.Code(err) == codes.NotFound
}

// Compile-time checks that both transports implement KundliClient.
var (
	_ KundliClient = (*HTTPClient)(nil)
	_ KundliClient = (*GRPCClient)(nil)
)
