package server

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/alfredjeanlab/kundli/internal/chart"
	"github.com/alfredjeanlab/kundli/internal/ephemeris"
	"github.com/alfredjeanlab/kundli/internal/store"
)

// errorCode classifies err for the transports.
func errorCode(err error) codes.Code {
	var ie inputError
	switch {
	case errors.As(err, &ie), errors.Is(err, chart.ErrInvalidInput):
		return codes.InvalidArgument
	case errors.Is(err, store.ErrNotFound):
		return codes.NotFound
	case errors.Is(err, ephemeris.ErrUnavailable):
		return codes.Unavailable
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	default:
		return codes.Internal
	}
}

var httpStatus = map[codes.Code]int{
	codes.InvalidArgument:  http.StatusBadRequest,
	codes.NotFound:         http.StatusNotFound,
	codes.Unavailable:      http.StatusServiceUnavailable,
	codes.DeadlineExceeded: http.StatusGatewayTimeout,
	codes.Canceled:         499,
}

// grpcError converts err into a status error. Status errors pass through.
func (s *KundliServer) grpcError(method string, err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}
	code := errorCode(err)
	if code == codes.Internal {
		s.logger.Error("request failed", "method", method, "error", err)
		return status.Error(code, "internal error")
	}
	if errors.Is(err, store.ErrNotFound) {
		return status.Error(code, "chart not found")
	}
	return status.Error(code, err.Error())
}

// writeServiceError writes err with the status its class maps to. Internal
// errors are logged and reported without detail.
func (s *KundliServer) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	code, ok := httpStatus[errorCode(err)]
	switch {
	case !ok:
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	case code == http.StatusNotFound:
		writeError(w, code, "chart not found")
	default:
		writeError(w, code, err.Error())
	}
}
