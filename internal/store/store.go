package store

import (
	"context"
	"database/sql"

	"github.com/alfredjeanlab/kundli/internal/model"
)

// ErrNotFound is returned when a chart does not exist. It is sql.ErrNoRows so
// callers may match either.
var ErrNotFound = sql.ErrNoRows

// Store defines the persistence interface for computed charts.
type Store interface {
	// SaveChart stores rec and returns its ID. When a chart with the same
	// birth date, time and coordinates (rounded to four places) already
	// exists, that record is renamed to rec.Name, its ID is returned and
	// existed is true; the stored chart data is left untouched.
	SaveChart(ctx context.Context, rec *model.ChartRecord) (id string, existed bool, err error)
	GetChart(ctx context.Context, id string) (*model.ChartRecord, error)
	ListCharts(ctx context.Context, filter model.ChartFilter) ([]*model.ChartRecord, int, error) // returns charts, total count, error
	DeleteChart(ctx context.Context, id string) error

	// Lifecycle
	Close() error
}
