package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/alfredjeanlab/kundli/internal/model"
	"github.com/alfredjeanlab/kundli/internal/store"
)

// FormatVersion is written into every export header.
const FormatVersion = "1"

// header is the first JSONL record written by ExportJSONL.
type header struct {
	Version    string    `json:"version"`
	Type       string    `json:"type"`
	Timestamp  time.Time `json:"timestamp"`
	ChartCount int       `json:"chart_count"`
}

// record wraps a single JSONL line with a type discriminator.
type record struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// ExportJSONL writes every stored chart as JSONL to w, sorted by ID, after a
// header line carrying the chart count.
func ExportJSONL(ctx context.Context, s store.Store, w io.Writer) error {
	charts, err := allCharts(ctx, s)
	if err != nil {
		return err
	}
	sort.Slice(charts, func(i, j int) bool {
		return charts[i].ID < charts[j].ID
	})

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(header{
		Version:    FormatVersion,
		Type:       "header",
		Timestamp:  time.Now().UTC(),
		ChartCount: len(charts),
	}); err != nil {
		return fmt.Errorf("encode header: %w", err)
	}

	for _, c := range charts {
		if err := enc.Encode(record{Type: "chart", Data: c}); err != nil {
			return fmt.Errorf("encode chart %s: %w", c.ID, err)
		}
	}
	return nil
}

// allCharts pages through the store until every chart has been read.
func allCharts(ctx context.Context, s store.Store) ([]*model.ChartRecord, error) {
	var out []*model.ChartRecord
	for offset := 0; ; {
		page, total, err := s.ListCharts(ctx, model.ChartFilter{Limit: model.MaxLimit, Offset: offset})
		if err != nil {
			return nil, fmt.Errorf("list charts: %w", err)
		}
		out = append(out, page...)
		offset += len(page)
		if len(page) == 0 || offset >= total {
			return out, nil
		}
	}
}
