package events

import (
	"context"

	"github.com/alfredjeanlab/kundli/internal/transit"
	"github.com/alfredjeanlab/kundli/internal/zodiac"
)

// Event topic constants
const (
	TopicChartComputed   = "kundli.chart.computed"
	TopicChartDeleted    = "kundli.chart.deleted"
	TopicTransitComputed = "kundli.transit.computed"

	// TopicAll matches every kundli event.
	TopicAll = "kundli.>"
)

// Event types

type ChartComputed struct {
	ChartID string      `json:"chart_id"`
	Name    string      `json:"name"`
	Lagna   zodiac.Sign `json:"lagna"`
	Flow    string      `json:"flow,omitempty"`
	Yogas   []string    `json:"yogas,omitempty"`
	Existed bool        `json:"existed"` // true when an earlier chart of the same birth was reused
}

type ChartDeleted struct {
	ChartID string `json:"chart_id"`
}

type TransitComputed struct {
	Lagna  zodiac.Sign    `json:"lagna"`
	Date   string         `json:"date"`
	Counts transit.Counts `json:"counts"`
}

// Publisher is the interface for emitting events.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}
