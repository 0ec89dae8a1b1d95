package model

import "github.com/alfredjeanlab/kundli/internal/transit"

// KundliResponse is returned when a birth chart is computed. Existed is true
// when an earlier record of the same birth was found and renamed.
type KundliResponse struct {
	ID      string       `json:"id"`
	Existed bool         `json:"existed"`
	Kundli  *ChartRecord `json:"kundli"`
}

// ChartList is one page of stored charts.
type ChartList struct {
	Charts []*ChartRecord `json:"charts"`
	Total  int            `json:"total"`
}

// ChartQuery addresses a stored chart. Division and Date are read only by
// the calls that need them.
type ChartQuery struct {
	ID       string `json:"id"`
	Division int    `json:"division,omitempty"`
	Date     string `json:"date,omitempty"`
}

// TransitQuery asks for the sky on Date (YYYY-MM-DD, default today) as seen
// from Lagna (default Mesha).
type TransitQuery struct {
	Lagna string `json:"lagna,omitempty"`
	Date  string `json:"date,omitempty"`
}

// TransitReport is a transit result with its quality tally.
type TransitReport struct {
	Transits transit.Result `json:"transits"`
	Counts   transit.Counts `json:"counts"`
}

// Health is the liveness answer of the service.
type Health struct {
	Status string `json:"status"`
}

// Empty is the body of calls that carry no data.
type Empty struct{}
