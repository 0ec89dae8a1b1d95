// Package server exposes the kundli engine over HTTP and gRPC. Computed charts
// are persisted through a store.Store and announced through an events.Publisher.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alfredjeanlab/kundli/internal/chart"
	"github.com/alfredjeanlab/kundli/internal/dasha"
	"github.com/alfredjeanlab/kundli/internal/ephemeris"
	"github.com/alfredjeanlab/kundli/internal/events"
	"github.com/alfredjeanlab/kundli/internal/model"
	"github.com/alfredjeanlab/kundli/internal/store"
	"github.com/alfredjeanlab/kundli/internal/transit"
	"github.com/alfredjeanlab/kundli/internal/varga"
	"github.com/alfredjeanlab/kundli/internal/yoga"
	"github.com/alfredjeanlab/kundli/internal/zodiac"
)

// DefaultZone is used for births that name no timezone.
const DefaultZone = "Asia/Kolkata"

// KundliServer computes, stores and serves birth charts.
type KundliServer struct {
	source      ephemeris.Source
	store       store.Store
	publisher   events.Publisher
	logger      *slog.Logger
	now         func() time.Time
	defaultZone string
}

// Option configures a KundliServer.
type Option func(*KundliServer)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *KundliServer) { s.logger = l }
}

// WithClock replaces time.Now. The clock decides "today" for transits and
// the running dasha; nothing below the server reads it.
func WithClock(now func() time.Time) Option {
	return func(s *KundliServer) { s.now = now }
}

// WithDefaultZone sets the zone assumed for births without one.
func WithDefaultZone(zone string) Option {
	return func(s *KundliServer) { s.defaultZone = zone }
}

// NewKundliServer returns a server backed by the given ephemeris, store and publisher.
func NewKundliServer(src ephemeris.Source, st store.Store, p events.Publisher, opts ...Option) *KundliServer {
	s := &KundliServer{
		source:      src,
		store:       st,
		publisher:   p,
		logger:      slog.Default(),
		now:         time.Now,
		defaultZone: DefaultZone,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// publish emits an event. Failures are logged and never fail the caller.
func (s *KundliServer) publish(ctx context.Context, topic string, event any) {
	if err := s.publisher.Publish(ctx, topic, event); err != nil {
		s.logger.Warn("failed to publish event", "topic", topic, "error", err)
	}
}

// inputError indicates invalid user input.
// Transport layers map this to 400 / InvalidArgument.
type inputError string

func (e inputError) Error() string { return string(e) }

// ComputeKundli computes the natal chart for req and saves it. When a chart of
// the same birth is already stored it is renamed to req.Name and returned with
// existed set.
func (s *KundliServer) ComputeKundli(ctx context.Context, req model.BirthRequest) (*model.ChartRecord, bool, error) {
	req.Normalize(s.defaultZone)
	if err := model.ValidateBirth(&req); err != nil {
		return nil, false, err
	}
	clock, err := model.ParseClock(req.Time)
	if err != nil {
		return nil, false, inputError(err.Error())
	}
	instant, fellBack, err := req.Instant()
	if err != nil {
		return nil, false, inputError(err.Error())
	}
	if fellBack {
		s.logger.Warn("unknown timezone, reading birth time as UTC", "timezone", req.Timezone, "name", req.Name)
	}
	lat, lon := *req.Latitude, *req.Longitude

	snap, err := s.source.Natal(ctx, instant, lat, lon)
	if err != nil {
		return nil, false, fmt.Errorf("natal positions: %w", err)
	}
	c, err := chart.Build(snap)
	if err != nil {
		return nil, false, fmt.Errorf("building chart: %w", err)
	}
	moon, ok := snap.Longitude(zodiac.Moon)
	if !ok {
		return nil, false, fmt.Errorf("natal positions: %w: no moon longitude", ephemeris.ErrUnavailable)
	}

	now := s.now().UTC()
	var d dasha.Result
	if snap.Dasha != nil {
		// Anchors come from the ephemeris, so a bad lord is its failure, not the caller's.
		if d, err = dasha.Anchored(dasha.Anchors(*snap.Dasha)); err != nil {
			return nil, false, fmt.Errorf("natal positions: %w: %v", ephemeris.ErrUnavailable, err)
		}
	} else {
		d = dasha.Compute(moon, instant, now)
	}

	rec := &model.ChartRecord{
		Name:          req.Name,
		DOB:           req.DOB,
		Time:          clock.String(),
		Latitude:      lat,
		Longitude:     lon,
		Timezone:      req.Timezone,
		City:          req.City,
		Instant:       instant.UTC(),
		MoonLongitude: moon,
		Lagna:         c.Lagna,
		Chart:         c,
		Dasha:         d,
		Yogas:         yoga.Evaluate(c),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	id, existed, err := s.store.SaveChart(ctx, rec)
	if err != nil {
		return nil, false, fmt.Errorf("saving chart: %w", err)
	}
	if existed {
		if rec, err = s.store.GetChart(ctx, id); err != nil {
			return nil, false, fmt.Errorf("loading chart %s: %w", id, err)
		}
	}

	names := make([]string, 0, len(rec.Yogas))
	for _, y := range rec.Yogas {
		names = append(names, y.Name)
	}
	s.publish(ctx, events.TopicChartComputed, events.ChartComputed{
		ChartID: id,
		Name:    rec.Name,
		Lagna:   rec.Lagna,
		Flow:    rec.Dasha.Flow,
		Yogas:   names,
		Existed: existed,
	})
	return rec, existed, nil
}

// GetChart returns a stored chart.
func (s *KundliServer) GetChart(ctx context.Context, id string) (*model.ChartRecord, error) {
	if id == "" {
		return nil, inputError("id is required")
	}
	return s.store.GetChart(ctx, id)
}

// ListCharts returns one page of stored charts, newest first.
func (s *KundliServer) ListCharts(ctx context.Context, filter model.ChartFilter) (*model.ChartList, error) {
	charts, total, err := s.store.ListCharts(ctx, filter.Normalized())
	if err != nil {
		return nil, err
	}
	return &model.ChartList{Charts: charts, Total: total}, nil
}

// DeleteChart removes a stored chart.
func (s *KundliServer) DeleteChart(ctx context.Context, id string) error {
	if id == "" {
		return inputError("id is required")
	}
	if err := s.store.DeleteChart(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.TopicChartDeleted, events.ChartDeleted{ChartID: id})
	return nil
}

// ComputeTransits places the planets of instant at in the houses counted from lagna.
func (s *KundliServer) ComputeTransits(ctx context.Context, lagna zodiac.Sign, at time.Time) (*model.TransitReport, error) {
	tr, err := s.transits(ctx, lagna, at)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.TopicTransitComputed, events.TransitComputed{
		Lagna:  lagna,
		Date:   tr.Transits.Date,
		Counts: tr.Counts,
	})
	return tr, nil
}

func (s *KundliServer) transits(ctx context.Context, lagna zodiac.Sign, at time.Time) (*model.TransitReport, error) {
	bodies, err := s.source.Current(ctx, at)
	if err != nil {
		return nil, fmt.Errorf("current positions: %w", err)
	}
	res, err := transit.Compute(lagna, bodies, at)
	if err != nil {
		return nil, fmt.Errorf("computing transits: %w", err)
	}
	return &model.TransitReport{Transits: res, Counts: transit.Summary(res.Entries)}, nil
}

// ChartSummary returns the header of a stored chart together with the
// transits over its lagna and the dasha running at instant at.
func (s *KundliServer) ChartSummary(ctx context.Context, id string, at time.Time) (*model.ChartSummary, error) {
	rec, err := s.GetChart(ctx, id)
	if err != nil {
		return nil, err
	}
	tr, err := s.transits(ctx, rec.Lagna, at)
	if err != nil {
		return nil, err
	}
	return &model.ChartSummary{
		ID:       rec.ID,
		Name:     rec.Name,
		DOB:      rec.DOB,
		Lagna:    rec.Lagna,
		MoonSign: zodiac.SignOf(rec.MoonLongitude),
		Dasha:    dasha.Compute(rec.MoonLongitude, rec.Instant, at),
		Transits: tr.Transits,
		Counts:   tr.Counts,
	}, nil
}

// Varga derives division n of a stored chart.
func (s *KundliServer) Varga(ctx context.Context, id string, n int) (*model.VargaChart, error) {
	if !varga.Supported(n) {
		return nil, inputError(fmt.Sprintf("unsupported division D%d", n))
	}
	rec, err := s.GetChart(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Chart == nil {
		return nil, fmt.Errorf("chart %s has no natal data", id)
	}
	v := model.NewVargaChart(rec.Chart, n)
	return &v, nil
}

// ComputeChart assembles a full report from a snapshot the caller supplies.
// Nothing is stored and the ephemeris is not consulted.
func (s *KundliServer) ComputeChart(_ context.Context, req model.ChartRequest) (*model.Report, error) {
	at := req.At
	if at.IsZero() {
		at = s.now().UTC()
	}
	return model.Assemble(&req.Snapshot, req.Birth, at)
}

// Health reports liveness.
func (s *KundliServer) Health(context.Context) *model.Health {
	return &model.Health{Status: "ok"}
}

// transitArgs resolves a transit query. The lagna defaults to Mesha and the
// date to today; a date is read at noon UTC.
func (s *KundliServer) transitArgs(q model.TransitQuery) (zodiac.Sign, time.Time, error) {
	lagna := zodiac.Mesha
	if q.Lagna != "" {
		var err error
		if lagna, err = zodiac.ParseSign(q.Lagna); err != nil {
			return 0, time.Time{}, inputError(fmt.Sprintf("invalid lagna %q", q.Lagna))
		}
	}
	at, err := s.resolveDate(q.Date)
	return lagna, at, err
}

// resolveDate reads a YYYY-MM-DD date at noon UTC. An empty date means today.
func (s *KundliServer) resolveDate(date string) (time.Time, error) {
	if date == "" {
		return s.now().UTC(), nil
	}
	d, err := model.ParseDate(date)
	if err != nil {
		return time.Time{}, inputError(err.Error())
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.UTC), nil
}
