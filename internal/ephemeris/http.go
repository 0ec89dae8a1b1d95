package ephemeris

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// natalRequest is the body of a natal computation on both transports.
type natalRequest struct {
	Instant   time.Time `json:"instant"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

// planetsRequest is the body of a current-positions computation.
type planetsRequest struct {
	Instant time.Time `json:"instant"`
}

// planetsResponse wraps the body list returned for current positions.
type planetsResponse struct {
	Planets []Body `json:"planets"`
}

// HTTPSource talks to an ephemeris service over HTTP/JSON.
type HTTPSource struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPSource returns a source targeting baseURL (e.g. "http://localhost:7000").
// A zero timeout leaves requests bounded only by the caller's context.
func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Natal computes the ascendant and planetary positions for a birth.
func (s *HTTPSource) Natal(ctx context.Context, instant time.Time, lat, lon float64) (*Snapshot, error) {
	var snap Snapshot
	req := natalRequest{Instant: instant.UTC(), Latitude: lat, Longitude: lon}
	if err := s.doJSON(ctx, "/v1/natal", req, &snap); err != nil {
		return nil, unavailable("natal", err)
	}
	return &snap, nil
}

// Current computes planetary positions at instant.
func (s *HTTPSource) Current(ctx context.Context, instant time.Time) ([]Body, error) {
	var resp planetsResponse
	if err := s.doJSON(ctx, "/v1/planets", planetsRequest{Instant: instant.UTC()}, &resp); err != nil {
		return nil, unavailable("planets", err)
	}
	return resp.Planets, nil
}

// Close is a no-op for the HTTP source.
func (s *HTTPSource) Close() error { return nil }

// doJSON POSTs body as JSON and decodes the response into result.
func (s *HTTPSource) doJSON(ctx context.Context, path string, body, result any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}
	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
