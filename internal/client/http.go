package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/alfredjeanlab/kundli/internal/model"
)

// HTTPClient implements KundliClient using the kundli HTTP/JSON REST API.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewHTTPClient creates a new HTTP client targeting the given base URL
// (e.g. "http://localhost:8080"). When token is non-empty, an Authorization
// header is set on every request.
func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{},
	}
}

// Close is a no-op for the HTTP client.
func (c *HTTPClient) Close() error { return nil }

func (c *HTTPClient) ComputeKundli(ctx context.Context, req *model.BirthRequest) (*model.KundliResponse, error) {
	var resp model.KundliResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/kundli", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GetChart(ctx context.Context, id string) (*model.ChartRecord, error) {
	var rec model.ChartRecord
	if err := c.doJSON(ctx, http.MethodGet, "/v1/kundli/"+url.PathEscape(id), nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *HTTPClient) ListCharts(ctx context.Context, filter model.ChartFilter) (*model.ChartList, error) {
	q := url.Values{}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 {
		q.Set("offset", strconv.Itoa(filter.Offset))
	}

	var list model.ChartList
	if err := c.doJSON(ctx, http.MethodGet, withQuery("/v1/kundli", q), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *HTTPClient) DeleteChart(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/kundli/"+url.PathEscape(id), nil, nil)
}

func (c *HTTPClient) Varga(ctx context.Context, id string, division int) (*model.VargaChart, error) {
	var v model.VargaChart
	path := fmt.Sprintf("/v1/kundli/%s/varga/%d", url.PathEscape(id), division)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *HTTPClient) ChartSummary(ctx context.Context, id, date string) (*model.ChartSummary, error) {
	q := url.Values{}
	if date != "" {
		q.Set("date", date)
	}
	var sum model.ChartSummary
	path := withQuery("/v1/kundli/"+url.PathEscape(id)+"/summary", q)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &sum); err != nil {
		return nil, err
	}
	return &sum, nil
}

func (c *HTTPClient) ComputeTransits(ctx context.Context, tq model.TransitQuery) (*model.TransitReport, error) {
	q := url.Values{}
	if tq.Lagna != "" {
		q.Set("lagna", tq.Lagna)
	}
	if tq.Date != "" {
		q.Set("date", tq.Date)
	}
	var tr model.TransitReport
	if err := c.doJSON(ctx, http.MethodGet, withQuery("/v1/transit", q), nil, &tr); err != nil {
		return nil, err
	}
	return &tr, nil
}

func (c *HTTPClient) ComputeChart(ctx context.Context, req *model.ChartRequest) (*model.Report, error) {
	var report model.Report
	if err := c.doJSON(ctx, http.MethodPost, "/v1/chart", req, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *HTTPClient) Health(ctx context.Context) (string, error) {
	var resp model.Health
	if err := c.doJSON(ctx, http.MethodGet, "/v1/health", nil, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}

// --- internal helpers ---

// APIError represents an error response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

func withQuery(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// doJSON performs an HTTP request with optional JSON body and decodes the JSON response.
// If result is nil, the response body is discarded (for DELETE/204 responses).
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
