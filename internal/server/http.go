package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/alfredjeanlab/kundli/internal/model"
)

// maxBodyBytes bounds a request body.
const maxBodyBytes = 1 << 20

// NewHTTPHandler returns an http.Handler with all routes registered.
// When authToken is non-empty, requests (except GET /v1/health) must include
// a valid Authorization: Bearer <token> header.
func (s *KundliServer) NewHTTPHandler(authToken string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/health", s.handleHealth)
	mux.HandleFunc("POST /v1/kundli", s.handleComputeKundli)
	mux.HandleFunc("GET /v1/kundli", s.handleListCharts)
	mux.HandleFunc("GET /v1/kundli/{id}", s.handleGetChart)
	mux.HandleFunc("DELETE /v1/kundli/{id}", s.handleDeleteChart)
	mux.HandleFunc("GET /v1/kundli/{id}/varga/{n}", s.handleVarga)
	mux.HandleFunc("GET /v1/kundli/{id}/summary", s.handleChartSummary)
	mux.HandleFunc("GET /v1/transit", s.handleTransit)
	mux.HandleFunc("POST /v1/chart", s.handleComputeChart)
	return AuthMiddleware(authToken, mux)
}

// handleHealth handles GET /v1/health.
func (s *KundliServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Health(r.Context()))
}

// handleComputeKundli handles POST /v1/kundli.
func (s *KundliServer) handleComputeKundli(w http.ResponseWriter, r *http.Request) {
	var req model.BirthRequest
	if !decodeBody(w, r, &req) {
		return
	}
	rec, existed, err := s.ComputeKundli(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, model.KundliResponse{ID: rec.ID, Existed: existed, Kundli: rec})
}

// handleListCharts handles GET /v1/kundli.
func (s *KundliServer) handleListCharts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := model.ChartFilter{Search: q.Get("search")}
	for name, dst := range map[string]*int{"limit": &filter.Limit, "offset": &filter.Offset} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid "+name)
			return
		}
		*dst = n
	}

	list, err := s.ListCharts(r.Context(), filter)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// handleGetChart handles GET /v1/kundli/{id}.
func (s *KundliServer) handleGetChart(w http.ResponseWriter, r *http.Request) {
	rec, err := s.GetChart(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// handleDeleteChart handles DELETE /v1/kundli/{id}.
func (s *KundliServer) handleDeleteChart(w http.ResponseWriter, r *http.Request) {
	if err := s.DeleteChart(r.Context(), r.PathValue("id")); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleVarga handles GET /v1/kundli/{id}/varga/{n}.
func (s *KundliServer) handleVarga(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(r.PathValue("n"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "division must be a number")
		return
	}
	v, err := s.Varga(r.Context(), r.PathValue("id"), n)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// handleChartSummary handles GET /v1/kundli/{id}/summary.
func (s *KundliServer) handleChartSummary(w http.ResponseWriter, r *http.Request) {
	at, err := s.resolveDate(r.URL.Query().Get("date"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	sum, err := s.ChartSummary(r.Context(), r.PathValue("id"), at)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// handleTransit handles GET /v1/transit.
func (s *KundliServer) handleTransit(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lagna, at, err := s.transitArgs(model.TransitQuery{Lagna: q.Get("lagna"), Date: q.Get("date")})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	tr, err := s.ComputeTransits(r.Context(), lagna, at)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tr)
}

// handleComputeChart handles POST /v1/chart.
func (s *KundliServer) handleComputeChart(w http.ResponseWriter, r *http.Request) {
	var req model.ChartRequest
	if !decodeBody(w, r, &req) {
		return
	}
	report, err := s.ComputeChart(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// decodeBody reads a JSON request body into v, answering 400 when it cannot.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
