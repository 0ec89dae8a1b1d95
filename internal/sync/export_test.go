package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alfredjeanlab/kundli/internal/model"
	"github.com/alfredjeanlab/kundli/internal/store/memory"
)

func seededStore(t *testing.T, n int) *memory.MemoryStore {
	t.Helper()
	s := memory.New()
	now := time.Now().UTC()
	for i := range n {
		rec := &model.ChartRecord{
			ID:        fmt.Sprintf("kc-%012d", n-i), // inserted out of ID order
			Name:      fmt.Sprintf("Person %d", i),
			DOB:       "1990-01-01",
			Time:      fmt.Sprintf("%02d:%02d", i/60%24, i%60),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if _, _, err := s.SaveChart(context.Background(), rec); err != nil {
			t.Fatalf("SaveChart: %v", err)
		}
	}
	return s
}

func TestExportJSONL_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportJSONL(context.Background(), memory.New(), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := nonEmptyLines(buf.String())
	if len(lines) != 1 {
		t.Fatalf("expected 1 line (header only), got %d", len(lines))
	}

	var h header
	if err := json.Unmarshal([]byte(lines[0]), &h); err != nil {
		t.Fatalf("unmarshal header: %v", err)
	}
	if h.Version != FormatVersion || h.Type != "header" || h.ChartCount != 0 {
		t.Fatalf("unexpected header: %+v", h)
	}
}

func TestExportJSONL_SortedByID(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportJSONL(context.Background(), seededStore(t, 3), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := nonEmptyLines(buf.String())
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}

	var h header
	if err := json.Unmarshal([]byte(lines[0]), &h); err != nil {
		t.Fatalf("unmarshal header: %v", err)
	}
	if h.ChartCount != 3 {
		t.Errorf("ChartCount = %d, want 3", h.ChartCount)
	}

	var prev string
	for i, line := range lines[1:] {
		var rec struct {
			Type string            `json:"type"`
			Data model.ChartRecord `json:"data"`
		}
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("unmarshal line %d: %v", i+1, err)
		}
		if rec.Type != "chart" {
			t.Errorf("line %d type = %q, want chart", i+1, rec.Type)
		}
		if rec.Data.ID <= prev {
			t.Errorf("line %d id %q not after %q", i+1, rec.Data.ID, prev)
		}
		prev = rec.Data.ID
	}
}

func TestExportJSONL_Pages(t *testing.T) {
	n := model.MaxLimit + 7
	var buf bytes.Buffer
	if err := ExportJSONL(context.Background(), seededStore(t, n), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(nonEmptyLines(buf.String())); got != n+1 {
		t.Errorf("lines = %d, want %d", got, n+1)
	}
}

func nonEmptyLines(s string) []string {
	var result []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			result = append(result, line)
		}
	}
	return result
}
