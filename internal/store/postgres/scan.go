package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/alfredjeanlab/kundli/internal/model"
	"github.com/alfredjeanlab/kundli/internal/yoga"
	"github.com/alfredjeanlab/kundli/internal/zodiac"
)

// scannable is the interface satisfied by both *sql.Row and *sql.Rows.
type scannable interface {
	Scan(dest ...any) error
}

// chartFields holds the raw column values of one kundli_charts row.
type chartFields struct {
	rec       model.ChartRecord
	timeOf    sql.NullString
	city      sql.NullString
	timezone  sql.NullString
	lagna     string
	chartData []byte
	dashaData []byte
	yogaData  []byte
}

func (f *chartFields) dest() []any {
	return []any{
		&f.rec.ID,
		&f.rec.Name,
		&f.rec.DOB,
		&f.timeOf,
		&f.city,
		&f.rec.Latitude,
		&f.rec.Longitude,
		&f.timezone,
		&f.rec.Instant,
		&f.rec.MoonLongitude,
		&f.lagna,
		&f.chartData,
		&f.dashaData,
		&f.yogaData,
		&f.rec.CreatedAt,
		&f.rec.UpdatedAt,
	}
}

func (f *chartFields) record() (*model.ChartRecord, error) {
	rec := f.rec
	rec.Time = f.timeOf.String
	rec.City = f.city.String
	rec.Timezone = f.timezone.String

	lagna, err := zodiac.ParseSign(f.lagna)
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", rec.ID, err)
	}
	rec.Lagna = lagna

	if err := json.Unmarshal(f.chartData, &rec.Chart); err != nil {
		return nil, fmt.Errorf("chart %s: decode chart_data: %w", rec.ID, err)
	}
	if err := json.Unmarshal(f.dashaData, &rec.Dasha); err != nil {
		return nil, fmt.Errorf("chart %s: decode dasha_data: %w", rec.ID, err)
	}
	if len(f.yogaData) > 0 {
		if err := json.Unmarshal(f.yogaData, &rec.Yogas); err != nil {
			return nil, fmt.Errorf("chart %s: decode yoga_data: %w", rec.ID, err)
		}
	}
	return &rec, nil
}

// scanChart scans a single row into a model.ChartRecord.
// The row must contain columns in the order defined by chartColumns.
func scanChart(row scannable) (*model.ChartRecord, error) {
	var f chartFields
	if err := row.Scan(f.dest()...); err != nil {
		return nil, err
	}
	return f.record()
}

// scanChartWithTotal scans a row with a leading total_count column.
func scanChartWithTotal(row scannable) (*model.ChartRecord, int, error) {
	var (
		f     chartFields
		total int
	)
	if err := row.Scan(append([]any{&total}, f.dest()...)...); err != nil {
		return nil, 0, err
	}
	rec, err := f.record()
	return rec, total, err
}

// encodeChart marshals the JSONB columns of rec.
func encodeChart(rec *model.ChartRecord) (chartData, dashaData, yogaData []byte, err error) {
	if chartData, err = json.Marshal(rec.Chart); err != nil {
		return nil, nil, nil, fmt.Errorf("encode chart_data: %w", err)
	}
	if dashaData, err = json.Marshal(rec.Dasha); err != nil {
		return nil, nil, nil, fmt.Errorf("encode dasha_data: %w", err)
	}
	yogas := rec.Yogas
	if yogas == nil {
		yogas = []yoga.Result{}
	}
	if yogaData, err = json.Marshal(yogas); err != nil {
		return nil, nil, nil, fmt.Errorf("encode yoga_data: %w", err)
	}
	return chartData, dashaData, yogaData, nil
}

// nullString converts an empty string to a NULL column value.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
