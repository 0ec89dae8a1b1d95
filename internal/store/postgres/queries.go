package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/alfredjeanlab/kundli/internal/model"
	"github.com/alfredjeanlab/kundli/internal/store"
)

// chartColumns is the column list used for SELECT statements on the kundli_charts table.
const chartColumns = `id, name, dob::text, time_of_birth, city, latitude, longitude,
	timezone, instant, moon_longitude, lagna, chart_data, dasha_data, yoga_data,
	created_at, updated_at`

// executor is the interface satisfied by both *sql.DB and *sql.Tx.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// querySaveChart renames an existing chart with the same birth parameters or
// inserts rec as a new one.
func querySaveChart(ctx context.Context, db executor, rec *model.ChartRecord) (string, bool, error) {
	var id string
	err := db.QueryRowContext(ctx, `
		SELECT id FROM kundli_charts
		WHERE dob = $1
		  AND COALESCE(time_of_birth, '') = $2
		  AND ROUND(CAST(latitude AS numeric), 4) = ROUND($3::numeric, 4)
		  AND ROUND(CAST(longitude AS numeric), 4) = ROUND($4::numeric, 4)
		LIMIT 1
		FOR UPDATE`,
		rec.DOB, rec.Time, rec.Latitude, rec.Longitude,
	).Scan(&id)
	switch {
	case err == nil:
		if _, err := db.ExecContext(ctx,
			`UPDATE kundli_charts SET name = $1, updated_at = $2 WHERE id = $3`,
			rec.Name, rec.UpdatedAt, id,
		); err != nil {
			return "", false, fmt.Errorf("rename chart: %w", err)
		}
		return id, true, nil
	case !errors.Is(err, sql.ErrNoRows):
		return "", false, fmt.Errorf("find chart: %w", err)
	}

	chartData, dashaData, yogaData, err := encodeChart(rec)
	if err != nil {
		return "", false, err
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO kundli_charts (
			id, name, dob, time_of_birth, city, latitude, longitude,
			timezone, instant, moon_longitude, lagna, chart_data, dasha_data, yoga_data,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12, $13, $14,
			$15, $16
		)`,
		rec.ID,
		rec.Name,
		rec.DOB,
		nullString(rec.Time),
		nullString(rec.City),
		rec.Latitude,
		rec.Longitude,
		nullString(rec.Timezone),
		rec.Instant,
		rec.MoonLongitude,
		rec.Lagna.String(),
		chartData,
		dashaData,
		yogaData,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	if err != nil {
		return "", false, fmt.Errorf("insert chart: %w", err)
	}
	return rec.ID, false, nil
}

func queryGetChart(ctx context.Context, db executor, id string) (*model.ChartRecord, error) {
	row := db.QueryRowContext(ctx, `SELECT `+chartColumns+` FROM kundli_charts WHERE id = $1`, id)
	rec, err := scanChart(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get chart: %w", err)
	}
	return rec, nil
}

func queryListCharts(ctx context.Context, db executor, filter model.ChartFilter) ([]*model.ChartRecord, int, error) {
	filter = filter.Normalized()

	var (
		whereSQL string
		args     []any
	)
	if search := strings.TrimSpace(filter.Search); search != "" {
		whereSQL = ` WHERE (name ILIKE '%' || $1 || '%' OR city ILIKE '%' || $1 || '%')`
		args = append(args, search)
	}

	// Single query with COUNT(*) OVER() to get total and rows atomically.
	dataQuery := "SELECT COUNT(*) OVER() AS total_count, " + chartColumns +
		" FROM kundli_charts" + whereSQL +
		fmt.Sprintf(" ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := db.QueryContext(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list charts: %w", err)
	}
	defer rows.Close()

	charts := []*model.ChartRecord{}
	var total int
	for rows.Next() {
		rec, t, err := scanChartWithTotal(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan charts: %w", err)
		}
		total = t
		charts = append(charts, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("scan charts: %w", err)
	}

	return charts, total, nil
}

func queryDeleteChart(ctx context.Context, db executor, id string) error {
	res, err := db.ExecContext(ctx, `DELETE FROM kundli_charts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete chart: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
