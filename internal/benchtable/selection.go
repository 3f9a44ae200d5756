package benchtable

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"
)

// AmbiguousError is returned when several rows share an x value after the
// parameter filters were applied.
type AmbiguousError struct {
	X    string
	Rows int
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("not enough parameters specified: %d rows match %s, it is not clear which of them should be plotted", e.Rows, e.X)
}

// Series is the sorted x/y data of one plot line.
type Series struct {
	X, Y   []float64
	XLabel string
	YLabel string
	Title  string
}

// Len implements plotter.XYer.
func (s *Series) Len() int { return len(s.X) }

// XY implements plotter.XYer.
func (s *Series) XY(i int) (float64, float64) { return s.X[i], s.Y[i] }

// Select picks one y value for every distinct x value. Rows are first
// narrowed down by params; an x value matched by no row is skipped and one
// matched by several rows is an AmbiguousError. The table is loaded into an
// in-memory SQLite database with NUMERIC affinity, so "4" and "4.0" compare
// equal just like numbers do.
func Select(ctx context.Context, t *Table, x, y string, params Params) (*Series, error) {
	xIdx, err := t.ColumnIndex(x)
	if err != nil {
		return nil, err
	}
	yIdx, err := t.ColumnIndex(y)
	if err != nil {
		return nil, err
	}
	filterIdx := make([]int, len(params))
	for i, p := range params {
		if filterIdx[i], err = t.ColumnIndex(p.Key); err != nil {
			return nil, err
		}
	}

	db, err := loadTable(ctx, t)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	xs, err := distinctValues(ctx, db, xIdx)
	if err != nil {
		return nil, err
	}

	var where strings.Builder
	fmt.Fprintf(&where, "%s = ?", col(xIdx))
	for _, idx := range filterIdx {
		fmt.Fprintf(&where, " AND %s = ?", col(idx))
	}
	query := fmt.Sprintf("SELECT %s FROM bench WHERE %s", col(yIdx), where.String())

	series := &Series{XLabel: x, YLabel: y, Title: params.String()}
	for _, xv := range xs {
		args := make([]any, 0, len(params)+1)
		args = append(args, xv)
		for _, p := range params {
			args = append(args, p.Value)
		}

		ys, err := queryColumn(ctx, db, query, args...)
		if err != nil {
			return nil, err
		}
		switch {
		case len(ys) > 1:
			return nil, &AmbiguousError{X: fmt.Sprintf("%s = %v", x, xv), Rows: len(ys)}
		case len(ys) == 0:
			continue
		}

		xf, err := toFloat(xv)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", x, err)
		}
		yf, err := toFloat(ys[0])
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", y, err)
		}
		series.X = append(series.X, xf)
		series.Y = append(series.Y, yf)
	}

	sort.Sort(byX{series})
	return series, nil
}

func col(i int) string { return fmt.Sprintf("c%d", i) }

func loadTable(ctx context.Context, t *Table) (*sql.DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	defs := make([]string, len(t.Columns))
	marks := make([]string, len(t.Columns))
	for i := range t.Columns {
		defs[i] = col(i) + " NUMERIC"
		marks[i] = "?"
	}
	if _, err := db.ExecContext(ctx, fmt.Sprintf("CREATE TABLE bench (%s)", strings.Join(defs, ", "))); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		db.Close()
		return nil, err
	}
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO bench VALUES (%s)", strings.Join(marks, ", ")))
	if err != nil {
		tx.Rollback()
		db.Close()
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range t.Rows {
		args := make([]any, len(row))
		for i, cell := range row {
			args[i] = strings.TrimSpace(cell)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			tx.Rollback()
			db.Close()
			return nil, fmt.Errorf("insert row: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func distinctValues(ctx context.Context, db *sql.DB, idx int) ([]any, error) {
	return queryColumn(ctx, db, fmt.Sprintf("SELECT DISTINCT %s FROM bench", col(idx)))
}

func queryColumn(ctx context.Context, db *sql.DB, query string, args ...any) ([]any, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bench table: %w", err)
	}
	defer rows.Close()

	var out []any
	for rows.Next() {
		var v any
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotNumeric, n)
		}
		return f, nil
	case []byte:
		return toFloat(string(n))
	}
	return 0, fmt.Errorf("%w: %v", ErrNotNumeric, v)
}

type byX struct{ s *Series }

func (b byX) Len() int           { return len(b.s.X) }
func (b byX) Less(i, j int) bool { return b.s.X[i] < b.s.X[j] }
func (b byX) Swap(i, j int) {
	b.s.X[i], b.s.X[j] = b.s.X[j], b.s.X[i]
	b.s.Y[i], b.s.Y[j] = b.s.Y[j], b.s.Y[i]
}
