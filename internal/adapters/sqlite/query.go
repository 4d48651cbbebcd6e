package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/example/portfolio/internal/ports/secondary"
)

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// filters accumulates WHERE clauses and their arguments.
type filters struct {
	clauses []string
	args    []any
}

func (f *filters) add(clause string, args ...any) {
	f.clauses = append(f.clauses, clause)
	f.args = append(f.args, args...)
}

// contains adds a case-insensitive substring match on column.
func (f *filters) contains(column, value string) {
	if value == "" {
		return
	}
	f.add(column+" LIKE ?", "%"+value+"%")
}

// equals adds an equality match on column when id is set.
func (f *filters) equals(column string, id int64) {
	if id <= 0 {
		return
	}
	f.add(column+" = ?", id)
}

func (f *filters) where() string {
	if len(f.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.clauses, " AND ")
}

// table describes how to list one table.
type table struct {
	name    string
	columns string
	// sortable maps accepted sort keys to columns; unknown keys fall back to id.
	sortable map[string]string
}

func (t table) orderBy(page secondary.Page) string {
	col, ok := t.sortable[page.SortBy]
	if !ok {
		col = "id"
	}
	dir := "ASC"
	if page.Descending {
		dir = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, id %s", col, dir, dir)
}

// listPage runs a counted, ordered and paged query against t.
// Rows are fully read before returning so callers may query again.
func listPage[T any](ctx context.Context, q querier, t table, f filters, page secondary.Page, scan func(scanner) (*T, error)) (*secondary.PagedResult[T], error) {
	var total int
	if err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+t.name+f.where(), f.args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count %s: %w", t.name, err)
	}

	query := "SELECT " + t.columns + " FROM " + t.name + f.where() + t.orderBy(page) + " LIMIT ? OFFSET ?"
	args := append(append([]any{}, f.args...), page.Size, page.Offset())
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", t.name, err)
	}
	defer rows.Close()

	result := &secondary.PagedResult[T]{Page: page.Number, PageSize: page.Size, Total: total}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", t.name, err)
		}
		result.Items = append(result.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", t.name, err)
	}
	return result, nil
}

// getOne runs a single-row query; a missing row yields (nil, nil).
func getOne[T any](ctx context.Context, q querier, query string, id int64, scan func(scanner) (*T, error)) (*T, error) {
	item, err := scan(q.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// exists runs a SELECT EXISTS(...) probe.
func exists(ctx context.Context, q querier, query string, args ...any) (bool, error) {
	var found bool
	if err := q.QueryRowContext(ctx, "SELECT EXISTS("+query+")", args...).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}

// insert runs an INSERT and returns the new row ID.
func insert(ctx context.Context, q querier, query string, args ...any) (int64, error) {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// execOne runs a statement that must touch exactly one row.
func execOne(ctx context.Context, q querier, what string, id int64, query string, args ...any) error {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %d not found", what, id)
	}
	return nil
}

// placeholders returns "?, ?, ?" for n arguments.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func nullInt(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: v > 0}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
