package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/example/portfolio/internal/models"
	"github.com/example/portfolio/internal/ports/primary"
	"github.com/example/portfolio/internal/ports/secondary"
)

// Field is one labelled value on a detail view.
type Field struct {
	Label string
	Value string
}

// View describes how to print one entity type.
type View[T any] struct {
	Name    string
	Columns []string
	Row     func(*T) []string
	Detail  func(*T) []Field
}

// EntityAdapter translates CLI operations to an EntityService.
// It depends only on the service interface, enabling easy testing with mocks.
type EntityAdapter[T any, P models.EntityPtr[T], F any] struct {
	service primary.EntityService[T, F]
	view    View[T]
	out     io.Writer
}

// NewEntityAdapter creates an adapter that prints with view.
func NewEntityAdapter[T any, P models.EntityPtr[T], F any](service primary.EntityService[T, F], view View[T], out io.Writer) *EntityAdapter[T, P, F] {
	return &EntityAdapter[T, P, F]{service: service, view: view, out: out}
}

// Create registers item and prints the assigned ID on success.
func (a *EntityAdapter[T, P, F]) Create(ctx context.Context, item P) error {
	res, err := a.service.Create(ctx, (*T)(item))
	if err != nil {
		return err
	}
	if err := PrintResult(a.out, res); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "  id: %d\n", item.EntityID())
	return nil
}

// Update replaces the stored record with item.
func (a *EntityAdapter[T, P, F]) Update(ctx context.Context, item P) error {
	res, err := a.service.Update(ctx, (*T)(item))
	if err != nil {
		return err
	}
	return PrintResult(a.out, res)
}

// Delete removes the record with the given ID.
func (a *EntityAdapter[T, P, F]) Delete(ctx context.Context, id int64) error {
	res, err := a.service.Delete(ctx, id)
	if err != nil {
		return err
	}
	return PrintResult(a.out, res)
}

// Load fetches a record for editing; it fails when the record does not exist.
func (a *EntityAdapter[T, P, F]) Load(ctx context.Context, id int64) (P, error) {
	item, err := a.service.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", a.view.Name, err)
	}
	if item == nil {
		return nil, fmt.Errorf("%s %d not found", a.view.Name, id)
	}
	return P(item), nil
}

// Show displays details for a single record.
func (a *EntityAdapter[T, P, F]) Show(ctx context.Context, id int64) error {
	item, err := a.Load(ctx, id)
	if err != nil {
		return err
	}

	fields := a.view.Detail((*T)(item))
	width := 0
	for _, f := range fields {
		width = max(width, len(f.Label))
	}
	fmt.Fprintf(a.out, "\n%s %d\n", strings.ToUpper(a.view.Name[:1])+a.view.Name[1:], item.EntityID())
	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		fmt.Fprintf(a.out, "%-*s %s\n", width+1, f.Label+":", f.Value)
	}
	fmt.Fprintln(a.out)
	return nil
}

// List prints one page of records as a table.
func (a *EntityAdapter[T, P, F]) List(ctx context.Context, filters F, page secondary.Page) error {
	paged, err := a.service.List(ctx, filters, page)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", a.view.Name, err)
	}

	if len(paged.Items) == 0 {
		fmt.Fprintf(a.out, "No %s records found\n", a.view.Name)
		return nil
	}

	rows := make([][]string, 0, len(paged.Items))
	for _, item := range paged.Items {
		rows = append(rows, a.view.Row(item))
	}
	printTable(a.out, a.view.Columns, rows)

	pages := (paged.Total + paged.PageSize - 1) / paged.PageSize
	fmt.Fprintf(a.out, "page %d of %d (%d total)\n\n", paged.Page, pages, paged.Total)
	return nil
}

func printTable(out io.Writer, columns []string, rows [][]string) {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = len(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len([]rune(cell)))
		}
	}

	line := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = cell + strings.Repeat(" ", widths[i]-len([]rune(cell)))
		}
		fmt.Fprintln(out, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	fmt.Fprintln(out)
	line(columns)
	total := 0
	for _, w := range widths {
		total += w + 2
	}
	fmt.Fprintln(out, strings.Repeat("─", total-2))
	for _, row := range rows {
		line(row)
	}
}
