// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"

	"github.com/example/portfolio/internal/i18n"
)

// Paging defaults applied when a caller leaves the page unspecified.
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
)

// Page selects a slice of a sorted list.
type Page struct {
	Number     int
	Size       int
	SortBy     string // adapter-specific column key; unknown keys fall back to id
	Descending bool
}

// Normalize fills unset fields with defaults. defaultSize <= 0 means DefaultPageSize.
func (p Page) Normalize(defaultSize int) Page {
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	if p.Number <= 0 {
		p.Number = DefaultPageNumber
	}
	if p.Size <= 0 {
		p.Size = defaultSize
	}
	return p
}

// Offset returns the number of rows before the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// PagedResult is one page of a filtered list.
type PagedResult[T any] struct {
	Items    []*T
	Page     int
	PageSize int
	Total    int
}

// Repository is the storage contract shared by every entity.
// GetByID returns (nil, nil) when no record has the given ID.
// Create assigns the storage ID to item.
type Repository[T any, F any] interface {
	// GetByID retrieves a record by its ID.
	GetByID(ctx context.Context, id int64) (*T, error)

	// List retrieves a page of records matching the filter.
	List(ctx context.Context, filter F, page Page) (*PagedResult[T], error)

	// Create persists a new record.
	Create(ctx context.Context, item *T) error

	// Update replaces a stored record.
	Update(ctx context.Context, item *T) error

	// Delete removes a record.
	Delete(ctx context.Context, id int64) error
}

// Transactor runs a unit of work atomically. Repository calls made with the
// context passed to fn take part in the transaction; nested calls join it.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// MessageCatalog resolves message keys for the locale carried in ctx.
type MessageCatalog interface {
	Resolve(ctx context.Context, key i18n.Key, args ...any) string
}
