package ports

import (
	"context"

	"tableside/internal/core/domain/model/catalog"
	"tableside/internal/core/domain/model/kernel"
)

// TableRepository defines the persistence contract for dining tables.
type TableRepository interface {
	// Add persists a new table. A duplicate code is reported as a validation error.
	Add(ctx context.Context, table *catalog.Table) error

	Get(ctx context.Context, id kernel.UUID) (*catalog.Table, error)

	// GetByCode looks a table up by its normalized code.
	GetByCode(ctx context.Context, code string) (*catalog.Table, error)

	// List returns every table ordered by code.
	List(ctx context.Context) ([]*catalog.Table, error)

	Delete(ctx context.Context, id kernel.UUID) error
}
