package ports

import (
	"context"

	"tableside/internal/core/domain/model/catalog"
	"tableside/internal/core/domain/model/kernel"
)

// MenuItemRepository defines the persistence contract for menu items.
type MenuItemRepository interface {
	Add(ctx context.Context, item *catalog.MenuItem) error
	Update(ctx context.Context, item *catalog.MenuItem) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error)
	Delete(ctx context.Context, id kernel.UUID) error

	// List returns every menu item ordered by category then name, uncategorized first.
	List(ctx context.Context) ([]*catalog.MenuItem, error)

	// ListAvailable is List restricted to available items.
	ListAvailable(ctx context.Context) ([]*catalog.MenuItem, error)

	// ListAvailableByName returns available items ordered by name only, for the staff
	// order form.
	ListAvailableByName(ctx context.Context) ([]*catalog.MenuItem, error)
}
