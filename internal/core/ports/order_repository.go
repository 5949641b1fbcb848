// Package ports defines the contracts between the ordering core and its
// infrastructure: persistence of orders and catalog entities, the transaction
// boundary, and the clock.
package ports

import (
	"context"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
)

// DefaultRecentLimit is used by Recent when the requested limit is not positive.
const DefaultRecentLimit = 10

// OrderRepository defines the persistence contract for order aggregates.
// Every read goes to storage; implementations must not cache.
type OrderRepository interface {
	// Add persists a new order together with all of its line items in the current
	// transaction.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. Line items that are no longer
	// part of the aggregate are removed.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id, or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForTable retrieves an order only if it belongs to tableID. An order of another
	// table is reported as not found.
	GetForTable(ctx context.Context, tableID, id kernel.UUID) (*order.Order, error)

	// ActiveForTable returns the table's orders whose status is not paid, newest first.
	ActiveForTable(ctx context.Context, tableID kernel.UUID) ([]*order.Order, error)

	// AllOpen returns every order whose status is not paid, newest first.
	AllOpen(ctx context.Context) ([]*order.Order, error)

	// Recent returns up to limit orders of any status, newest first. A limit that is
	// not positive means DefaultRecentLimit.
	Recent(ctx context.Context, limit int) ([]*order.Order, error)

	// AllPaid returns every paid order.
	AllPaid(ctx context.Context) ([]*order.Order, error)

	// CountForTable counts the orders of any status referencing tableID.
	CountForTable(ctx context.Context, tableID kernel.UUID) (int64, error)
}
