package queries

import (
	"context"

	"tableside/internal/core/ports"
)

type GetActiveOrdersForTableQueryHandler struct {
	tables ports.TableRepository
	orders ports.OrderRepository
}

func NewGetActiveOrdersForTableQueryHandler(
	tables ports.TableRepository,
	orders ports.OrderRepository,
) GetActiveOrdersForTableQueryHandler {
	return GetActiveOrdersForTableQueryHandler{tables: tables, orders: orders}
}

// Handle returns the orders newest first, or an empty slice for a table without any.
func (h GetActiveOrdersForTableQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersForTableQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	table, err := h.tables.GetByCode(ctx, query.TableCode())
	if err != nil {
		return nil, err
	}

	orders, err := h.orders.ActiveForTable(ctx, table.ID())
	if err != nil {
		return nil, err
	}

	return newOrderViews(orders), nil
}
