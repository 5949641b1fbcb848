package queries

import (
	"context"

	"tableside/internal/core/ports"
)

// GetOpenOrdersQueryHandler reads open orders through the order repository.
type GetOpenOrdersQueryHandler struct {
	orders ports.OrderRepository
}

func NewGetOpenOrdersQueryHandler(orders ports.OrderRepository) GetOpenOrdersQueryHandler {
	return GetOpenOrdersQueryHandler{orders: orders}
}

// Handle returns open orders newest first. Cancelled orders are included: only paid
// orders leave this view.
func (h GetOpenOrdersQueryHandler) Handle(ctx context.Context, query GetOpenOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.AllOpen(ctx)
	if err != nil {
		return nil, err
	}

	return newOrderViews(orders), nil
}
