package queries

import (
	"context"

	"tableside/internal/core/ports"
)

type GetRecentOrdersQueryHandler struct {
	orders ports.OrderRepository
}

func NewGetRecentOrdersQueryHandler(orders ports.OrderRepository) GetRecentOrdersQueryHandler {
	return GetRecentOrdersQueryHandler{orders: orders}
}

func (h GetRecentOrdersQueryHandler) Handle(ctx context.Context, query GetRecentOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.Recent(ctx, query.Limit())
	if err != nil {
		return nil, err
	}

	return newOrderViews(orders), nil
}
