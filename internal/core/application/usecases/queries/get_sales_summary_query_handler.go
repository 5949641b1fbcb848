package queries

import (
	"context"

	"tableside/internal/core/domain/services"
	"tableside/internal/core/ports"
)

type GetSalesSummaryQueryHandler struct {
	orders     ports.OrderRepository
	aggregator services.SalesAggregator
}

func NewGetSalesSummaryQueryHandler(orders ports.OrderRepository) GetSalesSummaryQueryHandler {
	return GetSalesSummaryQueryHandler{
		orders:     orders,
		aggregator: services.NewSalesAggregator(),
	}
}

func (h GetSalesSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetSalesSummaryQuery,
) (GetSalesSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSalesSummaryQueryResponse{}, err
	}

	paid, err := h.orders.AllPaid(ctx)
	if err != nil {
		return GetSalesSummaryQueryResponse{}, err
	}

	recent, err := h.orders.Recent(ctx, ports.DefaultRecentLimit)
	if err != nil {
		return GetSalesSummaryQueryResponse{}, err
	}

	return GetSalesSummaryQueryResponse{
		TotalRevenue: h.aggregator.TotalRevenue(paid),
		TodayRevenue: h.aggregator.RevenueOn(paid, query.Today()),
		RecentOrders: newOrderViews(recent),
	}, nil
}
