package queries

import (
	"context"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/ports"
)

// GetTableOrderSummaryQueryHandler only reveals orders that belong to the requesting
// table. Any other order id is reported as not found.
type GetTableOrderSummaryQueryHandler struct {
	tables ports.TableRepository
	orders ports.OrderRepository
}

func NewGetTableOrderSummaryQueryHandler(
	tables ports.TableRepository,
	orders ports.OrderRepository,
) GetTableOrderSummaryQueryHandler {
	return GetTableOrderSummaryQueryHandler{tables: tables, orders: orders}
}

func (h GetTableOrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetTableOrderSummaryQuery,
) (GetTableOrderSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTableOrderSummaryQueryResponse{}, err
	}

	table, err := h.tables.GetByCode(ctx, query.TableCode())
	if err != nil {
		return GetTableOrderSummaryQueryResponse{}, err
	}

	o, err := h.orders.GetForTable(ctx, table.ID(), query.OrderID())
	if err != nil {
		return GetTableOrderSummaryQueryResponse{}, err
	}

	pipeline := make([]string, 0, len(order.Pipeline()))
	for _, s := range order.Pipeline() {
		pipeline = append(pipeline, s.String())
	}

	return GetTableOrderSummaryQueryResponse{
		Table:    newTableView(table),
		Order:    newOrderView(o),
		Pipeline: pipeline,
	}, nil
}
