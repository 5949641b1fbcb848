package queries

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/guard"
)

var (
	ErrGetTableOrderSummaryQueryIsNotConstructed = errors.New(
		"GetTableOrderSummaryQuery must be created via NewGetTableOrderSummaryQuery constructor",
	)
)

// GetTableOrderSummaryQuery is the customer's view of one of their table's orders.
type GetTableOrderSummaryQuery struct {
	tableCode string
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetTableOrderSummaryQuery(tableCode string, orderID kernel.UUID) (GetTableOrderSummaryQuery, error) {
	code, codeErr := normalizeTableCode(tableCode)
	if err := errors.Join(codeErr, orderID.Validate()); err != nil {
		return GetTableOrderSummaryQuery{}, err
	}

	return GetTableOrderSummaryQuery{
		tableCode: code,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetTableOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetTableOrderSummaryQueryIsNotConstructed)
}

func (q GetTableOrderSummaryQuery) TableCode() string {
	return q.tableCode
}

func (q GetTableOrderSummaryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetTableOrderSummaryQueryResponse carries the order together with the pipeline so a
// progress bar can be drawn from Order.StatusIndex.
type GetTableOrderSummaryQueryResponse struct {
	Table    TableView
	Order    OrderView
	Pipeline []string
}
