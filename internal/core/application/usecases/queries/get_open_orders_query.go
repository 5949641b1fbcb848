package queries

import (
	"errors"

	"tableside/internal/pkg/guard"
)

var (
	ErrGetOpenOrdersQueryIsNotConstructed = errors.New(
		"GetOpenOrdersQuery must be created via NewGetOpenOrdersQuery constructor",
	)
)

// GetOpenOrdersQuery retrieves every order that is not paid yet, across all tables.
// This is the staff dashboard view.
//
// Example:
//
//	query := NewGetOpenOrdersQuery()
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open orders: %w", err)
//	}
//	for _, o := range orders {
//	    fmt.Printf("%s %s %s\n", o.ID, o.Status, o.TotalAmount)
//	}
type GetOpenOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOpenOrdersQuery() GetOpenOrdersQuery {
	return GetOpenOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenOrdersQueryIsNotConstructed)
}
