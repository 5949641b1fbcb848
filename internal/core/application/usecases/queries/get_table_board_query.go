package queries

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/guard"
)

var (
	ErrGetTableBoardQueryIsNotConstructed = errors.New(
		"GetTableBoardQuery must be created via NewGetTableBoardQuery constructor",
	)
)

// GetTableBoardQuery retrieves one row per table for the staff floor overview:
// how many orders are still open and whether anyone at the table called for staff.
//
// Example:
//
//	query := NewGetTableBoardQuery()
//	handler := NewGetTableBoardQueryHandler(db)
//
//	rows, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get table board: %w", err)
//	}
//	for _, row := range rows {
//	    if row.NeedsAssistance {
//	        fmt.Printf("%s is calling\n", row.Code)
//	    }
//	}
type GetTableBoardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTableBoardQuery creates the parameterless board query.
func NewGetTableBoardQuery() GetTableBoardQuery {
	return GetTableBoardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetTableBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetTableBoardQueryIsNotConstructed)
}

// GetTableBoardQueryResponse is a table with its open order count. NeedsAssistance is
// true when any of the table's open orders has the call-staff flag raised.
type GetTableBoardQueryResponse struct {
	ID              kernel.UUID
	Code            string
	Name            string
	OpenOrders      int
	NeedsAssistance bool
}
