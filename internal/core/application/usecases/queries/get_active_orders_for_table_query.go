package queries

import (
	"errors"

	"tableside/internal/pkg/guard"
)

var (
	ErrGetActiveOrdersForTableQueryIsNotConstructed = errors.New(
		"GetActiveOrdersForTableQuery must be created via NewGetActiveOrdersForTableQuery constructor",
	)
)

// GetActiveOrdersForTableQuery retrieves a table's orders that are not paid yet.
type GetActiveOrdersForTableQuery struct {
	tableCode string

	guard guard.ConstructorGuard
}

func NewGetActiveOrdersForTableQuery(tableCode string) (GetActiveOrdersForTableQuery, error) {
	code, err := normalizeTableCode(tableCode)
	if err != nil {
		return GetActiveOrdersForTableQuery{}, err
	}
	return GetActiveOrdersForTableQuery{tableCode: code, guard: guard.NewConstructorGuard()}, nil
}

func (q GetActiveOrdersForTableQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersForTableQueryIsNotConstructed)
}

func (q GetActiveOrdersForTableQuery) TableCode() string {
	return q.tableCode
}
