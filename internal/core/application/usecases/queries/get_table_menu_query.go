package queries

import (
	"errors"

	"tableside/internal/pkg/guard"
)

var (
	ErrGetTableMenuQueryIsNotConstructed = errors.New(
		"GetTableMenuQuery must be created via NewGetTableMenuQuery constructor",
	)
)

// GetTableMenuQuery builds the page a customer sees after scanning a table's code:
// the menu split into sections plus the table's open orders.
type GetTableMenuQuery struct {
	tableCode string

	guard guard.ConstructorGuard
}

func NewGetTableMenuQuery(tableCode string) (GetTableMenuQuery, error) {
	code, err := normalizeTableCode(tableCode)
	if err != nil {
		return GetTableMenuQuery{}, err
	}
	return GetTableMenuQuery{tableCode: code, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTableMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetTableMenuQueryIsNotConstructed)
}

func (q GetTableMenuQuery) TableCode() string {
	return q.tableCode
}

// MenuSectionView is one category block of the customer menu.
type MenuSectionView struct {
	Title  string
	Anchor string
	Items  []MenuItemView
}

// GetTableMenuQueryResponse holds the table, its menu sections and its open orders
// newest first. LatestOrder is nil when the table has no open order.
type GetTableMenuQueryResponse struct {
	Table        TableView
	Sections     []MenuSectionView
	ActiveOrders []OrderView
	LatestOrder  *OrderView
}
