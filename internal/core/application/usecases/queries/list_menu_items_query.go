package queries

import (
	"context"
	"errors"

	"tableside/internal/core/domain/model/catalog"
	"tableside/internal/core/ports"
	"tableside/internal/pkg/guard"
)

var (
	ErrListMenuItemsQueryIsNotConstructed = errors.New(
		"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
	)
)

// MenuItemOrder selects which listing ListMenuItemsQuery returns.
type MenuItemOrder int

const (
	// AllByCategory lists every item, available or not, by category then name (admin).
	AllByCategory MenuItemOrder = iota
	// AvailableByName lists available items by name (staff order form).
	AvailableByName
)

type ListMenuItemsQuery struct {
	order MenuItemOrder

	guard guard.ConstructorGuard
}

func NewListMenuItemsQuery(order MenuItemOrder) ListMenuItemsQuery {
	return ListMenuItemsQuery{order: order, guard: guard.NewConstructorGuard()}
}

func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

func (q ListMenuItemsQuery) Order() MenuItemOrder {
	return q.order
}

type ListMenuItemsQueryHandler struct {
	menu ports.MenuItemRepository
}

func NewListMenuItemsQueryHandler(menu ports.MenuItemRepository) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{menu: menu}
}

func (h ListMenuItemsQueryHandler) Handle(ctx context.Context, query ListMenuItemsQuery) ([]MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		items []*catalog.MenuItem
		err   error
	)
	switch query.Order() {
	case AvailableByName:
		items, err = h.menu.ListAvailableByName(ctx)
	default:
		items, err = h.menu.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	return newMenuItemViews(items), nil
}
