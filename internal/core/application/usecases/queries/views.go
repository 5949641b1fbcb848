// Package queries contains read operations. Order and catalog reads go through the
// repository ports; the staff table board is a raw SQL read model.
package queries

import (
	"time"

	"tableside/internal/core/domain/model/catalog"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
)

// OrderItemView is a read model of one line item.
type OrderItemView struct {
	ID           kernel.UUID
	MenuItemID   kernel.UUID
	MenuItemName string
	Quantity     int
	Price        kernel.Money
	Subtotal     kernel.Money
}

// OrderView is a read model of an order. StatusIndex is the position of Status in
// the pipeline, -1 when the status is outside it.
type OrderView struct {
	ID                  kernel.UUID
	TableID             kernel.UUID
	CreatedBy           *kernel.UUID
	Status              string
	StatusIndex         int
	Items               []OrderItemView
	TotalAmount         kernel.Money
	CreatedAt           time.Time
	UpdatedAt           time.Time
	RequestedAssistance bool
	PaidAt              *time.Time
	PaymentMethod       *string
	Active              bool
}

// TableView is a read model of a dining table.
type TableView struct {
	ID   kernel.UUID
	Code string
	Name string
}

// MenuItemView is a read model of a menu item. Category is empty when uncategorized.
type MenuItemView struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       kernel.Money
	Category    string
	Available   bool
}

func newOrderView(o *order.Order) OrderView {
	items := o.Items()
	itemViews := make([]OrderItemView, 0, len(items))
	for _, item := range items {
		itemViews = append(itemViews, OrderItemView{
			ID:           item.ID(),
			MenuItemID:   item.MenuItemID(),
			MenuItemName: item.MenuItemName(),
			Quantity:     item.Quantity(),
			Price:        item.Price(),
			Subtotal:     item.Subtotal(),
		})
	}

	return OrderView{
		ID:                  o.ID(),
		TableID:             o.TableID(),
		CreatedBy:           o.CreatedBy(),
		Status:              o.Status().String(),
		StatusIndex:         o.Status().PipelineIndex(),
		Items:               itemViews,
		TotalAmount:         o.TotalAmount(),
		CreatedAt:           o.CreatedAt(),
		UpdatedAt:           o.UpdatedAt(),
		RequestedAssistance: o.RequestedAssistance(),
		PaidAt:              o.PaidAt(),
		PaymentMethod:       o.PaymentMethod(),
		Active:              o.IsActive(),
	}
}

func newOrderViews(orders []*order.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newOrderView(o))
	}
	return views
}

func newTableView(t *catalog.Table) TableView {
	return TableView{ID: t.ID(), Code: t.Code(), Name: t.Name()}
}

func newMenuItemView(m *catalog.MenuItem) MenuItemView {
	var category string
	if c := m.Category(); c != nil {
		category = *c
	}
	return MenuItemView{
		ID:          m.ID(),
		Name:        m.Name(),
		Description: m.Description(),
		Price:       m.Price(),
		Category:    category,
		Available:   m.IsAvailable(),
	}
}

func newMenuItemViews(items []*catalog.MenuItem) []MenuItemView {
	views := make([]MenuItemView, 0, len(items))
	for _, m := range items {
		views = append(views, newMenuItemView(m))
	}
	return views
}
