package order

import (
	"fmt"
	"strings"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
)

// Item is a line item. Price and name are copied from the menu item when the
// line is created so later menu edits do not change placed orders.
type Item struct {
	id           kernel.UUID
	menuItemID   kernel.UUID
	menuItemName string
	quantity     int
	price        kernel.Money
}

// RestoreItem rebuilds a line item loaded from persistence.
func RestoreItem(id, menuItemID kernel.UUID, menuItemName string, quantity int, price kernel.Money) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := menuItemID.Validate(); err != nil {
		return nil, err
	}
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	return &Item{
		id:           id,
		menuItemID:   menuItemID,
		menuItemName: strings.TrimSpace(menuItemName),
		quantity:     quantity,
		price:        price,
	}, nil
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

func (i *Item) MenuItemName() string {
	return i.menuItemName
}

func (i *Item) Quantity() int {
	return i.quantity
}

// Price is the unit price captured when the line was added.
func (i *Item) Price() kernel.Money {
	return i.price
}

// Subtotal is quantity * price rounded to two decimals.
func (i *Item) Subtotal() kernel.Money {
	return i.price.MulInt(i.quantity)
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}
