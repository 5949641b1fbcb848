package order

import (
	"fmt"
	"strconv"
	"strings"

	"tableside/internal/core/domain/model/catalog"
	"tableside/internal/pkg/errs"
)

// ErrNoItemsSelected is returned when an order would have no line items.
// The caller should re-prompt with the same menu.
var ErrNoItemsSelected = errs.NewValueIsRequiredError("order items")

// Selection is a positive quantity of a currently available menu item.
type Selection struct {
	menuItem *catalog.MenuItem
	quantity int
}

func NewSelection(menuItem *catalog.MenuItem, quantity int) (Selection, error) {
	if err := menuItem.Validate(); err != nil {
		return Selection{}, err
	}
	if !menuItem.IsAvailable() {
		return Selection{}, errs.NewValueIsInvalidErrorWithCause(
			"menu item", fmt.Errorf("%s is not available", menuItem.Name()))
	}
	if err := validateQuantity(quantity); err != nil {
		return Selection{}, err
	}
	return Selection{menuItem: menuItem, quantity: quantity}, nil
}

func (s Selection) MenuItem() *catalog.MenuItem {
	return s.menuItem
}

func (s Selection) Quantity() int {
	return s.quantity
}

// ParseQuantity reads a submitted quantity. Missing or malformed input counts as zero.
func ParseQuantity(raw string) int {
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return qty
}

// ParseSelections walks menu in order and keeps every available item whose raw
// quantity, keyed by the menu item id string, parses to a positive number.
// Keys that match no menu item are ignored. The result may be empty.
func ParseSelections(raw map[string]string, menu []*catalog.MenuItem) []Selection {
	selections := make([]Selection, 0, len(raw))
	for _, item := range menu {
		qty := ParseQuantity(raw[item.ID().String()])
		if qty <= 0 {
			continue
		}
		sel, err := NewSelection(item, qty)
		if err != nil {
			continue
		}
		selections = append(selections, sel)
	}
	return selections
}
