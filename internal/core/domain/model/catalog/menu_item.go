package catalog

import (
	"errors"
	"fmt"
	"strings"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
)

var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItem is a purchasable dish or drink.
//
// Invariants:
//   - name is not blank
//   - price is not negative
//   - category is nil or non-blank
type MenuItem struct {
	id            kernel.UUID
	name          string
	description   string
	price         kernel.Money
	category      *string
	available     bool
	isConstructed bool
}

// NewMenuItem validates and normalizes a menu item. A blank category becomes nil.
func NewMenuItem(
	id kernel.UUID,
	name, description string,
	price kernel.Money,
	category string,
	available bool,
) (*MenuItem, error) {
	item := &MenuItem{isConstructed: true}
	if err := id.Validate(); err != nil {
		return nil, err
	}
	item.id = id

	if err := item.Update(name, description, price, category, available); err != nil {
		return nil, err
	}
	return item, nil
}

// RestoreMenuItem rebuilds a menu item loaded from persistence.
func RestoreMenuItem(
	id kernel.UUID,
	name, description string,
	price kernel.Money,
	category *string,
	available bool,
) (*MenuItem, error) {
	var c string
	if category != nil {
		c = *category
	}
	return NewMenuItem(id, name, description, price, c, available)
}

// Update replaces every editable attribute. Nothing is changed when validation fails.
func (m *MenuItem) Update(name, description string, price kernel.Money, category string, available bool) error {
	name = strings.TrimSpace(name)

	var nameErr, priceErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("menu item name")
	}
	if price.IsNegative() {
		priceErr = errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	if err := errors.Join(nameErr, priceErr); err != nil {
		return err
	}

	m.name = name
	m.description = strings.TrimSpace(description)
	m.price = price
	m.category = normalizeCategory(category)
	m.available = available
	return nil
}

func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

func (m *MenuItem) Name() string {
	return m.name
}

func (m *MenuItem) Description() string {
	return m.description
}

func (m *MenuItem) Price() kernel.Money {
	return m.price
}

// Category is nil for uncategorized items.
func (m *MenuItem) Category() *string {
	if m.category == nil {
		return nil
	}
	c := *m.category
	return &c
}

func (m *MenuItem) IsAvailable() bool {
	return m.available
}

func normalizeCategory(category string) *string {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil
	}
	return &category
}
