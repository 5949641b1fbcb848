package commands

import (
	"errors"
	"strings"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
)

// menuItemFields holds the editable attributes shared by the add and update commands.
type menuItemFields struct {
	name        string
	description string
	price       kernel.Money
	category    string
	available   bool
}

func newMenuItemFields(name, description, price, category string, available bool) (menuItemFields, error) {
	f := menuItemFields{
		description: strings.TrimSpace(description),
		category:    strings.TrimSpace(category),
		available:   available,
	}

	if err := errors.Join(f.setName(name), f.setPrice(price)); err != nil {
		return menuItemFields{}, err
	}
	return f, nil
}

func (f menuItemFields) Name() string {
	return f.name
}

func (f menuItemFields) Description() string {
	return f.description
}

func (f menuItemFields) Price() kernel.Money {
	return f.price
}

// Category is blank for uncategorized items.
func (f menuItemFields) Category() string {
	return f.category
}

func (f menuItemFields) Available() bool {
	return f.available
}

func (f *menuItemFields) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	f.name = name
	return nil
}

func (f *menuItemFields) setPrice(raw string) error {
	price, err := kernel.ParseMoney(raw)
	if err != nil {
		return err
	}
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("price")
	}
	f.price = price
	return nil
}
