package commands

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/guard"
)

var (
	ErrAddMenuItemCommandIsNotConstructed = errors.New(
		"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
	)
)

// AddMenuItemCommand adds a dish or drink to the menu. The price arrives as submitted
// text and is parsed and rounded to two decimals here.
//
// Example:
//
//	cmd, err := NewAddMenuItemCommand(kernel.NewUUID(), "Pad Thai", "", "80", "Mains", true)
//	if errs.IsValidation(err) {
//	    // re-render the form
//	}
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemFields

	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAddMenuItemCommand(
	menuItemID kernel.UUID,
	name, description, price, category string,
	available bool,
) (AddMenuItemCommand, error) {
	fields, fieldsErr := newMenuItemFields(name, description, price, category, available)
	if err := errors.Join(menuItemID.Validate(), fieldsErr); err != nil {
		return AddMenuItemCommand{}, err
	}

	return AddMenuItemCommand{
		menuItemFields: fields,
		menuItemID:     menuItemID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

func (c AddMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}
