package commands

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/guard"
)

var (
	ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
		"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
	)
)

// UpdateMenuItemCommand replaces every editable attribute of a menu item.
// Orders already placed keep the name and price they were created with.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemFields

	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewUpdateMenuItemCommand(
	menuItemID kernel.UUID,
	name, description, price, category string,
	available bool,
) (UpdateMenuItemCommand, error) {
	fields, fieldsErr := newMenuItemFields(name, description, price, category, available)
	if err := errors.Join(menuItemID.Validate(), fieldsErr); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return UpdateMenuItemCommand{
		menuItemFields: fields,
		menuItemID:     menuItemID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

func (c UpdateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}
