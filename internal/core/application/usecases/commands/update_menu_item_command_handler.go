package commands

import (
	"context"
)

type UpdateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewUpdateMenuItemCommandHandler(uowFactory MenuUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{uowFactory: uowFactory}
}

// Handle returns an errs.ObjectNotFoundError when the menu item does not exist.
func (h UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.MenuItemRepository()
	item, err := repo.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	if err = item.Update(cmd.Name(), cmd.Description(), cmd.Price(), cmd.Category(), cmd.Available()); err != nil {
		return err
	}

	if err = repo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
