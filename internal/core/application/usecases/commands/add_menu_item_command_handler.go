package commands

import (
	"context"

	"tableside/internal/core/domain/model/catalog"
)

type AddMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

func NewAddMenuItemCommandHandler(uowFactory MenuUoWFactory) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{uowFactory: uowFactory}
}

func (h AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := catalog.NewMenuItem(
		cmd.MenuItemID(), cmd.Name(), cmd.Description(), cmd.Price(), cmd.Category(), cmd.Available(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MenuItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
