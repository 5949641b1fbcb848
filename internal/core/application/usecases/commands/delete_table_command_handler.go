package commands

import (
	"context"
	"errors"

	"tableside/internal/pkg/errs"
)

// ErrTableHasOrders is returned when deleting a table that any order still references.
var ErrTableHasOrders = errs.NewValueIsInvalidErrorWithCause("table", errors.New("has orders"))

// DeleteTableCommandHandler removes a table that has never been ordered from.
type DeleteTableCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeleteTableCommandHandler(uowFactory UoWFactory) DeleteTableCommandHandler {
	return DeleteTableCommandHandler{uowFactory: uowFactory}
}

func (h DeleteTableCommandHandler) Handle(ctx context.Context, cmd DeleteTableCommand) error {
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

	tables := uow.TableRepository()
	table, err := tables.Get(ctx, cmd.TableID())
	if err != nil {
		return err
	}

	count, err := uow.OrderRepository().CountForTable(ctx, table.ID())
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrTableHasOrders
	}

	if err = tables.Delete(ctx, table.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
