package commands

import (
	"context"
	"errors"

	"tableside/internal/core/domain/model/catalog"
	"tableside/internal/pkg/errs"
)

// AddTableCommandHandler creates tables. A code that is already in use is rejected
// with catalog.ErrTableCodeIsTaken before anything is written; the repository
// reports the same error if a concurrent insert wins the race.
type AddTableCommandHandler struct {
	uowFactory UoWFactory
}

func NewAddTableCommandHandler(uowFactory UoWFactory) AddTableCommandHandler {
	return AddTableCommandHandler{uowFactory: uowFactory}
}

func (h AddTableCommandHandler) Handle(ctx context.Context, cmd AddTableCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	table, err := catalog.NewTable(cmd.TableID(), cmd.Code(), cmd.Name())
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

	repo := uow.TableRepository()
	_, err = repo.GetByCode(ctx, table.Code())
	switch {
	case err == nil:
		return catalog.ErrTableCodeIsTaken
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	if err = repo.Add(ctx, table); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
