package commands

import (
	"context"

	"tableside/internal/core/ports"
)

// RequestAssistanceCommandHandler raises the call-staff flag. The order must belong to
// the table the request comes from, otherwise it is reported as not found.
type RequestAssistanceCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewRequestAssistanceCommandHandler(uowFactory UoWFactory, clock ports.Clock) RequestAssistanceCommandHandler {
	return RequestAssistanceCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h RequestAssistanceCommandHandler) Handle(ctx context.Context, cmd RequestAssistanceCommand) error {
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

	table, err := uow.TableRepository().GetByCode(ctx, cmd.TableCode())
	if err != nil {
		return err
	}

	repo := uow.OrderRepository()
	o, err := repo.GetForTable(ctx, table.ID(), cmd.OrderID())
	if err != nil {
		return err
	}

	o.RequestAssistance(h.clock.Now())

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
