package commands

import (
	"context"

	"tableside/internal/core/ports"
)

type AcknowledgeAssistanceCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

func NewAcknowledgeAssistanceCommandHandler(
	uowFactory OrderUoWFactory,
	clock ports.Clock,
) AcknowledgeAssistanceCommandHandler {
	return AcknowledgeAssistanceCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle clears the flag regardless of the order's status.
func (h AcknowledgeAssistanceCommandHandler) Handle(ctx context.Context, cmd AcknowledgeAssistanceCommand) error {
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

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	o.AcknowledgeAssistance(h.clock.Now())

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
