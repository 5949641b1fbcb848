package commands

import (
	"context"

	"tableside/internal/core/ports"
)

// ChangeOrderStatusCommandHandler applies staff status changes.
//
// Example:
//
//	cmd, _ := NewChangeOrderStatusCommand(orderID, "paid", "qr")
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrInvalidStatus) {
//	    // order left as it was
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle loads the order, transitions it and saves it. Nothing is written when the
// status is not a pipeline status.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	if err = o.TransitionTo(cmd.Status(), cmd.PaymentMethod(), h.clock.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
