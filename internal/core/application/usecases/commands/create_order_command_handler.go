package commands

import (
	"context"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Resolves the table, parses the submitted quantities against the available menu and
// persists the pending order with its line items in one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, ports.SystemClock)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), "T1", quantities, staff)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, clock ports.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the order creation command.
// Returns an errs.ObjectNotFoundError for an unknown table and order.ErrNoItemsSelected
// when no submitted quantity selects an available menu item.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	menu, err := uow.MenuItemRepository().ListAvailable(ctx)
	if err != nil {
		return err
	}

	selections := order.ParseSelections(cmd.Quantities(), menu)
	o, err := order.NewOrder(cmd.OrderID(), table.ID(), cmd.CreatedBy(), selections, h.clock.Now())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
