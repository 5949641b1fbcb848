package commands

import (
	"errors"

	"tableside/internal/core/domain/model/actor"
	"tableside/internal/core/domain/model/catalog"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to place an order for a table.
// Quantities are the raw submitted values keyed by menu item id; malformed values
// count as zero and are dropped when the order is built.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "t1", map[string]string{
//	    padThaiID.String(): "2",
//	}, actor.Anonymous())
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, ports.SystemClock)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, order.ErrNoItemsSelected) {
//	    // show the menu again
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	tableCode  string
	quantities map[string]string
	actor      actor.Actor

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order. The table code is
// normalized the same way table codes are stored. Staff and admin actors are
// recorded as the order's creator; customers are not.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	tableCode string,
	quantities map[string]string,
	by actor.Actor,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		actor: by,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTableCode(tableCode),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.quantities = make(map[string]string, len(quantities))
	for k, v := range quantities {
		cmd.quantities[k] = v
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) TableCode() string {
	return c.tableCode
}

func (c CreateOrderCommand) Quantities() map[string]string {
	return c.quantities
}

// CreatedBy is the id to record on the order, nil when a customer places it.
func (c CreateOrderCommand) CreatedBy() *kernel.UUID {
	if !c.actor.HasAnyRole(actor.RoleStaff, actor.RoleAdmin) {
		return nil
	}
	return c.actor.ID()
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setTableCode(code string) error {
	code = catalog.NormalizeCode(code)
	if code == "" {
		return errs.NewValueIsRequiredError("table code")
	}

	c.tableCode = code
	return nil
}
