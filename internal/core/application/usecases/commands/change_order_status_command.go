package commands

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
)

// ChangeOrderStatusCommand moves an order to another pipeline status.
// The status is kept raw and parsed by the order itself, so an unknown value is
// rejected without touching the stored order.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	status        string
	paymentMethod string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a status change. paymentMethod is only used
// when status is "paid".
func NewChangeOrderStatusCommand(orderID kernel.UUID, status, paymentMethod string) (ChangeOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID:       orderID,
		status:        status,
		paymentMethod: paymentMethod,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Status() string {
	return c.status
}

func (c ChangeOrderStatusCommand) PaymentMethod() string {
	return c.paymentMethod
}
