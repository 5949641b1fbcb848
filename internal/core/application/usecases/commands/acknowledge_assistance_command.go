package commands

import (
	"errors"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/guard"
)

var (
	ErrAcknowledgeAssistanceCommandIsNotConstructed = errors.New(
		"AcknowledgeAssistanceCommand must be created via NewAcknowledgeAssistanceCommand constructor",
	)
)

// AcknowledgeAssistanceCommand is staff clearing an order's call-staff flag.
type AcknowledgeAssistanceCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAcknowledgeAssistanceCommand(orderID kernel.UUID) (AcknowledgeAssistanceCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AcknowledgeAssistanceCommand{}, err
	}
	return AcknowledgeAssistanceCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c AcknowledgeAssistanceCommand) Validate() error {
	return c.guard.Validate(ErrAcknowledgeAssistanceCommandIsNotConstructed)
}

func (c AcknowledgeAssistanceCommand) OrderID() kernel.UUID {
	return c.orderID
}
