package commands

import (
	"errors"

	"tableside/internal/core/domain/model/catalog"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var (
	ErrRequestAssistanceCommandIsNotConstructed = errors.New(
		"RequestAssistanceCommand must be created via NewRequestAssistanceCommand constructor",
	)
)

// RequestAssistanceCommand is a customer at a table calling staff about one of the
// table's orders.
type RequestAssistanceCommand struct { //nolint:recvcheck //using for validation
	tableCode string
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewRequestAssistanceCommand(tableCode string, orderID kernel.UUID) (RequestAssistanceCommand, error) {
	code := catalog.NormalizeCode(tableCode)
	var codeErr error
	if code == "" {
		codeErr = errs.NewValueIsRequiredError("table code")
	}
	if err := errors.Join(codeErr, orderID.Validate()); err != nil {
		return RequestAssistanceCommand{}, err
	}

	return RequestAssistanceCommand{
		tableCode: code,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RequestAssistanceCommand) Validate() error {
	return c.guard.Validate(ErrRequestAssistanceCommandIsNotConstructed)
}

func (c RequestAssistanceCommand) TableCode() string {
	return c.tableCode
}

func (c RequestAssistanceCommand) OrderID() kernel.UUID {
	return c.orderID
}
