package commands

import (
	"errors"
	"strings"

	"tableside/internal/core/domain/model/catalog"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var (
	ErrAddTableCommandIsNotConstructed = errors.New(
		"AddTableCommand must be created via NewAddTableCommand constructor",
	)
)

// AddTableCommand registers a new dining table.
//
// Example:
//
//	cmd, err := NewAddTableCommand(kernel.NewUUID(), "vip", "VIP room")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd) // errors.Is(err, catalog.ErrTableCodeIsTaken) on duplicates
type AddTableCommand struct { //nolint:recvcheck //using for validation
	tableID kernel.UUID
	code    string
	name    string

	guard guard.ConstructorGuard
}

func NewAddTableCommand(tableID kernel.UUID, code, name string) (AddTableCommand, error) {
	cmd := AddTableCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setCode(code),
		cmd.setName(name),
	); err != nil {
		return AddTableCommand{}, err
	}

	return cmd, nil
}

func (c AddTableCommand) Validate() error {
	return c.guard.Validate(ErrAddTableCommandIsNotConstructed)
}

func (c AddTableCommand) TableID() kernel.UUID {
	return c.tableID
}

// Code is already normalized to upper case.
func (c AddTableCommand) Code() string {
	return c.code
}

func (c AddTableCommand) Name() string {
	return c.name
}

func (c *AddTableCommand) setTableID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.tableID = id
	return nil
}

func (c *AddTableCommand) setCode(code string) error {
	code = catalog.NormalizeCode(code)
	if code == "" {
		return errs.NewValueIsRequiredError("table code")
	}
	c.code = code
	return nil
}

func (c *AddTableCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("table name")
	}
	c.name = name
	return nil
}
