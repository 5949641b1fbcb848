package catalog

import (
	"errors"
	"strings"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"
)

var (
	ErrTableIsNotConstructed = errors.New("Table must be created via NewTable constructor")

	// ErrTableCodeIsTaken is returned when another table already uses the code.
	ErrTableCodeIsTaken = errs.NewValueIsInvalidErrorWithCause("table code", errors.New("already in use"))
)

// Table is a dining table customers order from. Its code is the identity shown on
// the table (and encoded in its QR link).
type Table struct {
	id            kernel.UUID
	code          string
	name          string
	isConstructed bool
}

// NewTable validates and normalizes the table's code and name.
func NewTable(id kernel.UUID, code, name string) (*Table, error) {
	t := &Table{isConstructed: true}
	if err := errors.Join(t.setID(id), t.setCode(code), t.setName(name)); err != nil {
		return nil, err
	}
	return t, nil
}

// RestoreTable rebuilds a table loaded from persistence.
func RestoreTable(id kernel.UUID, code, name string) (*Table, error) {
	return NewTable(id, code, name)
}

// NormalizeCode is the canonical form used for lookups: trimmed, upper case.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (t *Table) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTableIsNotConstructed
	}
	return nil
}

func (t *Table) ID() kernel.UUID {
	return t.id
}

func (t *Table) Code() string {
	return t.code
}

func (t *Table) Name() string {
	return t.name
}

func (t *Table) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Table) setCode(code string) error {
	code = NormalizeCode(code)
	if code == "" {
		return errs.NewValueIsRequiredError("table code")
	}
	t.code = code
	return nil
}

func (t *Table) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("table name")
	}
	t.name = name
	return nil
}
