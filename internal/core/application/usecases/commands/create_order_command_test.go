package commands_test

import (
	"testing"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/domain/model/actor"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	quantities := map[string]string{"a": "1"}

	cmd, err := commands.NewCreateOrderCommand(id, " t1 ", quantities, actor.Anonymous())

	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "T1", cmd.TableCode())
	assert.Equal(t, quantities, cmd.Quantities())
	assert.Nil(t, cmd.CreatedBy())

	quantities["a"] = "5"
	assert.Equal(t, "1", cmd.Quantities()["a"])
}

func TestNewCreateOrderCommand_StaffIsRecorded(t *testing.T) {
	staffID := kernel.NewUUID()
	staff, err := actor.NewActor(staffID, actor.RoleStaff)
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "T1", nil, staff)

	require.NoError(t, err)
	require.NotNil(t, cmd.CreatedBy())
	assert.True(t, cmd.CreatedBy().IsEqual(staffID))
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, "  ", nil, actor.Anonymous())

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
