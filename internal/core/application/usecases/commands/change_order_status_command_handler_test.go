package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/domain/model/catalog"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingOrder(t *testing.T, tableID kernel.UUID) *order.Order {
	t.Helper()
	item, err := catalog.NewMenuItem(kernel.NewUUID(), "Pad Thai", "", kernel.MoneyFromFloat(80), "", true)
	require.NoError(t, err)
	sel, err := order.NewSelection(item, 2)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), tableID, nil, []order.Selection{sel}, fixedNow.Add(-time.Hour))
	require.NoError(t, err)
	return o
}

func TestNewChangeOrderStatusCommand(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewChangeOrderStatusCommand(id, "paid", "qr")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "paid", cmd.Status())
	assert.Equal(t, "qr", cmd.PaymentMethod())

	_, err = commands.NewChangeOrderStatusCommand(kernel.UUID{}, "paid", "")
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestChangeOrderStatusCommandHandler_Handle_Paid(t *testing.T) {
	ctx := context.Background()
	o := pendingOrder(t, kernel.NewUUID())
	cmd, _ := commands.NewChangeOrderStatusCommand(o.ID(), "paid", " qr ")

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		repo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, fixedClock)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Paid, o.Status())
	require.NotNil(t, o.PaidAt())
	assert.Equal(t, fixedNow, *o.PaidAt())
	assert.Equal(t, "qr", *o.PaymentMethod())
	assert.Equal(t, fixedNow, o.UpdatedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_InvalidStatus(t *testing.T) {
	ctx := context.Background()
	o := pendingOrder(t, kernel.NewUUID())
	updatedAt := o.UpdatedAt()
	cmd, _ := commands.NewChangeOrderStatusCommand(o.ID(), "bogus", "")

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, fixedClock)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidStatus)
	assert.Equal(t, order.Pending, o.Status())
	assert.Equal(t, updatedAt, o.UpdatedAt())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := context.Background()
	id := kernel.NewUUID()
	cmd, _ := commands.NewChangeOrderStatusCommand(id, "served", "")

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, fixedClock)
	err := h.Handle(ctx, cmd)

	assert.True(t, errs.IsNotFound(err))
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := context.Background()
	o := pendingOrder(t, kernel.NewUUID())
	cmd, _ := commands.NewChangeOrderStatusCommand(o.ID(), "preparing", "")

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		repo.On("Update", ctx, o).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory, fixedClock)
	err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "update error")
	uow.AssertExpectations(t)
}
