package commands_test

import (
	"context"
	"time"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/domain/model/catalog"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

var fixedClock = ports.ClockFunc(func() time.Time { return fixedNow })

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) GetForTable(ctx context.Context, tableID, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, tableID, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) ActiveForTable(ctx context.Context, tableID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, tableID)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) AllOpen(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) Recent(ctx context.Context, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, limit)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) AllPaid(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) CountForTable(ctx context.Context, tableID kernel.UUID) (int64, error) {
	args := m.Called(ctx, tableID)
	return args.Get(0).(int64), args.Error(1)
}

type MockTableRepository struct{ mock.Mock }

func (m *MockTableRepository) Add(ctx context.Context, t *catalog.Table) error {
	return m.Called(ctx, t).Error(0)
}
func (m *MockTableRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Table, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*catalog.Table)
	return t, args.Error(1)
}
func (m *MockTableRepository) GetByCode(ctx context.Context, code string) (*catalog.Table, error) {
	args := m.Called(ctx, code)
	t, _ := args.Get(0).(*catalog.Table)
	return t, args.Error(1)
}
func (m *MockTableRepository) List(ctx context.Context) ([]*catalog.Table, error) {
	args := m.Called(ctx)
	t, _ := args.Get(0).([]*catalog.Table)
	return t, args.Error(1)
}
func (m *MockTableRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockMenuItemRepository struct{ mock.Mock }

func (m *MockMenuItemRepository) Add(ctx context.Context, item *catalog.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}
func (m *MockMenuItemRepository) Update(ctx context.Context, item *catalog.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}
func (m *MockMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*catalog.MenuItem)
	return item, args.Error(1)
}
func (m *MockMenuItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockMenuItemRepository) List(ctx context.Context) ([]*catalog.MenuItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]*catalog.MenuItem)
	return items, args.Error(1)
}
func (m *MockMenuItemRepository) ListAvailable(ctx context.Context) ([]*catalog.MenuItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]*catalog.MenuItem)
	return items, args.Error(1)
}
func (m *MockMenuItemRepository) ListAvailableByName(ctx context.Context) ([]*catalog.MenuItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]*catalog.MenuItem)
	return items, args.Error(1)
}

// MockUoW satisfies every unit of work flavour the handlers ask for.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockUoW) TableRepository() ports.TableRepository {
	return m.Called().Get(0).(ports.TableRepository)
}
func (m *MockUoW) MenuItemRepository() ports.MenuItemRepository {
	return m.Called().Get(0).(ports.MenuItemRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockMenuUoWFactory struct{ mock.Mock }

func (m *MockMenuUoWFactory) Create() commands.MenuUoW {
	return m.Called().Get(0).(commands.MenuUoW)
}
