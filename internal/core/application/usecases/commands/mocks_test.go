package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/menu"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/services"
	"catering/internal/core/ports"
	"catering/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

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

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetAllAwaitingReturn(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Add(ctx context.Context, aggregate *menu.Menu) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockMenuRepository) Update(ctx context.Context, aggregate *menu.Menu) error {
	return m.Called(ctx, aggregate).Error(0)
}

func (m *MockMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Menu, error) {
	args := m.Called(ctx, id)
	found, _ := args.Get(0).(*menu.Menu)
	return found, args.Error(1)
}

func (m *MockMenuRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*menu.Menu, error) {
	args := m.Called(ctx, id)
	found, _ := args.Get(0).(*menu.Menu)
	return found, args.Error(1)
}

// MockUoW satisfies both commands.UoW and commands.OrderUoW.
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

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	return m.Called().Get(0).(ports.MenuRepository)
}

type MockUoWFactory struct{ uow *MockUoW }

func (f MockUoWFactory) Create() commands.UoW {
	return f.uow
}

type MockOrderUoWFactory struct{ uow *MockUoW }

func (f MockOrderUoWFactory) Create() commands.OrderUoW {
	return f.uow
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, n ports.Notification) error {
	return m.Called(ctx, n).Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, events ...order.Event) error {
	return m.Called(ctx, events).Error(0)
}

type fixture struct {
	uow       *MockUoW
	orders    *MockOrderRepository
	menus     *MockMenuRepository
	notifier  *MockNotifier
	publisher *MockEventPublisher
	metrics   *metrics.Metrics
	effects   *commands.SideEffects
	placement services.OrderPlacement
}

func newFixture() *fixture {
	f := &fixture{
		uow:       new(MockUoW),
		orders:    new(MockOrderRepository),
		menus:     new(MockMenuRepository),
		notifier:  new(MockNotifier),
		publisher: new(MockEventPublisher),
		metrics:   metrics.New(prometheus.NewRegistry()),
		placement: services.NewOrderPlacement(services.NewPricingEngine()),
	}
	f.effects = commands.NewSideEffects(
		f.notifier,
		f.publisher,
		f.metrics,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return f
}

func (f *fixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.uow.AssertExpectations(t)
	f.orders.AssertExpectations(t)
	f.menus.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(kernel.NewUUID(), "Ines Moreau", role)
	require.NoError(t, err)
	return a
}

func newMenu(t *testing.T, stock int) *menu.Menu {
	t.Helper()
	m, err := menu.NewMenu(kernel.NewUUID(), "Cocktail dinatoire", kernel.MustMoney("50.00"), 10, stock)
	require.NoError(t, err)
	return m
}

func newDetails(t *testing.T, headcount int, loaned bool) order.Details {
	t.Helper()
	addr, err := kernel.NewAddress("12 rue des Lilas", "Lyon")
	require.NoError(t, err)
	d, err := order.NewDetails(
		addr,
		time.Now().AddDate(0, 0, 14),
		"18:30",
		decimal.NewFromInt(10),
		headcount,
		loaned,
	)
	require.NoError(t, err)
	return d
}

// placedOrder builds a PLACED order of customer for m, priced like the handlers do.
func placedOrder(t *testing.T, customer kernel.Actor, m *menu.Menu, loaned bool) *order.Order {
	t.Helper()
	details := newDetails(t, 12, loaned)
	quote, err := services.NewPricingEngine().Quote(m.BasePrice(), 12, details.DistanceKm(), m.MinHeadcount())
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customer, m.ID(), details, quote, time.Now())
	require.NoError(t, err)
	return o
}

// restoredInStatus rebuilds o as if loaded from storage in the given status.
func restoredInStatus(t *testing.T, o *order.Order, status order.Status) *order.Order {
	t.Helper()
	restored, err := order.RestoreOrder(
		o.ID(),
		o.CustomerID(),
		o.CustomerName(),
		o.MenuID(),
		o.Details(),
		o.Quote(),
		status,
		o.CreatedAt(),
		o.UpdatedAt(),
	)
	require.NoError(t, err)
	return restored
}
