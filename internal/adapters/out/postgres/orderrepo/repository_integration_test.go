package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"catering/internal/adapters/out/postgres/orderrepo"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/model/order"
	"catering/internal/core/domain/services"
	"catering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite runs the order repository against a real PostgreSQL.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
	now        time.Time
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.StatusHistoryDTO{},
		&orderrepo.CancellationDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, order_status_history, order_cancellations",
	).Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
	suite.now = time.Now().UTC()
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsOrderAndCreationHistory() {
	ctx := context.Background()
	o := suite.newOrder(false)

	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.assertCount("orders", 1)
	suite.assertCount("order_status_history", 1)
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", o.ID(), o)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RestoresSnapshot() {
	ctx := context.Background()
	o := suite.newOrder(true)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.True(o.ID().IsEqual(got.ID()))
	suite.True(o.CustomerID().IsEqual(got.CustomerID()))
	suite.Equal("Dana Client", got.CustomerName())
	suite.Equal(order.Placed, got.Status())
	suite.Equal(o.Details().EventDate(), got.Details().EventDate())
	suite.Equal("19:30", got.Details().EventTime())
	suite.True(got.Details().LoanedEquipment())
	suite.Equal(12, got.Details().Headcount())
	suite.Equal(o.Quote().Total().String(), got.Quote().Total().String())
	suite.Equal(o.Quote().DeliveryFee().String(), got.Quote().DeliveryFee().String())
	suite.Equal("Via Roma 12", got.Details().Address().Line())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_UnknownOrder_ReturnsNotFound() {
	got, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(got)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AppendsHistoryForStatusChange() {
	ctx := context.Background()
	o := suite.newOrder(false)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	loaded, err := suite.repository.GetForUpdate(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ChangeStatus(nil, order.Accepted, "", suite.now))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Accepted, got.Status())
	suite.assertCount("order_status_history", 2)

	var nullActors int64
	suite.Require().NoError(suite.db.Table("order_status_history").
		Where("status = ? AND actor_id IS NULL", "ACCEPTED").
		Count(&nullActors).Error)
	suite.Equal(int64(1), nullActors)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_SavingTwiceDoesNotDuplicateHistory() {
	ctx := context.Background()
	o := suite.newOrder(false)
	suite.Require().NoError(suite.repository.Add(ctx, o))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	suite.assertCount("order_status_history", 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StoresCancellation() {
	ctx := context.Background()
	o := suite.newOrder(false)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	_, err = loaded.Cancel(suite.staff(), order.ContactModePhone, "customer called", suite.now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	suite.assertCount("order_cancellations", 1)

	var note string
	suite.Require().NoError(suite.db.Table("order_status_history").
		Select("note").
		Where("status = ?", "CANCELLED").
		Scan(&note).Error)
	suite.Equal("Cancellation (PHONE) - customer called", note)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_SecondCancellationIsConflict() {
	ctx := context.Background()
	o := suite.newOrder(false)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	first, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)

	_, err = first.Cancel(suite.staff(), order.ContactModeEmail, "duplicate", suite.now)
	suite.Require().NoError(err)
	_, err = second.Cancel(suite.staff(), order.ContactModePhone, "duplicate", suite.now)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, first))
	err = suite.repository.Update(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_UnknownOrder_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.newOrder(false))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.assertCount("order_status_history", 0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllAwaitingReturn_FiltersOnLoanedEquipment() {
	ctx := context.Background()

	withEquipment := suite.newOrderInStatus(true, order.WaitingReturn)
	withoutEquipment := suite.newOrderInStatus(false, order.Delivered)
	stillPlaced := suite.newOrder(true)
	for _, o := range []*order.Order{withEquipment, withoutEquipment, stillPlaced} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	got, err := suite.repository.GetAllAwaitingReturn(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(got, 1)
	suite.True(withEquipment.ID().IsEqual(got[0].ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(loaned bool) *order.Order {
	customer, err := kernel.NewActor(kernel.NewUUID(), "Dana Client", kernel.RoleCustomer)
	suite.Require().NoError(err)

	address, err := kernel.NewAddress("Via Roma 12", "Milano")
	suite.Require().NoError(err)

	details, err := order.NewDetails(address, suite.now.AddDate(0, 0, 10), "19:30", decimal.NewFromInt(10), 12, loaned)
	suite.Require().NoError(err)

	quote, err := services.NewPricingEngine().Quote(kernel.MustMoney("25.00"), 12, details.DistanceKm(), 10)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), customer, kernel.NewUUID(), details, quote, suite.now)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrderInStatus(loaned bool, status order.Status) *order.Order {
	placed := suite.newOrder(loaned)
	o, err := order.RestoreOrder(
		placed.ID(),
		placed.CustomerID(),
		placed.CustomerName(),
		placed.MenuID(),
		placed.Details(),
		placed.Quote(),
		status,
		suite.now,
		suite.now,
	)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) staff() kernel.Actor {
	actor, err := kernel.NewActor(kernel.NewUUID(), "Eli Staff", kernel.RoleEmployee)
	suite.Require().NoError(err)
	return actor
}

func (suite *OrderRepositoryIntegrationTestSuite) assertCount(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
