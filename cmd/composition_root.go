package cmd

import (
	"errors"
	"log/slog"

	httpadapter "catering/internal/adapters/in/http"
	"catering/internal/adapters/out/kafka"
	"catering/internal/adapters/out/logsink"
	"catering/internal/adapters/out/postgres"
	"catering/internal/core/application/usecases/commands"
	"catering/internal/core/application/usecases/queries"
	"catering/internal/core/domain/services"
	"catering/internal/core/ports"
	"catering/internal/jobs"
	"catering/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	placement  services.OrderPlacement
	effects    *commands.SideEffects
	metrics    *metrics.Metrics
	logger     *slog.Logger
	closers    []func() error
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	c := &CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		placement:  services.NewOrderPlacement(services.NewPricingEngine()),
		metrics:    m,
		logger:     logger,
	}

	notifier, publisher := c.messaging()
	c.effects = commands.NewSideEffects(notifier, publisher, m, logger)
	return c
}

// messaging picks Kafka when brokers are configured and the log otherwise.
func (c *CompositionRoot) messaging() (ports.Notifier, ports.EventPublisher) {
	brokers := kafka.ParseBrokers(c.configs.KafkaBrokers)
	if len(brokers) == 0 {
		c.logger.Warn("KAFKA_BROKERS is empty, order events and notifications go to the log")
		sink := logsink.New(c.logger)
		return sink, sink
	}

	settings := kafka.DefaultBreakerSettings()
	publisher := kafka.NewEventPublisher(
		kafka.NewWriter(brokers, c.configs.KafkaOrderEventsTopic),
		c.configs.KafkaOrderEventsTopic, settings, c.metrics, c.logger,
	)
	notifier := kafka.NewNotifier(
		kafka.NewWriter(brokers, c.configs.KafkaNotificationsTopic),
		c.configs.KafkaNotificationsTopic, settings, c.metrics, c.logger,
	)
	c.closers = append(c.closers, publisher.Close, notifier.Close)

	return notifier, publisher
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoW() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.uow(), c.placement, c.effects)
	return &h
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() *commands.UpdateOrderCommandHandler {
	h := commands.NewUpdateOrderCommandHandler(c.uow(), c.placement, c.effects)
	return &h
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() *commands.ChangeOrderStatusCommandHandler {
	h := commands.NewChangeOrderStatusCommandHandler(c.orderUoW(), c.effects)
	return &h
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() *commands.CancelOrderCommandHandler {
	h := commands.NewCancelOrderCommandHandler(c.uow(), c.effects)
	return &h
}

func (c *CompositionRoot) CreateSendReturnRemindersCommandHandler() *commands.SendReturnRemindersCommandHandler {
	h := commands.NewSendReturnRemindersCommandHandler(c.orderUoW(), c.effects, c.logger)
	return &h
}

func (c *CompositionRoot) CreateListMyOrdersQueryHandler() queries.ListMyOrdersQueryHandler {
	return queries.NewListMyOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDetailQueryHandler() queries.GetOrderDetailQueryHandler {
	return queries.NewGetOrderDetailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrder:       c.CreateUpdateOrderCommandHandler(),
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		CancelOrder:       c.CreateCancelOrderCommandHandler(),
		ListMyOrders:      c.CreateListMyOrdersQueryHandler(),
		ListOrders:        c.CreateListOrdersQueryHandler(),
		GetOrderDetail:    c.CreateGetOrderDetailQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateSendReturnRemindersCommandHandler(), c.configs.ReminderCron, c.logger)
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

// Close flushes and closes the Kafka writers.
func (c *CompositionRoot) Close() error {
	var err error
	for _, closeFn := range c.closers {
		err = errors.Join(err, closeFn())
	}
	return err
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
