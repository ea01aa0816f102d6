package cmd

import (
	"log/slog"

	inkafka "ordering/internal/adapters/in/kafka"
	outkafka "ordering/internal/adapters/out/kafka"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	producer   *outkafka.Producer
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		producer:   outkafka.NewProducer([]string{config.KafkaHost}, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		f,
		services.NewOrderLifecycle(),
		c.createPaymentRequestPublisher(),
		c.logger,
	)
}

func (c *CompositionRoot) CreatePaymentResponseCommandHandler() commands.PaymentResponseCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPaymentResponseCommandHandler(
		f,
		services.NewOrderLifecycle(),
		c.createRestaurantApprovalRequestPublisher(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateApprovalResponseCommandHandler() commands.ApprovalResponseCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApprovalResponseCommandHandler(
		f,
		services.NewOrderLifecycle(),
		c.createPaymentRequestPublisher(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStuckCancelingOrdersQueryHandler() queries.GetStuckCancelingOrdersQueryHandler {
	return queries.NewGetStuckCancelingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetStuckCancelingOrdersQueryHandler(), c.logger)
}

func (c *CompositionRoot) CreatePaymentResponseConsumer() *inkafka.PaymentResponseConsumer {
	handler := c.CreatePaymentResponseCommandHandler()
	reader := inkafka.NewReader(
		[]string{c.config.KafkaHost},
		c.config.KafkaPaymentResponseTopic,
		c.config.KafkaConsumerGroup,
	)
	return inkafka.NewPaymentResponseConsumer(reader, &handler, c.logger)
}

func (c *CompositionRoot) CreateRestaurantApprovalResponseConsumer() *inkafka.RestaurantApprovalResponseConsumer {
	handler := c.CreateApprovalResponseCommandHandler()
	reader := inkafka.NewReader(
		[]string{c.config.KafkaHost},
		c.config.KafkaRestaurantApprovalResponseTopic,
		c.config.KafkaConsumerGroup,
	)
	return inkafka.NewRestaurantApprovalResponseConsumer(reader, &handler, c.logger)
}

// Close releases shared infrastructure held by the root.
func (c *CompositionRoot) Close() error {
	return c.producer.Close()
}

func (c *CompositionRoot) createPaymentRequestPublisher() ports.PaymentRequestPublisher {
	return outkafka.NewPaymentRequestKafkaPublisher(
		c.producer,
		c.config.KafkaPaymentRequestTopic,
		c.logger,
	)
}

func (c *CompositionRoot) createRestaurantApprovalRequestPublisher() ports.RestaurantApprovalRequestPublisher {
	return outkafka.NewRestaurantApprovalRequestKafkaPublisher(
		c.producer,
		c.config.KafkaRestaurantApprovalRequestTopic,
		c.logger,
	)
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
