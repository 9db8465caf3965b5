//go:build wireinject
// +build wireinject

package app

import (
	"context"

	delivery_complete_put "fastfeet/internal/handlers/rest/delivery_complete_put"
	delivery_pickup_post "fastfeet/internal/handlers/rest/delivery_pickup_post"
	deliveries_get "fastfeet/internal/handlers/rest/deliveries_get"
	order_delete "fastfeet/internal/handlers/rest/order_delete"
	order_get "fastfeet/internal/handlers/rest/order_get"
	order_post "fastfeet/internal/handlers/rest/order_post"
	order_problems_get "fastfeet/internal/handlers/rest/order_problems_get"
	order_put "fastfeet/internal/handlers/rest/order_put"
	orders_get "fastfeet/internal/handlers/rest/orders_get"
	problem_delete "fastfeet/internal/handlers/rest/problem_delete"
	problem_post "fastfeet/internal/handlers/rest/problem_post"
	problem_put "fastfeet/internal/handlers/rest/problem_put"
	problems_get "fastfeet/internal/handlers/rest/problems_get"
	"fastfeet/internal/handlers/tasks/outbox_relay"
	"fastfeet/internal/pkg/config"
	"fastfeet/internal/pkg/factory/business_hours"
	"fastfeet/internal/pkg/factory/task_handle"
	"fastfeet/internal/pkg/kafka"
	"fastfeet/internal/pkg/mail"

	courierRepo "fastfeet/internal/repository/courier"
	fileRepo "fastfeet/internal/repository/file"
	orderRepo "fastfeet/internal/repository/order"
	problemRepo "fastfeet/internal/repository/problem"
	recipientRepo "fastfeet/internal/repository/recipient"
	taskRepo "fastfeet/internal/repository/task"
	notificationService "fastfeet/internal/service/notification"
	orderService "fastfeet/internal/service/order"
	problemService "fastfeet/internal/service/problem"
	queueService "fastfeet/internal/service/queue"

	"fastfeet/pkg/background"
	"fastfeet/pkg/clock"
	"fastfeet/pkg/logger"
	"fastfeet/pkg/querier"
	"fastfeet/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceProblem    ServiceProblem
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	orders_get.Service
	order_get.Service
	order_put.Service
	order_delete.Service
	delivery_pickup_post.Service
	delivery_complete_put.Service
	deliveries_get.Service
}

type ServiceProblem interface {
	problems_get.Service
	order_problems_get.Service
	problem_post.Service
	problem_put.Service
	problem_delete.Service
}

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,
	provideTaskRepository,
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		repositorySet,

		provideOrderRepository,
		provideCourierRepository,
		provideRecipientRepository,
		provideFileRepository,
		provideProblemRepository,

		provideClock,
		provideTimeWindow,
		provideQueueService,
		provideServiceOrder,
		provideServiceProblem,

		provideOutboxRelayTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceProblem), new(*problemService.Service)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.CourierRepository), new(*courierRepo.Repository)),
		wire.Bind(new(orderService.RecipientRepository), new(*recipientRepo.Repository)),
		wire.Bind(new(orderService.FileRepository), new(*fileRepo.Repository)),
		wire.Bind(new(orderService.Queue), new(*queueService.Queue)),
		wire.Bind(new(orderService.TimeWindow), new(*business_hours.Policy)),
		wire.Bind(new(orderService.Clock), new(*clock.Clock)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(problemService.Repository), new(*problemRepo.Repository)),
		wire.Bind(new(problemService.OrderService), new(*orderService.Service)),
		wire.Bind(new(problemService.TxManager), new(*tx.Manager)),

		wire.Bind(new(queueService.Repository), new(*taskRepo.Repository)),
		wire.Bind(new(queueService.Publisher), new(*kafka.Producer)),
		wire.Bind(new(queueService.TxManager), new(*tx.Manager)),

		wire.Bind(new(outbox_relay.Service), new(*queueService.Queue)),
	)
	return &Application{}, nil
}

type NotificationWorkerApp struct {
	NotificationService *notificationService.Service
}

// InitializeNotificationWorkerApp для Kafka воркера (cmd/worker-notifications)
func InitializeNotificationWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*NotificationWorkerApp, error) {
	wire.Build(
		repositorySet,

		provideMailClient,
		mail.NewRenderer,
		provideTaskHandlerFactory,
		provideNotificationService,

		wire.Bind(new(notificationService.TaskRepository), new(*taskRepo.Repository)),
		wire.Bind(new(notificationService.HandlerFactory), new(*task_handle.TaskHandlerFactory)),
		wire.Bind(new(task_handle.Mailer), new(*mail.Client)),
		wire.Bind(new(task_handle.Renderer), new(*mail.Renderer)),

		wire.Struct(new(NotificationWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideRecipientRepository(querier *querier.Querier) *recipientRepo.Repository {
	return recipientRepo.New(querier)
}

func provideFileRepository(querier *querier.Querier) *fileRepo.Repository {
	return fileRepo.New(querier)
}

func provideProblemRepository(querier *querier.Querier) *problemRepo.Repository {
	return problemRepo.New(querier)
}

func provideTaskRepository(querier *querier.Querier) *taskRepo.Repository {
	return taskRepo.New(querier)
}

func provideClock(cfg *config.Config) (*clock.Clock, error) {
	return clock.New(cfg.BusinessRules.Timezone)
}

func provideTimeWindow(cfg *config.Config) (*business_hours.Policy, error) {
	return business_hours.New(cfg.BusinessRules.OpenHour, cfg.BusinessRules.CloseHour)
}

func provideQueueService(
	repository queueService.Repository,
	publisher queueService.Publisher,
	txManager queueService.TxManager,
) *queueService.Queue {
	return queueService.New(repository, publisher, txManager)
}

// provideServiceOrder забор заказа идёт на READ COMMITTED, остальное на SERIALIZABLE.
func provideServiceOrder(
	pool *pgxpool.Pool,
	repository orderService.Repository,
	couriers orderService.CourierRepository,
	recipients orderService.RecipientRepository,
	files orderService.FileRepository,
	queue orderService.Queue,
	timeWindow orderService.TimeWindow,
	clock orderService.Clock,
	txManager orderService.TxManager,
	cfg *config.Config,
) *orderService.Service {
	return orderService.New(
		repository,
		couriers,
		recipients,
		files,
		queue,
		timeWindow,
		clock,
		txManager,
		tx.NewWithIsoLevel(pool, pgx.ReadCommitted),
		cfg.BusinessRules.PickupDailyLimit,
	)
}

func provideServiceProblem(
	repository problemService.Repository,
	orders problemService.OrderService,
	txManager problemService.TxManager,
) *problemService.Service {
	return problemService.New(repository, orders, txManager)
}

func provideMailClient(cfg *config.Config) (*mail.Client, error) {
	return mail.NewClient(&cfg.Mail)
}

func provideTaskHandlerFactory(mailer task_handle.Mailer, renderer task_handle.Renderer) *task_handle.TaskHandlerFactory {
	return task_handle.NewTaskHandlerFactory(mailer, renderer)
}

func provideNotificationService(
	log logger.Logger,
	repository notificationService.TaskRepository,
	factory notificationService.HandlerFactory,
) *notificationService.Service {
	return notificationService.New(log, repository, factory)
}

func provideOutboxRelayTask(
	log logger.Logger,
	queue outbox_relay.Service,
	cfg *config.Config,
) *outbox_relay.OutboxRelay {
	return outbox_relay.NewOutboxRelay(log, queue, cfg.Tasks.OutboxRelayInterval, cfg.Tasks.OutboxRelayBatch)
}

func provideTaskList(
	outboxRelayTask *outbox_relay.OutboxRelay,
) []background.Task {
	return []background.Task{
		outboxRelayTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
