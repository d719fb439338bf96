//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"herbmart/internal/handlers/kafka-consumer/order_checkout"
	"herbmart/internal/handlers/rest/admin_deliveries_get"
	"herbmart/internal/handlers/rest/admin_orders_get"
	"herbmart/internal/handlers/rest/assign_delivery_post"
	"herbmart/internal/handlers/rest/auto_assign_post"
	"herbmart/internal/handlers/rest/availability_put"
	"herbmart/internal/handlers/rest/available_orders_get"
	"herbmart/internal/handlers/rest/delivery_orders_get"
	"herbmart/internal/handlers/rest/delivery_status_put"
	"herbmart/internal/handlers/rest/leave_delete"
	"herbmart/internal/handlers/rest/leave_post"
	"herbmart/internal/handlers/rest/leaves_get"
	"herbmart/internal/handlers/rest/location_put"
	"herbmart/internal/handlers/rest/my_orders_get"
	"herbmart/internal/handlers/rest/nearest_deliveries_get"
	"herbmart/internal/handlers/rest/order_approve_patch"
	"herbmart/internal/handlers/rest/order_cancel_patch"
	"herbmart/internal/handlers/rest/order_claim_post"
	"herbmart/internal/handlers/rest/profile_get"
	"herbmart/internal/handlers/rest/profile_put"
	"herbmart/internal/handlers/tasks/assignment_release"
	"herbmart/internal/pkg/config"
	"herbmart/internal/pkg/factory/tracking_number"

	agentRepo "herbmart/internal/repository/agent"
	leaveRepo "herbmart/internal/repository/leave"
	orderRepo "herbmart/internal/repository/order"
	agentService "herbmart/internal/service/agent"
	assignmentService "herbmart/internal/service/assignment"
	leaveService "herbmart/internal/service/leave"
	orderService "herbmart/internal/service/order"

	"herbmart/pkg/background"
	"herbmart/pkg/logger"
	"herbmart/pkg/querier"
	"herbmart/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	ReleaseInterval time.Duration
	StaleAfter      time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceAssignment ServiceAssignment
	ServiceAgent      ServiceAgent
	ServiceLeave      ServiceLeave
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	my_orders_get.Service
	order_cancel_patch.Service
	admin_orders_get.Service
	order_approve_patch.Service
}

type ServiceAssignment interface {
	assign_delivery_post.Service
	auto_assign_post.Service
	nearest_deliveries_get.Service
	delivery_orders_get.Service
	available_orders_get.Service
	order_claim_post.Service
	delivery_status_put.Service
}

type ServiceAgent interface {
	admin_deliveries_get.Service
	profile_get.Service
	profile_put.Service
	location_put.Service
	availability_put.Service
}

type ServiceLeave interface {
	leaves_get.Service
	leave_post.Service
	leave_delete.Service
}

// InitializeApplication builds the HTTP service object graph (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideReleaseInterval,
		provideStaleAfter,

		provideOrderRepository,
		provideAgentRepository,
		provideLeaveRepository,

		provideServiceOrder,
		provideServiceAgent,
		provideServiceAssignment,
		provideServiceLeave,
		tracking_number.New,

		provideAssignmentReleaseTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Assignment)),
		wire.Bind(new(ServiceAgent), new(*agentService.Agent)),
		wire.Bind(new(ServiceLeave), new(*leaveService.Leave)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(assignmentService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(agentService.Repository), new(*agentRepo.Repository)),
		wire.Bind(new(leaveService.Repository), new(*leaveRepo.Repository)),

		wire.Bind(new(assignmentService.AgentService), new(*agentService.Agent)),
		wire.Bind(new(leaveService.AgentService), new(*agentService.Agent)),
		wire.Bind(new(assignmentService.TrackingFactory), new(*tracking_number.TrackingFactory)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(agentService.TxManager), new(*tx.Manager)),
		wire.Bind(new(leaveService.TxManager), new(*tx.Manager)),

		wire.Bind(new(assignment_release.Service), new(*assignmentService.Assignment)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService OrderIngest
}

type OrderIngest interface {
	order_checkout.Service
}

// InitializeKafkaWorkerApp builds the checkout ingestion graph
// (cmd/worker-order-checkout).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideServiceOrder,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(OrderIngest), new(*orderService.Order)),

		wire.Struct(new(KafkaWorkerApp), "*"),
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

func provideAgentRepository(querier *querier.Querier) *agentRepo.Repository {
	return agentRepo.New(querier)
}

func provideLeaveRepository(querier *querier.Querier) *leaveRepo.Repository {
	return leaveRepo.New(querier)
}

func provideServiceOrder(
	repository orderService.Repository,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(repository, txManager)
}

func provideServiceAgent(
	repository agentService.Repository,
	txManager agentService.TxManager,
) *agentService.Agent {
	return agentService.New(repository, txManager)
}

func provideServiceAssignment(
	repository assignmentService.Repository,
	agentSvc assignmentService.AgentService,
	trackingFactory assignmentService.TrackingFactory,
	txManager assignmentService.TxManager,
	staleAfter StaleAfter,
) *assignmentService.Assignment {
	return assignmentService.New(
		repository,
		agentSvc,
		trackingFactory,
		txManager,
		time.Duration(staleAfter),
	)
}

func provideServiceLeave(
	repository leaveService.Repository,
	agentSvc leaveService.AgentService,
	txManager leaveService.TxManager,
) *leaveService.Leave {
	return leaveService.New(repository, agentSvc, txManager)
}

func provideReleaseInterval(cfg *config.Config) ReleaseInterval {
	return ReleaseInterval(cfg.Tasks.AssignmentReleaseInterval)
}

func provideStaleAfter(cfg *config.Config) StaleAfter {
	return StaleAfter(cfg.Tasks.AssignmentStaleAfter)
}

func provideAssignmentReleaseTask(
	log logger.Logger,
	assignmentSvc assignment_release.Service,
	interval ReleaseInterval,
) *assignment_release.AssignmentRelease {
	return assignment_release.NewAssignmentRelease(log, assignmentSvc, time.Duration(interval))
}

func provideTaskList(
	assignmentReleaseTask *assignment_release.AssignmentRelease,
) []background.Task {
	return []background.Task{
		assignmentReleaseTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
