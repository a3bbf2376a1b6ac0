//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"parcelservice/internal/gateway/geocode"
	agent_delete "parcelservice/internal/handlers/rest/agent_delete"
	agent_post "parcelservice/internal/handlers/rest/agent_post"
	agents_get "parcelservice/internal/handlers/rest/agents_get"
	parcel_patch "parcelservice/internal/handlers/rest/parcel_patch"
	parcel_post "parcelservice/internal/handlers/rest/parcel_post"
	parcels_assigned_get "parcelservice/internal/handlers/rest/parcels_assigned_get"
	parcels_get "parcelservice/internal/handlers/rest/parcels_get"
	update_status_post "parcelservice/internal/handlers/rest/update_status_post"
	user_post "parcelservice/internal/handlers/rest/user_post"
	user_role_get "parcelservice/internal/handlers/rest/user_role_get"
	user_role_patch "parcelservice/internal/handlers/rest/user_role_patch"
	users_get "parcelservice/internal/handlers/rest/users_get"
	"parcelservice/internal/handlers/tasks/availability_reconcile"
	"parcelservice/internal/pkg/config"
	"parcelservice/internal/pkg/kafka"
	"parcelservice/internal/pkg/ws"

	agentRepo "parcelservice/internal/repository/agent"
	parcelRepo "parcelservice/internal/repository/parcel"
	userRepo "parcelservice/internal/repository/user"
	agentService "parcelservice/internal/service/agent"
	"parcelservice/internal/service/notification"
	parcelService "parcelservice/internal/service/parcel"
	userService "parcelservice/internal/service/user"

	"parcelservice/pkg/background"
	"parcelservice/pkg/logger"
	"parcelservice/pkg/querier"
	"parcelservice/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	ReconcileInterval time.Duration
)

type Application struct {
	ServiceParcel       ServiceParcel
	ServiceAgent        ServiceAgent
	ServiceUser         ServiceUser
	ServiceNotification ServiceNotification
	BackgroundWorkers   *background.Worker
}

type ServiceParcel interface {
	parcel_post.Service
	parcel_patch.Service
	update_status_post.Service
	parcels_get.Service
	parcels_assigned_get.Service
}

type ServiceAgent interface {
	agent_post.Service
	agents_get.Service
	agent_delete.Service
	user_role_patch.AgentDirectory
}

type ServiceUser interface {
	user_post.Service
	users_get.Service
	user_role_get.Service
	user_role_patch.Service
}

type ServiceNotification interface {
	update_status_post.Broadcaster
}

// InitializeApplication builds the object graph for the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	hub *ws.Hub,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideReconcileInterval,

		provideParcelRepository,
		provideAgentRepository,
		provideUserRepository,

		provideGeocoder,
		provideNotifier,

		provideServiceParcel,
		provideServiceAgent,
		provideServiceUser,

		provideAvailabilityReconcileTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceParcel), new(*parcelService.Parcel)),
		wire.Bind(new(ServiceAgent), new(*agentService.Agent)),
		wire.Bind(new(ServiceUser), new(*userService.User)),
		wire.Bind(new(ServiceNotification), new(*notification.Dispatcher)),

		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(parcelService.AgentDirectory), new(*agentService.Agent)),
		wire.Bind(new(parcelService.Geocoder), new(*geocode.Client)),
		wire.Bind(new(parcelService.Notifier), new(*notification.Dispatcher)),
		wire.Bind(new(agentService.Repository), new(*agentRepo.Repository)),
		wire.Bind(new(userService.Repository), new(*userRepo.Repository)),

		wire.Bind(new(notification.EventProducer), new(*kafka.Producer)),
		wire.Bind(new(notification.Broadcaster), new(*ws.Hub)),

		wire.Bind(new(parcelService.TxManager), new(*tx.Manager)),
		wire.Bind(new(agentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(availability_reconcile.Service), new(*agentService.Agent)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideParcelRepository(querier *querier.Querier) *parcelRepo.Repository {
	return parcelRepo.New(querier)
}

func provideAgentRepository(querier *querier.Querier) *agentRepo.Repository {
	return agentRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideGeocoder(cfg *config.Config) *geocode.Client {
	return geocode.New(cfg.Geocoder.BaseURL, cfg.Geocoder.APIKey, cfg.Geocoder.Locality)
}

func provideNotifier(log logger.Logger, producer notification.EventProducer, hub notification.Broadcaster) *notification.Dispatcher {
	return notification.New(log, producer, hub)
}

func provideServiceParcel(
	log logger.Logger,
	repository parcelService.Repository,
	agentDirectory parcelService.AgentDirectory,
	geocoder parcelService.Geocoder,
	notifier parcelService.Notifier,
	txManager parcelService.TxManager,
) *parcelService.Parcel {
	return parcelService.New(log, repository, agentDirectory, geocoder, notifier, txManager)
}

func provideServiceAgent(
	repository agentService.Repository,
	txManager agentService.TxManager,
) *agentService.Agent {
	return agentService.New(repository, txManager)
}

func provideServiceUser(repository userService.Repository) *userService.User {
	return userService.New(repository)
}

func provideReconcileInterval(cfg *config.Config) ReconcileInterval {
	return ReconcileInterval(cfg.Tasks.AvailabilityReconcileInterval)
}

func provideAvailabilityReconcileTask(
	log logger.Logger,
	agentService availability_reconcile.Service,
	interval ReconcileInterval,
) *availability_reconcile.AvailabilityReconcile {
	return availability_reconcile.New(log, agentService, time.Duration(interval))
}

func provideTaskList(
	availabilityReconcileTask *availability_reconcile.AvailabilityReconcile,
) []background.Task {
	return []background.Task{
		availabilityReconcileTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
