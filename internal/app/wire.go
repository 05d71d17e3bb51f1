//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	quote_post "service/internal/handlers/rest/quote_post"
	quotes_get "service/internal/handlers/rest/quotes_get"
	shipments_get "service/internal/handlers/rest/shipments_get"
	voice_post "service/internal/handlers/rest/voice_post"
	"service/internal/handlers/tasks/session_cleanup"
	"service/internal/pkg/config"

	"service/internal/repository/callsession"
	quoteRepo "service/internal/repository/quote"
	shipmentRepo "service/internal/repository/shipment"
	quoteService "service/internal/service/quote"
	ratingService "service/internal/service/rating"
	shipmentService "service/internal/service/shipment"
	voiceService "service/internal/service/voice"

	"service/pkg/background"
	"service/pkg/logger"
	"service/pkg/querier"
	"service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	SessionIdleTTL         time.Duration
	SessionCleanupInterval time.Duration
)

type Application struct {
	ServiceQuote      ServiceQuote
	ServiceShipment   ServiceShipment
	DialogMachine     voice_post.DialogMachine
	BackgroundWorkers *background.Worker
}

type ServiceQuote interface {
	quote_post.Service
	quotes_get.Service
}

type ServiceShipment interface {
	shipments_get.Service
}

// InitializeApplication for the HTTP service (cmd/service)
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
		provideSessionIdleTTL,
		provideSessionCleanupInterval,

		provideQuoteRepository,
		provideShipmentRepository,
		provideSessionStore,

		provideTariff,
		provideRatingEngine,

		provideServiceQuote,
		provideServiceShipment,
		provideVoiceMachine,

		provideSessionCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceQuote), new(*quoteService.Quote)),
		wire.Bind(new(ServiceShipment), new(*shipmentService.Shipment)),
		wire.Bind(new(voice_post.DialogMachine), new(*voiceService.Machine)),

		wire.Bind(new(quoteService.Rater), new(*ratingService.Engine)),
		wire.Bind(new(quoteService.Repository), new(*quoteRepo.Repository)),
		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),

		wire.Bind(new(voiceService.QuoteService), new(*quoteService.Quote)),
		wire.Bind(new(voiceService.ShipmentService), new(*shipmentService.Shipment)),
		wire.Bind(new(voiceService.SessionStore), new(*callsession.Store)),

		wire.Bind(new(quoteService.TxManager), new(*tx.Manager)),
		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(session_cleanup.Store), new(*callsession.Store)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	ShipmentService *shipmentService.Shipment
}

// InitializeKafkaWorkerApp for the TMS feed worker (cmd/worker-shipment-milestone)
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

		provideShipmentRepository,
		provideServiceShipment,

		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),

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

func provideQuoteRepository(querier *querier.Querier) *quoteRepo.Repository {
	return quoteRepo.New(querier)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideSessionStore() *callsession.Store {
	return callsession.New()
}

func provideTariff(cfg *config.Config) (*ratingService.Tariff, error) {
	if cfg.Rating.TariffPath == "" {
		return ratingService.DefaultTariff(), nil
	}
	return ratingService.LoadTariff(cfg.Rating.TariffPath)
}

func provideRatingEngine(tariff *ratingService.Tariff) *ratingService.Engine {
	return ratingService.New(tariff, nil, nil)
}

func provideServiceQuote(
	rater quoteService.Rater,
	repository quoteService.Repository,
	txManager quoteService.TxManager,
) *quoteService.Quote {
	return quoteService.New(rater, repository, txManager)
}

func provideServiceShipment(
	repository shipmentService.Repository,
	txManager shipmentService.TxManager,
) *shipmentService.Shipment {
	return shipmentService.New(repository, txManager)
}

func provideVoiceMachine(
	quotes voiceService.QuoteService,
	shipments voiceService.ShipmentService,
	sessions voiceService.SessionStore,
) *voiceService.Machine {
	return voiceService.New(quotes, shipments, sessions)
}

func provideSessionIdleTTL(cfg *config.Config) SessionIdleTTL {
	return SessionIdleTTL(cfg.Sessions.IdleTTL)
}

func provideSessionCleanupInterval(cfg *config.Config) SessionCleanupInterval {
	return SessionCleanupInterval(cfg.Sessions.CleanupInterval)
}

func provideSessionCleanupTask(
	log logger.Logger,
	store session_cleanup.Store,
	idleTTL SessionIdleTTL,
	interval SessionCleanupInterval,
) *session_cleanup.SessionCleanup {
	return session_cleanup.NewSessionCleanup(log, store, time.Duration(idleTTL), time.Duration(interval))
}

func provideTaskList(
	sessionCleanupTask *session_cleanup.SessionCleanup,
) []background.Task {
	return []background.Task{
		sessionCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
