package bootstrap

import (
	"context"
	"fmt"
	"time"

	"affiliate-server/internal/config"
	"affiliate-server/internal/observability"
	"affiliate-server/internal/program"
	"affiliate-server/internal/store"

	analyticsHandler "affiliate-server/internal/analytics/handler"
	analyticsProcessor "affiliate-server/internal/analytics/processor"
	"affiliate-server/internal/attribution/cookie"
	attributionProcessor "affiliate-server/internal/attribution/processor"
	clicksHandler "affiliate-server/internal/clicks/handler"
	clicksProcessor "affiliate-server/internal/clicks/processor"
	kafkaClient "affiliate-server/internal/clients/kafka"
	redisClient "affiliate-server/internal/clients/redis"
	commissionProcessor "affiliate-server/internal/commission/processor"
	creatorsHandler "affiliate-server/internal/creators/handler"
	creatorsProcessor "affiliate-server/internal/creators/processor"
	"affiliate-server/internal/jobs/scheduler"
	"affiliate-server/internal/jobs/scheduler/jobs"
	ordersConsumer "affiliate-server/internal/orders/consumer"
	ordersHandler "affiliate-server/internal/orders/handler"
	payoutsHandler "affiliate-server/internal/payouts/handler"
	payoutsProcessor "affiliate-server/internal/payouts/processor"
	sweepsHandler "affiliate-server/internal/sweeps/handler"
	sweepsProcessor "affiliate-server/internal/sweeps/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store   store.Store
	Program *program.Program
	Logger  *observability.Logger

	// Handlers
	ClicksHandler    clicksHandler.Handler
	CreatorsHandler  creatorsHandler.Handler
	OrdersHandler    ordersHandler.Handler
	AnalyticsHandler analyticsHandler.Handler
	PayoutsHandler   payoutsHandler.Handler
	SweepsHandler    sweepsHandler.Handler

	// Background work
	Scheduler     *scheduler.Scheduler
	OrderConsumer ordersConsumer.OrderConsumer

	// Clients (for cleanup)
	RedisClient   *redisClient.Client
	KafkaConsumer *kafkaClient.Consumer
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Parse program policy (tier schedule, windows, payout floor)
	deps.Program, err = program.New(cfg.Program)
	if err != nil {
		return nil, fmt.Errorf("failed to load program policy: %w", err)
	}

	// Initialize clients
	deps.RedisClient, err = redisClient.NewClient(ctx, cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	deps.KafkaConsumer = kafkaClient.NewConsumer(cfg.Kafka, logger)

	// Attribution cookie codec shared by clicks and attribution
	codec := cookie.NewCodec(cfg.Program.CookieSecret, deps.Program.AttributionWindow)

	// Initialize clicks processor and handler
	clicksProc := clicksProcessor.New(&deps.Store, deps.RedisClient, codec, deps.Program, logger)
	deps.ClicksHandler = clicksHandler.New(clicksProc, logger, cfg.Server.WebAppURI,
		cfg.Program.AttributionCookieName, cfg.Program.SessionCookieName, codec.TTL())

	// Initialize attribution and commission processors
	attributionProc := attributionProcessor.New(&deps.Store, codec, deps.Program, logger)
	commissionProc := commissionProcessor.New(&deps.Store, deps.Program, logger)
	deps.OrdersHandler = ordersHandler.New(attributionProc, commissionProc, logger)

	// Initialize creators processor and handler
	creatorsProc := creatorsProcessor.New(&deps.Store, logger)
	deps.CreatorsHandler = creatorsHandler.New(creatorsProc, logger)

	// Initialize payouts processor and handler
	payoutsProc := payoutsProcessor.New(&deps.Store, deps.Program, logger)
	deps.PayoutsHandler = payoutsHandler.New(payoutsProc, logger)

	// Initialize analytics processor and handler
	analyticsProc := analyticsProcessor.New(&deps.Store, logger)
	deps.AnalyticsHandler = analyticsHandler.New(analyticsProc, payoutsProc, logger)

	// Initialize sweeps processor and handler
	sweepsProc := sweepsProcessor.New(&deps.Store, deps.Program, logger)
	deps.SweepsHandler = sweepsHandler.New(sweepsProc, logger)

	// Initialize order event consumer
	deps.OrderConsumer = ordersConsumer.New(deps.KafkaConsumer, attributionProc, commissionProc, logger)

	// Initialize scheduled sweeps
	deps.Scheduler = scheduler.New(logger)
	deps.Scheduler.Register(jobs.NewApprovalSweepJob(sweepsProc, logger, 1*time.Hour))
	deps.Scheduler.Register(jobs.NewTierRecomputeJob(sweepsProc, logger, 24*time.Hour))
	deps.Scheduler.Register(jobs.NewPayoutBatchJob(payoutsProc, logger, 24*time.Hour))

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.RedisClient != nil {
		d.RedisClient.Close()
	}
	if d.KafkaConsumer != nil {
		d.KafkaConsumer.Close()
	}
}
