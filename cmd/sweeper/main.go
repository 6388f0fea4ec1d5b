// Command sweeper runs the approval and tier sweeps once and exits. It is
// intended for cron-style deployments where the long-running scheduler inside
// the server is disabled, and for manual catch-up runs.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"affiliate-server/internal/config"
	"affiliate-server/internal/observability"
	"affiliate-server/internal/program"
	payoutsProcessor "affiliate-server/internal/payouts/processor"
	"affiliate-server/internal/store"
	sweepsProcessor "affiliate-server/internal/sweeps/processor"
)

func main() {
	runPayouts := flag.Bool("payouts", false, "also settle approved balances into payouts")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	logger := observability.NewLogger()

	dataStore, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		logger.Fatal(ctx, "failed to connect to database", err)
	}

	prog, err := program.New(cfg.Program)
	if err != nil {
		logger.Fatal(ctx, "failed to load program policy", err)
	}

	sweeps := sweepsProcessor.New(&dataStore, prog, logger)

	approved, err := sweeps.ApproveMatured(ctx)
	if err != nil {
		logger.Fatal(ctx, "approval sweep failed", err)
	}
	logger.Info(ctx, fmt.Sprintf("approval sweep: %d entries approved", approved))

	changes, err := sweeps.RecomputeTiers(ctx)
	if err != nil {
		logger.Fatal(ctx, "tier recompute failed", err)
	}
	logger.Info(ctx, fmt.Sprintf("tier recompute: %d creators moved", len(changes)))

	if !*runPayouts {
		return
	}

	payouts := payoutsProcessor.New(&dataStore, prog, logger)

	now := time.Now().UTC()
	periodEnd := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	periodStart := periodEnd.AddDate(0, -1, 0)

	result, err := payouts.RunBatch(ctx, periodStart, periodEnd)
	if err != nil {
		logger.Fatal(ctx, "payout batch failed", err)
	}
	logger.Info(ctx, fmt.Sprintf("payout batch: %d payouts created (%s total), %d skipped, %d failed",
		result.Summary.PayoutsCreated,
		result.Summary.TotalPaid.StringFixed(2),
		result.Summary.Skipped,
		result.Summary.Failed))
}
