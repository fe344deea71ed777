package cmd

import (
	"context"

	"go.uber.org/zap"

	"github.com/namewastaken/namewastaken/internal/core/checker"
	"github.com/namewastaken/namewastaken/internal/core/engine"
	"github.com/namewastaken/namewastaken/internal/core/store"
	"github.com/namewastaken/namewastaken/internal/observability"
)

// openStore opens and migrates the verdict cache database.
func openStore(ctx context.Context) (*store.Store, error) {
	db, err := store.Open(ctx, appCfg.Store)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// buildEngine assembles the check engine. Cache trouble degrades to
// direct checks; the caller must Close the returned store when non-nil.
func buildEngine(ctx context.Context) (*engine.Orchestrator, *store.Store) {
	retries := appCfg.Check.MaxRetries
	if retries <= 0 {
		// Config zero is explicit (defaults fill in 3): retries off.
		retries = checker.NoRetries
	}

	eng := &engine.Orchestrator{
		Retry: &checker.RetryPolicy{
			MaxRetries: retries,
			BaseDelay:  appCfg.Check.RetryBaseDelay,
		},
	}

	if !appCfg.Cache.Enabled {
		return eng, nil
	}

	db, err := openStore(ctx)
	if err != nil {
		observability.CLILogger.Debug("Verdict cache unavailable, checking without cache",
			zap.Error(err))
		return eng, nil
	}

	eng.Cache = &store.Verdicts{
		Store:  db,
		TTL:    appCfg.Cache.TTL,
		Logger: observability.CLILogger,
	}
	return eng, db
}
