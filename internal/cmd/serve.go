package cmd

import (
	"context"
	"net/http"
	"time"

	"github.com/fulmenhq/gofulmen/signals"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/namewastaken/namewastaken/internal/core/engine"
	"github.com/namewastaken/namewastaken/internal/core/store"
	errwrap "github.com/namewastaken/namewastaken/internal/errors"
	"github.com/namewastaken/namewastaken/internal/observability"
	"github.com/namewastaken/namewastaken/internal/server"
)

var (
	serverPort int
	serverHost string
)

// storeHealthChecker pings the verdict cache database.
type storeHealthChecker struct {
	db *store.Store
}

func (s storeHealthChecker) CheckHealth(ctx context.Context) error {
	if s.db == nil || s.db.DB == nil {
		return errwrap.NewDatabaseError("verdict cache store not initialized")
	}
	if err := s.db.DB.PingContext(ctx); err != nil {
		return errwrap.WrapDatabaseError(ctx, err, "verdict cache ping failed")
	}
	return nil
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server with graceful shutdown support.

Signal Handling:
  • Ctrl+C (SIGINT) or SIGTERM: Graceful shutdown
  • Ctrl+C twice within 2s: Force quit

The server will cleanly shut down the HTTP server and flush logs on shutdown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		observability.InitServerLogger("namewastaken", appCfg.Logging.Level)

		cfg := appCfg.Server
		if cmd.Flags().Changed("host") {
			cfg.Host = serverHost
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = serverPort
		}

		observability.ServerLogger.Info("Initializing server",
			zap.String("version", versionInfo.Version),
			zap.String("host", cfg.Host),
			zap.Int("port", cfg.Port),
			zap.Bool("cache_enabled", appCfg.Cache.Enabled))

		ctx := cmd.Context()
		eng, db := buildEngineForServer(ctx)

		srv := server.New(cfg, eng, appCfg.Cache.Enabled && db != nil, versionInfo.Version)
		if db != nil {
			srv.RegisterHealthChecker("store", storeHealthChecker{db: db})
		}

		shutdownTimeout := cfg.ShutdownTimeout
		if shutdownTimeout == 0 {
			shutdownTimeout = 10 * time.Second
		}

		// Shutdown handlers run LIFO: server first, then store, then logs.
		signals.OnShutdown(func(ctx context.Context) error {
			observability.ServerLogger.Info("Flushing logger...")
			if err := observability.ServerLogger.Sync(); err != nil {
				observability.ServerLogger.Warn("Logger sync returned error (may be benign)",
					zap.Error(err))
			}
			return nil
		})

		if db != nil {
			signals.OnShutdown(func(ctx context.Context) error {
				observability.ServerLogger.Info("Closing verdict cache store...")
				return db.Close()
			})
		}

		signals.OnShutdown(func(ctx context.Context) error {
			observability.ServerLogger.Info("Shutting down HTTP server...")
			shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				return errwrap.WrapInternal(ctx, err, "server shutdown failed")
			}

			observability.ServerLogger.Info("HTTP server stopped gracefully")
			return nil
		})

		if err := signals.EnableDoubleTap(signals.DoubleTapConfig{
			Window:  2 * time.Second,
			Message: "Press Ctrl+C again within 2 seconds to force quit",
		}); err != nil {
			observability.ServerLogger.Warn("Failed to enable double-tap force quit",
				zap.Error(err))
		}

		errChan := make(chan error, 1)
		go func() {
			if err := srv.Start(); err != nil && err != http.ErrServerClosed {
				errChan <- err
			}
		}()

		go func() {
			if err := signals.Listen(ctx); err != nil {
				observability.ServerLogger.Error("Signal handler error", zap.Error(err))
				errChan <- err
			}
		}()

		if err := <-errChan; err != nil {
			return errwrap.WrapInternal(ctx, err, "server error")
		}

		return nil
	},
}

// buildEngineForServer mirrors buildEngine but logs through the server
// logger.
func buildEngineForServer(ctx context.Context) (*engine.Orchestrator, *store.Store) {
	eng, db := buildEngine(ctx)
	if db != nil {
		if verdicts, ok := eng.Cache.(*store.Verdicts); ok {
			verdicts.Logger = observability.ServerLogger
		}
	}
	return eng, db
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "127.0.0.1", "server host")
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "server port")
}
