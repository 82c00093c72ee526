package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"copper_shop/internal/config"
	"copper_shop/internal/handlers"
	"copper_shop/internal/logger"
	"copper_shop/internal/repository"
	"copper_shop/internal/repository/db"
	"copper_shop/internal/server"
	"copper_shop/internal/service"
	"copper_shop/internal/session"
	"copper_shop/migrations"
)

const sessionSweepTick = time.Minute

func main() {
	// Required configuration (store parameters, session secret) is
	// validated here; the process refuses to start without it.
	cfg, err := config.Load()
	if err != nil {
		logger.Get("info").Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.LogLevel)

	// open the credential store (pooled, concurrency-safe)
	store, err := openStore(cfg, log)
	if err != nil {
		log.Fatalw("failed to open store", "driver", cfg.DB.Driver, "err", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			log.Errorw("failed to close store", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(store)
	services := service.NewService(repos, cfg.DB.QueryTimeout)
	sessions := session.NewManager(session.NewMemoryStore(), cfg.Session.Secret, cfg.Session.TTL)
	apiHandler := handlers.NewHandler(services, sessions, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// sweep expired sessions in the background
	go sessions.Run(ctx, sessionSweepTick)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

// openStore connects to the configured database and applies pending
// migrations before the server accepts traffic.
func openStore(cfg *config.Config, log *logger.Logger) (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := db.Open(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := migrations.Migrate(store, cfg.DB.Driver); err != nil {
		_ = store.Close()
		return nil, err
	}
	log.Infow("store ready", "driver", cfg.DB.Driver)
	return store, nil
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("server starting", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
