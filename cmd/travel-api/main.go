// README: Entry point; loads config, wires the query store and upstream model, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"travelrelay/internal/config"
	httptransport "travelrelay/internal/http"
	"travelrelay/internal/infra"
	"travelrelay/internal/modules/completion"
	"travelrelay/internal/modules/query"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := infra.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("travel api stopped")
		stop()
		os.Exit(1)
	}
}

// run owns every resource it opens, so its deferred closers run on both
// a clean shutdown and a listener failure.
func run(ctx context.Context, cfg config.Config, log zerolog.Logger) error {
	if cfg.LLM.Provider == config.ProviderOpenRouter && cfg.LLM.APIKey == "" {
		log.Warn().Msg("OPENROUTER_API_KEY is empty; upstream calls will be rejected")
	}

	llm, closeLLM, err := completion.New(ctx, cfg.LLM)
	if err != nil {
		return fmt.Errorf("llm init: %w", err)
	}
	defer closeLLM()

	store, closeStore, err := newStore(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("store init (%s): %w", cfg.Store.Backend, err)
	}
	defer closeStore()

	querySvc := query.NewService(store, llm, log)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Queries:       querySvc,
		AdminUser:     cfg.Admin.Username,
		AdminPassword: cfg.Admin.Password,
		Log:           log,
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info().Str("addr", cfg.HTTP.Addr).Str("store", cfg.Store.Backend).Str("llm", cfg.LLM.Provider).
		Str("gin_mode", gin.Mode()).Msg("travel api listening")
	return serve(ctx, server, log)
}

// serve runs server until ctx is done or the listener fails. A listener
// error is returned; cancellation shuts the server down gracefully.
func serve(ctx context.Context, server *http.Server, log zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listen: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func newStore(ctx context.Context, cfg config.Config, log zerolog.Logger) (query.Store, func(), error) {
	switch cfg.Store.Backend {
	case config.StoreMemory, "":
		return query.NewMemoryStore(), func() {}, nil
	case config.StoreRedis:
		client, err := infra.NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			return nil, nil, err
		}
		return query.NewRedisStore(client), closeWith(log, "redis", client), nil
	case config.StorePostgres:
		db, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			return nil, nil, err
		}
		return query.NewSQLStore(db), closeWith(log, "postgres", db), nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

type closer interface{ Close() error }

func closeWith(log zerolog.Logger, name string, c closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			log.Warn().Err(err).Str("resource", name).Msg("close")
		}
	}
}
