// Package app wires configuration, storage, services, and the HTTP
// transport into a runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/notekeep-backend/internal/adapter/postgres"
	noterepo "github.com/heartmarshall/notekeep-backend/internal/adapter/postgres/note"
	tokenrepo "github.com/heartmarshall/notekeep-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/notekeep-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/notekeep-backend/internal/auth"
	"github.com/heartmarshall/notekeep-backend/internal/config"
	authsvc "github.com/heartmarshall/notekeep-backend/internal/service/auth"
	notesvc "github.com/heartmarshall/notekeep-backend/internal/service/note"
	"github.com/heartmarshall/notekeep-backend/internal/transport/middleware"
	"github.com/heartmarshall/notekeep-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, runs migrations, builds the service graph, and serves HTTP
// until ctx is cancelled. Shutdown is graceful within the configured
// timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(cfg.Database); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	notes := noterepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, tokens, txManager, jwtManager, cfg.Auth)
	noteService := notesvc.NewService(logger, notes)

	noteHandler := rest.NewNoteHandler(noteService, logger)
	authHandler := rest.NewAuthHandler(authService, logger, cfg.Auth.AccessTokenTTL)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())

	router := rest.NewRouter(noteHandler, authHandler, healthHandler)

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}

	var rl *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rl = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer rl.Stop()
		mws = append(mws, rl.Limit(cfg.RateLimit.PerMinute))
	}

	mws = append(mws, middleware.Auth(authService))

	handler := middleware.Chain(mws...)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	return nil
}
