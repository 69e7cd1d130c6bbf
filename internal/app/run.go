package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/virtlabs/labnet/internal/auth"
	appdb "github.com/virtlabs/labnet/internal/db"
	"github.com/virtlabs/labnet/internal/domain"
	apihttp "github.com/virtlabs/labnet/internal/http"
)

type Config struct {
	Port         string
	DSN          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	AuthEnabled  bool
	AuthIssuer   string
	AuthJWKSURL  string
	AuthAudience string
}

func LoadConfig() Config {
	cfg := Config{
		DSN:          os.Getenv("DB_CONN"),
		Port:         os.Getenv("PORT"),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		AuthEnabled:  os.Getenv("AUTH_ENABLED") == "true",
		AuthIssuer:   os.Getenv("AUTH_ISSUER"),
		AuthJWKSURL:  os.Getenv("AUTH_JWKS_URL"),
		AuthAudience: os.Getenv("AUTH_AUDIENCE"),
	}

	if cfg.DSN == "" {
		log.Fatal("missing required environment variable: DB_CONN")
	}
	if cfg.Port == "" {
		cfg.Port = "4040"
	}
	return cfg
}

func newAuthenticator(ctx context.Context, cfg Config) (auth.Authenticator, error) {
	return auth.NewKeycloakAuthenticator(ctx, auth.Config{
		Enabled:  cfg.AuthEnabled,
		Issuer:   cfg.AuthIssuer,
		JWKSURL:  cfg.AuthJWKSURL,
		Audience: cfg.AuthAudience,
	})
}

// Serve wires the database, services and router onto an existing
// listener and blocks until ctx is cancelled.
func Serve(ctx context.Context, cfg Config, listener net.Listener) error {
	logger := slog.Default()

	pool, err := appdb.NewPool(ctx, cfg.DSN)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()

	authenticator, err := newAuthenticator(ctx, cfg)
	if err != nil {
		return fmt.Errorf("configuring auth: %w", err)
	}

	environmentRepo := appdb.NewEnvironmentRepository(pool)
	poolRepo := appdb.NewPoolRepository(pool)
	addressRepo := appdb.NewAddressRepository(pool)

	poolService := domain.NewLoggingPoolService(logger, domain.NewPoolService(poolRepo, addressRepo))
	environmentService := domain.NewEnvironmentService(environmentRepo, poolService)

	api := apihttp.NewAPI(logger, pool, environmentService, poolService, authenticator)

	server := &http.Server{
		Handler:      api.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("serving api", "addr", listener.Addr().String())
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("serve failed", "err", err)
		}
	}()

	<-ctx.Done()

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

func Run(ctx context.Context, cfg Config) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Port))
	if err != nil {
		return fmt.Errorf("listening on port %s: %w", cfg.Port, err)
	}
	return Serve(ctx, cfg, listener)
}
