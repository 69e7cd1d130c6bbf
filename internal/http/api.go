package http

import (
	"context"
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/virtlabs/labnet/internal/auth"
	"github.com/virtlabs/labnet/internal/domain"
)

// HealthChecker is what readyz needs from the database; *pgxpool.Pool
// satisfies it.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type API struct {
	Logger        *slog.Logger
	DB            HealthChecker
	Environments  domain.EnvironmentService
	Pools         domain.PoolService
	authenticator auth.Authenticator
}

func NewAPI(logger *slog.Logger, db HealthChecker, environments domain.EnvironmentService, pools domain.PoolService, authenticator auth.Authenticator) *API {
	return &API{
		Logger:        logger,
		DB:            db,
		Environments:  environments,
		Pools:         pools,
		authenticator: authenticator,
	}
}

func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", a.handleHealthz)
	mux.HandleFunc("GET /readyz", a.handleReadyz)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	mux.HandleFunc("GET /api/v1/environments", a.handleListEnvironments)
	mux.HandleFunc("POST /api/v1/environments", a.handleCreateEnvironment)
	mux.HandleFunc("GET /api/v1/environments/{id}", a.handleGetEnvironment)
	mux.HandleFunc("DELETE /api/v1/environments/{id}", a.handleEraseEnvironment)
	mux.HandleFunc("GET /api/v1/environments/{id}/pools", a.handleListPools)
	mux.HandleFunc("POST /api/v1/environments/{id}/pools", a.handleCreatePool)

	mux.HandleFunc("GET /api/v1/pools/{id}", a.handleGetPool)
	mux.HandleFunc("DELETE /api/v1/pools/{id}", a.handleDeletePool)
	mux.HandleFunc("GET /api/v1/pools/{id}/reserved/{name}", a.handleGetReserved)
	mux.HandleFunc("GET /api/v1/pools/{id}/gateway", a.handleGetGateway)
	mux.HandleFunc("POST /api/v1/pools/{id}/ranges", a.handleSetRange)
	mux.HandleFunc("GET /api/v1/pools/{id}/ranges/{name}", a.handleGetRange)
	mux.HandleFunc("GET /api/v1/pools/{id}/addresses", a.handleListAddresses)
	mux.HandleFunc("POST /api/v1/pools/{id}/addresses", a.handleAllocateAddress)

	mux.HandleFunc("DELETE /api/v1/interfaces/{id}/addresses", a.handleReleaseInterface)

	return a.authMiddleware(mux)
}
