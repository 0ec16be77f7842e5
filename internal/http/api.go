package http

import (
	"context"
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Flarenzy/subnetter/internal/auth"
	"github.com/Flarenzy/subnetter/internal/domain"
)

// maxBodyBytes bounds request payloads; partition requests are tiny.
const maxBodyBytes = 1 << 20

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type API struct {
	Logger        *slog.Logger
	Health        HealthChecker
	Service       domain.PartitionService
	Authenticator auth.Authenticator
}

func NewAPI(logger *slog.Logger, health HealthChecker, service domain.PartitionService, authenticator auth.Authenticator) *API {
	if logger == nil {
		logger = slog.Default()
	}
	return &API{
		Logger:        logger,
		Health:        health,
		Service:       service,
		Authenticator: authenticator,
	}
}

func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", a.handleHealthz)
	mux.HandleFunc("GET /readyz", a.handleReadyz)
	mux.HandleFunc("POST /api/v1/partitions", a.handleCreatePartition)
	mux.HandleFunc("POST /api/v1/partitions/locate", a.handleLocate)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return a.authMiddleware(mux)
}
