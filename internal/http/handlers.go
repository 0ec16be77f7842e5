package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/Flarenzy/subnetter/internal/domain"
)

// @Summary Health check
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// @Summary Readiness check
// @Description Runs a small self-check partition.
// @Tags health
// @Success 200 {string} string "ready"
// @Failure 503 {string} string "self check failed"
// @Router /readyz [get]
func (a *API) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if a.Health != nil {
		if err := a.Health.Ping(ctx); err != nil {
			a.Logger.ErrorContext(ctx, "self check failed", "err", err)
			http.Error(w, "self check failed", http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// @Summary Partition a network
// @Description Splits the base network into the smallest equal subnets holding at least min_hosts usable addresses.
// @Tags partitions
// @Accept json
// @Produce json
// @Produce application/cbor
// @Produce application/yaml
// @Param partition body CreatePartitionRequest true "Partition request"
// @Success 200 {object} PartitionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/partitions [post]
func (a *API) handleCreatePartition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	req, err := decode[CreatePartitionRequest](r)
	if err != nil {
		a.Logger.DebugContext(ctx, "unmarshaling partition request", "err", err.Error())
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	partition, err := a.Service.Partition(ctx, req.toInput())
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	a.respond(w, r, http.StatusOK, partitionToResponse(partition))
}

// @Summary Locate an address
// @Description Returns the subnet of the partition that holds ip.
// @Tags partitions
// @Accept json
// @Produce json
// @Param locate body LocateRequest true "Locate request"
// @Success 200 {object} LocateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/partitions/locate [post]
func (a *API) handleLocate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	req, err := decode[LocateRequest](r)
	if err != nil {
		a.Logger.DebugContext(ctx, "unmarshaling locate request", "err", err.Error())
		a.respond(w, r, http.StatusBadRequest, ErrorResponse{Error: "bad request"})
		return
	}

	loc, err := a.Service.Locate(ctx, req.toInput())
	if err != nil {
		a.writeServiceError(w, r, err)
		return
	}

	a.respond(w, r, http.StatusOK, locationToResponse(req.IP, loc))
}

func (a *API) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	resp := ErrorResponse{Error: "internal server error"}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
		resp.Error = err.Error()
	case errors.Is(err, domain.ErrPartitionTooLarge):
		status = http.StatusUnprocessableEntity
		resp.Error = err.Error()
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		resp.Error = "ip not in base network"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
		resp.Error = "request cancelled"
	default:
		a.Logger.ErrorContext(r.Context(), "uncaught service error", "err", err.Error())
	}

	a.respond(w, r, status, resp)
}
