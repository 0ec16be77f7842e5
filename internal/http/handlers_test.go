package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Flarenzy/subnetter/internal/codec"
	"github.com/Flarenzy/subnetter/internal/domain"
)

type stubHealthChecker struct {
	err error
}

func (s stubHealthChecker) Ping(context.Context) error {
	return s.err
}

type stubService struct {
	partitionFn func(context.Context, domain.PartitionInput) (domain.Partition, error)
	locateFn    func(context.Context, domain.LocateInput) (domain.Location, error)
}

func (s stubService) Partition(ctx context.Context, input domain.PartitionInput) (domain.Partition, error) {
	if s.partitionFn == nil {
		return domain.Partition{}, nil
	}
	return s.partitionFn(ctx, input)
}

func (s stubService) Locate(ctx context.Context, input domain.LocateInput) (domain.Location, error) {
	if s.locateFn == nil {
		return domain.Location{}, nil
	}
	return s.locateFn(ctx, input)
}

func (s stubService) Ping(context.Context) error {
	return nil
}

func newHandlerTestAPI(service domain.PartitionService, healthErr error) *API {
	return NewAPI(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		stubHealthChecker{err: healthErr},
		service,
		nil,
	)
}

func TestReadyzReturnsServiceUnavailableWhenHealthCheckFails(t *testing.T) {
	api := newHandlerTestAPI(stubService{}, context.Canceled)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
}

func TestCreatePartitionWithRealService(t *testing.T) {
	api := newHandlerTestAPI(domain.NewPartitionService(domain.Options{DefaultWorkers: 2}), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/partitions", strings.NewReader(`{"cidr":"10.0.0.0/24","min_hosts":62,"workers":3}`))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected json content type, got %q", ct)
	}

	var resp PartitionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID == "" || resp.CIDR != "10.0.0.0/24" || resp.PrefixLength != 26 || resp.SubnetCount != 4 || resp.Workers != 3 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Subnets[3].Network != "10.0.0.192" || resp.Subnets[3].UsableHosts != 62 {
		t.Fatalf("unexpected last subnet: %+v", resp.Subnets[3])
	}
}

func TestCreatePartitionNegotiatesCBOR(t *testing.T) {
	api := newHandlerTestAPI(domain.NewPartitionService(domain.Options{DefaultWorkers: 1}), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/partitions", strings.NewReader(`{"cidr":"10.0.0.0/30","min_hosts":0}`))
	req.Header.Set("Accept", "application/cbor")
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/cbor" {
		t.Fatalf("expected cbor content type, got %q", ct)
	}

	var resp PartitionResponse
	if err := codec.Decode(bytes.NewReader(rec.Body.Bytes()), codec.CBOR, &resp); err != nil {
		t.Fatalf("decode cbor: %v", err)
	}
	if resp.SubnetCount != 1 || resp.Subnets[0].Broadcast != "10.0.0.3" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCreatePartitionReturnsBadRequestOnInvalidInput(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		partitionFn: func(context.Context, domain.PartitionInput) (domain.Partition, error) {
			return domain.Partition{}, domain.ErrInvalidInput
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/partitions", strings.NewReader(`{"cidr":"bad"}`))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestCreatePartitionRejectsUnknownFields(t *testing.T) {
	api := newHandlerTestAPI(stubService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/partitions", strings.NewReader(`{"cidr":"10.0.0.0/24","threads":4}`))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestCreatePartitionMapsServiceErrors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{domain.ErrPartitionTooLarge, http.StatusUnprocessableEntity},
		{context.DeadlineExceeded, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		api := newHandlerTestAPI(stubService{
			partitionFn: func(context.Context, domain.PartitionInput) (domain.Partition, error) {
				return domain.Partition{}, tt.err
			},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/partitions", strings.NewReader(`{"cidr":"10.0.0.0/8","min_hosts":0}`))
		rec := httptest.NewRecorder()
		api.Router().ServeHTTP(rec, req)

		if rec.Code != tt.status {
			t.Fatalf("%v: expected %d, got %d", tt.err, tt.status, rec.Code)
		}
	}
}

func TestLocateReturnsNotFound(t *testing.T) {
	api := newHandlerTestAPI(stubService{
		locateFn: func(context.Context, domain.LocateInput) (domain.Location, error) {
			return domain.Location{}, domain.ErrNotFound
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/partitions/locate", strings.NewReader(`{"cidr":"10.0.0.0/24","min_hosts":10,"ip":"10.9.9.9"}`))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ip not in base network") {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestLocateWithRealService(t *testing.T) {
	api := newHandlerTestAPI(domain.NewPartitionService(domain.Options{DefaultWorkers: 1}), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/partitions/locate", strings.NewReader(`{"cidr":"10.0.0.0/24","min_hosts":60,"ip":"10.0.0.77"}`))
	req.Header.Set("Accept", "application/yaml")
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp LocateResponse
	if err := codec.Decode(bytes.NewReader(rec.Body.Bytes()), codec.YAML, &resp); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if resp.Subnet.Network != "10.0.0.64" || resp.Index != 1 || !resp.Usable {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
