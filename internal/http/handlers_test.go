package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"strings"
	"testing"

	"github.com/virtlabs/labnet/internal/domain"
	"github.com/virtlabs/labnet/internal/ipspace"
)

type stubHealthChecker struct {
	err error
}

func (s stubHealthChecker) Ping(context.Context) error {
	return s.err
}

type stubEnvironmentService struct {
	createEnvironmentFn func(context.Context, domain.CreateEnvironmentInput) (domain.Environment, error)
	getEnvironmentFn    func(context.Context, int64) (domain.Environment, error)
	listEnvironmentsFn  func(context.Context) ([]domain.Environment, error)
	eraseEnvironmentFn  func(context.Context, int64) error
}

func (s stubEnvironmentService) CreateEnvironment(ctx context.Context, input domain.CreateEnvironmentInput) (domain.Environment, error) {
	if s.createEnvironmentFn == nil {
		return domain.Environment{}, nil
	}
	return s.createEnvironmentFn(ctx, input)
}

func (s stubEnvironmentService) GetEnvironment(ctx context.Context, id int64) (domain.Environment, error) {
	if s.getEnvironmentFn == nil {
		return domain.Environment{}, nil
	}
	return s.getEnvironmentFn(ctx, id)
}

func (s stubEnvironmentService) ListEnvironments(ctx context.Context) ([]domain.Environment, error) {
	if s.listEnvironmentsFn == nil {
		return nil, nil
	}
	return s.listEnvironmentsFn(ctx)
}

func (s stubEnvironmentService) EraseEnvironment(ctx context.Context, id int64) error {
	if s.eraseEnvironmentFn == nil {
		return nil
	}
	return s.eraseEnvironmentFn(ctx, id)
}

type stubPools struct {
	createPoolFn          func(context.Context, int64, domain.CreatePoolInput) (domain.AddressPool, error)
	getPoolFn             func(context.Context, int64) (domain.AddressPool, error)
	listPoolsFn           func(context.Context, int64) ([]domain.AddressPool, error)
	deletePoolFn          func(context.Context, int64) error
	getReservedFn         func(context.Context, int64, string) (netip.Addr, bool, error)
	gatewayFn             func(context.Context, int64) (netip.Addr, error)
	setRangeFn            func(context.Context, int64, string, ipspace.Offset, ipspace.Offset) (domain.AddrRange, error)
	ensureRangeFn         func(context.Context, int64, string) (domain.AddrRange, error)
	allocateHostAddressFn func(context.Context, int64, string) (domain.HostAddress, error)
	listHostAddressesFn   func(context.Context, int64) ([]domain.HostAddress, error)
	releaseInterfaceFn    func(context.Context, string) (int64, error)
}

func (s stubPools) CreatePool(ctx context.Context, environmentID int64, input domain.CreatePoolInput) (domain.AddressPool, error) {
	if s.createPoolFn == nil {
		return domain.AddressPool{}, nil
	}
	return s.createPoolFn(ctx, environmentID, input)
}

func (s stubPools) GetPool(ctx context.Context, id int64) (domain.AddressPool, error) {
	if s.getPoolFn == nil {
		return domain.AddressPool{}, nil
	}
	return s.getPoolFn(ctx, id)
}

func (s stubPools) ListPools(ctx context.Context, environmentID int64) ([]domain.AddressPool, error) {
	if s.listPoolsFn == nil {
		return nil, nil
	}
	return s.listPoolsFn(ctx, environmentID)
}

func (s stubPools) DeletePool(ctx context.Context, id int64) error {
	if s.deletePoolFn == nil {
		return nil
	}
	return s.deletePoolFn(ctx, id)
}

func (s stubPools) GetReserved(ctx context.Context, poolID int64, name string) (netip.Addr, bool, error) {
	if s.getReservedFn == nil {
		return netip.Addr{}, false, nil
	}
	return s.getReservedFn(ctx, poolID, name)
}

func (s stubPools) Gateway(ctx context.Context, poolID int64) (netip.Addr, error) {
	if s.gatewayFn == nil {
		return netip.Addr{}, nil
	}
	return s.gatewayFn(ctx, poolID)
}

func (s stubPools) SetRange(ctx context.Context, poolID int64, name string, start, end ipspace.Offset) (domain.AddrRange, error) {
	if s.setRangeFn == nil {
		return domain.AddrRange{}, nil
	}
	return s.setRangeFn(ctx, poolID, name, start, end)
}

func (s stubPools) EnsureRange(ctx context.Context, poolID int64, name string) (domain.AddrRange, error) {
	if s.ensureRangeFn == nil {
		return domain.AddrRange{}, nil
	}
	return s.ensureRangeFn(ctx, poolID, name)
}

func (s stubPools) AllocateHostAddress(ctx context.Context, poolID int64, interfaceID string) (domain.HostAddress, error) {
	if s.allocateHostAddressFn == nil {
		return domain.HostAddress{}, nil
	}
	return s.allocateHostAddressFn(ctx, poolID, interfaceID)
}

func (s stubPools) ListHostAddresses(ctx context.Context, poolID int64) ([]domain.HostAddress, error) {
	if s.listHostAddressesFn == nil {
		return nil, nil
	}
	return s.listHostAddressesFn(ctx, poolID)
}

func (s stubPools) ReleaseInterface(ctx context.Context, interfaceID string) (int64, error) {
	if s.releaseInterfaceFn == nil {
		return 0, nil
	}
	return s.releaseInterfaceFn(ctx, interfaceID)
}

func newHandlerTestAPI(environments domain.EnvironmentService, pools domain.PoolService, healthErr error) *API {
	return NewAPI(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		stubHealthChecker{err: healthErr},
		environments,
		pools,
		nil,
	)
}

func TestReadyzReturnsServiceUnavailableWhenHealthCheckFails(t *testing.T) {
	api := newHandlerTestAPI(stubEnvironmentService{}, stubPools{}, context.Canceled)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
}

func TestGetEnvironmentReturnsNotFound(t *testing.T) {
	api := newHandlerTestAPI(stubEnvironmentService{
		getEnvironmentFn: func(context.Context, int64) (domain.Environment, error) {
			return domain.Environment{}, domain.ErrNotFound
		},
	}, stubPools{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/environments/42", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestCreateEnvironmentReturnsConflictOnDuplicateName(t *testing.T) {
	api := newHandlerTestAPI(stubEnvironmentService{
		createEnvironmentFn: func(context.Context, domain.CreateEnvironmentInput) (domain.Environment, error) {
			return domain.Environment{}, domain.ErrConflict
		},
	}, stubPools{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/environments", strings.NewReader(`{"name":"fuel-lab-01"}`))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected %d, got %d", http.StatusConflict, rec.Code)
	}
}

func TestCreatePoolPassesEnvironmentIDAndPayload(t *testing.T) {
	var gotEnvID int64
	var gotInput domain.CreatePoolInput
	api := newHandlerTestAPI(stubEnvironmentService{}, stubPools{
		createPoolFn: func(_ context.Context, environmentID int64, input domain.CreatePoolInput) (domain.AddressPool, error) {
			gotEnvID = environmentID
			gotInput = input
			return domain.AddressPool{
				ID:            7,
				EnvironmentID: environmentID,
				Name:          input.Name,
				Subnet:        netip.MustParsePrefix("10.0.0.0/24"),
			}, nil
		},
	}, nil)

	body := `{"name":"admin-pool01","net":"10.0.0.0/16:24","ip_reserved":{"l2_network_device":1}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/environments/3/pools", strings.NewReader(body))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}
	if gotEnvID != 3 {
		t.Fatalf("expected environment id 3, got %d", gotEnvID)
	}
	if gotInput.Name != "admin-pool01" || gotInput.Net != "10.0.0.0/16:24" {
		t.Fatalf("unexpected input: %+v", gotInput)
	}
	if _, ok := gotInput.Reserved["l2_network_device"]; !ok {
		t.Fatalf("expected reserved offset to be decoded, got %+v", gotInput.Reserved)
	}

	var resp PoolResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Subnet != "10.0.0.0/24" {
		t.Fatalf("expected subnet 10.0.0.0/24, got %q", resp.Subnet)
	}
}

func TestCreatePoolReturnsConflictWhenSpaceExhausted(t *testing.T) {
	api := newHandlerTestAPI(stubEnvironmentService{}, stubPools{
		createPoolFn: func(context.Context, int64, domain.CreatePoolInput) (domain.AddressPool, error) {
			return domain.AddressPool{}, domain.ErrNoFreeSubnet
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/environments/3/pools", strings.NewReader(`{"name":"p","net":"10.0.0.0/24:24"}`))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected %d, got %d", http.StatusConflict, rec.Code)
	}
}

func TestCreatePoolReturnsBadRequestOnInvalidNet(t *testing.T) {
	api := newHandlerTestAPI(stubEnvironmentService{}, stubPools{
		createPoolFn: func(context.Context, int64, domain.CreatePoolInput) (domain.AddressPool, error) {
			return domain.AddressPool{}, domain.ErrInvalidInput
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/environments/3/pools", strings.NewReader(`{"name":"p","net":"not-a-cidr"}`))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestGetReservedReturnsResolvedAddress(t *testing.T) {
	api := newHandlerTestAPI(stubEnvironmentService{}, stubPools{
		getReservedFn: func(_ context.Context, _ int64, name string) (netip.Addr, bool, error) {
			if name != "gateway" {
				return netip.Addr{}, false, nil
			}
			return netip.MustParseAddr("10.0.0.1"), true, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pools/4/reserved/gateway", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	var resp ReservedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.IP != "10.0.0.1" {
		t.Fatalf("expected 10.0.0.1, got %q", resp.IP)
	}
}

func TestGetReservedAbsentNameReturnsNotFound(t *testing.T) {
	api := newHandlerTestAPI(stubEnvironmentService{}, stubPools{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pools/4/reserved/dhcp", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestSetRangeReturnsConflictOnDuplicateName(t *testing.T) {
	api := newHandlerTestAPI(stubEnvironmentService{}, stubPools{
		setRangeFn: func(context.Context, int64, string, ipspace.Offset, ipspace.Offset) (domain.AddrRange, error) {
			return domain.AddrRange{}, domain.ErrDuplicateRange
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pools/4/ranges", strings.NewReader(`{"name":"dhcp","start":2,"end":-2}`))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected %d, got %d", http.StatusConflict, rec.Code)
	}
}

func TestGetRangeEnsuresDefault(t *testing.T) {
	var gotName string
	api := newHandlerTestAPI(stubEnvironmentService{}, stubPools{
		ensureRangeFn: func(_ context.Context, _ int64, name string) (domain.AddrRange, error) {
			gotName = name
			return domain.AddrRange{
				Start: netip.MustParseAddr("10.0.0.2"),
				End:   netip.MustParseAddr("10.0.0.254"),
			}, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pools/4/ranges/dhcp", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	if gotName != "dhcp" {
		t.Fatalf("expected range name dhcp, got %q", gotName)
	}
	var resp RangeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Start != "10.0.0.2" || resp.End != "10.0.0.254" {
		t.Fatalf("unexpected range: %+v", resp)
	}
}

func TestAllocateAddressReturnsConflictWhenPoolExhausted(t *testing.T) {
	api := newHandlerTestAPI(stubEnvironmentService{}, stubPools{
		allocateHostAddressFn: func(context.Context, int64, string) (domain.HostAddress, error) {
			return domain.HostAddress{}, domain.ErrPoolExhausted
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pools/4/addresses", strings.NewReader(`{"interface_id":"iface-1"}`))
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected %d, got %d", http.StatusConflict, rec.Code)
	}
}

func TestReleaseInterfaceReportsCount(t *testing.T) {
	api := newHandlerTestAPI(stubEnvironmentService{}, stubPools{
		releaseInterfaceFn: func(_ context.Context, interfaceID string) (int64, error) {
			if interfaceID != "iface-1" {
				t.Fatalf("expected iface-1, got %q", interfaceID)
			}
			return 2, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/interfaces/iface-1/addresses", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
	var resp ReleasedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Released != 2 {
		t.Fatalf("expected 2 released, got %d", resp.Released)
	}
}

func TestBadPathIDReturnsBadRequest(t *testing.T) {
	api := newHandlerTestAPI(stubEnvironmentService{}, stubPools{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/pools/not-a-number", nil)
	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
	}
}
