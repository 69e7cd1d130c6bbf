package http

import (
	"net/http"

	"github.com/virtlabs/labnet/internal/domain"
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
// @Tags health
// @Success 200 {string} string "ready"
// @Failure 503 {string} string "db unavailable"
// @Router /readyz [get]
func (a *API) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := a.DB.Ping(ctx); err != nil {
		a.Logger.Error("db ping failed", "err", err)
		http.Error(w, "db unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// @Summary List environments
// @Tags environments
// @Produce json
// @Success 200 {array} EnvironmentResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/environments [get]
func (a *API) handleListEnvironments(w http.ResponseWriter, r *http.Request) {
	envs, err := a.Environments.ListEnvironments(r.Context())
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusOK, environmentsToResponse(envs))
}

// @Summary Create environment
// @Tags environments
// @Accept json
// @Produce json
// @Param environment body CreateEnvironmentRequest true "Environment payload"
// @Success 201 {object} EnvironmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/environments [post]
func (a *API) handleCreateEnvironment(w http.ResponseWriter, r *http.Request) {
	req, err := decode[CreateEnvironmentRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(r.Context(), "unmarshaling environment from request", "err", err.Error())
		a.respondBadRequest(w, r, "bad request")
		return
	}

	env, err := a.Environments.CreateEnvironment(r.Context(), domain.CreateEnvironmentInput{
		Name:         req.Name,
		AddressPools: req.AddressPools,
	})
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusCreated, environmentToResponse(env))
}

// @Summary Get environment by ID
// @Tags environments
// @Produce json
// @Param id path int true "Environment ID"
// @Success 200 {object} EnvironmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/environments/{id} [get]
func (a *API) handleGetEnvironment(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respondBadRequest(w, r, "bad request")
		return
	}

	env, err := a.Environments.GetEnvironment(r.Context(), id)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusOK, environmentToResponse(env))
}

// @Summary Erase environment
// @Tags environments
// @Param id path int true "Environment ID"
// @Success 204 {string} string "erased"
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/environments/{id} [delete]
func (a *API) handleEraseEnvironment(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respondBadRequest(w, r, "bad request")
		return
	}

	if err := a.Environments.EraseEnvironment(r.Context(), id); err != nil {
		a.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary List pools of an environment
// @Tags pools
// @Produce json
// @Param id path int true "Environment ID"
// @Success 200 {array} PoolResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/environments/{id}/pools [get]
func (a *API) handleListPools(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respondBadRequest(w, r, "bad request")
		return
	}

	pools, err := a.Pools.ListPools(r.Context(), id)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusOK, poolsToResponse(pools))
}

// @Summary Claim an address pool for an environment
// @Description Carves a free subnet of the requested size out of the
// @Description given supernets and registers reserved addresses and ranges.
// @Tags pools
// @Accept json
// @Produce json
// @Param id path int true "Environment ID"
// @Param pool body CreatePoolRequest true "Pool payload"
// @Success 201 {object} PoolResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/environments/{id}/pools [post]
func (a *API) handleCreatePool(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respondBadRequest(w, r, "bad request")
		return
	}

	req, err := decode[CreatePoolRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(r.Context(), "unmarshaling pool from request", "err", err.Error())
		a.respondBadRequest(w, r, "bad request")
		return
	}

	pool, err := a.Pools.CreatePool(r.Context(), id, domain.CreatePoolInput{
		Name:     req.Name,
		Net:      req.Net,
		Reserved: req.Reserved,
		Ranges:   req.Ranges,
	})
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusCreated, poolToResponse(pool))
}

// @Summary Get pool by ID
// @Tags pools
// @Produce json
// @Param id path int true "Pool ID"
// @Success 200 {object} PoolResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/pools/{id} [get]
func (a *API) handleGetPool(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respondBadRequest(w, r, "bad request")
		return
	}

	pool, err := a.Pools.GetPool(r.Context(), id)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusOK, poolToResponse(pool))
}

// @Summary Delete pool
// @Tags pools
// @Param id path int true "Pool ID"
// @Success 204 {string} string "deleted"
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/pools/{id} [delete]
func (a *API) handleDeletePool(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respondBadRequest(w, r, "bad request")
		return
	}

	if err := a.Pools.DeletePool(r.Context(), id); err != nil {
		a.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Get a reserved address by name
// @Tags pools
// @Produce json
// @Param id path int true "Pool ID"
// @Param name path string true "Reserved name, e.g. gateway"
// @Success 200 {object} ReservedResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/pools/{id}/reserved/{name} [get]
func (a *API) handleGetReserved(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respondBadRequest(w, r, "bad request")
		return
	}
	name := r.PathValue("name")

	addr, ok, err := a.Pools.GetReserved(r.Context(), id, name)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	if !ok {
		a.respond(w, r, http.StatusNotFound, ErrorResponse{Error: "reserved address not found"})
		return
	}
	a.respond(w, r, http.StatusOK, ReservedResponse{Name: name, IP: addr.String()})
}

// @Summary Get the gateway address of a pool
// @Description Returns the reserved gateway if one was registered,
// @Description otherwise the first host of the subnet.
// @Tags pools
// @Produce json
// @Param id path int true "Pool ID"
// @Success 200 {object} ReservedResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/pools/{id}/gateway [get]
func (a *API) handleGetGateway(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respondBadRequest(w, r, "bad request")
		return
	}

	addr, err := a.Pools.Gateway(r.Context(), id)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusOK, ReservedResponse{Name: "gateway", IP: addr.String()})
}

// @Summary Register a named range on a pool
// @Description Ranges are immutable once set; registering an existing
// @Description name fails with 409.
// @Tags pools
// @Accept json
// @Produce json
// @Param id path int true "Pool ID"
// @Param range body SetRangeRequest true "Range payload"
// @Success 201 {object} RangeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/pools/{id}/ranges [post]
func (a *API) handleSetRange(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respondBadRequest(w, r, "bad request")
		return
	}

	req, err := decode[SetRangeRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(r.Context(), "unmarshaling range from request", "err", err.Error())
		a.respondBadRequest(w, r, "bad request")
		return
	}

	rng, err := a.Pools.SetRange(r.Context(), id, req.Name, req.Start, req.End)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusCreated, RangeResponse{
		Name:  req.Name,
		Start: rng.Start.String(),
		End:   rng.End.String(),
	})
}

// @Summary Get a named range, registering the default on first use
// @Tags pools
// @Produce json
// @Param id path int true "Pool ID"
// @Param name path string true "Range name"
// @Success 200 {object} RangeResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/pools/{id}/ranges/{name} [get]
func (a *API) handleGetRange(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respondBadRequest(w, r, "bad request")
		return
	}
	name := r.PathValue("name")

	rng, err := a.Pools.EnsureRange(r.Context(), id, name)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusOK, RangeResponse{
		Name:  name,
		Start: rng.Start.String(),
		End:   rng.End.String(),
	})
}

// @Summary List host addresses of a pool
// @Tags addresses
// @Produce json
// @Param id path int true "Pool ID"
// @Success 200 {array} AddressResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/pools/{id}/addresses [get]
func (a *API) handleListAddresses(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respondBadRequest(w, r, "bad request")
		return
	}

	records, err := a.Pools.ListHostAddresses(r.Context(), id)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusOK, addressesToResponse(records))
}

// @Summary Allocate the next free host address for an interface
// @Tags addresses
// @Accept json
// @Produce json
// @Param id path int true "Pool ID"
// @Param payload body AllocateAddressRequest true "Interface reference"
// @Success 201 {object} AddressResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/pools/{id}/addresses [post]
func (a *API) handleAllocateAddress(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathInt64(r, "id")
	if err != nil {
		a.respondBadRequest(w, r, "bad request")
		return
	}

	req, err := decode[AllocateAddressRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(r.Context(), "unmarshaling allocation request", "err", err.Error())
		a.respondBadRequest(w, r, "bad request")
		return
	}

	record, err := a.Pools.AllocateHostAddress(r.Context(), id, req.InterfaceID)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusCreated, addressToResponse(record))
}

// @Summary Release every address held by an interface
// @Tags addresses
// @Produce json
// @Param id path string true "Interface ID"
// @Success 200 {object} ReleasedResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/interfaces/{id}/addresses [delete]
func (a *API) handleReleaseInterface(w http.ResponseWriter, r *http.Request) {
	interfaceID := r.PathValue("id")

	released, err := a.Pools.ReleaseInterface(r.Context(), interfaceID)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	a.respond(w, r, http.StatusOK, ReleasedResponse{Released: released})
}
