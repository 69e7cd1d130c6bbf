package http

import (
	"time"

	"github.com/virtlabs/labnet/internal/domain"
	"github.com/virtlabs/labnet/internal/ipspace"
)

// ErrorResponse is a simple envelope for error messages.
type ErrorResponse struct {
	Error string `json:"error" example:"pool not found"`
}

// EnvironmentResponse is the client view of an environment.
type EnvironmentResponse struct {
	ID        int64     `json:"id" example:"1"`
	Name      string    `json:"name" example:"fuel-lab-01"`
	CreatedAt time.Time `json:"created_at" example:"2024-05-10T15:04:05Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-05-10T15:04:05Z"`
}

// CreateEnvironmentRequest carries the environment name and, optionally,
// the address pools to provision with it, in topology-template shape.
type CreateEnvironmentRequest struct {
	Name         string                     `json:"name" example:"fuel-lab-01" validate:"required"`
	AddressPools map[string]domain.PoolSpec `json:"address_pools,omitempty"`
}

// PoolResponse is the client view of an address pool. Reserved addresses
// and ranges come back fully resolved.
type PoolResponse struct {
	ID            int64                `json:"id" example:"4"`
	EnvironmentID int64                `json:"environment_id" example:"1"`
	Name          string               `json:"name" example:"admin-pool01"`
	Subnet        string               `json:"subnet" example:"10.0.0.0/24"`
	Reserved      map[string]string    `json:"ip_reserved,omitempty"`
	Ranges        map[string][2]string `json:"ip_ranges,omitempty"`
	CreatedAt     time.Time            `json:"created_at" example:"2024-05-10T15:04:05Z"`
	UpdatedAt     time.Time            `json:"updated_at" example:"2024-05-10T15:04:05Z"`
}

// CreatePoolRequest is the payload accepted when claiming a pool.
type CreatePoolRequest struct {
	Name     string                       `json:"name" example:"admin-pool01" validate:"required"`
	Net      string                       `json:"net" example:"10.0.0.0/16,10.1.0.0/16:24" validate:"required"`
	Reserved map[string]ipspace.Offset    `json:"ip_reserved,omitempty"`
	Ranges   map[string][2]ipspace.Offset `json:"ip_ranges,omitempty"`
}

// SetRangeRequest registers a named range on a pool; offsets may be
// integer indexes or literal addresses.
type SetRangeRequest struct {
	Name  string         `json:"name" example:"floating" validate:"required"`
	Start ipspace.Offset `json:"start" swaggertype:"string" example:"128"`
	End   ipspace.Offset `json:"end" swaggertype:"string" example:"-2"`
}

// RangeResponse is a resolved named range.
type RangeResponse struct {
	Name  string `json:"name" example:"floating"`
	Start string `json:"start" example:"10.0.0.128"`
	End   string `json:"end" example:"10.0.0.254"`
}

// ReservedResponse is a resolved reserved address.
type ReservedResponse struct {
	Name string `json:"name" example:"gateway"`
	IP   string `json:"ip" example:"10.0.0.1"`
}

// AllocateAddressRequest asks for the next free host address for an
// interface.
type AllocateAddressRequest struct {
	InterfaceID string `json:"interface_id" example:"550e8400-e29b-41d4-a716-446655440000" validate:"required"`
}

// AddressResponse is a host address handed out of a pool.
type AddressResponse struct {
	ID          string    `json:"id" example:"650e8400-e29b-41d4-a716-446655440000"`
	PoolID      int64     `json:"pool_id" example:"4"`
	InterfaceID string    `json:"interface_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	IP          string    `json:"ip" example:"10.0.0.2"`
	CreatedAt   time.Time `json:"created_at" example:"2024-05-10T15:04:05Z"`
}

// ReleasedResponse reports how many addresses an interface gave back.
type ReleasedResponse struct {
	Released int64 `json:"released" example:"2"`
}

func environmentToResponse(env domain.Environment) EnvironmentResponse {
	return EnvironmentResponse{
		ID:        env.ID,
		Name:      env.Name,
		CreatedAt: env.CreatedAt,
		UpdatedAt: env.UpdatedAt,
	}
}

func environmentsToResponse(envs []domain.Environment) []EnvironmentResponse {
	out := make([]EnvironmentResponse, 0, len(envs))
	for _, env := range envs {
		out = append(out, environmentToResponse(env))
	}
	return out
}

func poolToResponse(pool domain.AddressPool) PoolResponse {
	resp := PoolResponse{
		ID:            pool.ID,
		EnvironmentID: pool.EnvironmentID,
		Name:          pool.Name,
		Subnet:        pool.Subnet.String(),
		CreatedAt:     pool.CreatedAt,
		UpdatedAt:     pool.UpdatedAt,
	}
	if len(pool.Reserved) > 0 {
		resp.Reserved = make(map[string]string, len(pool.Reserved))
		for name, addr := range pool.Reserved {
			resp.Reserved[name] = addr.String()
		}
	}
	if len(pool.Ranges) > 0 {
		resp.Ranges = make(map[string][2]string, len(pool.Ranges))
		for name, rng := range pool.Ranges {
			resp.Ranges[name] = [2]string{rng.Start.String(), rng.End.String()}
		}
	}
	return resp
}

func poolsToResponse(pools []domain.AddressPool) []PoolResponse {
	out := make([]PoolResponse, 0, len(pools))
	for _, pool := range pools {
		out = append(out, poolToResponse(pool))
	}
	return out
}

func addressToResponse(record domain.HostAddress) AddressResponse {
	return AddressResponse{
		ID:          string(record.ID),
		PoolID:      record.PoolID,
		InterfaceID: record.InterfaceID,
		IP:          record.IP.String(),
		CreatedAt:   record.CreatedAt,
	}
}

func addressesToResponse(records []domain.HostAddress) []AddressResponse {
	out := make([]AddressResponse, 0, len(records))
	for _, record := range records {
		out = append(out, addressToResponse(record))
	}
	return out
}
