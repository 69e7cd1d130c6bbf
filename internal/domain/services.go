package domain

import (
	"context"
	"net/netip"

	"github.com/virtlabs/labnet/internal/ipspace"
)

// PoolService claims subnets for environments and hands out addresses
// inside them. CreatePool is the allocation coordinator: it is safe to
// call concurrently from independent processes sharing one database.
type PoolService interface {
	CreatePool(ctx context.Context, environmentID int64, input CreatePoolInput) (AddressPool, error)
	GetPool(ctx context.Context, id int64) (AddressPool, error)
	ListPools(ctx context.Context, environmentID int64) ([]AddressPool, error)
	DeletePool(ctx context.Context, id int64) error

	GetReserved(ctx context.Context, poolID int64, name string) (netip.Addr, bool, error)
	Gateway(ctx context.Context, poolID int64) (netip.Addr, error)
	SetRange(ctx context.Context, poolID int64, name string, start, end ipspace.Offset) (AddrRange, error)
	EnsureRange(ctx context.Context, poolID int64, name string) (AddrRange, error)

	AllocateHostAddress(ctx context.Context, poolID int64, interfaceID string) (HostAddress, error)
	ListHostAddresses(ctx context.Context, poolID int64) ([]HostAddress, error)
	ReleaseInterface(ctx context.Context, interfaceID string) (int64, error)
}

type EnvironmentService interface {
	CreateEnvironment(ctx context.Context, input CreateEnvironmentInput) (Environment, error)
	GetEnvironment(ctx context.Context, id int64) (Environment, error)
	ListEnvironments(ctx context.Context) ([]Environment, error)
	EraseEnvironment(ctx context.Context, id int64) error
}
