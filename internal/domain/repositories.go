package domain

import (
	"context"
	"net/netip"
)

type EnvironmentRepository interface {
	Create(ctx context.Context, name string) (Environment, error)
	FindByID(ctx context.Context, id int64) (Environment, error)
	List(ctx context.Context) ([]Environment, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// PoolRepository is the durable side of subnet claiming. Create must be
// atomic: it either persists the pool row or reports which uniqueness
// constraint rejected it (ErrNameTaken, ErrSubnetTaken), leaving nothing
// behind.
type PoolRepository interface {
	Create(ctx context.Context, record CreatePoolRecord) (AddressPool, error)
	FindByID(ctx context.Context, id int64) (AddressPool, error)
	FindByName(ctx context.Context, environmentID int64, name string) (AddressPool, error)
	ListByEnvironment(ctx context.Context, environmentID int64) ([]AddressPool, error)
	// ListClaimedSubnets returns every subnet claimed by any pool in the
	// system. The snapshot may be stale by the time it is used; claim
	// conflicts cover the gap.
	ListClaimedSubnets(ctx context.Context) ([]netip.Prefix, error)
	// AddRange registers a named range. ErrDuplicateRange if the name is
	// already present; the stored range is left untouched in that case.
	AddRange(ctx context.Context, poolID int64, name string, rng AddrRange) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// AddressRepository tracks host addresses handed out of pools. Create
// relies on a (pool, address) uniqueness constraint and reports a lost
// race as ErrAddressTaken.
type AddressRepository interface {
	ListByPool(ctx context.Context, poolID int64) ([]HostAddress, error)
	Exists(ctx context.Context, poolID int64, addr netip.Addr) (bool, error)
	Create(ctx context.Context, poolID int64, interfaceID string, addr netip.Addr) (HostAddress, error)
	DeleteByInterface(ctx context.Context, interfaceID string) (int64, error)
}
