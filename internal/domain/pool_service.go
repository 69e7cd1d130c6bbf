package domain

import (
	"context"
	"errors"
	"fmt"
	"net/netip"

	"github.com/virtlabs/labnet/internal/ipspace"
)

// Default assignable range inside a pool: index 2 through -2. Indexes 0,
// 1 and -1 are held back for the network address, the gateway and the
// broadcast address.
const (
	defaultRangeStart = 2
	defaultRangeEnd   = -2
)

const reservedGateway = "gateway"

type poolService struct {
	pools PoolRepository
	addrs AddressRepository
}

func NewPoolService(pools PoolRepository, addrs AddressRepository) PoolService {
	return &poolService{
		pools: pools,
		addrs: addrs,
	}
}

// CreatePool walks candidate subnets and tries to claim each one in turn
// until a durable create succeeds. Losing the race for one candidate is
// expected contention and moves on to the next; a name collision is
// fatal. The claimed-subnet snapshot is read once, up front: any subnet
// claimed after the snapshot surfaces as a per-candidate conflict, not
// as a reason to re-read.
func (s *poolService) CreatePool(ctx context.Context, environmentID int64, input CreatePoolInput) (AddressPool, error) {
	if input.Name == "" {
		return AddressPool{}, fmt.Errorf("%w: pool name is empty", ErrInvalidInput)
	}

	supernets, bits, err := ipspace.ParseNet(input.Net)
	if err != nil {
		return AddressPool{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	claimed, err := s.pools.ListClaimedSubnets(ctx)
	if err != nil {
		return AddressPool{}, err
	}
	excluded := make(map[netip.Prefix]struct{}, len(claimed))
	for _, p := range claimed {
		excluded[p.Masked()] = struct{}{}
	}

	candidates, err := ipspace.Enumerate(supernets, bits, excluded)
	if err != nil {
		return AddressPool{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	for candidate := range candidates {
		record, err := resolvePoolParams(environmentID, candidate, input)
		if err != nil {
			return AddressPool{}, err
		}

		pool, err := s.pools.Create(ctx, record)
		switch {
		case errors.Is(err, ErrSubnetTaken):
			continue // another claimant won this candidate
		case errors.Is(err, ErrNameTaken):
			return AddressPool{}, fmt.Errorf("%w: %q", ErrNameTaken, input.Name)
		case err != nil:
			return AddressPool{}, err
		}
		return pool, nil
	}

	return AddressPool{}, fmt.Errorf("%w: no /%d left in %s for pool %q",
		ErrNoFreeSubnet, bits, input.Net, input.Name)
}

// resolvePoolParams pins the caller's reserved addresses and ranges to a
// concrete candidate subnet. Resolution happens before the claim so that
// the pool row is written complete in one statement and a failed claim
// leaves nothing behind.
func resolvePoolParams(environmentID int64, subnet netip.Prefix, input CreatePoolInput) (CreatePoolRecord, error) {
	record := CreatePoolRecord{
		EnvironmentID: environmentID,
		Name:          input.Name,
		Subnet:        subnet,
		Reserved:      make(map[string]netip.Addr, len(input.Reserved)),
		Ranges:        make(map[string]AddrRange, len(input.Ranges)),
	}

	for name, off := range input.Reserved {
		addr, err := off.Resolve(subnet)
		if err != nil {
			return CreatePoolRecord{}, fmt.Errorf("%w: reserved %q: %v", ErrInvalidInput, name, err)
		}
		record.Reserved[name] = addr
	}
	for name, pair := range input.Ranges {
		rng, err := resolveRange(subnet, pair[0], pair[1])
		if err != nil {
			return CreatePoolRecord{}, fmt.Errorf("%w: range %q: %v", ErrInvalidInput, name, err)
		}
		record.Ranges[name] = rng
	}
	return record, nil
}

func resolveRange(subnet netip.Prefix, start, end ipspace.Offset) (AddrRange, error) {
	from, err := start.Resolve(subnet)
	if err != nil {
		return AddrRange{}, err
	}
	to, err := end.Resolve(subnet)
	if err != nil {
		return AddrRange{}, err
	}
	return AddrRange{Start: from, End: to}, nil
}

func (s *poolService) GetPool(ctx context.Context, id int64) (AddressPool, error) {
	return s.pools.FindByID(ctx, id)
}

func (s *poolService) ListPools(ctx context.Context, environmentID int64) ([]AddressPool, error) {
	return s.pools.ListByEnvironment(ctx, environmentID)
}

func (s *poolService) DeletePool(ctx context.Context, id int64) error {
	deleted, err := s.pools.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// GetReserved looks up a named reserved address. A missing name is a
// normal outcome, reported through the bool, not an error.
func (s *poolService) GetReserved(ctx context.Context, poolID int64, name string) (netip.Addr, bool, error) {
	pool, err := s.pools.FindByID(ctx, poolID)
	if err != nil {
		return netip.Addr{}, false, err
	}
	addr, ok := pool.Reserved[name]
	return addr, ok, nil
}

// Gateway returns the reserved "gateway" address, falling back to the
// subnet's first address when none was registered.
func (s *poolService) Gateway(ctx context.Context, poolID int64) (netip.Addr, error) {
	pool, err := s.pools.FindByID(ctx, poolID)
	if err != nil {
		return netip.Addr{}, err
	}
	if addr, ok := pool.Reserved[reservedGateway]; ok {
		return addr, nil
	}
	return ipspace.HostAt(pool.Subnet, 1)
}

func (s *poolService) SetRange(ctx context.Context, poolID int64, name string, start, end ipspace.Offset) (AddrRange, error) {
	if name == "" {
		return AddrRange{}, fmt.Errorf("%w: range name is empty", ErrInvalidInput)
	}
	pool, err := s.pools.FindByID(ctx, poolID)
	if err != nil {
		return AddrRange{}, err
	}

	rng, err := resolveRange(pool.Subnet, start, end)
	if err != nil {
		return AddrRange{}, fmt.Errorf("%w: range %q: %v", ErrInvalidInput, name, err)
	}

	if err := s.pools.AddRange(ctx, poolID, name, rng); err != nil {
		if errors.Is(err, ErrDuplicateRange) {
			return AddrRange{}, fmt.Errorf("%w: %q on pool %q", ErrDuplicateRange, name, pool.Name)
		}
		return AddrRange{}, err
	}
	return rng, nil
}

// EnsureRange returns the named range, registering the default
// [2, -2] range under that name first if it does not exist yet.
func (s *poolService) EnsureRange(ctx context.Context, poolID int64, name string) (AddrRange, error) {
	pool, err := s.pools.FindByID(ctx, poolID)
	if err != nil {
		return AddrRange{}, err
	}
	if rng, ok := pool.Ranges[name]; ok {
		return rng, nil
	}

	rng, err := resolveRange(pool.Subnet, ipspace.Relative(defaultRangeStart), ipspace.Relative(defaultRangeEnd))
	if err != nil {
		return AddrRange{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	err = s.pools.AddRange(ctx, poolID, name, rng)
	if errors.Is(err, ErrDuplicateRange) {
		// Someone registered the range since we loaded the pool; theirs
		// wins, ranges never change once set.
		pool, err = s.pools.FindByID(ctx, poolID)
		if err != nil {
			return AddrRange{}, err
		}
		return pool.Ranges[name], nil
	}
	if err != nil {
		return AddrRange{}, err
	}
	return rng, nil
}

// AllocateHostAddress hands out the lowest unassigned host address of
// the pool. The scan-then-insert window is raced deliberately: the
// (pool, address) uniqueness constraint is the arbiter, and a lost race
// simply rescans. Each lost race means someone else got an address, so
// the loop terminates on a finite pool.
func (s *poolService) AllocateHostAddress(ctx context.Context, poolID int64, interfaceID string) (HostAddress, error) {
	if interfaceID == "" {
		return HostAddress{}, fmt.Errorf("%w: interface id is empty", ErrInvalidInput)
	}
	pool, err := s.pools.FindByID(ctx, poolID)
	if err != nil {
		return HostAddress{}, err
	}

rescan:
	for {
		for addr := range ipspace.Hosts(pool.Subnet) {
			taken, err := s.addrs.Exists(ctx, pool.ID, addr)
			if err != nil {
				return HostAddress{}, err
			}
			if taken {
				continue
			}

			record, err := s.addrs.Create(ctx, pool.ID, interfaceID, addr)
			if errors.Is(err, ErrAddressTaken) {
				continue rescan
			}
			if err != nil {
				return HostAddress{}, err
			}
			return record, nil
		}
		return HostAddress{}, fmt.Errorf("%w: pool %q with CIDR %s",
			ErrPoolExhausted, pool.Name, pool.Subnet)
	}
}

func (s *poolService) ListHostAddresses(ctx context.Context, poolID int64) ([]HostAddress, error) {
	if _, err := s.pools.FindByID(ctx, poolID); err != nil {
		return nil, err
	}
	return s.addrs.ListByPool(ctx, poolID)
}

// ReleaseInterface drops every host address held by an interface, e.g.
// when its node is destroyed. Returns how many were released.
func (s *poolService) ReleaseInterface(ctx context.Context, interfaceID string) (int64, error) {
	return s.addrs.DeleteByInterface(ctx, interfaceID)
}
