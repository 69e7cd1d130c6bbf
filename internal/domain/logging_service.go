package domain

import (
	"context"
	"log/slog"
	"net/netip"

	"github.com/virtlabs/labnet/internal/ipspace"
)

type loggingPoolService struct {
	logger *slog.Logger
	next   PoolService
}

func NewLoggingPoolService(logger *slog.Logger, next PoolService) PoolService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingPoolService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingPoolService) CreatePool(ctx context.Context, environmentID int64, input CreatePoolInput) (AddressPool, error) {
	pool, err := s.next.CreatePool(ctx, environmentID, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "create pool failed", "environment_id", environmentID, "name", input.Name, "net", input.Net, "err", err.Error())
		return AddressPool{}, err
	}

	s.logger.InfoContext(ctx, "pool created", "id", pool.ID, "name", pool.Name, "subnet", pool.Subnet.String())
	return pool, nil
}

func (s *loggingPoolService) GetPool(ctx context.Context, id int64) (AddressPool, error) {
	pool, err := s.next.GetPool(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "get pool failed", "id", id, "err", err.Error())
	}
	return pool, err
}

func (s *loggingPoolService) ListPools(ctx context.Context, environmentID int64) ([]AddressPool, error) {
	pools, err := s.next.ListPools(ctx, environmentID)
	if err != nil {
		s.logger.ErrorContext(ctx, "list pools failed", "environment_id", environmentID, "err", err.Error())
	}
	return pools, err
}

func (s *loggingPoolService) DeletePool(ctx context.Context, id int64) error {
	err := s.next.DeletePool(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "delete pool failed", "id", id, "err", err.Error())
		return err
	}

	s.logger.InfoContext(ctx, "pool deleted", "id", id)
	return nil
}

func (s *loggingPoolService) GetReserved(ctx context.Context, poolID int64, name string) (netip.Addr, bool, error) {
	addr, ok, err := s.next.GetReserved(ctx, poolID, name)
	if err != nil {
		s.logger.ErrorContext(ctx, "get reserved failed", "pool_id", poolID, "name", name, "err", err.Error())
		return addr, ok, err
	}
	if !ok {
		s.logger.DebugContext(ctx, "reserved address not found in pool", "pool_id", poolID, "name", name)
	}
	return addr, ok, nil
}

func (s *loggingPoolService) Gateway(ctx context.Context, poolID int64) (netip.Addr, error) {
	addr, err := s.next.Gateway(ctx, poolID)
	if err != nil {
		s.logger.ErrorContext(ctx, "gateway lookup failed", "pool_id", poolID, "err", err.Error())
	}
	return addr, err
}

func (s *loggingPoolService) SetRange(ctx context.Context, poolID int64, name string, start, end ipspace.Offset) (AddrRange, error) {
	rng, err := s.next.SetRange(ctx, poolID, name, start, end)
	if err != nil {
		s.logger.ErrorContext(ctx, "set range failed", "pool_id", poolID, "name", name, "err", err.Error())
		return AddrRange{}, err
	}

	s.logger.InfoContext(ctx, "range set", "pool_id", poolID, "name", name, "start", rng.Start.String(), "end", rng.End.String())
	return rng, nil
}

func (s *loggingPoolService) EnsureRange(ctx context.Context, poolID int64, name string) (AddrRange, error) {
	rng, err := s.next.EnsureRange(ctx, poolID, name)
	if err != nil {
		s.logger.ErrorContext(ctx, "ensure range failed", "pool_id", poolID, "name", name, "err", err.Error())
	}
	return rng, err
}

func (s *loggingPoolService) AllocateHostAddress(ctx context.Context, poolID int64, interfaceID string) (HostAddress, error) {
	record, err := s.next.AllocateHostAddress(ctx, poolID, interfaceID)
	if err != nil {
		s.logger.ErrorContext(ctx, "allocate host address failed", "pool_id", poolID, "interface_id", interfaceID, "err", err.Error())
		return HostAddress{}, err
	}

	s.logger.DebugContext(ctx, "host address allocated", "pool_id", poolID, "interface_id", interfaceID, "ip", record.IP.String())
	return record, nil
}

func (s *loggingPoolService) ListHostAddresses(ctx context.Context, poolID int64) ([]HostAddress, error) {
	addrs, err := s.next.ListHostAddresses(ctx, poolID)
	if err != nil {
		s.logger.ErrorContext(ctx, "list host addresses failed", "pool_id", poolID, "err", err.Error())
	}
	return addrs, err
}

func (s *loggingPoolService) ReleaseInterface(ctx context.Context, interfaceID string) (int64, error) {
	released, err := s.next.ReleaseInterface(ctx, interfaceID)
	if err != nil {
		s.logger.ErrorContext(ctx, "release interface failed", "interface_id", interfaceID, "err", err.Error())
		return 0, err
	}

	s.logger.DebugContext(ctx, "interface released", "interface_id", interfaceID, "released", released)
	return released, nil
}
