package domain

import (
	"encoding/json"
	"fmt"
	"net/netip"
	"time"
)

type HostAddressID string

// Environment is a named test-lab topology. It exclusively owns its
// address pools; erasing an environment releases every subnet and host
// address claimed under it.
type Environment struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AddressPool is a durably claimed subnet together with its named
// reserved addresses and ranges. The subnet is immutable for the pool's
// lifetime and globally unique across all pools. Reserved addresses and
// range endpoints are stored fully resolved; offsets are never kept.
type AddressPool struct {
	ID            int64
	EnvironmentID int64
	Name          string
	Subnet        netip.Prefix
	Reserved      map[string]netip.Addr
	Ranges        map[string]AddrRange
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AddrRange is a named [start, end] pair of absolute addresses inside a
// pool's subnet. Ranges are append-only: once registered under a name
// they never change.
type AddrRange struct {
	Start netip.Addr
	End   netip.Addr
}

// Persisted and templated as a two-element array, ["x.x.x.x", "y.y.y.y"].
func (r AddrRange) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]netip.Addr{r.Start, r.End})
}

func (r *AddrRange) UnmarshalJSON(data []byte) error {
	var pair [2]netip.Addr
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("address range must be a [start, end] pair: %w", err)
	}
	r.Start, r.End = pair[0], pair[1]
	return nil
}

// HostAddress is a single address handed out of a pool to a node
// interface. The (pool, address) pair is unique; the database enforces
// it so that concurrent allocations cannot double-assign.
type HostAddress struct {
	ID          HostAddressID
	PoolID      int64
	InterfaceID string
	IP          netip.Addr
	CreatedAt   time.Time
}
