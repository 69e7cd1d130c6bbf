package domain

import (
	"net/netip"

	"github.com/virtlabs/labnet/internal/ipspace"
)

// CreatePoolInput describes a pool the way topology templates do:
//
//	net: 10.0.0.0/16,10.1.0.0/16:24
//	ip_reserved:
//	  gateway: 1
//	  l2_network_device: 172.0.0.62
//	ip_ranges:
//	  default: [2, -2]
//
// Offsets are resolved against whichever candidate subnet ends up being
// claimed.
type CreatePoolInput struct {
	Name     string
	Net      string
	Reserved map[string]ipspace.Offset
	Ranges   map[string][2]ipspace.Offset
}

// CreatePoolRecord is the fully resolved row handed to the repository
// once a candidate subnet has been chosen.
type CreatePoolRecord struct {
	EnvironmentID int64
	Name          string
	Subnet        netip.Prefix
	Reserved      map[string]netip.Addr
	Ranges        map[string]AddrRange
}

// CreateEnvironmentInput carries the environment name plus the address
// pools to provision with it, keyed by pool name.
type CreateEnvironmentInput struct {
	Name         string
	AddressPools map[string]PoolSpec
}

// PoolSpec is CreatePoolInput without the name (the map key names it).
type PoolSpec struct {
	Net      string                       `json:"net"`
	Reserved map[string]ipspace.Offset    `json:"ip_reserved,omitempty"`
	Ranges   map[string][2]ipspace.Offset `json:"ip_ranges,omitempty"`
}
