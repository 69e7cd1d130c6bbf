// Package ipspace holds the pure address-space arithmetic used by the
// allocator: carving candidate subnets out of supernets, resolving
// index-or-literal offsets inside a subnet, and walking assignable host
// addresses. Nothing here touches storage; everything is a function of
// its inputs.
package ipspace

import (
	"errors"
	"fmt"
	"iter"
	"net/netip"
	"slices"
	"strconv"
	"strings"

	"go4.org/netipx"
)

var ErrInvalidNet = errors.New("invalid network")

// Enumerate returns a lazy sequence of candidate subnets of length bits
// carved out of the given supernets: supernets in input order, blocks in
// increasing base-address order within each supernet. Candidates whose
// masked form appears in excluded are skipped. Exclusion is exact-match
// on the subnet, not a geometric overlap test.
//
// The sequence is recomputed on every range, so a fresh call always
// reflects the excluded set it was given.
func Enumerate(supernets []netip.Prefix, bits int, excluded map[netip.Prefix]struct{}) (iter.Seq[netip.Prefix], error) {
	if len(supernets) == 0 {
		return nil, fmt.Errorf("%w: no supernets given", ErrInvalidNet)
	}
	for _, sn := range supernets {
		if !sn.IsValid() {
			return nil, fmt.Errorf("%w: invalid supernet", ErrInvalidNet)
		}
		if bits < sn.Bits() {
			return nil, fmt.Errorf("%w: target prefix /%d is wider than supernet %s",
				ErrInvalidNet, bits, sn)
		}
		if bits > sn.Addr().BitLen() {
			return nil, fmt.Errorf("%w: target prefix /%d does not fit address family of %s",
				ErrInvalidNet, bits, sn)
		}
	}

	sns := slices.Clone(supernets)
	return func(yield func(netip.Prefix) bool) {
		for _, sn := range sns {
			base := sn.Masked().Addr()
			for sn.Contains(base) {
				block := netip.PrefixFrom(base, bits)
				if _, taken := excluded[block]; !taken {
					if !yield(block) {
						return
					}
				}
				next := netipx.PrefixLastIP(block).Next()
				if !next.IsValid() {
					break // wrapped past the end of the address space
				}
				base = next
			}
		}
	}, nil
}

// ParseNet parses the "supernet[,supernet...][:prefix]" pool notation,
// e.g. "10.0.0.0/16,10.1.0.0/16:24". Without the ":prefix" suffix the
// target prefix defaults to the first supernet's own length, so a single
// routed block like "12.34.56.0/26" is claimed whole.
func ParseNet(s string) ([]netip.Prefix, int, error) {
	// The target prefix is the text after the last colon, but only when
	// that text is a bare integer: IPv6 supernets contain colons of
	// their own ("fd00::/48" carries no target prefix).
	nets := s
	bits := -1
	if i := strings.LastIndexByte(s, ':'); i >= 0 {
		if n, err := strconv.Atoi(s[i+1:]); err == nil {
			nets = s[:i]
			bits = n
		}
	}

	var supernets []netip.Prefix
	for _, part := range strings.Split(nets, ",") {
		p, err := netip.ParsePrefix(strings.TrimSpace(part))
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %q: %v", ErrInvalidNet, part, err)
		}
		supernets = append(supernets, p.Masked())
	}
	if bits < 0 {
		bits = supernets[0].Bits()
	}
	return supernets, bits, nil
}
