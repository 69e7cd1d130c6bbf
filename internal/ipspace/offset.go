package ipspace

import (
	"encoding/json"
	"fmt"
	"iter"
	"net/netip"
	"strconv"

	"go4.org/netipx"
)

// Offset names a single address inside a subnet, either as a relative
// index or as a literal address. Index 0 is the network address and
// positive indexes count forward from it; negative indexes count back
// from the end, so -1 is the broadcast address. Offsets are resolved
// exactly once, when a pool is created or a range is registered; after
// that only literal addresses are stored and read back.
type Offset struct {
	index   int
	addr    netip.Addr
	literal bool
}

func Relative(index int) Offset {
	return Offset{index: index}
}

func Literal(addr netip.Addr) Offset {
	return Offset{addr: addr, literal: true}
}

// UnmarshalJSON accepts either a bare integer index or a literal address
// string, mirroring the int-or-address values used in topology templates.
func (o *Offset) UnmarshalJSON(data []byte) error {
	var idx int
	if err := json.Unmarshal(data, &idx); err == nil {
		*o = Relative(idx)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: offset must be an integer index or an address", ErrInvalidNet)
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return fmt.Errorf("%w: bad offset address %q", ErrInvalidNet, s)
	}
	*o = Literal(addr)
	return nil
}

func (o Offset) MarshalJSON() ([]byte, error) {
	if o.literal {
		return json.Marshal(o.addr.String())
	}
	return json.Marshal(o.index)
}

func (o Offset) String() string {
	if o.literal {
		return o.addr.String()
	}
	return strconv.Itoa(o.index)
}

// Resolve turns the offset into an absolute address within subnet. A
// literal offset must already lie inside the subnet; a relative one must
// index an address of the subnet.
func (o Offset) Resolve(subnet netip.Prefix) (netip.Addr, error) {
	if o.literal {
		if !subnet.Contains(o.addr) {
			return netip.Addr{}, fmt.Errorf("%w: address %s is outside subnet %s",
				ErrInvalidNet, o.addr, subnet)
		}
		return o.addr, nil
	}
	return HostAt(subnet, o.index)
}

// HostAt returns the address at the given index of the subnet. Index 0
// is the network address, negative indexes count back from the broadcast
// address at -1.
func HostAt(subnet netip.Prefix, index int) (netip.Addr, error) {
	if !subnet.IsValid() {
		return netip.Addr{}, fmt.Errorf("%w: invalid subnet", ErrInvalidNet)
	}
	r := netipx.RangeOfPrefix(subnet.Masked())

	var addr netip.Addr
	if index >= 0 {
		addr = addrAdd(r.From(), uint64(index))
	} else {
		addr = addrSub(r.To(), uint64(-(index + 1)))
	}
	if !addr.IsValid() || !subnet.Contains(addr) {
		return netip.Addr{}, fmt.Errorf("%w: index %d is outside subnet %s",
			ErrInvalidNet, index, subnet)
	}
	return addr, nil
}

// Hosts walks the assignable host addresses of a subnet in increasing
// order: index 2 through -2 inclusive. The network address, the first
// address (held for the gateway) and the broadcast address are never
// yielded. Subnets too small to have assignable hosts produce an empty
// sequence.
func Hosts(subnet netip.Prefix) iter.Seq[netip.Addr] {
	return func(yield func(netip.Addr) bool) {
		first, err := HostAt(subnet, 2)
		if err != nil {
			return
		}
		last, err := HostAt(subnet, -2)
		if err != nil || last.Less(first) {
			return
		}
		for a := first; a.IsValid() && a.Compare(last) <= 0; a = a.Next() {
			if !yield(a) {
				return
			}
		}
	}
}

func addrAdd(a netip.Addr, n uint64) netip.Addr {
	b := a.As16()
	for i := 15; i >= 0 && n > 0; i-- {
		sum := uint64(b[i]) + n&0xff
		b[i] = byte(sum)
		n = n>>8 + sum>>8
	}
	if n > 0 {
		return netip.Addr{} // overflowed the address space
	}
	return sameFamily(a, netip.AddrFrom16(b))
}

func addrSub(a netip.Addr, n uint64) netip.Addr {
	b := a.As16()
	for i := 15; i >= 0 && n > 0; i-- {
		sub := n & 0xff
		n >>= 8
		if uint64(b[i]) < sub {
			n++ // borrow
		}
		b[i] = byte(uint64(b[i]) - sub)
	}
	if n > 0 {
		return netip.Addr{}
	}
	return sameFamily(a, netip.AddrFrom16(b))
}

func sameFamily(orig, out netip.Addr) netip.Addr {
	if orig.Is4() {
		return out.Unmap()
	}
	return out
}
