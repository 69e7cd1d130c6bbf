package domain

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNameTaken is returned when a pool name is already claimed in
	// its environment. Retrying with another subnet cannot fix it.
	ErrNameTaken = errors.New("pool name already in use")

	// ErrSubnetTaken signals that another claimant won the race for a
	// candidate subnet. It is consumed inside CreatePool's retry loop
	// and never escapes to callers.
	ErrSubnetTaken = errors.New("subnet already claimed")

	// ErrNoFreeSubnet is returned when every candidate subnet of the
	// requested size is already claimed.
	ErrNoFreeSubnet = errors.New("no free subnet available")

	// ErrDuplicateRange is returned when a range name is registered
	// twice on the same pool. Ranges are immutable once set.
	ErrDuplicateRange = errors.New("range already exists")

	// ErrPoolExhausted is returned when a pool has no unassigned host
	// address left.
	ErrPoolExhausted = errors.New("no more free addresses in pool")

	// ErrAddressTaken signals a lost race on a single host address;
	// AllocateHostAddress recovers from it by rescanning.
	ErrAddressTaken = errors.New("address already assigned")
)
