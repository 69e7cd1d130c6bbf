package domain

import (
	"context"
	"errors"
	"testing"
)

type stubEnvironmentRepository struct {
	createFn func(context.Context, string) (Environment, error)
	findFn   func(context.Context, int64) (Environment, error)
	listFn   func(context.Context) ([]Environment, error)
	deleteFn func(context.Context, int64) (bool, error)
}

func (s stubEnvironmentRepository) Create(ctx context.Context, name string) (Environment, error) {
	if s.createFn == nil {
		return Environment{}, nil
	}
	return s.createFn(ctx, name)
}

func (s stubEnvironmentRepository) FindByID(ctx context.Context, id int64) (Environment, error) {
	if s.findFn == nil {
		return Environment{}, nil
	}
	return s.findFn(ctx, id)
}

func (s stubEnvironmentRepository) List(ctx context.Context) ([]Environment, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx)
}

func (s stubEnvironmentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	if s.deleteFn == nil {
		return false, nil
	}
	return s.deleteFn(ctx, id)
}

func TestCreateEnvironmentProvisionsPoolsInNameOrder(t *testing.T) {
	envs := stubEnvironmentRepository{
		createFn: func(_ context.Context, name string) (Environment, error) {
			return Environment{ID: 3, Name: name}, nil
		},
	}
	var claimed []string
	pools := stubPoolRepository{
		createFn: func(_ context.Context, record CreatePoolRecord) (AddressPool, error) {
			claimed = append(claimed, record.Name+"="+record.Subnet.String())
			return AddressPool{ID: int64(len(claimed)), Subnet: record.Subnet}, nil
		},
	}
	service := NewEnvironmentService(envs, NewPoolService(pools, stubAddressRepository{}))

	env, err := service.CreateEnvironment(context.Background(), CreateEnvironmentInput{
		Name: "fuel-lab",
		AddressPools: map[string]PoolSpec{
			"management-pool01": {Net: "172.16.0.0/22:24"},
			"admin-pool01":      {Net: "10.9.0.0/22:24"},
		},
	})
	if err != nil {
		t.Fatalf("create environment: %v", err)
	}
	if env.Name != "fuel-lab" {
		t.Fatalf("unexpected environment %+v", env)
	}

	want := []string{"admin-pool01=10.9.0.0/24", "management-pool01=172.16.0.0/24"}
	if len(claimed) != len(want) {
		t.Fatalf("expected %v, got %v", want, claimed)
	}
	for i := range want {
		if claimed[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, claimed)
		}
	}
}

func TestCreateEnvironmentCleansUpWhenPoolFails(t *testing.T) {
	var deleted bool
	envs := stubEnvironmentRepository{
		createFn: func(_ context.Context, name string) (Environment, error) {
			return Environment{ID: 3, Name: name}, nil
		},
		deleteFn: func(_ context.Context, id int64) (bool, error) {
			deleted = true
			return true, nil
		},
	}
	pools := stubPoolRepository{
		createFn: func(context.Context, CreatePoolRecord) (AddressPool, error) {
			return AddressPool{}, ErrSubnetTaken
		},
	}
	service := NewEnvironmentService(envs, NewPoolService(pools, stubAddressRepository{}))

	_, err := service.CreateEnvironment(context.Background(), CreateEnvironmentInput{
		Name: "fuel-lab",
		AddressPools: map[string]PoolSpec{
			"admin-pool01": {Net: "10.9.0.0/24"},
		},
	})
	if !errors.Is(err, ErrNoFreeSubnet) {
		t.Fatalf("expected ErrNoFreeSubnet, got %v", err)
	}
	if !deleted {
		t.Fatal("expected the environment to be erased after pool failure")
	}
}

func TestCreateEnvironmentDuplicateNameConflicts(t *testing.T) {
	envs := stubEnvironmentRepository{
		createFn: func(context.Context, string) (Environment, error) {
			return Environment{}, ErrConflict
		},
	}
	service := NewEnvironmentService(envs, NewPoolService(stubPoolRepository{}, stubAddressRepository{}))

	_, err := service.CreateEnvironment(context.Background(), CreateEnvironmentInput{Name: "fuel-lab"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestEraseEnvironmentMissingIsNotFound(t *testing.T) {
	service := NewEnvironmentService(stubEnvironmentRepository{}, NewPoolService(stubPoolRepository{}, stubAddressRepository{}))

	err := service.EraseEnvironment(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
