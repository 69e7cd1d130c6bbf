package domain

import (
	"context"
	"fmt"
	"maps"
	"slices"
)

type environmentService struct {
	environments EnvironmentRepository
	pools        PoolService
}

func NewEnvironmentService(environments EnvironmentRepository, pools PoolService) EnvironmentService {
	return &environmentService{
		environments: environments,
		pools:        pools,
	}
}

// CreateEnvironment creates the environment row and then provisions its
// address pools one by one, in pool-name order so that runs over the
// same template claim subnets deterministically. If any pool cannot be
// provisioned the environment is erased again and the pool's error is
// returned.
func (s *environmentService) CreateEnvironment(ctx context.Context, input CreateEnvironmentInput) (Environment, error) {
	if input.Name == "" {
		return Environment{}, fmt.Errorf("%w: environment name is empty", ErrInvalidInput)
	}

	env, err := s.environments.Create(ctx, input.Name)
	if err != nil {
		return Environment{}, err
	}

	for _, name := range slices.Sorted(maps.Keys(input.AddressPools)) {
		spec := input.AddressPools[name]
		_, err := s.pools.CreatePool(ctx, env.ID, CreatePoolInput{
			Name:     name,
			Net:      spec.Net,
			Reserved: spec.Reserved,
			Ranges:   spec.Ranges,
		})
		if err != nil {
			if _, delErr := s.environments.Delete(ctx, env.ID); delErr != nil {
				return Environment{}, fmt.Errorf("pool %q failed (%w); cleanup failed too: %v", name, err, delErr)
			}
			return Environment{}, fmt.Errorf("pool %q: %w", name, err)
		}
	}

	return env, nil
}

func (s *environmentService) GetEnvironment(ctx context.Context, id int64) (Environment, error) {
	return s.environments.FindByID(ctx, id)
}

func (s *environmentService) ListEnvironments(ctx context.Context) ([]Environment, error) {
	return s.environments.List(ctx)
}

// EraseEnvironment tears down the environment; pools and host addresses
// go with it through the schema's cascading deletes.
func (s *environmentService) EraseEnvironment(ctx context.Context, id int64) error {
	deleted, err := s.environments.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
