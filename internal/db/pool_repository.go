package db

import (
	"context"
	"fmt"
	"net/netip"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/virtlabs/labnet/internal/domain"
)

type PoolRepository struct {
	db *pgxpool.Pool
}

func NewPoolRepository(db *pgxpool.Pool) *PoolRepository {
	return &PoolRepository{db: db}
}

const poolColumns = `id, environment_id, name, net, ip_reserved, ip_ranges, created_at, updated_at`

// Create persists a fully resolved pool row in a single statement, so a
// rejected claim leaves nothing behind. The two uniqueness constraints
// discriminate the conflict kinds the coordinator cares about.
func (r *PoolRepository) Create(ctx context.Context, record domain.CreatePoolRecord) (domain.AddressPool, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO address_pools (environment_id, name, net, ip_reserved, ip_ranges)
         VALUES ($1, $2, $3, $4, $5)
         RETURNING `+poolColumns,
		record.EnvironmentID, record.Name, record.Subnet, record.Reserved, record.Ranges,
	)

	pool, err := scanPool(row)
	if err != nil {
		switch {
		case constraintViolated(err, "unique_pool_name"):
			return domain.AddressPool{}, domain.ErrNameTaken
		case constraintViolated(err, "unique_pool_subnet"):
			return domain.AddressPool{}, domain.ErrSubnetTaken
		}
		return domain.AddressPool{}, err
	}
	return pool, nil
}

func (r *PoolRepository) FindByID(ctx context.Context, id int64) (domain.AddressPool, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+poolColumns+` FROM address_pools WHERE id = $1`, id)

	pool, err := scanPool(row)
	if err != nil {
		if isNoRows(err) {
			return domain.AddressPool{}, domain.ErrNotFound
		}
		return domain.AddressPool{}, err
	}
	return pool, nil
}

func (r *PoolRepository) FindByName(ctx context.Context, environmentID int64, name string) (domain.AddressPool, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+poolColumns+` FROM address_pools WHERE environment_id = $1 AND name = $2`,
		environmentID, name)

	pool, err := scanPool(row)
	if err != nil {
		if isNoRows(err) {
			return domain.AddressPool{}, domain.ErrNotFound
		}
		return domain.AddressPool{}, err
	}
	return pool, nil
}

func (r *PoolRepository) ListByEnvironment(ctx context.Context, environmentID int64) ([]domain.AddressPool, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+poolColumns+` FROM address_pools WHERE environment_id = $1 ORDER BY id`,
		environmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AddressPool
	for rows.Next() {
		pool, err := scanPool(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, pool)
	}
	return out, rows.Err()
}

func (r *PoolRepository) ListClaimedSubnets(ctx context.Context) ([]netip.Prefix, error) {
	rows, err := r.db.Query(ctx, `SELECT net FROM address_pools`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []netip.Prefix
	for rows.Next() {
		var p netip.Prefix
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// AddRange appends a named range, refusing to overwrite an existing one.
// The name check and the write are one statement so concurrent
// registrations of the same name cannot both succeed.
func (r *PoolRepository) AddRange(ctx context.Context, poolID int64, name string, rng domain.AddrRange) error {
	entry := map[string]domain.AddrRange{name: rng}
	tag, err := r.db.Exec(ctx,
		`UPDATE address_pools
         SET ip_ranges = ip_ranges || $2::jsonb, updated_at = now()
         WHERE id = $1 AND NOT ip_ranges ? $3`,
		poolID, entry, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Nothing updated: either the pool is gone or the name is taken.
	if _, err := r.FindByID(ctx, poolID); err != nil {
		return err
	}
	return fmt.Errorf("%w: %q", domain.ErrDuplicateRange, name)
}

func (r *PoolRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM address_pools WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPool(row rowScanner) (domain.AddressPool, error) {
	var pool domain.AddressPool
	err := row.Scan(
		&pool.ID, &pool.EnvironmentID, &pool.Name, &pool.Subnet,
		&pool.Reserved, &pool.Ranges, &pool.CreatedAt, &pool.UpdatedAt,
	)
	if err != nil {
		return domain.AddressPool{}, err
	}
	return pool, nil
}
