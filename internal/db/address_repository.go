package db

import (
	"context"
	"net/netip"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/virtlabs/labnet/internal/domain"
)

type AddressRepository struct {
	db *pgxpool.Pool
}

func NewAddressRepository(db *pgxpool.Pool) *AddressRepository {
	return &AddressRepository{db: db}
}

func (r *AddressRepository) ListByPool(ctx context.Context, poolID int64) ([]domain.HostAddress, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, pool_id, interface_id, ip, created_at
         FROM host_addresses WHERE pool_id = $1 ORDER BY ip`,
		poolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.HostAddress
	for rows.Next() {
		record, err := scanHostAddress(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

func (r *AddressRepository) Exists(ctx context.Context, poolID int64, addr netip.Addr) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM host_addresses WHERE pool_id = $1 AND ip = $2)`,
		poolID, addr,
	).Scan(&exists)
	return exists, err
}

// Create inserts the record through the (pool_id, ip) uniqueness
// constraint; losing a concurrent race for the address comes back as
// ErrAddressTaken so the caller can rescan.
func (r *AddressRepository) Create(ctx context.Context, poolID int64, interfaceID string, addr netip.Addr) (domain.HostAddress, error) {
	id := uuid.New()
	row := r.db.QueryRow(ctx,
		`INSERT INTO host_addresses (id, pool_id, interface_id, ip)
         VALUES ($1, $2, $3, $4)
         RETURNING id, pool_id, interface_id, ip, created_at`,
		pgUUID(id), poolID, interfaceID, addr,
	)

	record, err := scanHostAddress(row)
	if err != nil {
		if constraintViolated(err, "unique_host_address") {
			return domain.HostAddress{}, domain.ErrAddressTaken
		}
		return domain.HostAddress{}, err
	}
	return record, nil
}

func (r *AddressRepository) DeleteByInterface(ctx context.Context, interfaceID string) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM host_addresses WHERE interface_id = $1`, interfaceID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanHostAddress(row rowScanner) (domain.HostAddress, error) {
	var (
		record domain.HostAddress
		id     pgtype.UUID
	)
	err := row.Scan(&id, &record.PoolID, &record.InterfaceID, &record.IP, &record.CreatedAt)
	if err != nil {
		return domain.HostAddress{}, err
	}
	record.ID = domain.HostAddressID(uuid.UUID(id.Bytes).String())
	return record, nil
}

func pgUUID(id uuid.UUID) pgtype.UUID {
	var out pgtype.UUID
	copy(out.Bytes[:], id[:])
	out.Valid = true
	return out
}
