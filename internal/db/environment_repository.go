package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/virtlabs/labnet/internal/domain"
)

type EnvironmentRepository struct {
	db *pgxpool.Pool
}

func NewEnvironmentRepository(db *pgxpool.Pool) *EnvironmentRepository {
	return &EnvironmentRepository{db: db}
}

func (r *EnvironmentRepository) Create(ctx context.Context, name string) (domain.Environment, error) {
	var env domain.Environment
	err := r.db.QueryRow(ctx,
		`INSERT INTO environments (name) VALUES ($1)
         RETURNING id, name, created_at, updated_at`,
		name,
	).Scan(&env.ID, &env.Name, &env.CreatedAt, &env.UpdatedAt)
	if err != nil {
		if constraintViolated(err, "unique_environment_name") {
			return domain.Environment{}, fmt.Errorf("%w: environment %q already exists", domain.ErrConflict, name)
		}
		return domain.Environment{}, err
	}
	return env, nil
}

func (r *EnvironmentRepository) FindByID(ctx context.Context, id int64) (domain.Environment, error) {
	var env domain.Environment
	err := r.db.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM environments WHERE id = $1`,
		id,
	).Scan(&env.ID, &env.Name, &env.CreatedAt, &env.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return domain.Environment{}, domain.ErrNotFound
		}
		return domain.Environment{}, err
	}
	return env, nil
}

func (r *EnvironmentRepository) List(ctx context.Context) ([]domain.Environment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, created_at, updated_at FROM environments ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Environment
	for rows.Next() {
		var env domain.Environment
		if err := rows.Scan(&env.ID, &env.Name, &env.CreatedAt, &env.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, env)
	}
	return out, rows.Err()
}

func (r *EnvironmentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM environments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func constraintViolated(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.ConstraintName == constraint
}
