package postgres

import (
	"context"
	"time"

	"jobportal-backend/internal/domain"
)

type roleRepo struct {
	store *Store
}

func NewRoleRepository(store *Store) domain.RoleRepository {
	return &roleRepo{store: store}
}

func (r *roleRepo) Create(ctx context.Context, role *domain.RoleRecord) error {
	query := `INSERT INTO roles (code, name, created_at, updated_at)
              VALUES ($1, $2, $3, $4) RETURNING id`

	now := time.Now()
	role.CreatedAt = now
	role.UpdatedAt = now

	return r.store.db(ctx).QueryRow(ctx, query,
		role.Code, role.Name, role.CreatedAt, role.UpdatedAt,
	).Scan(&role.ID)
}

func (r *roleRepo) GetByCode(ctx context.Context, code domain.Role) (*domain.RoleRecord, error) {
	query := `SELECT id, code, name, created_at, updated_at FROM roles WHERE code = $1`

	var role domain.RoleRecord
	err := r.store.db(ctx).QueryRow(ctx, query, code).Scan(
		&role.ID, &role.Code, &role.Name, &role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		return nil, translateNoRows(err)
	}
	return &role, nil
}

func (r *roleRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.store.db(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM roles`).Scan(&total)
	return total, err
}
