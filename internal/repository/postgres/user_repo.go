package postgres

import (
	"context"
	"time"

	"jobportal-backend/internal/domain"
)

type userRepo struct {
	store *Store
}

func NewUserRepository(store *Store) domain.UserRepository {
	return &userRepo{store: store}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (user_code, username, password_hash, role_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	return translateUnique(r.store.db(ctx).QueryRow(ctx, query,
		user.UserCode, user.Username, user.PasswordHash, user.RoleID,
		user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID))
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT u.id, u.user_code, u.username, u.password_hash, u.role_id, r.code, u.created_at, u.updated_at
              FROM users u JOIN roles r ON u.role_id = r.id WHERE u.id = $1`

	var user domain.User
	err := r.store.db(ctx).QueryRow(ctx, query, id).Scan(
		&user.ID, &user.UserCode, &user.Username, &user.PasswordHash, &user.RoleID, &user.Role,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, translateNoRows(err)
	}
	return &user, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT u.id, u.user_code, u.username, u.password_hash, u.role_id, r.code, u.created_at, u.updated_at
              FROM users u JOIN roles r ON u.role_id = r.id WHERE u.username = $1`

	var user domain.User
	err := r.store.db(ctx).QueryRow(ctx, query, username).Scan(
		&user.ID, &user.UserCode, &user.Username, &user.PasswordHash, &user.RoleID, &user.Role,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, translateNoRows(err)
	}
	return &user, nil
}

func (r *userRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`
	var exists bool
	err := r.store.db(ctx).QueryRow(ctx, query, username).Scan(&exists)
	return exists, err
}
