package postgres

import (
	"context"
	"time"

	"jobportal-backend/internal/domain"
)

type categoryRepo struct {
	store *Store
}

func NewCategoryRepository(store *Store) domain.CategoryRepository {
	return &categoryRepo{store: store}
}

func (r *categoryRepo) Create(ctx context.Context, category *domain.JobCategory) error {
	query := `INSERT INTO job_categories (name, description, base_salary, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`

	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	return translateUnique(r.store.db(ctx).QueryRow(ctx, query,
		category.Name, category.Description, category.BaseSalary,
		category.CreatedAt, category.UpdatedAt,
	).Scan(&category.ID))
}

func (r *categoryRepo) Update(ctx context.Context, category *domain.JobCategory) error {
	query := `UPDATE job_categories SET name = $2, description = $3, base_salary = $4, updated_at = $5 WHERE id = $1`

	category.UpdatedAt = time.Now()
	result, err := r.store.db(ctx).Exec(ctx, query,
		category.ID, category.Name, category.Description, category.BaseSalary, category.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *categoryRepo) GetByID(ctx context.Context, id int64) (*domain.JobCategory, error) {
	query := `SELECT id, name, description, base_salary, created_at, updated_at FROM job_categories WHERE id = $1`

	var category domain.JobCategory
	err := r.store.db(ctx).QueryRow(ctx, query, id).Scan(
		&category.ID, &category.Name, &category.Description, &category.BaseSalary,
		&category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		return nil, translateNoRows(err)
	}
	return &category, nil
}

func (r *categoryRepo) Fetch(ctx context.Context) ([]domain.JobCategory, error) {
	query := `SELECT id, name, description, base_salary, created_at, updated_at FROM job_categories ORDER BY name`

	rows, err := r.store.db(ctx).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.JobCategory
	for rows.Next() {
		var category domain.JobCategory
		if err := rows.Scan(
			&category.ID, &category.Name, &category.Description, &category.BaseSalary,
			&category.CreatedAt, &category.UpdatedAt,
		); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *categoryRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM job_categories WHERE name = $1)`
	var exists bool
	err := r.store.db(ctx).QueryRow(ctx, query, name).Scan(&exists)
	return exists, err
}

func (r *categoryRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.store.db(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM job_categories`).Scan(&total)
	return total, err
}
