package postgres

import (
	"context"
	"time"

	"jobportal-backend/internal/domain"
)

type companyRepo struct {
	store *Store
}

func NewCompanyRepository(store *Store) domain.CompanyRepository {
	return &companyRepo{store: store}
}

const companyColumns = `id, user_id, company_code, name, description, address, website, email, logo_url, status, created_at, updated_at`

func scanCompany(row interface{ Scan(dest ...any) error }, c *domain.Company) error {
	return row.Scan(
		&c.ID, &c.UserID, &c.CompanyCode, &c.Name, &c.Description, &c.Address,
		&c.Website, &c.Email, &c.LogoURL, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
}

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	query := `INSERT INTO companies (user_id, company_code, name, description, address, website, email, logo_url, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`

	now := time.Now()
	company.CreatedAt = now
	company.UpdatedAt = now

	return translateUnique(r.store.db(ctx).QueryRow(ctx, query,
		company.UserID, company.CompanyCode, company.Name, company.Description,
		company.Address, company.Website, company.Email, company.LogoURL,
		company.Status, company.CreatedAt, company.UpdatedAt,
	).Scan(&company.ID))
}

func (r *companyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	var company domain.Company
	if err := scanCompany(r.store.db(ctx).QueryRow(ctx, query, id), &company); err != nil {
		return nil, translateNoRows(err)
	}
	return &company, nil
}

func (r *companyRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE user_id = $1`
	var company domain.Company
	if err := scanCompany(r.store.db(ctx).QueryRow(ctx, query, userID), &company); err != nil {
		return nil, translateNoRows(err)
	}
	return &company, nil
}

func (r *companyRepo) Update(ctx context.Context, company *domain.Company) error {
	query := `UPDATE companies SET
		name = $2,
		description = $3,
		address = $4,
		website = $5,
		logo_url = $6,
		updated_at = $7
	WHERE id = $1`

	company.UpdatedAt = time.Now()
	result, err := r.store.db(ctx).Exec(ctx, query,
		company.ID, company.Name, company.Description, company.Address,
		company.Website, company.LogoURL, company.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) UpdateStatus(ctx context.Context, id int64, status domain.CompanyStatus) error {
	query := `UPDATE companies SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.store.db(ctx).Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM companies WHERE company_code = $1)`
	var exists bool
	err := r.store.db(ctx).QueryRow(ctx, query, code).Scan(&exists)
	return exists, err
}

func (r *companyRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM companies WHERE email = $1)`
	var exists bool
	err := r.store.db(ctx).QueryRow(ctx, query, email).Scan(&exists)
	return exists, err
}

func (r *companyRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.store.db(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM companies`).Scan(&total)
	return total, err
}
