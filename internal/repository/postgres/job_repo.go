package postgres

import (
	"context"
	"time"

	"jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

type jobRepo struct {
	store *Store
}

func NewJobRepository(store *Store) domain.JobRepository {
	return &jobRepo{store: store}
}

const jobColumns = `id, company_id, category_id, job_code, title, description, requirement, salary, location, start_date, end_date, max_candidates, status, created_at, updated_at`

func scanJob(row interface{ Scan(dest ...any) error }, j *domain.Job) error {
	return row.Scan(
		&j.ID, &j.CompanyID, &j.CategoryID, &j.JobCode, &j.Title, &j.Description,
		&j.Requirement, &j.Salary, &j.Location, &j.StartDate, &j.EndDate,
		&j.MaxCandidates, &j.Status, &j.CreatedAt, &j.UpdatedAt,
	)
}

func (r *jobRepo) collect(rows pgx.Rows) ([]domain.Job, error) {
	defer rows.Close()
	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := scanJob(rows, &job); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (company_id, category_id, job_code, title, description, requirement, salary, location, start_date, end_date, max_candidates, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`

	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	return translateUnique(r.store.db(ctx).QueryRow(ctx, query,
		job.CompanyID, job.CategoryID, job.JobCode, job.Title, job.Description,
		job.Requirement, job.Salary, job.Location, job.StartDate, job.EndDate,
		job.MaxCandidates, job.Status, job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID))
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	var job domain.Job
	if err := scanJob(r.store.db(ctx).QueryRow(ctx, query, id), &job); err != nil {
		return nil, translateNoRows(err)
	}
	return &job, nil
}

func (r *jobRepo) Fetch(ctx context.Context, status *domain.JobStatus) ([]domain.Job, error) {
	if status != nil {
		query := `SELECT ` + jobColumns + ` FROM jobs WHERE status = $1 ORDER BY created_at DESC`
		rows, err := r.store.db(ctx).Query(ctx, query, *status)
		if err != nil {
			return nil, err
		}
		return r.collect(rows)
	}

	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY created_at DESC`
	rows, err := r.store.db(ctx).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *jobRepo) FetchByCompany(ctx context.Context, companyID int64) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE company_id = $1 ORDER BY created_at DESC`
	rows, err := r.store.db(ctx).Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *jobRepo) FetchByCategory(ctx context.Context, categoryID int64) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE category_id = $1 ORDER BY created_at DESC`
	rows, err := r.store.db(ctx).Query(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

// Search matches the keyword case-insensitively against title or location.
func (r *jobRepo) Search(ctx context.Context, keyword string) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs
              WHERE title ILIKE '%' || $1 || '%' OR location ILIKE '%' || $1 || '%'
              ORDER BY created_at DESC`
	rows, err := r.store.db(ctx).Query(ctx, query, keyword)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *jobRepo) FetchBySalaryRange(ctx context.Context, minSalary, maxSalary float64) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE salary BETWEEN $1 AND $2 ORDER BY created_at DESC`
	rows, err := r.store.db(ctx).Query(ctx, query, minSalary, maxSalary)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
		category_id = $2,
		title = $3,
		description = $4,
		requirement = $5,
		salary = $6,
		location = $7,
		start_date = $8,
		end_date = $9,
		max_candidates = $10,
		updated_at = $11
	WHERE id = $1`

	job.UpdatedAt = time.Now()
	result, err := r.store.db(ctx).Exec(ctx, query,
		job.ID, job.CategoryID, job.Title, job.Description, job.Requirement,
		job.Salary, job.Location, job.StartDate, job.EndDate, job.MaxCandidates,
		job.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) UpdateStatus(ctx context.Context, id int64, status domain.JobStatus) error {
	query := `UPDATE jobs SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.store.db(ctx).Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM jobs WHERE job_code = $1)`
	var exists bool
	err := r.store.db(ctx).QueryRow(ctx, query, code).Scan(&exists)
	return exists, err
}

func (r *jobRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.store.db(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&total)
	return total, err
}
