package postgres

import (
	"context"
	"time"

	"jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

type applicationRepo struct {
	store *Store
}

func NewApplicationRepository(store *Store) domain.ApplicationRepository {
	return &applicationRepo{store: store}
}

const applicationSelect = `
	SELECT a.id, a.job_id, a.cv_id, a.candidate_id, a.application_code,
	       a.apply_time, a.status, a.created_at, a.updated_at,
	       c.name, j.title
	FROM applications a
	JOIN candidates c ON a.candidate_id = c.id
	JOIN jobs j ON a.job_id = j.id`

func scanApplication(row interface{ Scan(dest ...any) error }, a *domain.Application) error {
	return row.Scan(
		&a.ID, &a.JobID, &a.CVID, &a.CandidateID, &a.ApplicationCode,
		&a.ApplyTime, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		&a.CandidateName, &a.JobTitle,
	)
}

func (r *applicationRepo) collect(rows pgx.Rows) ([]domain.Application, error) {
	defer rows.Close()
	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := scanApplication(rows, &app); err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (job_id, cv_id, candidate_id, application_code, apply_time, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}

	return translateUnique(r.store.db(ctx).QueryRow(ctx, query,
		app.JobID, app.CVID, app.CandidateID, app.ApplicationCode,
		app.ApplyTime, app.Status, app.CreatedAt, app.UpdatedAt,
	).Scan(&app.ID))
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := applicationSelect + ` WHERE a.id = $1`
	var app domain.Application
	if err := scanApplication(r.store.db(ctx).QueryRow(ctx, query, id), &app); err != nil {
		return nil, translateNoRows(err)
	}
	return &app, nil
}

func (r *applicationRepo) FetchByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	query := applicationSelect + ` WHERE a.job_id = $1 ORDER BY a.apply_time DESC`
	rows, err := r.store.db(ctx).Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *applicationRepo) FetchByJobAndStatus(ctx context.Context, jobID int64, status domain.ApplicationStatus) ([]domain.Application, error) {
	query := applicationSelect + ` WHERE a.job_id = $1 AND a.status = $2 ORDER BY a.apply_time DESC`
	rows, err := r.store.db(ctx).Query(ctx, query, jobID, status)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *applicationRepo) FetchByCandidate(ctx context.Context, candidateID int64) ([]domain.Application, error) {
	query := applicationSelect + ` WHERE a.candidate_id = $1 ORDER BY a.apply_time DESC`
	rows, err := r.store.db(ctx).Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *applicationRepo) ExistsByJobAndCandidate(ctx context.Context, jobID, candidateID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND candidate_id = $2)`
	var exists bool
	err := r.store.db(ctx).QueryRow(ctx, query, jobID, candidateID).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE application_code = $1)`
	var exists bool
	err := r.store.db(ctx).QueryRow(ctx, query, code).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	query := `UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.store.db(ctx).Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
