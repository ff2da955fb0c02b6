package postgres

import (
	"context"
	"time"

	"jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
)

type cvRepo struct {
	store *Store
}

func NewCVRepository(store *Store) domain.CVRepository {
	return &cvRepo{store: store}
}

const cvColumns = `id, candidate_id, cv_code, file, status, created_at, updated_at`

func scanCV(row interface{ Scan(dest ...any) error }, cv *domain.CV) error {
	return row.Scan(&cv.ID, &cv.CandidateID, &cv.CVCode, &cv.File, &cv.Status, &cv.CreatedAt, &cv.UpdatedAt)
}

func (r *cvRepo) collect(rows pgx.Rows) ([]domain.CV, error) {
	defer rows.Close()
	var cvs []domain.CV
	for rows.Next() {
		var cv domain.CV
		if err := scanCV(rows, &cv); err != nil {
			return nil, err
		}
		cvs = append(cvs, cv)
	}
	return cvs, rows.Err()
}

func (r *cvRepo) Create(ctx context.Context, cv *domain.CV) error {
	query := `INSERT INTO cvs (candidate_id, cv_code, file, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	now := time.Now()
	cv.CreatedAt = now
	cv.UpdatedAt = now

	return translateUnique(r.store.db(ctx).QueryRow(ctx, query,
		cv.CandidateID, cv.CVCode, cv.File, cv.Status, cv.CreatedAt, cv.UpdatedAt,
	).Scan(&cv.ID))
}

func (r *cvRepo) GetByID(ctx context.Context, id int64) (*domain.CV, error) {
	query := `SELECT ` + cvColumns + ` FROM cvs WHERE id = $1`
	var cv domain.CV
	if err := scanCV(r.store.db(ctx).QueryRow(ctx, query, id), &cv); err != nil {
		return nil, translateNoRows(err)
	}
	return &cv, nil
}

func (r *cvRepo) FetchByCandidate(ctx context.Context, candidateID int64) ([]domain.CV, error) {
	query := `SELECT ` + cvColumns + ` FROM cvs WHERE candidate_id = $1 ORDER BY created_at DESC`
	rows, err := r.store.db(ctx).Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *cvRepo) FetchByCandidateAndStatus(ctx context.Context, candidateID int64, status domain.CVStatus) ([]domain.CV, error) {
	query := `SELECT ` + cvColumns + ` FROM cvs WHERE candidate_id = $1 AND status = $2 ORDER BY created_at DESC`
	rows, err := r.store.db(ctx).Query(ctx, query, candidateID, status)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *cvRepo) UpdateStatus(ctx context.Context, id int64, status domain.CVStatus) error {
	query := `UPDATE cvs SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.store.db(ctx).Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *cvRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM cvs WHERE cv_code = $1)`
	var exists bool
	err := r.store.db(ctx).QueryRow(ctx, query, code).Scan(&exists)
	return exists, err
}
