package postgres

import (
	"context"
	"time"

	"jobportal-backend/internal/domain"
)

type candidateRepo struct {
	store *Store
}

func NewCandidateRepository(store *Store) domain.CandidateRepository {
	return &candidateRepo{store: store}
}

const candidateColumns = `id, user_id, candidate_code, name, description, gender, birthdate, phone, email, education, experience, skills, created_at, updated_at`

func scanCandidate(row interface{ Scan(dest ...any) error }, c *domain.Candidate) error {
	return row.Scan(
		&c.ID, &c.UserID, &c.CandidateCode, &c.Name, &c.Description, &c.Gender,
		&c.Birthdate, &c.Phone, &c.Email, &c.Education, &c.Experience, &c.Skills,
		&c.CreatedAt, &c.UpdatedAt,
	)
}

func (r *candidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	query := `INSERT INTO candidates (user_id, candidate_code, name, description, gender, birthdate, phone, email, education, experience, skills, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`

	now := time.Now()
	candidate.CreatedAt = now
	candidate.UpdatedAt = now

	return translateUnique(r.store.db(ctx).QueryRow(ctx, query,
		candidate.UserID, candidate.CandidateCode, candidate.Name, candidate.Description,
		candidate.Gender, candidate.Birthdate, candidate.Phone, candidate.Email,
		candidate.Education, candidate.Experience, candidate.Skills,
		candidate.CreatedAt, candidate.UpdatedAt,
	).Scan(&candidate.ID))
}

func (r *candidateRepo) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	var candidate domain.Candidate
	if err := scanCandidate(r.store.db(ctx).QueryRow(ctx, query, id), &candidate); err != nil {
		return nil, translateNoRows(err)
	}
	return &candidate, nil
}

func (r *candidateRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE user_id = $1`
	var candidate domain.Candidate
	if err := scanCandidate(r.store.db(ctx).QueryRow(ctx, query, userID), &candidate); err != nil {
		return nil, translateNoRows(err)
	}
	return &candidate, nil
}

func (r *candidateRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM candidates WHERE candidate_code = $1)`
	var exists bool
	err := r.store.db(ctx).QueryRow(ctx, query, code).Scan(&exists)
	return exists, err
}

func (r *candidateRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM candidates WHERE email = $1)`
	var exists bool
	err := r.store.db(ctx).QueryRow(ctx, query, email).Scan(&exists)
	return exists, err
}

func (r *candidateRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.store.db(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&total)
	return total, err
}
