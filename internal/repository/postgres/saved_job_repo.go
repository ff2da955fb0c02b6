package postgres

import (
	"context"

	"jobportal-backend/internal/domain"
)

type savedJobRepo struct {
	store *Store
}

func NewSavedJobRepository(store *Store) domain.SavedJobRepository {
	return &savedJobRepo{store: store}
}

func (r *savedJobRepo) Create(ctx context.Context, savedJob *domain.SavedJob) error {
	query := `INSERT INTO saved_jobs (candidate_id, job_id, saved_time)
              VALUES ($1, $2, $3) RETURNING id`

	return translateUnique(r.store.db(ctx).QueryRow(ctx, query,
		savedJob.CandidateID, savedJob.JobID, savedJob.SavedTime,
	).Scan(&savedJob.ID))
}

func (r *savedJobRepo) FetchByCandidate(ctx context.Context, candidateID int64) ([]domain.SavedJob, error) {
	query := `SELECT sj.id, sj.candidate_id, sj.job_id, sj.saved_time, j.title
              FROM saved_jobs sj
              JOIN jobs j ON sj.job_id = j.id
              WHERE sj.candidate_id = $1
              ORDER BY sj.saved_time DESC`

	rows, err := r.store.db(ctx).Query(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var savedJobs []domain.SavedJob
	for rows.Next() {
		var sj domain.SavedJob
		if err := rows.Scan(&sj.ID, &sj.CandidateID, &sj.JobID, &sj.SavedTime, &sj.JobTitle); err != nil {
			return nil, err
		}
		savedJobs = append(savedJobs, sj)
	}
	return savedJobs, rows.Err()
}

func (r *savedJobRepo) GetByCandidateAndJob(ctx context.Context, candidateID, jobID int64) (*domain.SavedJob, error) {
	query := `SELECT id, candidate_id, job_id, saved_time FROM saved_jobs WHERE candidate_id = $1 AND job_id = $2`

	var sj domain.SavedJob
	err := r.store.db(ctx).QueryRow(ctx, query, candidateID, jobID).Scan(
		&sj.ID, &sj.CandidateID, &sj.JobID, &sj.SavedTime,
	)
	if err != nil {
		return nil, translateNoRows(err)
	}
	return &sj, nil
}

func (r *savedJobRepo) ExistsByCandidateAndJob(ctx context.Context, candidateID, jobID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM saved_jobs WHERE candidate_id = $1 AND job_id = $2)`
	var exists bool
	err := r.store.db(ctx).QueryRow(ctx, query, candidateID, jobID).Scan(&exists)
	return exists, err
}

func (r *savedJobRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.store.db(ctx).Exec(ctx, `DELETE FROM saved_jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
