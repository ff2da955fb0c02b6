package usecase

import (
	"context"
	"errors"
	"time"

	"jobportal-backend/internal/domain"
	"jobportal-backend/pkg/apperror"
)

type savedJobUsecase struct {
	savedJobRepo domain.SavedJobRepository
	jobRepo      domain.JobRepository
	guard        *Guard
}

func NewSavedJobUsecase(savedJobRepo domain.SavedJobRepository, jobRepo domain.JobRepository, guard *Guard) domain.SavedJobUsecase {
	return &savedJobUsecase{
		savedJobRepo: savedJobRepo,
		jobRepo:      jobRepo,
		guard:        guard,
	}
}

// SaveJob bookmarks a job. Bookmarks carry no status; saving an already
// saved job is rejected, any job that exists can be saved.
func (u *savedJobUsecase) SaveJob(ctx context.Context, username string, jobID int64) (*domain.SavedJob, error) {
	candidate, err := u.guard.ResolveCandidate(ctx, username)
	if err != nil {
		return nil, err
	}
	if _, err := u.jobRepo.GetByID(ctx, jobID); err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	saved, err := u.savedJobRepo.ExistsByCandidateAndJob(ctx, candidate.ID, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if saved {
		return nil, apperror.BadRequest("Job is already saved")
	}
	savedJob := &domain.SavedJob{
		CandidateID: candidate.ID,
		JobID:       jobID,
		SavedTime:   time.Now(),
	}
	if err := u.savedJobRepo.Create(ctx, savedJob); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.BadRequest("Job is already saved")
		}
		return nil, apperror.Internal(err)
	}
	return savedJob, nil
}

func (u *savedJobUsecase) ListMySavedJobs(ctx context.Context, username string) ([]domain.SavedJob, error) {
	candidate, err := u.guard.ResolveCandidate(ctx, username)
	if err != nil {
		return nil, err
	}
	savedJobs, err := u.savedJobRepo.FetchByCandidate(ctx, candidate.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return savedJobs, nil
}

func (u *savedJobUsecase) UnsaveJob(ctx context.Context, username string, jobID int64) error {
	candidate, err := u.guard.ResolveCandidate(ctx, username)
	if err != nil {
		return err
	}
	savedJob, err := u.savedJobRepo.GetByCandidateAndJob(ctx, candidate.ID, jobID)
	if err != nil {
		return apperror.NotFound("Saved job not found")
	}
	if err := u.savedJobRepo.Delete(ctx, savedJob.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Saved job not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *savedJobUsecase) IsJobSaved(ctx context.Context, username string, jobID int64) (bool, error) {
	candidate, err := u.guard.ResolveCandidate(ctx, username)
	if err != nil {
		return false, err
	}
	saved, err := u.savedJobRepo.ExistsByCandidateAndJob(ctx, candidate.ID, jobID)
	if err != nil {
		return false, apperror.Internal(err)
	}
	return saved, nil
}
