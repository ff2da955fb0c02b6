package usecase

import (
	"context"
	"errors"
	"time"

	"jobportal-backend/internal/domain"
	"jobportal-backend/pkg/apperror"
	"jobportal-backend/pkg/codegen"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	cvRepo          domain.CVRepository
	txManager       domain.TxManager
	guard           *Guard
}

func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	cvRepo domain.CVRepository,
	txManager domain.TxManager,
	guard *Guard,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		cvRepo:          cvRepo,
		txManager:       txManager,
		guard:           guard,
	}
}

// ApplyToJob runs the apply preconditions in a fixed order so callers get
// stable error messages: profile, job, posting status, posting window, CV,
// CV ownership, CV status, then the one-application-per-job rule.
func (u *applicationUsecase) ApplyToJob(ctx context.Context, username string, jobID, cvID int64) (*domain.Application, error) {
	candidate, err := u.guard.ResolveCandidate(ctx, username)
	if err != nil {
		return nil, err
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	if job.Status != domain.JobStatusActive {
		return nil, apperror.BadRequest("Job is not open for applications")
	}
	today := dateOnly(time.Now())
	if today.Before(dateOnly(job.StartDate)) || today.After(dateOnly(job.EndDate)) {
		return nil, apperror.BadRequest("Job application period is not open")
	}

	cv, err := u.cvRepo.GetByID(ctx, cvID)
	if err != nil {
		return nil, apperror.NotFound("CV not found")
	}
	if cv.CandidateID != candidate.ID {
		return nil, apperror.BadRequest("CV does not belong to you")
	}
	if cv.Status != domain.CVStatusActive {
		return nil, apperror.BadRequest("CV is not active")
	}

	applied, err := u.applicationRepo.ExistsByJobAndCandidate(ctx, jobID, candidate.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if applied {
		return nil, apperror.BadRequest("You have already applied to this job")
	}

	code, err := codegen.Generate(ctx, codegen.PrefixApplication, u.applicationRepo.ExistsByCode)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	app := &domain.Application{
		JobID:           jobID,
		CVID:            cvID,
		CandidateID:     candidate.ID,
		ApplicationCode: code,
		ApplyTime:       time.Now(),
		Status:          domain.ApplicationStatusPending,
	}
	err = u.txManager.WithinTx(ctx, func(ctx context.Context) error {
		return u.applicationRepo.Create(ctx, app)
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			// Lost the race against a concurrent apply for the same pair.
			return nil, apperror.BadRequest("You have already applied to this job")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}

func (u *applicationUsecase) GetApplicationByID(ctx context.Context, id int64) (*domain.Application, error) {
	app, err := u.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Application not found")
	}
	return app, nil
}

func (u *applicationUsecase) ListApplicationsByJob(ctx context.Context, username string, jobID int64) ([]domain.Application, error) {
	if _, _, err := u.guard.AssertJobOwner(ctx, username, jobID); err != nil {
		return nil, err
	}
	apps, err := u.applicationRepo.FetchByJob(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (u *applicationUsecase) ListApplicationsByJobAndStatus(ctx context.Context, username string, jobID int64, status domain.ApplicationStatus) ([]domain.Application, error) {
	if !status.Valid() {
		return nil, apperror.BadRequest("Invalid application status")
	}
	if _, _, err := u.guard.AssertJobOwner(ctx, username, jobID); err != nil {
		return nil, err
	}
	apps, err := u.applicationRepo.FetchByJobAndStatus(ctx, jobID, status)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (u *applicationUsecase) ListMyApplications(ctx context.Context, username string) ([]domain.Application, error) {
	candidate, err := u.guard.ResolveCandidate(ctx, username)
	if err != nil {
		return nil, err
	}
	apps, err := u.applicationRepo.FetchByCandidate(ctx, candidate.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// UpdateApplicationStatus lets the employer that owns the job move the
// application to any status, including back to PENDING.
func (u *applicationUsecase) UpdateApplicationStatus(ctx context.Context, username string, id int64, status domain.ApplicationStatus) (*domain.Application, error) {
	if !status.Valid() {
		return nil, apperror.BadRequest("Invalid application status")
	}
	app, err := u.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Application not found")
	}
	if _, _, err := u.guard.AssertJobOwner(ctx, username, app.JobID); err != nil {
		return nil, err
	}
	if err := u.applicationRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	app.Status = status
	return app, nil
}
