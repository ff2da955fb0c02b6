package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"jobportal-backend/internal/domain"
	"jobportal-backend/pkg/apperror"
	"jobportal-backend/pkg/codegen"
)

type jobUsecase struct {
	jobRepo      domain.JobRepository
	categoryRepo domain.CategoryRepository
	guard        *Guard
}

func NewJobUsecase(jobRepo domain.JobRepository, categoryRepo domain.CategoryRepository, guard *Guard) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:      jobRepo,
		categoryRepo: categoryRepo,
		guard:        guard,
	}
}

// dateOnly truncates t to its calendar date. Posting-window checks compare
// dates, not instants, so a job starting later today is already open.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func validateJobDates(start, end time.Time) error {
	if dateOnly(start).After(dateOnly(end)) {
		return apperror.BadRequest("Start date cannot be after end date")
	}
	return nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, username string, input domain.CreateJobInput) (*domain.Job, error) {
	company, err := u.guard.ResolveCompany(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := validateJobDates(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}
	if input.Salary <= 0 {
		return nil, apperror.BadRequest("Salary must be greater than zero")
	}
	if input.MaxCandidates < 0 {
		return nil, apperror.BadRequest("Max candidates cannot be negative")
	}
	if _, err := u.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		return nil, apperror.NotFound("Job category not found")
	}

	code, err := codegen.Generate(ctx, codegen.PrefixJob, u.jobRepo.ExistsByCode)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	// A job whose posting window has not opened yet waits; anything
	// already open starts in PENDING until an admin activates it.
	status := domain.JobStatusPending
	if dateOnly(input.StartDate).After(dateOnly(time.Now())) {
		status = domain.JobStatusWait
	}

	job := &domain.Job{
		CompanyID:     company.ID,
		CategoryID:    input.CategoryID,
		JobCode:       code,
		Title:         input.Title,
		Description:   input.Description,
		Requirement:   input.Requirement,
		Salary:        input.Salary,
		Location:      input.Location,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		MaxCandidates: input.MaxCandidates,
		Status:        status,
	}
	if err := u.jobRepo.Create(ctx, job); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("Job code already in use, please retry")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, username string, jobID int64, input domain.UpdateJobInput) (*domain.Job, error) {
	job, _, err := u.guard.AssertJobOwner(ctx, username, jobID)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil && *input.CategoryID != job.CategoryID {
		if _, err := u.categoryRepo.GetByID(ctx, *input.CategoryID); err != nil {
			return nil, apperror.NotFound("Job category not found")
		}
		job.CategoryID = *input.CategoryID
	}
	if input.Title != nil {
		job.Title = *input.Title
	}
	if input.Description != nil {
		job.Description = *input.Description
	}
	if input.Requirement != nil {
		job.Requirement = *input.Requirement
	}
	if input.Salary != nil {
		if *input.Salary <= 0 {
			return nil, apperror.BadRequest("Salary must be greater than zero")
		}
		job.Salary = *input.Salary
	}
	if input.Location != nil {
		job.Location = *input.Location
	}
	if input.StartDate != nil {
		job.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		job.EndDate = *input.EndDate
	}
	if input.MaxCandidates != nil {
		if *input.MaxCandidates < 0 {
			return nil, apperror.BadRequest("Max candidates cannot be negative")
		}
		job.MaxCandidates = *input.MaxCandidates
	}

	if err := validateJobDates(job.StartDate, job.EndDate); err != nil {
		return nil, err
	}

	if err := u.jobRepo.Update(ctx, job); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

// UpdateJobStatus overwrites the job status without transition rules. Any
// tightening of the status graph belongs here and nowhere else.
func (u *jobUsecase) UpdateJobStatus(ctx context.Context, username string, jobID int64, status domain.JobStatus) (*domain.Job, error) {
	if !status.Valid() {
		return nil, apperror.BadRequest("Invalid job status")
	}
	job, _, err := u.guard.AssertJobOwner(ctx, username, jobID)
	if err != nil {
		return nil, err
	}
	if err := u.jobRepo.UpdateStatus(ctx, jobID, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	job.Status = status
	return job, nil
}

// DeleteJob hides the job instead of removing the row, so existing
// applications keep their reference.
func (u *jobUsecase) DeleteJob(ctx context.Context, username string, jobID int64) error {
	if _, _, err := u.guard.AssertJobOwner(ctx, username, jobID); err != nil {
		return err
	}
	if err := u.jobRepo.UpdateStatus(ctx, jobID, domain.JobStatusHidden); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *jobUsecase) GetJobByID(ctx context.Context, jobID int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, apperror.NotFound("Job not found")
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, status *domain.JobStatus) ([]domain.Job, error) {
	if status != nil && !status.Valid() {
		return nil, apperror.BadRequest("Invalid job status")
	}
	jobs, err := u.jobRepo.Fetch(ctx, status)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *jobUsecase) ListJobsByCompany(ctx context.Context, companyID int64) ([]domain.Job, error) {
	jobs, err := u.jobRepo.FetchByCompany(ctx, companyID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *jobUsecase) ListMyJobs(ctx context.Context, username string) ([]domain.Job, error) {
	company, err := u.guard.ResolveCompany(ctx, username)
	if err != nil {
		return nil, err
	}
	jobs, err := u.jobRepo.FetchByCompany(ctx, company.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *jobUsecase) ListJobsByCategory(ctx context.Context, categoryID int64) ([]domain.Job, error) {
	jobs, err := u.jobRepo.FetchByCategory(ctx, categoryID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *jobUsecase) SearchJobs(ctx context.Context, keyword string) ([]domain.Job, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, apperror.BadRequest("Search keyword is required")
	}
	jobs, err := u.jobRepo.Search(ctx, keyword)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *jobUsecase) FilterJobsBySalary(ctx context.Context, minSalary, maxSalary float64) ([]domain.Job, error) {
	if minSalary < 0 || maxSalary < minSalary {
		return nil, apperror.BadRequest("Invalid salary range")
	}
	jobs, err := u.jobRepo.FetchBySalaryRange(ctx, minSalary, maxSalary)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}
