package usecase

import (
	"context"

	"jobportal-backend/internal/domain"
	"jobportal-backend/pkg/apperror"
)

// Guard resolves the acting user's profile and asserts resource ownership.
// All checks are pure reads; usecases call them before any scoped or
// mutating operation.
type Guard struct {
	userRepo      domain.UserRepository
	companyRepo   domain.CompanyRepository
	candidateRepo domain.CandidateRepository
	jobRepo       domain.JobRepository
}

func NewGuard(
	userRepo domain.UserRepository,
	companyRepo domain.CompanyRepository,
	candidateRepo domain.CandidateRepository,
	jobRepo domain.JobRepository,
) *Guard {
	return &Guard{
		userRepo:      userRepo,
		companyRepo:   companyRepo,
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
	}
}

// ResolveCompany returns the company profile owned by the named user.
func (g *Guard) ResolveCompany(ctx context.Context, username string) (*domain.Company, error) {
	user, err := g.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperror.NotFound("User not found")
	}
	company, err := g.companyRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, apperror.NotFound("Company profile not found")
	}
	return company, nil
}

// ResolveCandidate returns the candidate profile owned by the named user.
func (g *Guard) ResolveCandidate(ctx context.Context, username string) (*domain.Candidate, error) {
	user, err := g.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperror.NotFound("User not found")
	}
	candidate, err := g.candidateRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, apperror.NotFound("Candidate profile not found")
	}
	return candidate, nil
}

// AssertJobOwner checks that the named user's company owns the job and
// returns both on success.
func (g *Guard) AssertJobOwner(ctx context.Context, username string, jobID int64) (*domain.Job, *domain.Company, error) {
	company, err := g.ResolveCompany(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	job, err := g.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, nil, apperror.NotFound("Job not found")
	}
	if job.CompanyID != company.ID {
		return nil, nil, apperror.Forbidden("You do not own this job")
	}
	return job, company, nil
}

// AssertCVOwner checks that the CV belongs to the named user's candidate
// profile and returns both on success.
func (g *Guard) AssertCVOwner(ctx context.Context, username string, cv *domain.CV) (*domain.Candidate, error) {
	candidate, err := g.ResolveCandidate(ctx, username)
	if err != nil {
		return nil, err
	}
	if cv.CandidateID != candidate.ID {
		return nil, apperror.Forbidden("You do not own this CV")
	}
	return candidate, nil
}
