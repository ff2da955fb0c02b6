package domain

import (
	"context"
	"time"
)

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusApproved ApplicationStatus = "APPROVED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application links a job and a CV (and transitively the CV's candidate).
// At most one application exists per (job, candidate) pair.
type Application struct {
	ID              int64             `json:"id"`
	JobID           int64             `json:"job_id"`
	CVID            int64             `json:"cv_id"`
	CandidateID     int64             `json:"candidate_id"`
	ApplicationCode string            `json:"application_code"`
	ApplyTime       time.Time         `json:"apply_time"`
	Status          ApplicationStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`

	// Joined data for list responses
	CandidateName string `json:"candidate_name,omitempty"`
	JobTitle      string `json:"job_title,omitempty"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	FetchByJob(ctx context.Context, jobID int64) ([]Application, error)
	FetchByJobAndStatus(ctx context.Context, jobID int64, status ApplicationStatus) ([]Application, error)
	FetchByCandidate(ctx context.Context, candidateID int64) ([]Application, error)
	ExistsByJobAndCandidate(ctx context.Context, jobID, candidateID int64) (bool, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status ApplicationStatus) error
}

type ApplicationUsecase interface {
	ApplyToJob(ctx context.Context, username string, jobID, cvID int64) (*Application, error)
	GetApplicationByID(ctx context.Context, id int64) (*Application, error)
	ListApplicationsByJob(ctx context.Context, username string, jobID int64) ([]Application, error)
	ListApplicationsByJobAndStatus(ctx context.Context, username string, jobID int64, status ApplicationStatus) ([]Application, error)
	ListMyApplications(ctx context.Context, username string) ([]Application, error)
	UpdateApplicationStatus(ctx context.Context, username string, id int64, status ApplicationStatus) (*Application, error)
}
