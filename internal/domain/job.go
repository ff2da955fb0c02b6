package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound = errors.New("resource not found")
	// ErrDuplicate is returned when a storage unique constraint rejects a
	// write; it signals a lost uniqueness race.
	ErrDuplicate = errors.New("duplicate resource")
)

type JobStatus string

const (
	JobStatusPending JobStatus = "PENDING"
	JobStatusWait    JobStatus = "WAIT"
	JobStatusActive  JobStatus = "ACTIVE"
	JobStatusClosed  JobStatus = "CLOSED"
	JobStatusHidden  JobStatus = "HIDDEN"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPending, JobStatusWait, JobStatusActive, JobStatusClosed, JobStatusHidden:
		return true
	}
	return false
}

type Job struct {
	ID            int64     `json:"id"`
	CompanyID     int64     `json:"company_id"`
	CategoryID    int64     `json:"category_id"`
	JobCode       string    `json:"job_code"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Requirement   string    `json:"requirement"`
	Salary        float64   `json:"salary"`
	Location      string    `json:"location"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	MaxCandidates int       `json:"max_candidates"`
	Status        JobStatus `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	Fetch(ctx context.Context, status *JobStatus) ([]Job, error)
	FetchByCompany(ctx context.Context, companyID int64) ([]Job, error)
	FetchByCategory(ctx context.Context, categoryID int64) ([]Job, error)
	Search(ctx context.Context, keyword string) ([]Job, error)
	FetchBySalaryRange(ctx context.Context, minSalary, maxSalary float64) ([]Job, error)
	Update(ctx context.Context, job *Job) error
	UpdateStatus(ctx context.Context, id int64, status JobStatus) error
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type CreateJobInput struct {
	CategoryID    int64     `json:"category_id" validate:"required"`
	Title         string    `json:"title" validate:"required"`
	Description   string    `json:"description"`
	Requirement   string    `json:"requirement"`
	Salary        float64   `json:"salary" validate:"gt=0"`
	Location      string    `json:"location"`
	StartDate     time.Time `json:"start_date" validate:"required"`
	EndDate       time.Time `json:"end_date" validate:"required"`
	MaxCandidates int       `json:"max_candidates" validate:"gte=0"`
}

// UpdateJobInput carries partial-update fields; nil leaves a field unchanged.
type UpdateJobInput struct {
	CategoryID    *int64     `json:"category_id"`
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	Requirement   *string    `json:"requirement"`
	Salary        *float64   `json:"salary"`
	Location      *string    `json:"location"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	MaxCandidates *int       `json:"max_candidates"`
}

type JobUsecase interface {
	CreateJob(ctx context.Context, username string, input CreateJobInput) (*Job, error)
	UpdateJob(ctx context.Context, username string, jobID int64, input UpdateJobInput) (*Job, error)
	UpdateJobStatus(ctx context.Context, username string, jobID int64, status JobStatus) (*Job, error)
	DeleteJob(ctx context.Context, username string, jobID int64) error
	GetJobByID(ctx context.Context, jobID int64) (*Job, error)
	ListJobs(ctx context.Context, status *JobStatus) ([]Job, error)
	ListJobsByCompany(ctx context.Context, companyID int64) ([]Job, error)
	ListMyJobs(ctx context.Context, username string) ([]Job, error)
	ListJobsByCategory(ctx context.Context, categoryID int64) ([]Job, error)
	SearchJobs(ctx context.Context, keyword string) ([]Job, error)
	FilterJobsBySalary(ctx context.Context, minSalary, maxSalary float64) ([]Job, error)
}
