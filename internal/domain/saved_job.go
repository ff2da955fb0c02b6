package domain

import (
	"context"
	"time"
)

// SavedJob is a pure bookmark: at most one per (candidate, job) pair.
type SavedJob struct {
	ID          int64     `json:"id"`
	CandidateID int64     `json:"candidate_id"`
	JobID       int64     `json:"job_id"`
	SavedTime   time.Time `json:"saved_time"`

	// Joined data for list responses
	JobTitle string `json:"job_title,omitempty"`
}

type SavedJobRepository interface {
	Create(ctx context.Context, savedJob *SavedJob) error
	FetchByCandidate(ctx context.Context, candidateID int64) ([]SavedJob, error)
	GetByCandidateAndJob(ctx context.Context, candidateID, jobID int64) (*SavedJob, error)
	ExistsByCandidateAndJob(ctx context.Context, candidateID, jobID int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type SavedJobUsecase interface {
	SaveJob(ctx context.Context, username string, jobID int64) (*SavedJob, error)
	ListMySavedJobs(ctx context.Context, username string) ([]SavedJob, error)
	UnsaveJob(ctx context.Context, username string, jobID int64) error
	IsJobSaved(ctx context.Context, username string, jobID int64) (bool, error)
}
