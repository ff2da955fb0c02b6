package domain

import (
	"context"
	"time"
)

type CVStatus string

const (
	CVStatusActive CVStatus = "ACTIVE"
	CVStatusHidden CVStatus = "HIDDEN"
)

func (s CVStatus) Valid() bool {
	return s == CVStatusActive || s == CVStatusHidden
}

type CV struct {
	ID          int64     `json:"id"`
	CandidateID int64     `json:"candidate_id"`
	CVCode      string    `json:"cv_code"`
	File        string    `json:"file"` // stored file reference
	Status      CVStatus  `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CVRepository interface {
	Create(ctx context.Context, cv *CV) error
	GetByID(ctx context.Context, id int64) (*CV, error)
	FetchByCandidate(ctx context.Context, candidateID int64) ([]CV, error)
	FetchByCandidateAndStatus(ctx context.Context, candidateID int64, status CVStatus) ([]CV, error)
	UpdateStatus(ctx context.Context, id int64, status CVStatus) error
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

type CVUsecase interface {
	CreateCV(ctx context.Context, username, file string) (*CV, error)
	GetCVByID(ctx context.Context, id int64) (*CV, error)
	ListMyCVs(ctx context.Context, username string) ([]CV, error)
	UpdateCVStatus(ctx context.Context, username string, id int64, status CVStatus) (*CV, error)
	DeleteCV(ctx context.Context, username string, id int64) error
	ListActiveCVs(ctx context.Context, candidateID int64) ([]CV, error)
}
