package domain

import (
	"context"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// Candidate is the job-seeker profile. Exactly one user owns it, and its
// code equals the owning user's code.
type Candidate struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"user_id"`
	CandidateCode string     `json:"candidate_code"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Gender        Gender     `json:"gender"`
	Birthdate     *time.Time `json:"birthdate"`
	Phone         string     `json:"phone"`
	Email         string     `json:"email"`
	Education     string     `json:"education"`
	Experience    string     `json:"experience"`
	Skills        string     `json:"skills"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type CandidateRepository interface {
	Create(ctx context.Context, candidate *Candidate) error
	GetByID(ctx context.Context, id int64) (*Candidate, error)
	GetByUserID(ctx context.Context, userID int64) (*Candidate, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int64, error)
}
