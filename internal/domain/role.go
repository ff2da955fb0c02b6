package domain

import (
	"context"
	"time"
)

// Role is the closed set of account roles. Role-gated behavior is always
// checked against these constants, never against raw strings.
type Role string

const (
	RoleAdmin     Role = "ADM"
	RoleEmployer  Role = "DN"
	RoleCandidate Role = "UV"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployer, RoleCandidate:
		return true
	}
	return false
}

// RoleRecord is the seeded roles row. The set is fixed after seeding.
type RoleRecord struct {
	ID        int64     `json:"id"`
	Code      Role      `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RoleRepository interface {
	Create(ctx context.Context, role *RoleRecord) error
	GetByCode(ctx context.Context, code Role) (*RoleRecord, error)
	Count(ctx context.Context) (int64, error)
}
