package domain

import (
	"context"
	"time"
)

type CompanyStatus string

const (
	CompanyStatusPending CompanyStatus = "PENDING"
	CompanyStatusActive  CompanyStatus = "ACTIVE"
	CompanyStatusBlocked CompanyStatus = "BLOCKED"
)

func (s CompanyStatus) Valid() bool {
	switch s {
	case CompanyStatusPending, CompanyStatusActive, CompanyStatusBlocked:
		return true
	}
	return false
}

// Company is the employer profile. Exactly one user owns it, and its code
// equals the owning user's code.
type Company struct {
	ID          int64         `json:"id"`
	UserID      int64         `json:"user_id"`
	CompanyCode string        `json:"company_code"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Address     string        `json:"address"`
	Website     string        `json:"website"`
	Email       string        `json:"email"`
	LogoURL     string        `json:"logo_url"`
	Status      CompanyStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id int64) (*Company, error)
	GetByUserID(ctx context.Context, userID int64) (*Company, error)
	Update(ctx context.Context, company *Company) error
	UpdateStatus(ctx context.Context, id int64, status CompanyStatus) error
	ExistsByCode(ctx context.Context, code string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// UpdateCompanyInput carries partial-update fields; nil leaves a field unchanged.
type UpdateCompanyInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	Website     *string `json:"website"`
	LogoURL     *string `json:"logo_url"`
}

type CompanyUsecase interface {
	GetCompanyByID(ctx context.Context, id int64) (*Company, error)
	GetMyProfile(ctx context.Context, username string) (*Company, error)
	UpdateProfile(ctx context.Context, username string, input UpdateCompanyInput) (*Company, error)
	UpdateCompanyStatus(ctx context.Context, id int64, status CompanyStatus) (*Company, error)
}
