package domain

import (
	"context"
	"time"
)

type User struct {
	ID           int64     `json:"id"`
	UserCode     string    `json:"user_code"`
	Username     string    `json:"username"` // email-shaped login name
	PasswordHash string    `json:"-"`
	RoleID       int64     `json:"role_id"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type RegisterCompanyInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	CompanyName string `json:"company_name" validate:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Website     string `json:"website"`
	LogoURL     string `json:"logo_url"`
}

type RegisterCandidateInput struct {
	Email       string     `json:"email" validate:"required,email"`
	Password    string     `json:"password" validate:"required,min=8"`
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Gender      Gender     `json:"gender"`
	Birthdate   *time.Time `json:"birthdate"`
	Phone       string     `json:"phone"`
	Education   string     `json:"education"`
	Experience  string     `json:"experience"`
	Skills      string     `json:"skills"`
}

// AuthResult is the projection returned after registration or login.
type AuthResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	UserCode string `json:"user_code"`
	Role     Role   `json:"role"`
	RoleName string `json:"role_name"`
	Message  string `json:"message"`
}

type AuthUsecase interface {
	RegisterCompany(ctx context.Context, input RegisterCompanyInput) (*AuthResult, error)
	RegisterCandidate(ctx context.Context, input RegisterCandidateInput) (*AuthResult, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	GetCurrentUser(ctx context.Context, username string) (*User, error)
}
