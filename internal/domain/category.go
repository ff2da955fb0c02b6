package domain

import (
	"context"
	"time"
)

type JobCategory struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	BaseSalary  float64   `json:"base_salary"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CategoryRepository interface {
	Create(ctx context.Context, category *JobCategory) error
	Update(ctx context.Context, category *JobCategory) error
	GetByID(ctx context.Context, id int64) (*JobCategory, error)
	Fetch(ctx context.Context) ([]JobCategory, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type CreateCategoryInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	BaseSalary  float64 `json:"base_salary" validate:"required,gt=0"`
}

type CategoryUsecase interface {
	CreateCategory(ctx context.Context, input CreateCategoryInput) (*JobCategory, error)
	UpdateCategory(ctx context.Context, id int64, input CreateCategoryInput) (*JobCategory, error)
	GetCategoryByID(ctx context.Context, id int64) (*JobCategory, error)
	ListCategories(ctx context.Context) ([]JobCategory, error)
}
