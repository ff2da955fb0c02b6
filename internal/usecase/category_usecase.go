package usecase

import (
	"context"
	"errors"

	"jobportal-backend/internal/domain"
	"jobportal-backend/pkg/apperror"
)

type categoryUsecase struct {
	categoryRepo domain.CategoryRepository
}

func NewCategoryUsecase(categoryRepo domain.CategoryRepository) domain.CategoryUsecase {
	return &categoryUsecase{categoryRepo: categoryRepo}
}

func (u *categoryUsecase) CreateCategory(ctx context.Context, input domain.CreateCategoryInput) (*domain.JobCategory, error) {
	if input.BaseSalary <= 0 {
		return nil, apperror.BadRequest("Base salary must be greater than zero")
	}
	taken, err := u.categoryRepo.ExistsByName(ctx, input.Name)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if taken {
		return nil, apperror.BadRequest("Category name already exists")
	}
	category := &domain.JobCategory{
		Name:        input.Name,
		Description: input.Description,
		BaseSalary:  input.BaseSalary,
	}
	if err := u.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.BadRequest("Category name already exists")
		}
		return nil, apperror.Internal(err)
	}
	return category, nil
}

func (u *categoryUsecase) UpdateCategory(ctx context.Context, id int64, input domain.CreateCategoryInput) (*domain.JobCategory, error) {
	if input.BaseSalary <= 0 {
		return nil, apperror.BadRequest("Base salary must be greater than zero")
	}
	category, err := u.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Category not found")
	}
	if input.Name != category.Name {
		taken, err := u.categoryRepo.ExistsByName(ctx, input.Name)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if taken {
			return nil, apperror.BadRequest("Category name already exists")
		}
	}
	category.Name = input.Name
	category.Description = input.Description
	category.BaseSalary = input.BaseSalary
	if err := u.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.BadRequest("Category name already exists")
		}
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Category not found")
		}
		return nil, apperror.Internal(err)
	}
	return category, nil
}

func (u *categoryUsecase) GetCategoryByID(ctx context.Context, id int64) (*domain.JobCategory, error) {
	category, err := u.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Category not found")
	}
	return category, nil
}

func (u *categoryUsecase) ListCategories(ctx context.Context) ([]domain.JobCategory, error) {
	categories, err := u.categoryRepo.Fetch(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return categories, nil
}
