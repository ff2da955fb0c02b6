package usecase

import (
	"context"
	"errors"

	"jobportal-backend/internal/domain"
	"jobportal-backend/pkg/apperror"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
	guard       *Guard
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository, guard *Guard) domain.CompanyUsecase {
	return &companyUsecase{companyRepo: companyRepo, guard: guard}
}

func (u *companyUsecase) GetCompanyByID(ctx context.Context, id int64) (*domain.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Company not found")
	}
	return company, nil
}

func (u *companyUsecase) GetMyProfile(ctx context.Context, username string) (*domain.Company, error) {
	return u.guard.ResolveCompany(ctx, username)
}

func (u *companyUsecase) UpdateProfile(ctx context.Context, username string, input domain.UpdateCompanyInput) (*domain.Company, error) {
	company, err := u.guard.ResolveCompany(ctx, username)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		company.Name = *input.Name
	}
	if input.Description != nil {
		company.Description = *input.Description
	}
	if input.Address != nil {
		company.Address = *input.Address
	}
	if input.Website != nil {
		company.Website = *input.Website
	}
	if input.LogoURL != nil {
		company.LogoURL = *input.LogoURL
	}
	if err := u.companyRepo.Update(ctx, company); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, apperror.Internal(err)
	}
	return company, nil
}

// UpdateCompanyStatus is the admin moderation endpoint; the role check
// happens in the delivery layer.
func (u *companyUsecase) UpdateCompanyStatus(ctx context.Context, id int64, status domain.CompanyStatus) (*domain.Company, error) {
	if !status.Valid() {
		return nil, apperror.BadRequest("Invalid company status")
	}
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Company not found")
	}
	if err := u.companyRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, apperror.Internal(err)
	}
	company.Status = status
	return company, nil
}
