package usecase

import (
	"context"
	"errors"
	"strings"

	"jobportal-backend/internal/domain"
	"jobportal-backend/pkg/apperror"
	"jobportal-backend/pkg/codegen"
)

type cvUsecase struct {
	cvRepo domain.CVRepository
	guard  *Guard
}

func NewCVUsecase(cvRepo domain.CVRepository, guard *Guard) domain.CVUsecase {
	return &cvUsecase{cvRepo: cvRepo, guard: guard}
}

func (u *cvUsecase) CreateCV(ctx context.Context, username, file string) (*domain.CV, error) {
	if strings.TrimSpace(file) == "" {
		return nil, apperror.BadRequest("CV file is required")
	}
	candidate, err := u.guard.ResolveCandidate(ctx, username)
	if err != nil {
		return nil, err
	}
	code, err := codegen.Generate(ctx, codegen.PrefixCV, u.cvRepo.ExistsByCode)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	cv := &domain.CV{
		CandidateID: candidate.ID,
		CVCode:      code,
		File:        file,
		Status:      domain.CVStatusActive,
	}
	if err := u.cvRepo.Create(ctx, cv); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("CV code already in use, please retry")
		}
		return nil, apperror.Internal(err)
	}
	return cv, nil
}

func (u *cvUsecase) GetCVByID(ctx context.Context, id int64) (*domain.CV, error) {
	cv, err := u.cvRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("CV not found")
	}
	return cv, nil
}

func (u *cvUsecase) ListMyCVs(ctx context.Context, username string) ([]domain.CV, error) {
	candidate, err := u.guard.ResolveCandidate(ctx, username)
	if err != nil {
		return nil, err
	}
	cvs, err := u.cvRepo.FetchByCandidate(ctx, candidate.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return cvs, nil
}

func (u *cvUsecase) UpdateCVStatus(ctx context.Context, username string, id int64, status domain.CVStatus) (*domain.CV, error) {
	if !status.Valid() {
		return nil, apperror.BadRequest("Invalid CV status")
	}
	cv, err := u.cvRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("CV not found")
	}
	if _, err := u.guard.AssertCVOwner(ctx, username, cv); err != nil {
		return nil, err
	}
	if err := u.cvRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("CV not found")
		}
		return nil, apperror.Internal(err)
	}
	cv.Status = status
	return cv, nil
}

// DeleteCV hides the CV rather than removing it; applications submitted
// with it stay intact.
func (u *cvUsecase) DeleteCV(ctx context.Context, username string, id int64) error {
	cv, err := u.cvRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.NotFound("CV not found")
	}
	if _, err := u.guard.AssertCVOwner(ctx, username, cv); err != nil {
		return err
	}
	if err := u.cvRepo.UpdateStatus(ctx, id, domain.CVStatusHidden); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("CV not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *cvUsecase) ListActiveCVs(ctx context.Context, candidateID int64) ([]domain.CV, error) {
	cvs, err := u.cvRepo.FetchByCandidateAndStatus(ctx, candidateID, domain.CVStatusActive)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return cvs, nil
}
