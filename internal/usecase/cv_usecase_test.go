package usecase_test

import (
	"context"
	"testing"

	"jobportal-backend/internal/domain"
	"jobportal-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func candidateGuardFixture(userRepo *MockUserRepo, candidateRepo *MockCandidateRepo) *usecase.Guard {
	userRepo.On("GetByUsername", mock.Anything, "seeker@mail.test").Return(&domain.User{ID: 2, Username: "seeker@mail.test", Role: domain.RoleCandidate}, nil)
	candidateRepo.On("GetByUserID", mock.Anything, int64(2)).Return(&domain.Candidate{ID: 20, UserID: 2, CandidateCode: "UV00000020"}, nil)
	return usecase.NewGuard(userRepo, new(MockCompanyRepo), candidateRepo, new(MockJobRepo))
}

func TestCreateCV(t *testing.T) {
	t.Run("new CV starts active with a CV code", func(t *testing.T) {
		cvRepo := new(MockCVRepo)
		cvRepo.On("ExistsByCode", mock.Anything, mock.Anything).Return(false, nil)
		cvRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.CV")).Return(nil)
		guard := candidateGuardFixture(new(MockUserRepo), new(MockCandidateRepo))
		uc := usecase.NewCVUsecase(cvRepo, guard)

		cv, err := uc.CreateCV(context.Background(), "seeker@mail.test", "cv/jane.pdf")
		assert.NoError(t, err)
		assert.Equal(t, domain.CVStatusActive, cv.Status)
		assert.Equal(t, int64(20), cv.CandidateID)
		assert.Regexp(t, `^CV\d{8}$`, cv.CVCode)
	})

	t.Run("empty file reference is rejected", func(t *testing.T) {
		uc := usecase.NewCVUsecase(new(MockCVRepo), candidateGuardFixture(new(MockUserRepo), new(MockCandidateRepo)))
		_, err := uc.CreateCV(context.Background(), "seeker@mail.test", "   ")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "CV file is required")
	})
}

func TestDeleteCVHidesInsteadOfRemoving(t *testing.T) {
	cvRepo := new(MockCVRepo)
	cvRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.CV{ID: 5, CandidateID: 20, Status: domain.CVStatusActive}, nil)
	cvRepo.On("UpdateStatus", mock.Anything, int64(5), domain.CVStatusHidden).Return(nil)
	uc := usecase.NewCVUsecase(cvRepo, candidateGuardFixture(new(MockUserRepo), new(MockCandidateRepo)))

	err := uc.DeleteCV(context.Background(), "seeker@mail.test", 5)
	assert.NoError(t, err)
	cvRepo.AssertCalled(t, "UpdateStatus", mock.Anything, int64(5), domain.CVStatusHidden)
}

func TestCVOwnership(t *testing.T) {
	cvRepo := new(MockCVRepo)
	cvRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.CV{ID: 5, CandidateID: 999}, nil)
	uc := usecase.NewCVUsecase(cvRepo, candidateGuardFixture(new(MockUserRepo), new(MockCandidateRepo)))

	t.Run("cannot hide someone else's CV", func(t *testing.T) {
		_, err := uc.UpdateCVStatus(context.Background(), "seeker@mail.test", 5, domain.CVStatusHidden)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "You do not own this CV")
	})

	t.Run("cannot delete someone else's CV", func(t *testing.T) {
		err := uc.DeleteCV(context.Background(), "seeker@mail.test", 5)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "You do not own this CV")
	})
}

func TestListActiveCVs(t *testing.T) {
	cvRepo := new(MockCVRepo)
	cvRepo.On("FetchByCandidateAndStatus", mock.Anything, int64(20), domain.CVStatusActive).Return([]domain.CV{{ID: 5, Status: domain.CVStatusActive}}, nil)
	uc := usecase.NewCVUsecase(cvRepo, candidateGuardFixture(new(MockUserRepo), new(MockCandidateRepo)))

	cvs, err := uc.ListActiveCVs(context.Background(), 20)
	assert.NoError(t, err)
	assert.Len(t, cvs, 1)
}
