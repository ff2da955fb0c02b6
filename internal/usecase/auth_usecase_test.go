package usecase_test

import (
	"context"
	"testing"
	"time"

	"jobportal-backend/internal/domain"
	"jobportal-backend/internal/usecase"
	"jobportal-backend/pkg/auth"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAuthFixture(userRepo *MockUserRepo, roleRepo *MockRoleRepo, companyRepo *MockCompanyRepo, candidateRepo *MockCandidateRepo) domain.AuthUsecase {
	return usecase.NewAuthUsecase(
		userRepo, roleRepo, companyRepo, candidateRepo,
		&MockTxManager{},
		auth.NewHasher(4),
		auth.NewTokenIssuer("test-secret", time.Hour),
		validator.New(),
	)
}

func TestRegisterCompany(t *testing.T) {
	input := domain.RegisterCompanyInput{
		Email:       "hr@acme.test",
		Password:    "supersecret",
		CompanyName: "Acme",
	}

	t.Run("user and profile share one minted code", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		roleRepo := new(MockRoleRepo)
		companyRepo := new(MockCompanyRepo)
		userRepo.On("ExistsByUsername", mock.Anything, "hr@acme.test").Return(false, nil)
		companyRepo.On("ExistsByEmail", mock.Anything, "hr@acme.test").Return(false, nil)
		roleRepo.On("GetByCode", mock.Anything, domain.RoleEmployer).Return(&domain.RoleRecord{ID: 2, Code: domain.RoleEmployer, Name: "Employer"}, nil)
		companyRepo.On("ExistsByCode", mock.Anything, mock.Anything).Return(false, nil)

		var createdUser *domain.User
		var createdCompany *domain.Company
		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
			createdUser = args.Get(1).(*domain.User)
			createdUser.ID = 1
		}).Return(nil)
		companyRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Company")).Run(func(args mock.Arguments) {
			createdCompany = args.Get(1).(*domain.Company)
		}).Return(nil)

		uc := newAuthFixture(userRepo, roleRepo, companyRepo, new(MockCandidateRepo))
		result, err := uc.RegisterCompany(context.Background(), input)
		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Regexp(t, `^DN\d{8}$`, result.UserCode)
		assert.Equal(t, createdUser.UserCode, createdCompany.CompanyCode)
		assert.Equal(t, int64(1), createdCompany.UserID)
		assert.Equal(t, domain.CompanyStatusPending, createdCompany.Status)
		assert.NotEqual(t, "supersecret", createdUser.PasswordHash)
	})

	t.Run("duplicate email is rejected before any write", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		companyRepo := new(MockCompanyRepo)
		userRepo.On("ExistsByUsername", mock.Anything, "hr@acme.test").Return(true, nil)

		uc := newAuthFixture(userRepo, new(MockRoleRepo), companyRepo, new(MockCandidateRepo))
		_, err := uc.RegisterCompany(context.Background(), input)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Email already registered")
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("short password fails validation", func(t *testing.T) {
		uc := newAuthFixture(new(MockUserRepo), new(MockRoleRepo), new(MockCompanyRepo), new(MockCandidateRepo))
		bad := input
		bad.Password = "short"
		_, err := uc.RegisterCompany(context.Background(), bad)
		assert.Error(t, err)
	})

	t.Run("email held by a company profile is also rejected", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		companyRepo := new(MockCompanyRepo)
		userRepo.On("ExistsByUsername", mock.Anything, "hr@acme.test").Return(false, nil)
		companyRepo.On("ExistsByEmail", mock.Anything, "hr@acme.test").Return(true, nil)

		uc := newAuthFixture(userRepo, new(MockRoleRepo), companyRepo, new(MockCandidateRepo))
		_, err := uc.RegisterCompany(context.Background(), input)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Email already registered")
	})
}

func TestRegisterCandidate(t *testing.T) {
	userRepo := new(MockUserRepo)
	roleRepo := new(MockRoleRepo)
	candidateRepo := new(MockCandidateRepo)
	userRepo.On("ExistsByUsername", mock.Anything, "jane@mail.test").Return(false, nil)
	candidateRepo.On("ExistsByEmail", mock.Anything, "jane@mail.test").Return(false, nil)
	roleRepo.On("GetByCode", mock.Anything, domain.RoleCandidate).Return(&domain.RoleRecord{ID: 3, Code: domain.RoleCandidate, Name: "Candidate"}, nil)
	candidateRepo.On("ExistsByCode", mock.Anything, mock.Anything).Return(false, nil)

	var createdCandidate *domain.Candidate
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = 9
	}).Return(nil)
	candidateRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Candidate")).Run(func(args mock.Arguments) {
		createdCandidate = args.Get(1).(*domain.Candidate)
	}).Return(nil)

	uc := newAuthFixture(userRepo, roleRepo, new(MockCompanyRepo), candidateRepo)
	result, err := uc.RegisterCandidate(context.Background(), domain.RegisterCandidateInput{
		Email:    "jane@mail.test",
		Password: "supersecret",
		Name:     "Jane",
	})
	assert.NoError(t, err)
	assert.Regexp(t, `^UV\d{8}$`, result.UserCode)
	assert.Equal(t, result.UserCode, createdCandidate.CandidateCode)
	assert.Equal(t, int64(9), createdCandidate.UserID)
	assert.Equal(t, domain.RoleCandidate, result.Role)
}

func TestLogin(t *testing.T) {
	hasher := auth.NewHasher(4)
	hash, _ := hasher.Hash("supersecret")

	setup := func() (*MockUserRepo, *MockRoleRepo, domain.AuthUsecase) {
		userRepo := new(MockUserRepo)
		roleRepo := new(MockRoleRepo)
		uc := newAuthFixture(userRepo, roleRepo, new(MockCompanyRepo), new(MockCandidateRepo))
		return userRepo, roleRepo, uc
	}

	t.Run("valid credentials issue a token", func(t *testing.T) {
		userRepo, roleRepo, uc := setup()
		userRepo.On("GetByUsername", mock.Anything, "hr@acme.test").Return(&domain.User{
			ID: 1, UserCode: "DN00000001", Username: "hr@acme.test", PasswordHash: hash, Role: domain.RoleEmployer,
		}, nil)
		roleRepo.On("GetByCode", mock.Anything, domain.RoleEmployer).Return(&domain.RoleRecord{ID: 2, Code: domain.RoleEmployer, Name: "Employer"}, nil)

		result, err := uc.Login(context.Background(), "hr@acme.test", "supersecret")
		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)

		claims, err := auth.NewTokenIssuer("test-secret", time.Hour).Parse(result.Token)
		assert.NoError(t, err)
		assert.Equal(t, "hr@acme.test", claims.Subject)
		assert.Equal(t, "DN", claims.Role)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		userRepo, _, uc := setup()
		userRepo.On("GetByUsername", mock.Anything, "hr@acme.test").Return(&domain.User{PasswordHash: hash}, nil)

		_, err := uc.Login(context.Background(), "hr@acme.test", "wrong")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid username or password")
	})

	t.Run("unknown user gets the same message", func(t *testing.T) {
		userRepo, _, uc := setup()
		userRepo.On("GetByUsername", mock.Anything, "ghost@mail.test").Return(nil, domain.ErrNotFound)

		_, err := uc.Login(context.Background(), "ghost@mail.test", "whatever")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid username or password")
	})
}
