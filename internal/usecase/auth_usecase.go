package usecase

import (
	"context"
	"errors"

	"jobportal-backend/internal/domain"
	"jobportal-backend/pkg/apperror"
	"jobportal-backend/pkg/auth"
	"jobportal-backend/pkg/codegen"

	"github.com/go-playground/validator/v10"
)

type authUsecase struct {
	userRepo      domain.UserRepository
	roleRepo      domain.RoleRepository
	companyRepo   domain.CompanyRepository
	candidateRepo domain.CandidateRepository
	txManager     domain.TxManager
	hasher        *auth.Hasher
	tokens        *auth.TokenIssuer
	validate      *validator.Validate
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	roleRepo domain.RoleRepository,
	companyRepo domain.CompanyRepository,
	candidateRepo domain.CandidateRepository,
	txManager domain.TxManager,
	hasher *auth.Hasher,
	tokens *auth.TokenIssuer,
	validate *validator.Validate,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:      userRepo,
		roleRepo:      roleRepo,
		companyRepo:   companyRepo,
		candidateRepo: candidateRepo,
		txManager:     txManager,
		hasher:        hasher,
		tokens:        tokens,
		validate:      validate,
	}
}

// RegisterCompany creates an employer account. The user row and the company
// profile share one freshly minted DN code and are written atomically.
func (u *authUsecase) RegisterCompany(ctx context.Context, input domain.RegisterCompanyInput) (*domain.AuthResult, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	taken, err := u.userRepo.ExistsByUsername(ctx, input.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !taken {
		taken, err = u.companyRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return nil, apperror.Internal(err)
		}
	}
	if taken {
		return nil, apperror.BadRequest("Email already registered")
	}

	role, err := u.roleRepo.GetByCode(ctx, domain.RoleEmployer)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	code, err := codegen.Generate(ctx, codegen.PrefixCompany, u.companyRepo.ExistsByCode)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	hash, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		UserCode:     code,
		Username:     input.Email,
		PasswordHash: hash,
		RoleID:       role.ID,
		Role:         role.Code,
	}
	err = u.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := u.userRepo.Create(ctx, user); err != nil {
			return err
		}
		company := &domain.Company{
			UserID:      user.ID,
			CompanyCode: code,
			Name:        input.CompanyName,
			Description: input.Description,
			Address:     input.Address,
			Website:     input.Website,
			Email:       input.Email,
			LogoURL:     input.LogoURL,
			Status:      domain.CompanyStatusPending,
		}
		return u.companyRepo.Create(ctx, company)
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("Email already registered")
		}
		return nil, apperror.Internal(err)
	}

	return u.issueResult(user, role, "Company registered successfully")
}

// RegisterCandidate mirrors RegisterCompany for the job-seeker side with
// a UV code.
func (u *authUsecase) RegisterCandidate(ctx context.Context, input domain.RegisterCandidateInput) (*domain.AuthResult, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	taken, err := u.userRepo.ExistsByUsername(ctx, input.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !taken {
		taken, err = u.candidateRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return nil, apperror.Internal(err)
		}
	}
	if taken {
		return nil, apperror.BadRequest("Email already registered")
	}

	role, err := u.roleRepo.GetByCode(ctx, domain.RoleCandidate)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	code, err := codegen.Generate(ctx, codegen.PrefixCandidate, u.candidateRepo.ExistsByCode)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	hash, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		UserCode:     code,
		Username:     input.Email,
		PasswordHash: hash,
		RoleID:       role.ID,
		Role:         role.Code,
	}
	err = u.txManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := u.userRepo.Create(ctx, user); err != nil {
			return err
		}
		candidate := &domain.Candidate{
			UserID:        user.ID,
			CandidateCode: code,
			Name:          input.Name,
			Description:   input.Description,
			Gender:        input.Gender,
			Birthdate:     input.Birthdate,
			Phone:         input.Phone,
			Email:         input.Email,
			Education:     input.Education,
			Experience:    input.Experience,
			Skills:        input.Skills,
		}
		return u.candidateRepo.Create(ctx, candidate)
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("Email already registered")
		}
		return nil, apperror.Internal(err)
	}

	return u.issueResult(user, role, "Candidate registered successfully")
}

func (u *authUsecase) Login(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperror.Unauthorized("Invalid username or password")
	}
	if !u.hasher.Compare(user.PasswordHash, password) {
		return nil, apperror.Unauthorized("Invalid username or password")
	}
	role, err := u.roleRepo.GetByCode(ctx, user.Role)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return u.issueResult(user, role, "Login successful")
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, username string) (*domain.User, error) {
	user, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (u *authUsecase) issueResult(user *domain.User, role *domain.RoleRecord, message string) (*domain.AuthResult, error) {
	token, err := u.tokens.Issue(user.Username, string(role.Code))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.AuthResult{
		Token:    token,
		Username: user.Username,
		UserCode: user.UserCode,
		Role:     role.Code,
		RoleName: role.Name,
		Message:  message,
	}, nil
}
