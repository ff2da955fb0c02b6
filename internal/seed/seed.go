// Package seed bootstraps reference data on startup: the fixed role set,
// the administrator account, and the default job categories. Every step is
// idempotent so repeated starts leave the data untouched.
package seed

import (
	"context"
	"fmt"
	"time"

	"jobportal-backend/config"
	"jobportal-backend/internal/domain"
	"jobportal-backend/pkg/auth"
	"jobportal-backend/pkg/codegen"
	"jobportal-backend/pkg/logger"
)

type Seeder struct {
	roleRepo      domain.RoleRepository
	userRepo      domain.UserRepository
	companyRepo   domain.CompanyRepository
	candidateRepo domain.CandidateRepository
	categoryRepo  domain.CategoryRepository
	jobRepo       domain.JobRepository
	txManager     domain.TxManager
	hasher        *auth.Hasher
	cfg           *config.Config
}

func NewSeeder(
	roleRepo domain.RoleRepository,
	userRepo domain.UserRepository,
	companyRepo domain.CompanyRepository,
	candidateRepo domain.CandidateRepository,
	categoryRepo domain.CategoryRepository,
	jobRepo domain.JobRepository,
	txManager domain.TxManager,
	hasher *auth.Hasher,
	cfg *config.Config,
) *Seeder {
	return &Seeder{
		roleRepo:      roleRepo,
		userRepo:      userRepo,
		companyRepo:   companyRepo,
		candidateRepo: candidateRepo,
		categoryRepo:  categoryRepo,
		jobRepo:       jobRepo,
		txManager:     txManager,
		hasher:        hasher,
		cfg:           cfg,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedRoles(ctx); err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}
	if err := s.seedAdmin(ctx); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := s.seedCategories(ctx); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if s.cfg.SeedDemoData {
		if err := s.seedDemoData(ctx); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
	}
	return nil
}

func (s *Seeder) seedRoles(ctx context.Context) error {
	count, err := s.roleRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	roles := []domain.RoleRecord{
		{Code: domain.RoleAdmin, Name: "Administrator"},
		{Code: domain.RoleEmployer, Name: "Employer"},
		{Code: domain.RoleCandidate, Name: "Candidate"},
	}
	for i := range roles {
		if err := s.roleRepo.Create(ctx, &roles[i]); err != nil {
			return err
		}
	}
	logger.Log.Info("seeded roles", "count", len(roles))
	return nil
}

// seedAdmin creates the single administrator account with the fixed AD
// code. The password comes from config; an empty password skips the step
// so a production deployment cannot boot with a default credential.
func (s *Seeder) seedAdmin(ctx context.Context) error {
	exists, err := s.userRepo.ExistsByUsername(ctx, s.cfg.AdminEmail)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if s.cfg.AdminPassword == "" {
		logger.Log.Warn("ADMIN_PASSWORD not set, skipping admin account seeding")
		return nil
	}
	role, err := s.roleRepo.GetByCode(ctx, domain.RoleAdmin)
	if err != nil {
		return err
	}
	hash, err := s.hasher.Hash(s.cfg.AdminPassword)
	if err != nil {
		return err
	}
	admin := &domain.User{
		UserCode:     codegen.AdminCode(),
		Username:     s.cfg.AdminEmail,
		PasswordHash: hash,
		RoleID:       role.ID,
		Role:         role.Code,
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return err
	}
	logger.Log.Info("seeded admin account", "username", admin.Username, "user_code", admin.UserCode)
	return nil
}

func (s *Seeder) seedCategories(ctx context.Context) error {
	count, err := s.categoryRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	categories := []domain.JobCategory{
		{Name: "Information Technology", Description: "Software, infrastructure and data roles", BaseSalary: 1000},
		{Name: "Marketing", Description: "Brand, content and growth roles", BaseSalary: 800},
		{Name: "Accounting", Description: "Finance and bookkeeping roles", BaseSalary: 900},
	}
	for i := range categories {
		if err := s.categoryRepo.Create(ctx, &categories[i]); err != nil {
			return err
		}
	}
	logger.Log.Info("seeded job categories", "count", len(categories))
	return nil
}

// seedDemoData loads a small browsable data set for local development:
// two employers with four active jobs and two candidates.
func (s *Seeder) seedDemoData(ctx context.Context) error {
	count, err := s.companyRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	employerRole, err := s.roleRepo.GetByCode(ctx, domain.RoleEmployer)
	if err != nil {
		return err
	}
	candidateRole, err := s.roleRepo.GetByCode(ctx, domain.RoleCandidate)
	if err != nil {
		return err
	}
	categories, err := s.categoryRepo.Fetch(ctx)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		return fmt.Errorf("no categories to attach demo jobs to")
	}

	hash, err := s.hasher.Hash("demo12345")
	if err != nil {
		return err
	}

	companies := []struct {
		email string
		name  string
		jobs  []string
	}{
		{"jobs@techcorp.demo", "TechCorp", []string{"Backend Engineer", "Frontend Engineer"}},
		{"jobs@brightads.demo", "BrightAds", []string{"Content Strategist", "Account Manager"}},
	}
	for _, c := range companies {
		err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
			code, err := codegen.Generate(ctx, codegen.PrefixCompany, s.companyRepo.ExistsByCode)
			if err != nil {
				return err
			}
			user := &domain.User{
				UserCode:     code,
				Username:     c.email,
				PasswordHash: hash,
				RoleID:       employerRole.ID,
				Role:         employerRole.Code,
			}
			if err := s.userRepo.Create(ctx, user); err != nil {
				return err
			}
			company := &domain.Company{
				UserID:      user.ID,
				CompanyCode: code,
				Name:        c.name,
				Email:       c.email,
				Status:      domain.CompanyStatusActive,
			}
			if err := s.companyRepo.Create(ctx, company); err != nil {
				return err
			}
			for _, title := range c.jobs {
				jobCode, err := codegen.Generate(ctx, codegen.PrefixJob, s.jobRepo.ExistsByCode)
				if err != nil {
					return err
				}
				job := &domain.Job{
					CompanyID:  company.ID,
					CategoryID: categories[0].ID,
					JobCode:    jobCode,
					Title:      title,
					Salary:     categories[0].BaseSalary,
					Location:   "Remote",
					StartDate:  time.Now().AddDate(0, 0, -1),
					EndDate:    time.Now().AddDate(0, 3, 0),
					Status:     domain.JobStatusActive,
				}
				if err := s.jobRepo.Create(ctx, job); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	candidates := []struct {
		email string
		name  string
	}{
		{"alex@candidates.demo", "Alex Doe"},
		{"sam@candidates.demo", "Sam Roe"},
	}
	for _, c := range candidates {
		err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
			code, err := codegen.Generate(ctx, codegen.PrefixCandidate, s.candidateRepo.ExistsByCode)
			if err != nil {
				return err
			}
			user := &domain.User{
				UserCode:     code,
				Username:     c.email,
				PasswordHash: hash,
				RoleID:       candidateRole.ID,
				Role:         candidateRole.Code,
			}
			if err := s.userRepo.Create(ctx, user); err != nil {
				return err
			}
			candidate := &domain.Candidate{
				UserID:        user.ID,
				CandidateCode: code,
				Name:          c.name,
				Email:         c.email,
			}
			return s.candidateRepo.Create(ctx, candidate)
		})
		if err != nil {
			return err
		}
	}

	logger.Log.Info("seeded demo data", "companies", len(companies), "candidates", len(candidates))
	return nil
}
