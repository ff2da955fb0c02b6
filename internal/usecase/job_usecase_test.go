package usecase_test

import (
	"context"
	"testing"
	"time"

	"jobportal-backend/internal/domain"
	"jobportal-backend/internal/usecase"
	"jobportal-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func employerGuardFixture(userRepo *MockUserRepo, companyRepo *MockCompanyRepo, jobRepo *MockJobRepo) *usecase.Guard {
	userRepo.On("GetByUsername", mock.Anything, "owner@acme.test").Return(&domain.User{ID: 1, Username: "owner@acme.test", Role: domain.RoleEmployer}, nil)
	companyRepo.On("GetByUserID", mock.Anything, int64(1)).Return(&domain.Company{ID: 10, UserID: 1, CompanyCode: "DN00000010"}, nil)
	return usecase.NewGuard(userRepo, companyRepo, new(MockCandidateRepo), jobRepo)
}

func TestCreateJobInitialStatus(t *testing.T) {
	makeInput := func(start, end time.Time) domain.CreateJobInput {
		return domain.CreateJobInput{
			CategoryID: 5,
			Title:      "Backend Engineer",
			Salary:     1200,
			StartDate:  start,
			EndDate:    end,
		}
	}

	setup := func() (*MockJobRepo, domain.JobUsecase) {
		userRepo := new(MockUserRepo)
		companyRepo := new(MockCompanyRepo)
		jobRepo := new(MockJobRepo)
		categoryRepo := new(MockCategoryRepo)
		categoryRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.JobCategory{ID: 5, Name: "IT"}, nil)
		jobRepo.On("ExistsByCode", mock.Anything, mock.Anything).Return(false, nil)
		jobRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil)
		guard := employerGuardFixture(userRepo, companyRepo, jobRepo)
		return jobRepo, usecase.NewJobUsecase(jobRepo, categoryRepo, guard)
	}

	t.Run("job starting tomorrow waits", func(t *testing.T) {
		_, uc := setup()
		job, err := uc.CreateJob(context.Background(), "owner@acme.test", makeInput(
			time.Now().AddDate(0, 0, 1), time.Now().AddDate(0, 0, 30)))
		assert.NoError(t, err)
		assert.Equal(t, domain.JobStatusWait, job.Status)
	})

	t.Run("job starting today is pending", func(t *testing.T) {
		_, uc := setup()
		job, err := uc.CreateJob(context.Background(), "owner@acme.test", makeInput(
			time.Now(), time.Now().AddDate(0, 0, 30)))
		assert.NoError(t, err)
		assert.Equal(t, domain.JobStatusPending, job.Status)
	})

	t.Run("job that already started is pending", func(t *testing.T) {
		_, uc := setup()
		job, err := uc.CreateJob(context.Background(), "owner@acme.test", makeInput(
			time.Now().AddDate(0, 0, -3), time.Now().AddDate(0, 0, 30)))
		assert.NoError(t, err)
		assert.Equal(t, domain.JobStatusPending, job.Status)
	})

	t.Run("minted code and owner company are set", func(t *testing.T) {
		_, uc := setup()
		job, err := uc.CreateJob(context.Background(), "owner@acme.test", makeInput(
			time.Now(), time.Now().AddDate(0, 0, 7)))
		assert.NoError(t, err)
		assert.Equal(t, int64(10), job.CompanyID)
		assert.Regexp(t, `^VL\d{8}$`, job.JobCode)
	})
}

func TestCreateJobValidation(t *testing.T) {
	userRepo := new(MockUserRepo)
	companyRepo := new(MockCompanyRepo)
	jobRepo := new(MockJobRepo)
	categoryRepo := new(MockCategoryRepo)
	guard := employerGuardFixture(userRepo, companyRepo, jobRepo)
	uc := usecase.NewJobUsecase(jobRepo, categoryRepo, guard)

	t.Run("start date after end date is rejected", func(t *testing.T) {
		_, err := uc.CreateJob(context.Background(), "owner@acme.test", domain.CreateJobInput{
			CategoryID: 5,
			Title:      "Backend Engineer",
			Salary:     1200,
			StartDate:  time.Now().AddDate(0, 0, 10),
			EndDate:    time.Now(),
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Start date cannot be after end date")
	})

	t.Run("equal start and end date passes the date rule", func(t *testing.T) {
		day := time.Now().AddDate(0, 0, 2)
		categoryRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.JobCategory{ID: 5}, nil)
		jobRepo.On("ExistsByCode", mock.Anything, mock.Anything).Return(false, nil)
		jobRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil)
		job, err := uc.CreateJob(context.Background(), "owner@acme.test", domain.CreateJobInput{
			CategoryID: 5,
			Title:      "One Day Posting",
			Salary:     900,
			StartDate:  day,
			EndDate:    day,
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.JobStatusWait, job.Status)
	})

	t.Run("non-positive salary is rejected", func(t *testing.T) {
		_, err := uc.CreateJob(context.Background(), "owner@acme.test", domain.CreateJobInput{
			CategoryID: 5,
			Title:      "Backend Engineer",
			Salary:     0,
			StartDate:  time.Now(),
			EndDate:    time.Now().AddDate(0, 0, 7),
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Salary must be greater than zero")
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		categoryRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)
		_, err := uc.CreateJob(context.Background(), "owner@acme.test", domain.CreateJobInput{
			CategoryID: 99,
			Title:      "Backend Engineer",
			Salary:     1200,
			StartDate:  time.Now(),
			EndDate:    time.Now().AddDate(0, 0, 7),
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job category not found")
	})
}

func TestJobOwnership(t *testing.T) {
	userRepo := new(MockUserRepo)
	companyRepo := new(MockCompanyRepo)
	jobRepo := new(MockJobRepo)
	guard := employerGuardFixture(userRepo, companyRepo, jobRepo)
	uc := usecase.NewJobUsecase(jobRepo, new(MockCategoryRepo), guard)

	t.Run("updating a job owned by another company is forbidden", func(t *testing.T) {
		jobRepo.On("GetByID", mock.Anything, int64(77)).Return(&domain.Job{ID: 77, CompanyID: 999}, nil)
		_, err := uc.UpdateJobStatus(context.Background(), "owner@acme.test", 77, domain.JobStatusActive)
		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 403, appErr.Code)
	})

	t.Run("unknown job resolves to not found", func(t *testing.T) {
		jobRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound)
		err := uc.DeleteJob(context.Background(), "owner@acme.test", 404)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job not found")
	})
}

func TestDeleteJobHidesInsteadOfRemoving(t *testing.T) {
	userRepo := new(MockUserRepo)
	companyRepo := new(MockCompanyRepo)
	jobRepo := new(MockJobRepo)
	guard := employerGuardFixture(userRepo, companyRepo, jobRepo)
	uc := usecase.NewJobUsecase(jobRepo, new(MockCategoryRepo), guard)

	jobRepo.On("GetByID", mock.Anything, int64(77)).Return(&domain.Job{ID: 77, CompanyID: 10, Status: domain.JobStatusActive}, nil)
	jobRepo.On("UpdateStatus", mock.Anything, int64(77), domain.JobStatusHidden).Return(nil)

	err := uc.DeleteJob(context.Background(), "owner@acme.test", 77)
	assert.NoError(t, err)
	jobRepo.AssertCalled(t, "UpdateStatus", mock.Anything, int64(77), domain.JobStatusHidden)
}

func TestUpdateJobPartialFields(t *testing.T) {
	userRepo := new(MockUserRepo)
	companyRepo := new(MockCompanyRepo)
	jobRepo := new(MockJobRepo)
	guard := employerGuardFixture(userRepo, companyRepo, jobRepo)
	uc := usecase.NewJobUsecase(jobRepo, new(MockCategoryRepo), guard)

	existing := &domain.Job{
		ID:        77,
		CompanyID: 10,
		Title:     "Old Title",
		Salary:    1000,
		Location:  "Hanoi",
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(0, 0, 30),
	}
	jobRepo.On("GetByID", mock.Anything, int64(77)).Return(existing, nil)
	jobRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil)

	newTitle := "New Title"
	job, err := uc.UpdateJob(context.Background(), "owner@acme.test", 77, domain.UpdateJobInput{Title: &newTitle})
	assert.NoError(t, err)
	assert.Equal(t, "New Title", job.Title)
	assert.Equal(t, 1000.0, job.Salary)
	assert.Equal(t, "Hanoi", job.Location)
}

func TestFilterJobsBySalary(t *testing.T) {
	uc := usecase.NewJobUsecase(new(MockJobRepo), new(MockCategoryRepo), usecase.NewGuard(new(MockUserRepo), new(MockCompanyRepo), new(MockCandidateRepo), new(MockJobRepo)))

	t.Run("negative minimum is rejected", func(t *testing.T) {
		_, err := uc.FilterJobsBySalary(context.Background(), -1, 100)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid salary range")
	})

	t.Run("maximum below minimum is rejected", func(t *testing.T) {
		_, err := uc.FilterJobsBySalary(context.Background(), 500, 100)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid salary range")
	})
}
