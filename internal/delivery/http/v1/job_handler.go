package v1

import (
	"net/http"
	"strconv"
	"time"

	"jobportal-backend/internal/delivery/http/response"
	"jobportal-backend/internal/domain"
	"jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// Public browsing only ever sees active postings
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("/public", handler.PublicList)
		publicJobs.GET("/public/:id", handler.GetDetails)
		publicJobs.GET("/search", handler.Search)
		publicJobs.GET("/salary", handler.FilterBySalary)
	}
	public.GET("/categories/:id/jobs", handler.ListByCategory)
	public.GET("/companies/:id/jobs", handler.ListByCompany)

	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.GET("", handler.List)
		protectedJobs.GET("/:id", handler.GetDetails)
		protectedJobs.POST("", handler.Create)
		protectedJobs.PUT("/:id", handler.Update)
		protectedJobs.PATCH("/:id/status", handler.UpdateStatus)
		protectedJobs.DELETE("/:id", handler.Delete)
	}
	protected.GET("/employers/jobs", handler.ListMine)
}

type CreateJobRequest struct {
	CategoryID    int64     `json:"category_id" binding:"required"`
	Title         string    `json:"title" binding:"required"`
	Description   string    `json:"description"`
	Requirement   string    `json:"requirement"`
	Salary        float64   `json:"salary" binding:"required,gt=0"`
	Location      string    `json:"location"`
	StartDate     time.Time `json:"start_date" binding:"required"`
	EndDate       time.Time `json:"end_date" binding:"required"`
	MaxCandidates int       `json:"max_candidates" binding:"gte=0"`
}

type UpdateJobStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func requireEmployer(c *gin.Context) bool {
	role := domain.Role(c.GetString(string(domain.KeyUserRole)))
	if role != domain.RoleEmployer && role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only employers can manage jobs"))
		return false
	}
	return true
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.Error(c, http.StatusBadRequest, "Invalid id parameter", nil)
		return 0, false
	}
	return id, true
}

func (h *JobHandler) Create(c *gin.Context) {
	if !requireEmployer(c) {
		return
	}
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	username := c.GetString(string(domain.KeyUsername))
	job, err := h.jobUC.CreateJob(c.Request.Context(), username, domain.CreateJobInput{
		CategoryID:    req.CategoryID,
		Title:         req.Title,
		Description:   req.Description,
		Requirement:   req.Requirement,
		Salary:        req.Salary,
		Location:      req.Location,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		MaxCandidates: req.MaxCandidates,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job created", job)
}

func (h *JobHandler) Update(c *gin.Context) {
	if !requireEmployer(c) {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input domain.UpdateJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	username := c.GetString(string(domain.KeyUsername))
	job, err := h.jobUC.UpdateJob(c.Request.Context(), username, id, input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated", job)
}

func (h *JobHandler) UpdateStatus(c *gin.Context) {
	if !requireEmployer(c) {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	username := c.GetString(string(domain.KeyUsername))
	job, err := h.jobUC.UpdateJobStatus(c.Request.Context(), username, id, domain.JobStatus(req.Status))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job status updated", job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	if !requireEmployer(c) {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	username := c.GetString(string(domain.KeyUsername))
	if err := h.jobUC.DeleteJob(c.Request.Context(), username, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted", nil)
}

func (h *JobHandler) GetDetails(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	job, err := h.jobUC.GetJobByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job details", job)
}

// PublicList returns active postings only.
func (h *JobHandler) PublicList(c *gin.Context) {
	status := domain.JobStatusActive
	jobs, err := h.jobUC.ListJobs(c.Request.Context(), &status)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs", jobs)
}

// List returns jobs in any status, optionally filtered with ?status=.
func (h *JobHandler) List(c *gin.Context) {
	var status *domain.JobStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.JobStatus(raw)
		status = &s
	}
	jobs, err := h.jobUC.ListJobs(c.Request.Context(), status)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs", jobs)
}

func (h *JobHandler) ListMine(c *gin.Context) {
	if !requireEmployer(c) {
		return
	}
	username := c.GetString(string(domain.KeyUsername))
	jobs, err := h.jobUC.ListMyJobs(c.Request.Context(), username)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "My jobs", jobs)
}

func (h *JobHandler) ListByCompany(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	jobs, err := h.jobUC.ListJobsByCompany(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company jobs", jobs)
}

func (h *JobHandler) ListByCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	jobs, err := h.jobUC.ListJobsByCategory(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Category jobs", jobs)
}

func (h *JobHandler) Search(c *gin.Context) {
	jobs, err := h.jobUC.SearchJobs(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Search results", jobs)
}

func (h *JobHandler) FilterBySalary(c *gin.Context) {
	minSalary, err := strconv.ParseFloat(c.DefaultQuery("min", "0"), 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid min parameter", nil)
		return
	}
	maxSalary, err := strconv.ParseFloat(c.Query("max"), 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid max parameter", nil)
		return
	}
	jobs, err := h.jobUC.FilterJobsBySalary(c.Request.Context(), minSalary, maxSalary)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Salary filter results", jobs)
}
