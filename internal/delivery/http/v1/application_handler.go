package v1

import (
	"net/http"

	"jobportal-backend/internal/delivery/http/response"
	"jobportal-backend/internal/domain"
	"jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	apps := protected.Group("/applications")
	{
		apps.POST("", handler.Apply)
		apps.GET("/me", handler.ListMine)
		apps.GET("/:id", handler.GetDetails)
		apps.PATCH("/:id/status", handler.UpdateStatus)
	}
	protected.GET("/jobs/:id/applications", handler.ListByJob)
}

type ApplyRequest struct {
	JobID int64 `json:"job_id" binding:"required"`
	CVID  int64 `json:"cv_id" binding:"required"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func requireCandidate(c *gin.Context) bool {
	if domain.Role(c.GetString(string(domain.KeyUserRole))) != domain.RoleCandidate {
		c.Error(apperror.Forbidden("Only candidates can perform this action"))
		return false
	}
	return true
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	if !requireCandidate(c) {
		return
	}
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	username := c.GetString(string(domain.KeyUsername))
	app, err := h.applicationUC.ApplyToJob(c.Request.Context(), username, req.JobID, req.CVID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted", app)
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	if !requireCandidate(c) {
		return
	}
	username := c.GetString(string(domain.KeyUsername))
	apps, err := h.applicationUC.ListMyApplications(c.Request.Context(), username)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "My applications", apps)
}

func (h *ApplicationHandler) GetDetails(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	app, err := h.applicationUC.GetApplicationByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application details", app)
}

// ListByJob returns a job's applications to its owning employer, optionally
// filtered with ?status=.
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	if !requireEmployer(c) {
		return
	}
	jobID, ok := pathID(c)
	if !ok {
		return
	}

	username := c.GetString(string(domain.KeyUsername))
	var apps []domain.Application
	var err error
	if raw := c.Query("status"); raw != "" {
		apps, err = h.applicationUC.ListApplicationsByJobAndStatus(c.Request.Context(), username, jobID, domain.ApplicationStatus(raw))
	} else {
		apps, err = h.applicationUC.ListApplicationsByJob(c.Request.Context(), username, jobID)
	}
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job applications", apps)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	if !requireEmployer(c) {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	username := c.GetString(string(domain.KeyUsername))
	app, err := h.applicationUC.UpdateApplicationStatus(c.Request.Context(), username, id, domain.ApplicationStatus(req.Status))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application status updated", app)
}
