package v1

import (
	"net/http"

	"jobportal-backend/internal/delivery/http/response"
	"jobportal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SavedJobHandler struct {
	savedJobUC domain.SavedJobUsecase
}

func NewSavedJobHandler(protected *gin.RouterGroup, savedJobUC domain.SavedJobUsecase) {
	handler := &SavedJobHandler{savedJobUC: savedJobUC}

	saved := protected.Group("/saved-jobs")
	{
		saved.POST("", handler.Save)
		saved.GET("/me", handler.ListMine)
		saved.GET("/:id", handler.IsSaved)
		saved.DELETE("/:id", handler.Unsave)
	}
}

type SaveJobRequest struct {
	JobID int64 `json:"job_id" binding:"required"`
}

func (h *SavedJobHandler) Save(c *gin.Context) {
	if !requireCandidate(c) {
		return
	}
	var req SaveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	username := c.GetString(string(domain.KeyUsername))
	saved, err := h.savedJobUC.SaveJob(c.Request.Context(), username, req.JobID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job saved", saved)
}

func (h *SavedJobHandler) ListMine(c *gin.Context) {
	if !requireCandidate(c) {
		return
	}
	username := c.GetString(string(domain.KeyUsername))
	savedJobs, err := h.savedJobUC.ListMySavedJobs(c.Request.Context(), username)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Saved jobs", savedJobs)
}

// IsSaved reports whether the job in the path is bookmarked by the caller.
func (h *SavedJobHandler) IsSaved(c *gin.Context) {
	if !requireCandidate(c) {
		return
	}
	jobID, ok := pathID(c)
	if !ok {
		return
	}

	username := c.GetString(string(domain.KeyUsername))
	saved, err := h.savedJobUC.IsJobSaved(c.Request.Context(), username, jobID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Saved state", gin.H{"job_id": jobID, "saved": saved})
}

func (h *SavedJobHandler) Unsave(c *gin.Context) {
	if !requireCandidate(c) {
		return
	}
	jobID, ok := pathID(c)
	if !ok {
		return
	}

	username := c.GetString(string(domain.KeyUsername))
	if err := h.savedJobUC.UnsaveJob(c.Request.Context(), username, jobID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job unsaved", nil)
}
