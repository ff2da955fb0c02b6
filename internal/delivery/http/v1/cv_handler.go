package v1

import (
	"net/http"

	"jobportal-backend/internal/delivery/http/response"
	"jobportal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CVHandler struct {
	cvUC domain.CVUsecase
}

func NewCVHandler(protected *gin.RouterGroup, cvUC domain.CVUsecase) {
	handler := &CVHandler{cvUC: cvUC}

	cvs := protected.Group("/cvs")
	{
		cvs.POST("", handler.Create)
		cvs.GET("/me", handler.ListMine)
		cvs.GET("/:id", handler.GetDetails)
		cvs.PATCH("/:id/status", handler.UpdateStatus)
		cvs.DELETE("/:id", handler.Delete)
	}
	// Employers browse a candidate's visible CVs
	protected.GET("/candidates/:id/cvs", handler.ListActiveByCandidate)
}

type CreateCVRequest struct {
	File string `json:"file" binding:"required"`
}

type UpdateCVStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *CVHandler) Create(c *gin.Context) {
	if !requireCandidate(c) {
		return
	}
	var req CreateCVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	username := c.GetString(string(domain.KeyUsername))
	cv, err := h.cvUC.CreateCV(c.Request.Context(), username, req.File)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "CV created", cv)
}

func (h *CVHandler) ListMine(c *gin.Context) {
	if !requireCandidate(c) {
		return
	}
	username := c.GetString(string(domain.KeyUsername))
	cvs, err := h.cvUC.ListMyCVs(c.Request.Context(), username)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "My CVs", cvs)
}

func (h *CVHandler) GetDetails(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	cv, err := h.cvUC.GetCVByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "CV details", cv)
}

func (h *CVHandler) UpdateStatus(c *gin.Context) {
	if !requireCandidate(c) {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateCVStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	username := c.GetString(string(domain.KeyUsername))
	cv, err := h.cvUC.UpdateCVStatus(c.Request.Context(), username, id, domain.CVStatus(req.Status))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "CV status updated", cv)
}

func (h *CVHandler) Delete(c *gin.Context) {
	if !requireCandidate(c) {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	username := c.GetString(string(domain.KeyUsername))
	if err := h.cvUC.DeleteCV(c.Request.Context(), username, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "CV deleted", nil)
}

func (h *CVHandler) ListActiveByCandidate(c *gin.Context) {
	if !requireEmployer(c) {
		return
	}
	candidateID, ok := pathID(c)
	if !ok {
		return
	}
	cvs, err := h.cvUC.ListActiveCVs(c.Request.Context(), candidateID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate CVs", cvs)
}
