package v1

import (
	"net/http"

	"jobportal-backend/internal/delivery/http/response"
	"jobportal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(public *gin.RouterGroup, protected *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	public.GET("/companies/:id", handler.GetDetails)

	protected.GET("/companies/me", handler.GetMyProfile)
	protected.PUT("/companies/me", handler.UpdateProfile)
	protected.PATCH("/companies/:id/status", handler.UpdateStatus)
}

type UpdateCompanyStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *CompanyHandler) GetDetails(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	company, err := h.companyUC.GetCompanyByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company details", company)
}

func (h *CompanyHandler) GetMyProfile(c *gin.Context) {
	if !requireEmployer(c) {
		return
	}
	username := c.GetString(string(domain.KeyUsername))
	company, err := h.companyUC.GetMyProfile(c.Request.Context(), username)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company profile", company)
}

func (h *CompanyHandler) UpdateProfile(c *gin.Context) {
	if !requireEmployer(c) {
		return
	}
	var input domain.UpdateCompanyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	username := c.GetString(string(domain.KeyUsername))
	company, err := h.companyUC.UpdateProfile(c.Request.Context(), username, input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company profile updated", company)
}

// UpdateStatus is the admin moderation endpoint for approving or blocking
// employer accounts.
func (h *CompanyHandler) UpdateStatus(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateCompanyStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	company, err := h.companyUC.UpdateCompanyStatus(c.Request.Context(), id, domain.CompanyStatus(req.Status))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company status updated", company)
}
