package v1

import (
	"net/http"
	"time"

	"jobportal-backend/internal/delivery/http/response"
	"jobportal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	auth := public.Group("/auth")
	{
		auth.POST("/register/company", handler.RegisterCompany)
		auth.POST("/register/candidate", handler.RegisterCandidate)
		auth.POST("/login", handler.Login)
	}

	protected.GET("/auth/me", handler.Me)
}

type RegisterCompanyRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	CompanyName string `json:"company_name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Website     string `json:"website"`
	LogoURL     string `json:"logo_url"`
}

type RegisterCandidateRequest struct {
	Email       string     `json:"email" binding:"required,email"`
	Password    string     `json:"password" binding:"required,min=8"`
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	Gender      string     `json:"gender" binding:"omitempty,oneof=MALE FEMALE OTHER"`
	Birthdate   *time.Time `json:"birthdate"`
	Phone       string     `json:"phone"`
	Education   string     `json:"education"`
	Experience  string     `json:"experience"`
	Skills      string     `json:"skills"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) RegisterCompany(c *gin.Context) {
	var req RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	result, err := h.authUC.RegisterCompany(c.Request.Context(), domain.RegisterCompanyInput{
		Email:       req.Email,
		Password:    req.Password,
		CompanyName: req.CompanyName,
		Description: req.Description,
		Address:     req.Address,
		Website:     req.Website,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, result.Message, result)
}

func (h *AuthHandler) RegisterCandidate(c *gin.Context) {
	var req RegisterCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	result, err := h.authUC.RegisterCandidate(c.Request.Context(), domain.RegisterCandidateInput{
		Email:       req.Email,
		Password:    req.Password,
		Name:        req.Name,
		Description: req.Description,
		Gender:      domain.Gender(req.Gender),
		Birthdate:   req.Birthdate,
		Phone:       req.Phone,
		Education:   req.Education,
		Experience:  req.Experience,
		Skills:      req.Skills,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, result.Message, result)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, result.Message, result)
}

func (h *AuthHandler) Me(c *gin.Context) {
	username := c.GetString(string(domain.KeyUsername))
	user, err := h.authUC.GetCurrentUser(c.Request.Context(), username)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Current user", user)
}
