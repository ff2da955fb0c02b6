package v1

import (
	"net/http"

	"jobportal-backend/internal/delivery/http/response"
	"jobportal-backend/internal/domain"
	"jobportal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryUC domain.CategoryUsecase
}

func NewCategoryHandler(public *gin.RouterGroup, protected *gin.RouterGroup, categoryUC domain.CategoryUsecase) {
	handler := &CategoryHandler{categoryUC: categoryUC}

	public.GET("/categories", handler.List)
	public.GET("/categories/:id", handler.GetDetails)

	protected.POST("/categories", handler.Create)
	protected.PUT("/categories/:id", handler.Update)
}

type CategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	BaseSalary  float64 `json:"base_salary" binding:"required,gt=0"`
}

func requireAdmin(c *gin.Context) bool {
	if domain.Role(c.GetString(string(domain.KeyUserRole))) != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only admins can perform this action"))
		return false
	}
	return true
}

func (h *CategoryHandler) Create(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	category, err := h.categoryUC.CreateCategory(c.Request.Context(), domain.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		BaseSalary:  req.BaseSalary,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Category created", category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	category, err := h.categoryUC.UpdateCategory(c.Request.Context(), id, domain.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		BaseSalary:  req.BaseSalary,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Category updated", category)
}

func (h *CategoryHandler) GetDetails(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	category, err := h.categoryUC.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Category details", category)
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryUC.ListCategories(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Categories", categories)
}
