package v1

import (
	"net/http"
	"time"

	"jobportal-backend/config"
	"jobportal-backend/internal/delivery/http/middleware"
	"jobportal-backend/internal/delivery/http/response"
	"jobportal-backend/internal/domain"
	"jobportal-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	CVUC          domain.CVUsecase
	SavedJobUC    domain.SavedJobUsecase
	CategoryUC    domain.CategoryUsecase
	CompanyUC     domain.CompanyUsecase
	Tokens        *auth.TokenIssuer
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Credential endpoints get the strict limiter on top of the global one
	authGroup := v1.Group("")
	authGroup.Use(middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, window)))

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))
	{
		NewAuthHandler(authGroup, protected, deps.AuthUC)
		NewJobHandler(v1, protected, deps.JobUC)
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewCVHandler(protected, deps.CVUC)
		NewSavedJobHandler(protected, deps.SavedJobUC)
		NewCategoryHandler(v1, protected, deps.CategoryUC)
		NewCompanyHandler(v1, protected, deps.CompanyUC)
	}

	return r
}
