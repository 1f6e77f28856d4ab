package v1

import (
	"net/http"
	"portfolio-backend/config"
	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	GalleryUC usecase.GalleryUsecase
	ContactUC domain.ContactUsecase
	HealthUC  usecase.HealthUsecase
	// Optional; nil disables the corresponding limit
	GlobalLimiter  *middleware.RateLimiter
	ContactLimiter *middleware.RateLimiter
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	origins := append([]string{deps.Config.FrontendURL}, deps.Config.AllowedOrigins...)

	r.Use(middleware.CORSMiddleware(origins, gin.Mode() == gin.ReleaseMode)) // CORS must be first
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders(deps.Config.ImageHosts))
	r.Use(middleware.ErrorHandler())
	if deps.GlobalLimiter != nil {
		r.Use(deps.GlobalLimiter.Middleware())
	}

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		status := deps.HealthUC.Check(c.Request.Context())
		code := http.StatusOK
		if status["status"] != "ok" {
			code = http.StatusServiceUnavailable
		}
		response.Success(c, code, "System status", status)
	})

	NewGalleryHandler(v1, deps.GalleryUC)
	v1.GET("/services", ListServices)

	var contactGuards []gin.HandlerFunc
	if deps.ContactLimiter != nil {
		contactGuards = append(contactGuards, deps.ContactLimiter.Middleware())
	}
	NewContactHandler(v1, deps.ContactUC, contactGuards...)

	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
