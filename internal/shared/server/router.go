package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillmingle-backend/internal/assessment"
	googleauth "skillmingle-backend/internal/auth"
	"skillmingle-backend/internal/profile"
	"skillmingle-backend/internal/shared/config"
	"skillmingle-backend/internal/shared/metrics"
	"skillmingle-backend/internal/shared/server/middleware"
	"skillmingle-backend/internal/shared/server/respond"
	"skillmingle-backend/internal/skills"
	"skillmingle-backend/internal/users"
)

// RouterDeps collects the handlers the router wires up.
type RouterDeps struct {
	Config            config.Config
	UsersHandler      *users.Handler
	ProfileHandler    *profile.Handler
	SkillsHandler     *skills.Handler
	AssessmentHandler *assessment.Handler
	GoogleAuth        *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	limiter := middleware.NewRateLimiter(nil)

	api := r.Group("/api")

	// Credential endpoints are throttled per client IP.
	authGroup := api.Group("", middleware.RateLimit(middleware.RateLimitConfig{
		Rules:        map[string]middleware.RateLimitRule{"AUTH": {Rate: 0.5, Burst: 10}},
		DefaultGroup: "AUTH",
		Limiter:      limiter,
	}))
	deps.UsersHandler.RegisterPublicRoutes(authGroup)
	deps.GoogleAuth.RegisterRoutes(api)

	deps.SkillsHandler.RegisterRoutes(api)
	deps.AssessmentHandler.RegisterPublicRoutes(api)

	authed := api.Group("", middleware.Auth())
	deps.UsersHandler.RegisterRoutes(authed)
	deps.ProfileHandler.RegisterRoutes(authed)

	submitGroup := authed.Group("", middleware.RateLimit(middleware.RateLimitConfig{
		Rules:        map[string]middleware.RateLimitRule{"SUBMIT": {Rate: 1, Burst: 5}},
		DefaultGroup: "SUBMIT",
		Limiter:      limiter,
	}))
	deps.AssessmentHandler.RegisterRoutes(submitGroup)

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
	})

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
