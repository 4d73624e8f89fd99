package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/analyses"
	"resume-matcher/internal/matching/taxonomy"
	"resume-matcher/internal/optimize"
	"resume-matcher/internal/services/health"
	"resume-matcher/internal/shared/config"
	"resume-matcher/internal/shared/metrics"
	"resume-matcher/internal/shared/server/middleware"
	"resume-matcher/internal/shared/server/respond"
)

// RouterDeps lists the handlers the router mounts.
type RouterDeps struct {
	Config          config.Config
	AnalysisHandler *analyses.Handler
	OptimizeHandler *optimize.Handler
	Health          *health.Service
	Taxonomy        *taxonomy.Taxonomy
	Limiter         *middleware.RateLimiter
}

// Rate limit groups.
const (
	rateGroupDefault = "DEFAULT"
	rateGroupRead    = "READ"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
// The analyze and optimize routes are served both at the root and under
// /api/v1.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: rateGroupDefault,
			GroupFor:     rateGroupFor,
			Limiter:      deps.Limiter,
			Rules: map[string]middleware.RateLimitRule{
				rateGroupDefault: {Rate: deps.Config.RateLimitRPS, Burst: deps.Config.RateLimitBurst},
				rateGroupRead:    {Rate: deps.Config.RateLimitRPS * 4, Burst: deps.Config.RateLimitBurst * 4},
			},
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			respond.JSON(c, http.StatusOK, gin.H{"ok": true})
			return
		}
		respond.JSON(c, http.StatusOK, deps.Health.Status())
	})
	api.GET("/taxonomy", func(c *gin.Context) {
		if deps.Taxonomy == nil {
			respond.Error(c, http.StatusServiceUnavailable, "Taxonomy not loaded", "")
			return
		}
		respond.OK(c, deps.Taxonomy.Document())
	})

	for _, g := range []gin.IRoutes{r, api} {
		if deps.AnalysisHandler != nil {
			deps.AnalysisHandler.RegisterRoutes(g)
		}
		if deps.OptimizeHandler != nil {
			deps.OptimizeHandler.RegisterRoutes(g)
		}
	}

	return r
}

func rateGroupFor(c *gin.Context) string {
	if c.Request.Method == http.MethodGet {
		return rateGroupRead
	}
	return rateGroupDefault
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
