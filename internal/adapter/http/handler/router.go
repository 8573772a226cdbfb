package handler

import (
	"net/http"

	"donation-gateway/internal/adapter/http/middleware"
	redisStore "donation-gateway/internal/adapter/storage/redis"
	"donation-gateway/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	OrderSvc        ports.OrderService
	VerificationSvc ports.VerificationService
	RateLimitStore  *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers  []ports.HealthChecker
	AllowedOrigins  []string // empty = allow all (dev)
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
// The two donation endpoints keep their legacy top-level paths; the web
// client calls them without a version prefix.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(64 << 10)) // 64 KB; both bodies are tiny

	corsCfg := cors.DefaultConfig()
	if len(deps.AllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = deps.AllowedOrigins
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type"}
	r.Use(cors.New(corsCfg))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	donationHandler := NewDonationHandler(deps.OrderSvc, deps.VerificationSvc)

	r.POST("/create-order", rl("create_order"), donationHandler.CreateOrder)
	r.POST("/verify-payment", rl("verify_payment"), donationHandler.VerifyPayment)

	// Health check (deep — verifies PostgreSQL, Redis and the gateway)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Legacy liveness probe
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
