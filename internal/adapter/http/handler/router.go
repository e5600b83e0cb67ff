package handler

import (
	"p2p-offerbook/internal/adapter/http/middleware"
	"p2p-offerbook/internal/adapter/metrics"
	redisStore "p2p-offerbook/internal/adapter/storage/redis"
	"p2p-offerbook/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	OfferBook      ports.OfferBook
	Preferences    ports.PreferenceStore
	Catalog        ports.CurrencyCatalog
	TokenSvc       ports.TokenService
	Stream         *StreamHub                 // nil = streaming disabled
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	Metrics        *metrics.Registry          // nil = no /metrics endpoint
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(64 << 10))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
	}
	r.Use(middleware.AuditLog(deps.Logger))

	// Health check (deep, pings PostgreSQL and Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

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

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	v1 := r.Group("/api/v1", jwtAuth)

	bookHandler := NewOfferBookHandler(deps.OfferBook, deps.Stream)
	v1.GET("/payment-methods", rl("read"), bookHandler.GetPaymentMethods)

	view := v1.Group("/offerbook/:direction")
	{
		view.GET("/offers", rl("read"), bookHandler.GetOffers)
		view.GET("/state", rl("read"), bookHandler.GetState)
		view.GET("/currencies", rl("read"), bookHandler.GetCurrencies)
		view.PUT("/currency", rl("select"), bookHandler.SelectCurrency)
		view.PUT("/payment-method", rl("select"), bookHandler.SelectPaymentMethod)
		view.PUT("/tab", rl("select"), bookHandler.SetTab)
		view.GET("/stream", rl("stream"), bookHandler.Stream)
	}

	v1.DELETE("/offers/:id", rl("remove"), bookHandler.RemoveOffer)

	prefsHandler := NewPreferencesHandler(deps.Preferences, deps.Catalog)
	prefs := v1.Group("/preferences")
	{
		prefs.GET("", rl("read"), prefsHandler.Get)
		prefs.PATCH("", rl("prefs"), prefsHandler.Patch)
	}

	return r
}
