package handler

import (
	"wallet-ledger/internal/adapter/http/middleware"
	"wallet-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	TransferSvc    ports.TransferService
	MergeSvc       ports.MergeService
	ExchangeSvc    ports.ExchangeService
	TokenValidator ports.TokenValidator
	RateLimiter    ports.RateLimiter // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20))

	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()

	// rl returns a limiter for the group, or a no-op when limiting is off.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimiter == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimiter, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	exchangeHandler := NewExchangeHandler(deps.ExchangeSvc)
	v1.GET("/currencies", rl("rates"), exchangeHandler.Currencies)
	v1.GET("/exchange-rates", rl("rates"), exchangeHandler.Rate)

	jwtAuth := middleware.JWTAuth(deps.TokenValidator, deps.Logger)
	walletHandler := NewWalletHandler(deps.WalletSvc, deps.TransferSvc, deps.MergeSvc)
	transferHandler := NewTransferHandler(deps.TransferSvc)
	mergeHandler := NewMergeHandler(deps.MergeSvc)

	wallets := v1.Group("/wallets", jwtAuth)
	{
		wallets.GET("", rl("read"), walletHandler.List)
		wallets.POST("", rl("wallets"), walletHandler.Create)
		wallets.POST("/merge/preview", rl("read"), mergeHandler.Preview)
		wallets.POST("/merge", rl("merge"), mergeHandler.Merge)
		wallets.GET("/merge/history", rl("read"), mergeHandler.History)
		wallets.GET("/:id", rl("read"), walletHandler.Get)
		wallets.DELETE("/:id", rl("wallets"), walletHandler.Delete)
		wallets.PUT("/:id/default", rl("wallets"), walletHandler.SetDefault)
		wallets.PUT("/:id/currency", rl("wallets"), walletHandler.ChangeCurrency)
		wallets.GET("/:id/transfers", rl("read"), walletHandler.Transfers)
		wallets.GET("/:id/merge-candidates", rl("read"), walletHandler.MergeCandidates)
	}

	transfers := v1.Group("/transfers", jwtAuth)
	{
		transfers.GET("", rl("read"), transferHandler.List)
		transfers.POST("", rl("transfers"), transferHandler.Transfer)
		transfers.PATCH("/:id", rl("transfers"), transferHandler.UpdateNote)
		transfers.DELETE("/:id", rl("transfers"), transferHandler.Delete)
	}

	return r
}
