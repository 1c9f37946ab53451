package handler

import (
	"microfinance-ledger/internal/adapter/http/middleware"
	redisStore "microfinance-ledger/internal/adapter/storage/redis"
	"microfinance-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	TokenSvc       ports.TokenService
	LedgerSvc      ports.LedgerService
	TransferSvc    ports.TransferService
	ReversalSvc    ports.ReversalService
	GuaranteeSvc   ports.GuaranteeService
	InterestSvc    ports.InterestService
	SessionSvc     ports.CashSessionService
	ExchangeSvc    ports.ExchangeService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	RateLimit      middleware.RateLimitRule
	LoginRateLimit middleware.RateLimitRule
	MaxBodyBytes   int64
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 1 << 20
	}

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBody))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	v1 := r.Group("/api/v1")

	// --- Public routes ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	v1.POST("/auth/login", middleware.RateLimiter(deps.RateLimitStore, "auth_login", deps.LoginRateLimit, deps.Logger), authHandler.Login)

	// --- Operator routes (JWT) ---
	api := v1.Group("",
		middleware.JWTAuth(deps.TokenSvc, deps.Logger),
		middleware.RateLimiter(deps.RateLimitStore, "api", deps.RateLimit, deps.Logger),
	)

	accounts := NewAccountHandler(deps.LedgerSvc)
	guarantees := NewGuaranteeHandler(deps.LedgerSvc, deps.GuaranteeSvc)
	acct := api.Group("/accounts")
	{
		acct.POST("", accounts.Open)
		acct.GET("", accounts.Lookup)
		acct.GET("/:id", accounts.Get)
		acct.GET("/:id/entries", accounts.Entries)
		acct.GET("/:id/reconciliation", accounts.Reconcile)
		acct.POST("/:id/deposits", accounts.Deposit)
		acct.POST("/:id/withdrawals", accounts.Withdraw)
		acct.PUT("/:id/status", accounts.SetStatus)
		acct.POST("/:id/close", accounts.Close)

		acct.GET("/:id/guarantees", guarantees.List)
		acct.PUT("/:id/guarantees", guarantees.Set)
		acct.DELETE("/:id/guarantees/:loanApplicationId", guarantees.Release)
	}

	transfers := NewTransferHandler(deps.LedgerSvc, deps.TransferSvc, deps.ReversalSvc)
	api.POST("/transfers", transfers.Transfer)
	api.POST("/entries/:id/cancel", transfers.Cancel)

	terms := NewTermDepositHandler(deps.InterestSvc)
	term := api.Group("/term-deposits")
	{
		term.POST("", terms.Open)
		term.GET("/:id", terms.Get)
		term.POST("/:id/accrue", terms.Accrue)
		term.POST("/:id/renew", terms.Renew)
		term.POST("/:id/close", terms.Close)
	}
	api.POST("/interest/accrue-all", terms.AccrueAll)
	api.POST("/loans/quote", terms.QuoteLoan)

	sessions := NewCashSessionHandler(deps.SessionSvc)
	sess := api.Group("/cash-sessions")
	{
		sess.POST("", sessions.Open)
		sess.GET("/:id", sessions.Get)
		sess.POST("/:id/pause", sessions.Pause)
		sess.POST("/:id/resume", sessions.Resume)
		sess.POST("/:id/close", sessions.Close)
	}

	exchange := NewExchangeHandler(deps.ExchangeSvc)
	api.GET("/exchange-rates", exchange.Get)
	api.PUT("/exchange-rates", exchange.Publish)

	return r
}
