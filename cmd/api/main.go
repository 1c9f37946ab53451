package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"microfinance-ledger/config"
	httpHandler "microfinance-ledger/internal/adapter/http/handler"
	"microfinance-ledger/internal/adapter/http/middleware"
	memStorage "microfinance-ledger/internal/adapter/storage/memory"
	pgStorage "microfinance-ledger/internal/adapter/storage/postgres"
	redisStorage "microfinance-ledger/internal/adapter/storage/redis"
	"microfinance-ledger/internal/core/domain"
	"microfinance-ledger/internal/core/ports"
	"microfinance-ledger/internal/service"
	"microfinance-ledger/internal/worker"
	"microfinance-ledger/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// storage bundles the repositories of the selected backend.
type storage struct {
	transactor ports.DBTransactor
	accounts   ports.AccountRepository
	entries    ports.EntryRepository
	guarantees ports.GuaranteeRepository
	terms      ports.TermDepositRepository
	sessions   ports.CashSessionRepository
	health     ports.HealthChecker
	close      func()
}

func openStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*storage, error) {
	switch cfg.Storage.Driver {
	case "memory":
		store := memStorage.NewStore()
		log.Warn().Msg("Using in-memory storage; data is lost on exit")
		return &storage{
			transactor: store,
			accounts:   memStorage.NewAccountRepo(store),
			entries:    memStorage.NewEntryRepo(store),
			guarantees: memStorage.NewGuaranteeRepo(store),
			terms:      memStorage.NewTermDepositRepo(store),
			sessions:   memStorage.NewCashSessionRepo(store),
			health:     store,
			close:      func() {},
		}, nil
	case "postgres", "":
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return nil, err
		}
		return &storage{
			transactor: pgStorage.NewTransactor(pool),
			accounts:   pgStorage.NewAccountRepo(pool),
			entries:    pgStorage.NewEntryRepo(pool),
			guarantees: pgStorage.NewGuaranteeRepo(pool),
			terms:      pgStorage.NewTermDepositRepo(pool),
			sessions:   pgStorage.NewCashSessionRepo(pool),
			health:     pgStorage.NewHealthCheck(pool),
			close:      pool.Close,
		}, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

func interestSettings(cfg config.InterestConfig) (service.InterestSettings, error) {
	settings := service.DefaultInterestSettings()
	if cfg.DefaultMonthlyPercent != "" {
		d, err := decimal.NewFromString(cfg.DefaultMonthlyPercent)
		if err != nil {
			return settings, fmt.Errorf("interest.default_monthly_percent: %w", err)
		}
		settings.DefaultMonthlyPercent = d
	}
	if cfg.ProcessingFeeRate != "" {
		d, err := decimal.NewFromString(cfg.ProcessingFeeRate)
		if err != nil {
			return settings, fmt.Errorf("interest.processing_fee_rate: %w", err)
		}
		settings.ProcessingFeeRate = d
	}
	return settings, nil
}

func main() {
	cfg, err := config.Load(os.Getenv("MFL_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("storage", cfg.Storage.Driver).
		Int("port", cfg.Server.Port).
		Msg("Starting Microfinance Ledger")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("jwt.secret must be set (MFL_JWT_SECRET)")
	}
	if len(cfg.Auth.Operators) == 0 {
		log.Warn().Msg("No operators configured under auth.operators; every login will fail")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open storage")
	}
	defer store.close()
	checkers := []ports.HealthChecker{store.health}

	// Redis is optional: without it exchange rates come from the static
	// table and rate limiting is off.
	var rateStore ports.ExchangeRateStore
	var limitStore *redisStorage.RateLimitStore
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		rateStore = redisStorage.NewExchangeRateStore(rdb)
		limitStore = redisStorage.NewRateLimitStore(rdb)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
	} else {
		log.Warn().Msg("Redis disabled; using static exchange rates without rate limiting")
	}

	policy, err := domain.NewGuaranteePolicy(cfg.Guarantee.DefaultPercent, cfg.Guarantee.Percentages)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid guarantee configuration")
	}
	settings, err := interestSettings(cfg.Interest)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid interest configuration")
	}

	// Services
	uow := service.NewUnitOfWork(store.transactor, cfg.Ledger.MaxRetries, cfg.Ledger.RetryBackoff, logger.Component(log, "uow"))
	exchangeSvc, err := service.NewExchangeService(rateStore, cfg.Exchange.Rates, cfg.Exchange.CacheTTL, logger.Component(log, "exchange"))
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid exchange rate table")
	}
	ledgerSvc := service.NewLedgerService(uow, store.accounts, store.entries, store.sessions, store.terms, logger.Component(log, "ledger"))
	transferSvc := service.NewTransferService(uow, store.accounts, store.entries, exchangeSvc, logger.Component(log, "transfer"))
	reversalSvc := service.NewReversalService(uow, store.accounts, store.entries, store.sessions, logger.Component(log, "reversal"))
	guaranteeSvc := service.NewGuaranteeService(uow, store.accounts, store.entries, store.guarantees, policy, logger.Component(log, "guarantee"))
	interestSvc := service.NewInterestService(uow, store.accounts, store.entries, store.sessions, store.terms, settings, logger.Component(log, "interest"))
	sessionSvc := service.NewCashSessionService(uow, store.sessions, store.entries, logger.Component(log, "cash_session"))

	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	authSvc := service.NewAuthService(cfg.Auth.Operators, service.NewArgon2HashService(), tokenSvc, logger.Component(log, "auth"))

	if cfg.Interest.ScheduleEnabled {
		job := worker.NewInterestJob(interestSvc, time.Hour, log)
		sched, err := worker.StartDaily(ctx, job, cfg.Interest.ScheduleAt)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to schedule interest job")
		}
		defer sched.Stop()
	}

	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		TokenSvc:       tokenSvc,
		LedgerSvc:      ledgerSvc,
		TransferSvc:    transferSvc,
		ReversalSvc:    reversalSvc,
		GuaranteeSvc:   guaranteeSvc,
		InterestSvc:    interestSvc,
		SessionSvc:     sessionSvc,
		ExchangeSvc:    exchangeSvc,
		RateLimitStore: limitStore,
		RateLimit:      middleware.RateLimitRule{Limit: int64(cfg.RateLimit.Requests), Window: cfg.RateLimit.Window},
		LoginRateLimit: middleware.RateLimitRule{Limit: int64(cfg.RateLimit.LoginRequests), Window: cfg.RateLimit.Window},
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		HealthCheckers: checkers,
		Logger:         logger.Component(log, "http"),
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("HTTP server failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
