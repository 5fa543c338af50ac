package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wallet-ledger/config"
	httpHandler "wallet-ledger/internal/adapter/http/handler"
	"wallet-ledger/internal/adapter/http/middleware"
	"wallet-ledger/internal/adapter/rates"
	memStorage "wallet-ledger/internal/adapter/storage/memory"
	pgStorage "wallet-ledger/internal/adapter/storage/postgres"
	redisStorage "wallet-ledger/internal/adapter/storage/redis"
	"wallet-ledger/internal/core/ports"
	"wallet-ledger/internal/service"
	"wallet-ledger/pkg/logger"

	"github.com/rs/zerolog"
)

// storage bundles the repositories for the configured driver.
type storage struct {
	wallets     ports.WalletRepository
	members     ports.MemberRepository
	txs         ports.TransactionRepository
	transfers   ports.TransferRepository
	idempotency ports.IdempotencyRepository
	history     ports.MergeHistoryRepository
	audit       ports.AuditRepository
	transactor  ports.DBTransactor
	health      ports.HealthChecker
	close       func()
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("driver", cfg.Database.Driver).
		Str("rates", cfg.Rates.Source).
		Msg("Starting Wallet Ledger")

	ctx := context.Background()

	store, err := openStorage(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialise storage")
	}
	defer store.close()

	healthCheckers := []ports.HealthChecker{store.health}

	// Redis is optional; without it caches are skipped and limits are per process.
	var (
		rateCache   ports.RateCache
		idempCache  ports.IdempotencyCache
		rateLimiter ports.RateLimiter = middleware.NewLocalLimiter()
	)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		rateCache = redisStorage.NewRateCache(rdb)
		idempCache = redisStorage.NewIdempotencyCache(rdb)
		rateLimiter = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	source, err := openRateSource(cfg.Rates, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialise rate source")
	}

	exchangeSvc := service.NewExchangeService(source, rateCache, cfg.Rates.CacheTTL, log)
	walletSvc := service.NewWalletService(store.wallets, store.members, store.txs, store.transfers, exchangeSvc, store.transactor, log)
	transferSvc := service.NewTransferService(
		store.wallets,
		store.members,
		store.transfers,
		store.idempotency,
		exchangeSvc,
		idempCache,
		cfg.Idempotency.TTL,
		store.transactor,
		log,
	)
	mergeSvc := service.NewMergeService(
		store.wallets,
		store.members,
		store.txs,
		store.transfers,
		store.history,
		exchangeSvc,
		store.transactor,
		log,
	)
	auditSvc := service.NewAuditService(store.audit, log)
	tokenValidator := service.NewJWTTokenValidator(cfg.JWT.Secret, cfg.JWT.Issuer)

	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err != nil {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	} else if title, err := httpHandler.SetSwaggerSpec(specBytes); err != nil {
		log.Warn().Err(err).Msg("OpenAPI spec unreadable, Swagger UI will be unavailable")
	} else {
		log.Info().Str("title", title).Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		TransferSvc:    transferSvc,
		MergeSvc:       mergeSvc,
		ExchangeSvc:    exchangeSvc,
		TokenValidator: tokenValidator,
		RateLimiter:    rateLimiter,
		HealthCheckers: healthCheckers,
		AuditSvc:       auditSvc,
		Logger:         log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

func openStorage(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (*storage, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		log.Warn().Msg("Using in-memory storage, data is lost on restart")
		st := memStorage.NewStore()
		return &storage{
			wallets:     memStorage.NewWalletRepo(st),
			members:     memStorage.NewMemberRepo(st),
			txs:         memStorage.NewTransactionRepo(st),
			transfers:   memStorage.NewTransferRepo(st),
			idempotency: memStorage.NewIdempotencyRepo(st),
			history:     memStorage.NewMergeHistoryRepo(st),
			audit:       memStorage.NewAuditRepo(st),
			transactor:  st,
			health:      st,
			close:       func() {},
		}, nil
	case config.DriverPostgres:
		pool, err := pgStorage.NewPool(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		log.Info().Msg("PostgreSQL connected")
		return &storage{
			wallets:     pgStorage.NewWalletRepo(pool),
			members:     pgStorage.NewMemberRepo(pool),
			txs:         pgStorage.NewTransactionRepo(pool),
			transfers:   pgStorage.NewTransferRepo(pool),
			idempotency: pgStorage.NewIdempotencyRepo(pool),
			history:     pgStorage.NewMergeHistoryRepo(pool),
			audit:       pgStorage.NewAuditRepository(pool),
			transactor:  pgStorage.NewTransactor(pool, cfg.LockTimeout),
			health:      pgStorage.NewHealthCheck(pool),
			close:       pool.Close,
		}, nil
	}
	return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
}

func openRateSource(cfg config.RatesConfig, log zerolog.Logger) (ports.RateSource, error) {
	switch cfg.Source {
	case config.RateSourceLive:
		return rates.NewLiveSource(rates.LiveConfig{
			URL:               cfg.LiveURL,
			Base:              cfg.Base,
			Timeout:           cfg.Timeout,
			RequestsPerSecond: cfg.RequestsPerSecond,
			CacheTTL:          cfg.CacheTTL,
		}, log), nil
	case config.RateSourceStatic:
		table, err := cfg.ParsedTable()
		if err != nil {
			return nil, err
		}
		return rates.NewStaticSource(cfg.Base, table)
	}
	return nil, fmt.Errorf("unknown rate source %q", cfg.Source)
}
