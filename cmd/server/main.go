package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/simaogato/lifeplan-backend/internal/adapter/grpc"
	"github.com/simaogato/lifeplan-backend/internal/adapter/repository/memory"
	"github.com/simaogato/lifeplan-backend/internal/adapter/repository/postgres"
	redisrepo "github.com/simaogato/lifeplan-backend/internal/adapter/repository/redis"
	"github.com/simaogato/lifeplan-backend/internal/adapter/rest"
	"github.com/simaogato/lifeplan-backend/internal/domain"
	"github.com/simaogato/lifeplan-backend/internal/platform/config"
	"github.com/simaogato/lifeplan-backend/internal/platform/logger"
	"github.com/simaogato/lifeplan-backend/internal/platform/metrics"
	"github.com/simaogato/lifeplan-backend/internal/usecase/ledger"
	"github.com/simaogato/lifeplan-backend/internal/usecase/planner"
)

const (
	defaultConfigPath = "config.yaml"
	shutdownTimeout   = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lifeplan server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration and logging
	configPath := os.Getenv("LIFEPLAN_CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	// 2. Initialize Repositories
	ledgerRepo, closeLedger, err := newLedgerRepository(ctx, cfg.Redis, log)
	if err != nil {
		return err
	}
	defer closeLedger()

	submissionRepo, closeSubmissions, err := newSubmissionRepository(ctx, cfg.DB, log)
	if err != nil {
		return err
	}
	defer closeSubmissions()

	// 3. Initialize Services (Use Cases)
	m := metrics.New(nil)
	ledgerService := ledger.NewLedgerService(ledgerRepo, log)
	plannerService := planner.NewPlannerService(ledgerService, submissionRepo, m, log)

	// 4. Start gRPC Server
	healthServer := health.NewServer()
	grpcServer := grpclib.NewServer(
		grpclib.UnaryInterceptor(grpcadapter.AuthInterceptor(cfg.APIToken, "/grpc.health.v1.Health/Check")),
	)
	grpcadapter.RegisterLifePlanServiceServer(grpcServer, grpcadapter.NewServer(ledgerService, plannerService, log))
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.GRPCAddr, err)
	}

	go func() {
		log.Info("gRPC server listening", zap.String("addr", cfg.GRPCAddr))
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatal("failed to serve gRPC server", zap.Error(err))
		}
	}()

	// 5. Start HTTP Server
	router := chi.NewRouter()
	rest.NewHandler(ledgerService, plannerService, cfg.APIToken, log).Register(router)
	router.Handle("/metrics", promhttp.Handler())

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to serve HTTP server", zap.Error(err))
		}
	}()

	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	// Graceful shutdown
	waitForShutdown(log, healthServer, grpcServer, httpServer)
	return nil
}

// newLedgerRepository picks the redis store when an address is configured, memory otherwise
func newLedgerRepository(ctx context.Context, cfg config.RedisConfig, log *zap.Logger) (domain.LedgerRepository, func(), error) {
	client, err := redisrepo.NewClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if client == nil {
		log.Info("ledger store: memory")
		return memory.NewLedgerRepository(), func() {}, nil
	}

	log.Info("ledger store: redis", zap.String("addr", cfg.Addr), zap.Duration("ttl", cfg.LedgerTTL))
	return redisrepo.NewLedgerRepository(client, cfg.LedgerTTL), func() { _ = client.Close() }, nil
}

// newSubmissionRepository connects to Postgres unless the database is disabled
func newSubmissionRepository(ctx context.Context, cfg config.DBConfig, log *zap.Logger) (domain.SubmissionRepository, func(), error) {
	if !cfg.Enabled {
		log.Info("submission store: log only")
		return memory.NewSubmissionLog(log), func() {}, nil
	}

	db, err := postgres.NewDB(cfg.ConnectionString())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}

	log.Info("submission store: postgres", zap.String("host", cfg.Host), zap.String("database", cfg.Name))
	return postgres.NewSubmissionRepository(db), func() { _ = db.Close() }, nil
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the servers
func waitForShutdown(log *zap.Logger, healthServer *health.Server, grpcServer *grpclib.Server, httpServer *http.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Info("shutting down gracefully", zap.String("signal", sig.String()))

	healthServer.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
	}

	grpcServer.GracefulStop()
	log.Info("servers stopped")
}
