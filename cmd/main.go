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

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/cobra"

	"github.com/sbilibin2017/gw-career-opportunities/internal/logger"
	"github.com/sbilibin2017/gw-career-opportunities/internal/migrations"
	"github.com/sbilibin2017/gw-career-opportunities/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const shutdownTimeout = 10 * time.Second

// @title gw-career-opportunities API
// @version 1.0.0
// @description Career opportunities platform: opportunity listings, applications and bookmarks
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// newRootCmd returns the root command, which serves the HTTP API, with the
// migrate subcommands attached.
func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "gw-career-opportunities",
		Short:        "Career opportunities platform API server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			printBuildInfo()
			cfg, err := parseConfig(configPath)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.env", "Path to configuration file")

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}
	migrateCmd.AddCommand(
		newMigrateStepCmd("up", "Apply all up migrations", migrations.Up, &configPath),
		newMigrateStepCmd("down", "Roll back all migrations", migrations.Down, &configPath),
	)
	root.AddCommand(migrateCmd)

	return root
}

func newMigrateStepCmd(use, short string, step func(dsn string) error, configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := parseConfig(*configPath)
			if err != nil {
				return err
			}
			return step(cfg.PostgresDSN())
		},
	}
}

// kafkaBatchTimeout bounds how long a partial batch waits before it is sent.
const kafkaBatchTimeout = 10 * time.Millisecond

// newKafkaWriter returns an asynchronous writer: WriteMessages only enqueues,
// so publishing never holds up the request that triggered it. Delivery
// failures are reported through Completion.
func newKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		Async:                  true,
		BatchTimeout:           kafkaBatchTimeout,
		Completion:             logKafkaCompletion,
	}
}

func logKafkaCompletion(messages []kafka.Message, err error) {
	if err != nil {
		logger.Log.Errorw("Failed to deliver events to Kafka", "count", len(messages), "error", err)
		return
	}
	logger.Log.Debugw("Events delivered to Kafka", "count", len(messages))
}

// run initializes the logger, database, Redis, Kafka writer and HTTP server.
// It blocks until a shutdown signal arrives or the server fails.
func run(ctx context.Context, cfg Config) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	logger.Log.Infow("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// Connect to PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)
	logger.Log.Infow("connected to PostgreSQL", "host", cfg.PostgresHost, "db", cfg.PostgresDB)

	// Connect to Redis. The listing cache degrades to direct reads when Redis
	// is down, so an unreachable server is not fatal.
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Warnw("Redis unreachable, listings will bypass the cache", "addr", cfg.RedisAddr(), "error", err)
	}

	// Kafka writer
	var events services.KafkaWriter
	if brokers := cfg.KafkaBrokerList(); len(brokers) > 0 {
		writer := newKafkaWriter(brokers, cfg.KafkaTopic)
		defer writer.Close()
		events = writer
		logger.Log.Infow("Kafka publishing enabled", "brokers", brokers, "topic", cfg.KafkaTopic)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           buildHandler(cfg, db, rdb, events, reg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infow("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
