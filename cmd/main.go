package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/shenikar/uav_fleet_system/internal/cache"
	"github.com/shenikar/uav_fleet_system/internal/config"
	v1 "github.com/shenikar/uav_fleet_system/internal/handler/http/v1"
	"github.com/shenikar/uav_fleet_system/internal/models"
	"github.com/shenikar/uav_fleet_system/internal/repository"
	"github.com/shenikar/uav_fleet_system/internal/service"
	"github.com/shenikar/uav_fleet_system/internal/webhook"
	"github.com/shenikar/uav_fleet_system/migrations"
	"github.com/shenikar/uav_fleet_system/pkg/logger"
	"github.com/shenikar/uav_fleet_system/pkg/postgres"
	redisclient "github.com/shenikar/uav_fleet_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/uav_fleet_system/docs"
)

// @title UAV Fleet System API
// @version 1.0
// @description CRUD API for drones, missions, incidents, events, logs and users of a UAV fleet.
// @host localhost:5001
// @BasePath /api
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "uav-fleet",
		Short:        "UAV fleet management backend",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd(), newMigrateCmd())
	return rootCmd
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the webhook worker",
		RunE:  serveE,
	}
	cmd.Flags().Bool("migrate", true, "Apply pending migrations before start")
	return cmd
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(func(m *migrate.Migrate) error { return m.Up() })
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back all migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrator(func(m *migrate.Migrate) error { return m.Down() })
			},
		},
	)
	return cmd
}

// migrationURL переводит DSN PostgreSQL в схему драйвера pgx5
func migrationURL(databaseURL string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(databaseURL, prefix) {
			return "pgx5://" + strings.TrimPrefix(databaseURL, prefix)
		}
	}
	return databaseURL
}

func withMigrator(fn func(m *migrate.Migrate) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return runMigrations(cfg, logger.New(cfg.LogLevel), fn)
}

func runMigrations(cfg *config.Config, log *logrus.Logger, fn func(m *migrate.Migrate) error) error {
	log.Info("Running database migrations...")

	source, err := iofs.New(migrations.Files, ".")
	if err != nil {
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, migrationURL(cfg.DatabaseURL))
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := fn(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func serveE(cmd *cobra.Command, args []string) error {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if runMigrate, _ := cmd.Flags().GetBool("migrate"); runMigrate {
		if err := runMigrations(cfg, log, func(m *migrate.Migrate) error { return m.Up() }); err != nil {
			return err
		}
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	publisher := webhook.NewRedisPublisher(redisClient)
	worker := webhook.NewWorker(redisClient, log, cfg)

	// Репозитории и сервисы
	logService := service.NewLogService(repository.NewLogRepository(dbpool), log)
	services := v1.Services{
		Drone: service.NewDroneService(repository.NewDroneRepository(dbpool),
			cache.New[models.Drone](redisClient, "drone", cfg.CacheTTL), publisher, log),
		Mission: service.NewMissionService(repository.NewMissionRepository(dbpool),
			cache.New[models.Mission](redisClient, "mission", cfg.CacheTTL), publisher, log),
		Incident: service.NewIncidentService(repository.NewIncidentRepository(dbpool),
			cache.New[models.Incident](redisClient, "incident", cfg.CacheTTL), publisher, log),
		Event: service.NewEventService(repository.NewEventRepository(dbpool),
			cache.New[models.Event](redisClient, "event", cfg.CacheTTL), publisher, log),
		User: service.NewUserService(repository.NewUserRepository(dbpool), logService, publisher, log),
		Log:  logService,
	}

	gin.SetMode(gin.ReleaseMode)
	handler := v1.NewHandler(services, log, cfg)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           v1.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("HTTP server started on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return worker.Run(gctx)
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Received shutdown signal, shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Server stopped with error")
		return err
	}

	log.Info("Server gracefully stopped")
	return nil
}
