package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/frahmantamala/asset-inventory/internal"
	"github.com/frahmantamala/asset-inventory/internal/asset"
	assetpg "github.com/frahmantamala/asset-inventory/internal/asset/postgres"
	"github.com/frahmantamala/asset-inventory/internal/auth"
	authpg "github.com/frahmantamala/asset-inventory/internal/auth/postgres"
	"github.com/frahmantamala/asset-inventory/internal/dashboard"
	dashboardpg "github.com/frahmantamala/asset-inventory/internal/dashboard/postgres"
	"github.com/frahmantamala/asset-inventory/internal/dropdown"
	"github.com/frahmantamala/asset-inventory/internal/export"
	"github.com/frahmantamala/asset-inventory/internal/search"
	"github.com/frahmantamala/asset-inventory/internal/transport/rest"
	"github.com/frahmantamala/asset-inventory/internal/user"
	userpg "github.com/frahmantamala/asset-inventory/internal/user/postgres"
	"github.com/frahmantamala/asset-inventory/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	sqlDB, err := deps.DB.DB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to access database handle: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps, sqlDB)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := sqlDB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func setupRoutes(deps *Dependencies, sqlDB *sql.DB) {
	cfg := deps.Config
	log := deps.Logger

	assetRepo := assetpg.NewAssetRepository(deps.DB)
	assetService := asset.NewService(assetRepo, log)
	assetHandler := asset.NewHandler(assetService)

	tokenGen := &auth.JWTTokenGenerator{
		Secret:   []byte(cfg.Security.JWTSecret),
		TokenTTL: cfg.Security.TokenTTL,
	}
	authRepo := authpg.NewRepository(deps.DB)
	authService := auth.NewService(authRepo, tokenGen, cfg.Security.BCryptCost, log)
	authHandler := auth.NewHandler(authService)

	userRepo := userpg.NewUserRepository(deps.DB)
	userService := user.NewService(userRepo, authService, log)
	userHandler := user.NewHandler(userService)

	searchService := search.NewService(assetRepo, log)
	searchHandler := search.NewHandler(searchService)

	exportService := export.NewService(assetRepo, log)
	exportHandler := export.NewHandler(exportService)

	// the dashboard read path runs on sqlx over the same connection pool
	sqlxDB := sqlx.NewDb(sqlDB, "pgx")
	dashboardRepo := dashboardpg.NewDashboardRepository(sqlxDB)
	dashboardService := dashboard.NewService(dashboardRepo, log)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	dropdownHandler := dropdown.NewHandler()

	rest.RegisterAllRoutes(
		deps.Router,
		sqlDB,
		authHandler,
		userHandler,
		assetHandler,
		searchHandler,
		exportHandler,
		dashboardHandler,
		dropdownHandler,
		log,
	)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.LoggerWrapper(),
		DB:     db,
		Router: chi.NewRouter(),
	}, nil
}

func initDB(cfg internal.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(cfg.Source), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access db handle: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
