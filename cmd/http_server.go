package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JeremyDong22/gp-calculator/internal"
	"github.com/JeremyDong22/gp-calculator/internal/auth"
	authPostgres "github.com/JeremyDong22/gp-calculator/internal/auth/postgres"
	"github.com/JeremyDong22/gp-calculator/internal/cashreceipt"
	cashreceiptPostgres "github.com/JeremyDong22/gp-calculator/internal/cashreceipt/postgres"
	"github.com/JeremyDong22/gp-calculator/internal/core/events"
	"github.com/JeremyDong22/gp-calculator/internal/expense"
	expensePostgres "github.com/JeremyDong22/gp-calculator/internal/expense/postgres"
	"github.com/JeremyDong22/gp-calculator/internal/financials"
	financialsPostgres "github.com/JeremyDong22/gp-calculator/internal/financials/postgres"
	"github.com/JeremyDong22/gp-calculator/internal/project"
	projectPostgres "github.com/JeremyDong22/gp-calculator/internal/project/postgres"
	"github.com/JeremyDong22/gp-calculator/internal/report"
	"github.com/JeremyDong22/gp-calculator/internal/timesheet"
	timesheetPostgres "github.com/JeremyDong22/gp-calculator/internal/timesheet/postgres"
	"github.com/JeremyDong22/gp-calculator/internal/transport/rest"
	"github.com/JeremyDong22/gp-calculator/internal/user"
	userPostgres "github.com/JeremyDong22/gp-calculator/internal/user/postgres"
	"github.com/JeremyDong22/gp-calculator/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
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
	DB     *sqlx.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

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
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	env := "development"
	if config.Observability.Logging.Format == "json" {
		env = "production"
	}
	logger.Init(env)
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm over pgx pool: %w", err)
	}

	bus := events.NewEventBus(lg)

	// repositories
	authRepo := authPostgres.NewAuthRepository(gormDB)
	userRepo := userPostgres.NewUserRepository(gormDB)
	projectRepo := projectPostgres.NewProjectRepository(gormDB)
	timesheetRepo := timesheetPostgres.NewTimesheetRepository(gormDB)
	expenseRepo := expensePostgres.NewExpenseRepository(gormDB)
	cashReceiptRepo := cashreceiptPostgres.NewCashReceiptRepository(gormDB)
	financialsRepo := financialsPostgres.NewFinancialsRepository(gormDB)

	// the lifecycle machine subscribes before any command can publish
	project.NewLifecycle(projectRepo, lg).Register(bus)

	// services
	tokenGenerator := &auth.JWTTokenGenerator{
		AccessTokenSecret:  []byte(config.Security.AccessTokenSecret),
		RefreshTokenSecret: []byte(config.Security.RefreshTokenSecret),
		AccessTokenTTL:     config.Security.AccessTokenDuration,
		RefreshTokenTTL:    config.Security.RefreshTokenDuration,
	}
	authService := auth.NewService(authRepo, tokenGenerator, config.Security.BCryptCost, lg)
	userService := user.NewService(userRepo, authService, lg)
	projectService := project.NewService(projectRepo, bus, config.Finance.DefaultSalaryRatio, lg)
	timesheetService := timesheet.NewService(timesheetRepo, projectRepo, bus, lg)
	expenseService := expense.NewService(expenseRepo, projectRepo, lg)
	cashReceiptService := cashreceipt.NewService(cashReceiptRepo, projectRepo, bus, lg)
	financialsService := financials.NewService(financialsRepo, projectRepo, config.Finance.WorkdayHours, lg)
	reportService := report.NewService(projectRepo, financialsService, lg)

	router := chi.NewRouter()
	rest.RegisterAllRoutes(router, db.DB, rest.Handlers{
		Auth:        auth.NewHandler(authService),
		User:        user.NewHandler(userService),
		Project:     project.NewHandler(projectService),
		Timesheet:   timesheet.NewHandler(timesheetService),
		Expense:     expense.NewHandler(expenseService),
		CashReceipt: cashreceipt.NewHandler(cashReceiptService),
		Financials:  financials.NewHandler(financialsService),
		Report:      report.NewHandler(reportService),
	}, lg)

	return &Dependencies{
		Config: config,
		DB:     db,
		Router: router,
		Logger: lg,
	}, nil
}

// initDB opens the pgx-backed pool used by gorm, goose, and the readiness
// probe.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
