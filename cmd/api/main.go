package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Fortis-Ledger/Career-Portal/internal/app"
	"github.com/Fortis-Ledger/Career-Portal/internal/config"
	"github.com/Fortis-Ledger/Career-Portal/internal/database"
	apphttp "github.com/Fortis-Ledger/Career-Portal/internal/http"
	"github.com/Fortis-Ledger/Career-Portal/internal/http/handlers"
	"github.com/Fortis-Ledger/Career-Portal/internal/http/metrics"
	httpmw "github.com/Fortis-Ledger/Career-Portal/internal/http/middleware"
	"github.com/Fortis-Ledger/Career-Portal/internal/http/response"
	"github.com/Fortis-Ledger/Career-Portal/internal/mail"
	"github.com/Fortis-Ledger/Career-Portal/internal/observability"
	"github.com/Fortis-Ledger/Career-Portal/internal/repository/postgres"
	"github.com/Fortis-Ledger/Career-Portal/internal/security"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger(cfg.LogLevel)
	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)
	settingsRepo := postgres.NewSettingsRepository(db)
	analyticsRepo := postgres.NewAnalyticsRepository(db)

	jwtProvider := security.NewJWTProvider(cfg.JWTSecret)
	admins := security.DefaultAdminPolicy()
	mailer := mail.NewDispatcher(settingsRepo, cfg.ResendAPIKey, cfg.ResendFrom, cfg.MailTimeout, logger)

	userService := app.NewUserService(userRepo, admins)
	profileService := app.NewProfileService(profileRepo)
	companyService := app.NewCompanyService(companyRepo, admins)
	jobService := app.NewJobService(jobRepo, admins, analyticsRepo, logger)
	applicationService := app.NewApplicationService(applicationRepo, jobRepo, companyRepo, profileRepo, analyticsRepo, admins, mailer, logger)
	settingsService := app.NewSettingsService(settingsRepo, admins)
	exportService := app.NewExportService(applicationRepo, jobRepo, companyRepo, profileRepo, userRepo, admins)
	statsService := app.NewStatsService(applicationRepo, jobRepo, companyRepo, userRepo, analyticsRepo, admins)
	notificationService := app.NewNotificationService(mailer, admins)

	var limiter httpmw.Limiter = httpmw.NewMemoryLimiter()
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal(err)
		}
		limiter = httpmw.NewRedisLimiter(redis.NewClient(opts))
	}

	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		JobHandler:         handlers.NewJobHandler(jobService),
		CompanyHandler:     handlers.NewCompanyHandler(companyService),
		ProfileHandler:     handlers.NewProfileHandler(profileService),
		ApplicationHandler: handlers.NewApplicationHandler(applicationService, limiter),
		UserHandler:        handlers.NewUserHandler(userService),
		SettingsHandler:    handlers.NewSettingsHandler(settingsService),
		ExportHandler:      handlers.NewExportHandler(exportService),
		StatsHandler:       handlers.NewStatsHandler(statsService),
		NotifyHandler:      handlers.NewNotifyHandler(notificationService),
		AuthMiddleware:     httpmw.NewAuthMiddleware(jwtProvider, userService, logger),
		Metrics:            collector,
		Limiter:            limiter,
		Logger:             logger,
		RequestTimeout:     cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.HTTPPort).Msg("API started")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
