package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	contactsCache "contact-analytics-service/internal/contacts/adapters/cache"
	contactsExport "contact-analytics-service/internal/contacts/adapters/export"
	contactsHttp "contact-analytics-service/internal/contacts/adapters/http/fiber"
	contactsRepoPg "contact-analytics-service/internal/contacts/adapters/postgres"
	"contact-analytics-service/internal/contacts/core/analytics"
	contactsUsecase "contact-analytics-service/internal/contacts/core/usecase"
	"contact-analytics-service/internal/platform/config"
	"contact-analytics-service/internal/platform/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "contact-analytics-service/docs"
)

// @title Contact Analytics API
// @version 1.0
// @description Filtering and aggregation of helpline contact records.
// @host localhost:8080
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.New("", "").WithError(err).Fatal("failed to load config")
	}

	log := logger.New(cfg.Environment, cfg.LogLevel)
	log.WithField("service", "contact-analytics").Info("starting service")

	// DB connection
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := contactsRepoPg.Open(ctx, cfg.DB.ConnString(), cfg.DB.ConnectMaxWait, log.Component("postgres"))
	if err != nil {
		log.WithError(err).Fatal("failed to connect to postgres")
	}
	defer db.Close()

	// Repository + cache
	contactRepository := contactsRepoPg.NewContactRepository(contactsRepoPg.NewSQLDB(db))
	reader := contactsCache.NewReader(contactRepository, cfg.CacheTTL, cfg.StatsCacheTTL, log.Component("cache"))
	reader.Start()
	defer reader.Stop()

	// Usecases
	opts := contactsUsecase.DefaultOptions()
	opts.PrimaryTopics = analytics.PrimaryTopics(cfg.PrimaryTopicDelimiter)
	opts.SecondaryTopics = analytics.SecondaryTopics(cfg.SecondaryTopicDelimiter)
	opts.DefaultWindowDays = cfg.DefaultWindowDays

	handler := contactsHttp.NewContactsHandler(contactsHttp.UseCases{
		Dashboard: contactsUsecase.NewGetDashboardUseCase(reader, opts),
		List:      contactsUsecase.NewListContactsUseCase(reader, opts),
		Export:    contactsUsecase.NewExportContactsUseCase(reader, opts, contactsExport.CSV{}, contactsExport.XLSX{}),
		Stats:     contactsUsecase.NewGetDatabaseStatsUseCase(reader),
		Refresh:   contactsUsecase.NewRefreshUseCase(reader),
	})

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(contactsHttp.RequestLogger(log.Component("http")))
	app.Use(contactsHttp.PasswordGate(cfg.DashboardPassword))

	handler.Register(app)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	addr := ":" + cfg.Port
	go func() {
		if err := app.Listen(addr); err != nil {
			log.WithError(err).Error("fiber stopped")
		}
	}()

	log.WithField("addr", addr).Info("listening")

	<-ctx.Done()

	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.WithError(err).Error("fiber shutdown error")
	}

	log.Info("server exiting")
}
