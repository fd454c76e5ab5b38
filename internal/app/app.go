package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/tienchinh21/bkasim-cms/internal/config"
	"github.com/tienchinh21/bkasim-cms/internal/export"
	"github.com/tienchinh21/bkasim-cms/internal/handler"
	"github.com/tienchinh21/bkasim-cms/internal/middleware"
	"github.com/tienchinh21/bkasim-cms/internal/notification"
	"github.com/tienchinh21/bkasim-cms/internal/repository"
	"github.com/tienchinh21/bkasim-cms/internal/router"
	"github.com/tienchinh21/bkasim-cms/internal/scheduler"
	"github.com/tienchinh21/bkasim-cms/internal/service"
	"github.com/tienchinh21/bkasim-cms/internal/storage"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"bkasim-cms",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns:    a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    a.cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: a.cfg.Postgres.ConnMaxLifetime,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	eventRepo := repository.NewEventRepo(a.db)
	regRepo := repository.NewRegistrationRepo(a.db)
	guestRepo := repository.NewGuestRepo(a.db)
	fieldRepo := repository.NewCustomFieldRepo(a.db)
	valueRepo := repository.NewCustomFieldValueRepo(a.db)
	giftRepo := repository.NewGiftRepo(a.db)
	groupRepo := repository.NewGroupRepo(a.db)
	membershipRepo := repository.NewMembershipRepo(a.db)
	memberGroupRepo := repository.NewMembershipGroupRepo(a.db)
	sponsorRepo := repository.NewSponsorRepo(a.db)
	templateRepo := repository.NewTemplateRepo(a.db)
	activityRepo := repository.NewActivityRepo(a.db)

	chatIDs, err := a.cfg.Telegram.ChatIDs()
	if err != nil {
		return fmt.Errorf("telegram config: %w", err)
	}
	telegram, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, chatIDs, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}
	zns := notification.NewZNSClient(notification.ZNSConfig{
		BaseURL:      a.cfg.ZNS.BaseURL,
		APIKey:       a.cfg.ZNS.APIKey,
		Timeout:      a.cfg.ZNS.Timeout,
		Retries:      a.cfg.ZNS.Retries,
		RetryBackoff: a.cfg.ZNS.RetryBackoff,
	})
	if !zns.Enabled() {
		a.log.Warn("zns gateway is not configured, participant messages disabled")
	}
	notifier := notification.NewDispatcher(templateRepo, zns, telegram, a.log)

	images := storage.NewLocalStorage(a.cfg.Storage.UploadDir, a.cfg.Storage.URLPrefix, a.cfg.Storage.MaxImageBytes())
	codes := service.NewCodeGenerator(regRepo)

	activityService := service.NewActivityService(activityRepo, a.log)
	eventService := service.NewEventService(eventRepo, regRepo, guestRepo, membershipRepo, activityService, a.log)
	statisticsService := service.NewStatisticsService(eventRepo, regRepo, guestRepo, fieldRepo, valueRepo, export.NewWorkbook(), a.log)
	registrationService := service.NewRegistrationService(regRepo, eventRepo, guestRepo, codes, notifier, activityService, a.log)
	guestService := service.NewGuestService(guestRepo, eventRepo, codes, notifier, activityService, a.log)
	customFieldService := service.NewCustomFieldService(fieldRepo, valueRepo, eventRepo, guestRepo, regRepo, codes, notifier, activityService, a.log)
	giftService := service.NewGiftService(giftRepo, eventRepo, images, activityService, a.log)
	groupService := service.NewGroupService(groupRepo, membershipRepo, memberGroupRepo, activityService, a.log)
	sponsorService := service.NewSponsorService(sponsorRepo, activityService)
	templateService := service.NewTemplateService(templateRepo, activityService)

	a.scheduler = scheduler.New(
		guestService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(handler.Services{
		Events:        eventService,
		Statistics:    statisticsService,
		Registrations: registrationService,
		Guests:        guestService,
		CustomFields:  customFieldService,
		Gifts:         giftService,
		Groups:        groupService,
		Sponsors:      sponsorService,
		Templates:     templateService,
		Activity:      activityService,
	}, a.log)

	r := router.InitRouter(
		router.Options{
			Mode:         a.cfg.Gin.Mode,
			AllowOrigins: a.cfg.Auth.Origins(),
			JWTSecret:    a.cfg.Auth.JWTSecret,
			UploadDir:    a.cfg.Storage.UploadDir,
			UploadPrefix: a.cfg.Storage.URLPrefix,
		},
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.WriteTimeout)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied")
	return nil
}
