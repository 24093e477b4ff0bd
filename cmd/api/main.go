package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ezystaff/staffing-api/internal/config"
	"github.com/ezystaff/staffing-api/internal/email"
	"github.com/ezystaff/staffing-api/internal/handler"
	authHandler "github.com/ezystaff/staffing-api/internal/handler/auth"
	brandHandler "github.com/ezystaff/staffing-api/internal/handler/brand"
	clientHandler "github.com/ezystaff/staffing-api/internal/handler/client"
	eventHandler "github.com/ezystaff/staffing-api/internal/handler/event"
	notificationHandler "github.com/ezystaff/staffing-api/internal/handler/notification"
	operatorHandler "github.com/ezystaff/staffing-api/internal/handler/operator"
	shiftHandler "github.com/ezystaff/staffing-api/internal/handler/shift"
	"github.com/ezystaff/staffing-api/internal/middleware"
	"github.com/ezystaff/staffing-api/internal/push"
	"github.com/ezystaff/staffing-api/internal/repository/postgres"
	"github.com/ezystaff/staffing-api/internal/router"
	authService "github.com/ezystaff/staffing-api/internal/service/auth"
	eventService "github.com/ezystaff/staffing-api/internal/service/event"
	exportService "github.com/ezystaff/staffing-api/internal/service/export"
	notificationService "github.com/ezystaff/staffing-api/internal/service/notification"
	shiftService "github.com/ezystaff/staffing-api/internal/service/shift"
	"github.com/ezystaff/staffing-api/pkg/auth"
	"github.com/ezystaff/staffing-api/pkg/messaging"
	"github.com/ezystaff/staffing-api/pkg/messaging/redis"
	"github.com/ezystaff/staffing-api/pkg/validator"
)

func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Repositories
	eventRepo := postgres.NewEventRepository(db)
	shiftRepo := postgres.NewShiftRepository(db)
	operatorRepo := postgres.NewOperatorRepository(db)
	clientRepo := postgres.NewClientRepository(db)
	brandRepo := postgres.NewBrandRepository(db)

	// The broker carries best-effort audit events; the API stays up
	// without it.
	var broker messaging.Broker
	if cfg.Redis.URL != "" {
		broker, err = redis.NewRedisBroker(redis.Config{
			URL:          cfg.Redis.URL,
			MaxRetries:   cfg.Redis.MaxRetries,
			RetryBackoff: cfg.Redis.RetryBackoff,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		}, &log.Logger)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to Redis, notification events disabled")
			broker = nil
		} else {
			defer broker.Close()
		}
	}

	var emailSvc email.Service
	if cfg.SMTP.Host != "" {
		emailSvc = email.NewService(cfg.SMTP)
	}

	pushSender := push.NewHTTPSender(cfg.Push)
	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	v := validator.New()

	// Services
	authSvc := authService.NewService(cfg.Admin, jwtSvc)
	eventSvc := eventService.NewService(eventRepo, shiftRepo, clientRepo, brandRepo)
	shiftSvc := shiftService.NewService(shiftRepo, eventRepo)
	exportSvc := exportService.NewService(cfg.Export.OutputDir, nil)
	notificationSvc := notificationService.NewService(operatorRepo, eventRepo, pushSender, emailSvc, broker)

	// Handlers
	h := handler.NewHandler()
	authH := authHandler.NewHandler(authSvc)
	eventH := eventHandler.NewHandler(eventSvc, exportSvc, operatorRepo, v)
	shiftH := shiftHandler.NewHandler(shiftSvc, v)
	operatorH := operatorHandler.NewHandler(operatorRepo, v)
	clientH := clientHandler.NewHandler(clientRepo, v)
	brandH := brandHandler.NewHandler(brandRepo, v)
	notificationH := notificationHandler.NewHandler(notificationSvc, v)

	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	r := router.NewRouter(
		authMiddleware,
		authH,
		eventH,
		shiftH,
		operatorH,
		clientH,
		brandH,
		notificationH,
		h,
		router.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RateLimitRPS:     cfg.RateLimit.RequestsPerSecond,
			RateLimitBurst:   cfg.RateLimit.Burst,
			CORSConfig:       middleware.DefaultCORSConfig(),
			MetricsPrefix:    "staffing_api",
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        r.Engine(),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()
	log.Info().Int("port", cfg.Server.Port).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
