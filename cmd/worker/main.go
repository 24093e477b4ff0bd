package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ezystaff/staffing-api/internal/config"
	"github.com/ezystaff/staffing-api/internal/push"
	"github.com/ezystaff/staffing-api/internal/repository/postgres"
	reminderService "github.com/ezystaff/staffing-api/internal/service/reminder"
	"github.com/ezystaff/staffing-api/pkg/logger"
	"github.com/ezystaff/staffing-api/pkg/metrics"
	"github.com/ezystaff/staffing-api/pkg/worker"
)

func setupHealthCheck(port int, l *logger.Logger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health/live", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	go func() {
		if err := http.ListenAndServe(fmt.Sprintf(":%d", port), mux); err != nil {
			l.ZL.Error().Err(err).Msg("Health check server failed")
			os.Exit(1)
		}
	}()
}

func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	l := &logger.Logger{ZL: log.Logger}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	workerCfg, err := config.LoadWorkerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load worker config")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	shiftRepo := postgres.NewShiftRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	ledger := postgres.NewSentNotificationRepository(db)
	sender := push.NewHTTPSender(cfg.Push)

	reminderSvc := reminderService.NewService(shiftRepo, eventRepo, ledger, sender, nil)

	interval := workerCfg.ReminderInterval
	if cfg.Reminder.Interval > 0 {
		interval = cfg.Reminder.Interval
	}

	runner := worker.NewReminderRunner(
		reminderSvc,
		interval,
		l,
		metrics.New("staffing_worker"),
	)

	setupHealthCheck(workerCfg.HealthPort, l)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		l.ZL.Info().Msg("Shutting down...")
		cancel()
	}()

	runner.Start(ctx)
}
