package worker

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ezystaff/staffing-api/internal/service/reminder"
	"github.com/ezystaff/staffing-api/pkg/logger"
	"github.com/ezystaff/staffing-api/pkg/metrics"
)

// ReminderRunner drives the shift-reminder job on a fixed interval. Each
// tick runs one full pass; a failed pass is logged and the next tick tries
// again from scratch.
type ReminderRunner struct {
	service  *reminder.Service
	interval time.Duration
	logger   *logger.Logger
	metrics  *metrics.Metrics
}

func NewReminderRunner(
	service *reminder.Service,
	interval time.Duration,
	logger *logger.Logger,
	metrics *metrics.Metrics,
) *ReminderRunner {
	if interval <= 0 {
		panic("interval must be greater than 0")
	}
	return &ReminderRunner{
		service:  service,
		interval: interval,
		logger:   logger,
		metrics:  metrics,
	}
}

func (r *ReminderRunner) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("Starting reminder runner")

	// First pass immediately so a fresh deploy does not sit idle for a
	// whole interval.
	r.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Shutting down reminder runner")
			return
		case <-ticker.C:
			r.runOnce(ctx)
		}
	}
}

func (r *ReminderRunner) runOnce(ctx context.Context) {
	timer := prometheus.NewTimer(r.metrics.ReminderRunDuration)
	defer timer.ObserveDuration()

	summary, err := r.service.Run(ctx)
	if err != nil {
		r.metrics.ReminderRunFailures.Inc()
		r.logger.Error(err, "Reminder run failed")
		return
	}

	r.metrics.ReminderShiftsChecked.Add(float64(summary.ShiftsChecked))
	r.metrics.ReminderNotificationsSent.Add(float64(summary.NotificationsSent))

	r.logger.Info("Reminder run completed",
		"shifts_checked", summary.ShiftsChecked,
		"notifications_sent", summary.NotificationsSent)
}
