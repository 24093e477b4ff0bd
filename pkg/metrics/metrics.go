package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// Reminder job metrics
	ReminderShiftsChecked     prometheus.Counter
	ReminderNotificationsSent prometheus.Counter
	ReminderSendFailures      prometheus.Counter
	ReminderRunDuration       prometheus.Histogram
	ReminderRunFailures       prometheus.Counter

	// Push delivery metrics
	PushSends    *prometheus.CounterVec
	PushLatency  prometheus.Histogram
	EmailSends   *prometheus.CounterVec
	BrokerErrors prometheus.Counter

	// Database metrics
	DatabaseOperations *prometheus.CounterVec
	DatabaseLatency    *prometheus.HistogramVec
}

// New creates and registers all application metrics under the given namespace.
func New(namespace string) *Metrics {
	return &Metrics{
		ReminderShiftsChecked: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminder_shifts_checked_total",
			Help:      "Total number of shifts examined by the reminder job",
		}),
		ReminderNotificationsSent: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminder_notifications_sent_total",
			Help:      "Total number of shift reminders actually sent",
		}),
		ReminderSendFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminder_send_failures_total",
			Help:      "Total number of reminder sends that failed",
		}),
		ReminderRunDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reminder_run_duration_seconds",
			Help:      "Time spent per reminder job run",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}),
		ReminderRunFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminder_run_failures_total",
			Help:      "Total number of reminder job runs that failed outright",
		}),
		PushSends: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_sends_total",
			Help:      "Total number of push sends by status",
		}, []string{"status"}),
		PushLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "push_send_duration_seconds",
			Help:      "Duration of push-send collaborator calls",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}),
		EmailSends: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "email_sends_total",
			Help:      "Total number of email sends by status",
		}, []string{"status"}),
		BrokerErrors: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "broker_publish_errors_total",
			Help:      "Total number of failed broker publishes",
		}),
		DatabaseOperations: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "database_operations_total",
			Help:      "Total number of database operations",
		}, []string{"operation", "status"}),
		DatabaseLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "database_operation_duration_seconds",
			Help:      "Duration of database operations",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
	}
}
