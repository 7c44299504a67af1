package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	TotalRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "appointments_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "appointments_http_request_duration_seconds",
			Help:    "Histogram of HTTP response duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	Commands = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "appointments_commands_total",
			Help: "Inbound commands by keyword and outcome",
		},
		[]string{"command", "outcome"},
	)

	AppointmentsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "appointments_generated_total",
			Help: "Appointments created by the generator",
		},
	)

	Reminders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "appointments_reminders_total",
			Help: "Reminders recorded by the dispatcher, by notification status",
		},
		[]string{"status"},
	)

	JobDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "appointments_job_duration_seconds",
			Help:    "Duration of periodic job runs",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"job"},
	)

	OutboundMessages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "appointments_outbound_messages_total",
			Help: "Outbound messages delivered by the worker pool",
		},
		[]string{"channel", "outcome"},
	)
)

func Register() {
	prometheus.MustRegister(
		TotalRequests, RequestDuration, Commands, AppointmentsCreated, Reminders, JobDuration, OutboundMessages,
	)
}
