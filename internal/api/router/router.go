package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/appointments/internal/api/handlers/appointment"
	"github.com/aliskhannn/appointments/internal/api/handlers/job"
	"github.com/aliskhannn/appointments/internal/api/handlers/message"
	"github.com/aliskhannn/appointments/internal/api/handlers/notification"
	"github.com/aliskhannn/appointments/internal/api/handlers/timeline"
	"github.com/aliskhannn/appointments/internal/api/respond"
	"github.com/aliskhannn/appointments/internal/middlewares"
)

// Handlers groups the HTTP handlers served by the router.
type Handlers struct {
	Message      *message.Handler
	Timeline     *timeline.Handler
	Notification *notification.Handler
	Appointment  *appointment.Handler
	Job          *job.Handler
}

func New(h Handlers) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.Metrics)
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	metricsHandler := promhttp.Handler()
	e.GET("/metrics", func(c *ginext.Context) {
		metricsHandler.ServeHTTP(c.Writer, c.Request)
	})
	e.GET("/healthz", func(c *ginext.Context) {
		respond.OK(c.Writer, http.StatusText(http.StatusOK))
	})

	api := e.Group("/api")
	{
		api.POST("/messages", h.Message.Receive)

		api.GET("/timelines", h.Timeline.GetAll)
		api.POST("/timelines", h.Timeline.Create)
		api.POST("/timelines/:id/milestones", h.Timeline.AddMilestone)

		api.POST("/notifications/:id/confirm", h.Notification.Confirm)

		api.GET("/appointments", h.Appointment.List)

		api.POST("/jobs/generate", h.Job.Generate)
		api.POST("/jobs/notify", h.Job.Notify)
	}

	return e
}
