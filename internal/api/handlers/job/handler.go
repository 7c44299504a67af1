package job

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/appointments/internal/api/respond"
	"github.com/aliskhannn/appointments/internal/service/dispatcher"
	"github.com/aliskhannn/appointments/internal/service/generator"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/job/mock.go -package=mocks
type appointmentGenerator interface {
	GenerateAppointments(ctx context.Context, now time.Time, horizonDays int) (generator.Report, error)
}

type notificationDispatcher interface {
	SendAppointmentNotifications(ctx context.Context, now time.Time, horizonDays int) (dispatcher.Report, error)
}

// Defaults holds the horizons used when a request does not name one.
type Defaults struct {
	GenerateDays int
	NotifyDays   int
}

// Handler triggers the periodic jobs on demand.
type Handler struct {
	generator  appointmentGenerator
	dispatcher notificationDispatcher
	defaults   Defaults
	loc        *time.Location
	now        func() time.Time
}

// NewHandler creates a new job handler computing days in loc.
func NewHandler(g appointmentGenerator, d notificationDispatcher, defaults Defaults, loc *time.Location) *Handler {
	return &Handler{generator: g, dispatcher: d, defaults: defaults, loc: loc, now: time.Now}
}

type jobResult struct {
	Report any    `json:"report"`
	Errors string `json:"errors,omitempty"`
}

// Generate handles POST /api/jobs/generate?days=N.
func (h *Handler) Generate(c *ginext.Context) {
	days, err := horizon(c, h.defaults.GenerateDays)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	report, err := h.generator.GenerateAppointments(c.Request.Context(), h.now().In(h.loc), days)
	h.finish(c, "generate", report, err)
}

// Notify handles POST /api/jobs/notify?days=N.
func (h *Handler) Notify(c *ginext.Context) {
	days, err := horizon(c, h.defaults.NotifyDays)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	report, err := h.dispatcher.SendAppointmentNotifications(c.Request.Context(), h.now().In(h.loc), days)
	h.finish(c, "notify", report, err)
}

// finish reports partial failures alongside the report. Per-item failures
// do not fail the request.
func (h *Handler) finish(c *ginext.Context, job string, report any, err error) {
	res := jobResult{Report: report}
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("job", job).Msg("job finished with errors")
		res.Errors = err.Error()
	}

	respond.OK(c.Writer, res)
}

func horizon(c *ginext.Context, def int) (int, error) {
	v := c.Query("days")
	if v == "" {
		return def, nil
	}

	days, err := strconv.Atoi(v)
	if err != nil || days < 0 {
		return 0, fmt.Errorf("invalid days %q", v)
	}

	return days, nil
}
