package appointment

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/appointments/internal/api/respond"
	"github.com/aliskhannn/appointments/internal/model"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/appointment/mock.go -package=mocks
type appointmentLister interface {
	ListAppointments(ctx context.Context, f model.AppointmentFilter) ([]model.Appointment, error)
}

// Handler serves appointment listings.
type Handler struct {
	repo appointmentLister
}

// NewHandler creates a new appointment handler.
func NewHandler(r appointmentLister) *Handler {
	return &Handler{repo: r}
}

// List handles GET /api/appointments?timeline=&pin=&status=&confirmed=.
func (h *Handler) List(c *ginext.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("invalid appointment filter")
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	appointments, err := h.repo.ListAppointments(c.Request.Context(), filter)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list appointments")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if appointments == nil {
		appointments = []model.Appointment{}
	}

	respond.OK(c.Writer, appointments)
}

func parseFilter(c *ginext.Context) (model.AppointmentFilter, error) {
	var f model.AppointmentFilter

	if v := c.Query("timeline"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return f, fmt.Errorf("invalid timeline id")
		}
		f.TimelineID = &id
	}

	f.Pin = c.Query("pin")

	if v := c.Query("status"); v != "" {
		status := model.AppointmentStatus(v)
		switch status {
		case model.AppointmentPending, model.AppointmentSeen, model.AppointmentMissed:
			f.Status = status
		default:
			return f, fmt.Errorf("invalid status %q", v)
		}
	}

	if v := c.Query("confirmed"); v != "" {
		confirmed, err := strconv.ParseBool(v)
		if err != nil {
			return f, fmt.Errorf("invalid confirmed flag %q", v)
		}
		f.Confirmed = &confirmed
	}

	return f, nil
}
