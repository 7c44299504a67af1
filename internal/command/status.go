package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aliskhannn/appointments/internal/model"
	"github.com/aliskhannn/appointments/internal/repository/appointment"
)

const msgNoRecent = "Sorry, user has no recent appointments that require a status update."

// StatusHandler records whether the latest appointment was attended:
// STATUS <NAME/ID> <SAW|MISSED>.
type StatusHandler struct {
	deps Deps
}

func NewStatusHandler(deps Deps) *StatusHandler {
	return &StatusHandler{deps: deps}
}

func (h *StatusHandler) Keyword() string { return "status" }

func (h *StatusHandler) Help() string {
	return "To set the status of the most recent appointment send: STATUS <NAME/ID> <" +
		strings.Join(model.StatusLabels(), "|") + ">"
}

func (h *StatusHandler) Parse(args []string) Fields {
	return Fields{FieldName: args[0], FieldStatus: joinRest(args, 1)}
}

func (h *StatusHandler) Validators() []Validator {
	return []Validator{
		{Field: FieldStatus, Check: func(_ context.Context, cmd *Command) error {
			raw := cmd.Fields[FieldStatus]
			status, ok := model.ParseStatusLabel(raw)
			if !ok {
				return invalid(InvalidStatus, FieldStatus,
					"Sorry, the status update must be in %s. You supplied %s",
					strings.Join(model.StatusLabels(), ", "), raw)
			}
			cmd.Status = status
			return nil
		}},
		activeByPin(h.deps.Subscriptions),
		{Field: FieldName, Check: func(ctx context.Context, cmd *Command) error {
			a, err := h.deps.Appointments.LatestPast(ctx, cmd.SubscriptionIDs(), cmd.Today())
			if err != nil {
				if errors.Is(err, appointment.ErrAppointmentNotFound) {
					return &ValidationError{Kind: NoRecentAppointment, Field: FieldName, Message: msgNoRecent}
				}
				return fmt.Errorf("get recent appointment: %w", err)
			}
			cmd.Appointment = a
			return nil
		}},
	}
}

func (h *StatusHandler) Apply(ctx context.Context, cmd *Command) (string, error) {
	if err := h.deps.Appointments.UpdateStatus(ctx, cmd.Appointment.ID, cmd.Status); err != nil {
		if errors.Is(err, appointment.ErrAppointmentNotFound) {
			return "", &ValidationError{Kind: NoRecentAppointment, Field: FieldName, Message: msgNoRecent}
		}
		return "", fmt.Errorf("update appointment status: %w", err)
	}

	return "Thank you! The appointment status has been set.", nil
}
