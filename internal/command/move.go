package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/aliskhannn/appointments/internal/model"
	"github.com/aliskhannn/appointments/internal/repository/appointment"
)

const msgNoFuture = "Sorry, user has no future appointments that require a reschedule."

// MoveHandler reschedules the next appointment: MOVE <NAME/ID> <DATE>.
type MoveHandler struct {
	deps Deps
}

func NewMoveHandler(deps Deps) *MoveHandler {
	return &MoveHandler{deps: deps}
}

func (h *MoveHandler) Keyword() string { return "move" }

func (h *MoveHandler) Help() string {
	return "To reschedule the next appointment send: MOVE <NAME/ID> <DATE>"
}

func (h *MoveHandler) Parse(args []string) Fields {
	return Fields{FieldName: args[0], FieldDate: joinRest(args, 1)}
}

func (h *MoveHandler) Validators() []Validator {
	return []Validator{
		activeByPin(h.deps.Subscriptions),
		requiredDate(),
		{Field: FieldDate, Check: func(_ context.Context, cmd *Command) error {
			if cmd.Date.Before(cmd.Today()) {
				return invalid(DateNotInFuture, FieldDate,
					"Sorry, the reschedule date %s must be in the future", cmd.Date.Format(model.DateLayout))
			}
			return nil
		}},
		{Field: FieldName, Check: func(ctx context.Context, cmd *Command) error {
			a, err := h.deps.Appointments.LatestMovable(ctx, cmd.SubscriptionIDs(), cmd.Today())
			if err != nil {
				if errors.Is(err, appointment.ErrAppointmentNotFound) {
					return &ValidationError{Kind: NoFutureAppointment, Field: FieldName, Message: msgNoFuture}
				}
				return fmt.Errorf("get next appointment: %w", err)
			}
			cmd.Appointment = a
			return nil
		}},
	}
}

func (h *MoveHandler) Apply(ctx context.Context, cmd *Command) (string, error) {
	if _, err := h.deps.Appointments.Reschedule(ctx, cmd.Appointment.ID, *cmd.Date); err != nil {
		switch {
		case errors.Is(err, appointment.ErrAppointmentConflict):
			return "", &ValidationError{
				Kind:    AppointmentConflict,
				Field:   FieldDate,
				Message: "Sorry, there is already an appointment on that date.",
			}
		case errors.Is(err, appointment.ErrAppointmentNotFound):
			return "", &ValidationError{Kind: NoFutureAppointment, Field: FieldName, Message: msgNoFuture}
		default:
			return "", fmt.Errorf("reschedule appointment: %w", err)
		}
	}

	return "Thank you! The appointment has been rescheduled.", nil
}
