package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/aliskhannn/appointments/internal/model"
	"github.com/aliskhannn/appointments/internal/repository/notification"
)

const msgNoUnconfirmed = "Sorry, you have no unconfirmed appointment notifications."

// ConfirmHandler confirms the latest reminder: CONFIRM <NAME/ID>.
type ConfirmHandler struct {
	deps Deps
}

func NewConfirmHandler(deps Deps) *ConfirmHandler {
	return &ConfirmHandler{deps: deps}
}

func (h *ConfirmHandler) Keyword() string { return "confirm" }

func (h *ConfirmHandler) Help() string {
	return "To confirm an upcoming appointment send: CONFIRM <NAME/ID>"
}

func (h *ConfirmHandler) Parse(args []string) Fields {
	return Fields{FieldName: args[0]}
}

func (h *ConfirmHandler) Validators() []Validator {
	return []Validator{
		activeByPin(h.deps.Subscriptions),
		{Field: FieldName, Check: func(ctx context.Context, cmd *Command) error {
			n, err := h.deps.Notifications.LatestConfirmable(ctx, cmd.SubscriptionIDs(), cmd.Today())
			if err != nil {
				if errors.Is(err, notification.ErrNotificationNotFound) {
					return &ValidationError{Kind: NoUnconfirmedNotification, Field: FieldName, Message: msgNoUnconfirmed}
				}
				return fmt.Errorf("get confirmable notification: %w", err)
			}
			cmd.Notification = n
			return nil
		}},
	}
}

func (h *ConfirmHandler) Apply(ctx context.Context, cmd *Command) (string, error) {
	err := h.deps.Notifications.Confirm(ctx, cmd.Notification.ID, cmd.Now, model.NotificationConfirmed)
	if err != nil {
		if errors.Is(err, notification.ErrNotificationNotFound) {
			return "", &ValidationError{Kind: NoUnconfirmedNotification, Field: FieldName, Message: msgNoUnconfirmed}
		}
		return "", fmt.Errorf("confirm notification: %w", err)
	}

	return "Thank you! Your appointment has been confirmed.", nil
}
