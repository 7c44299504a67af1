package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/aliskhannn/appointments/internal/model"
	"github.com/aliskhannn/appointments/internal/repository/subscription"
)

// QuitHandler ends a subscription: QUIT <KEYWORD> <NAME/ID> [<DATE>].
type QuitHandler struct {
	deps Deps
}

func NewQuitHandler(deps Deps) *QuitHandler {
	return &QuitHandler{deps: deps}
}

func (h *QuitHandler) Keyword() string { return "quit" }

func (h *QuitHandler) Help() string {
	return "To unsubscribe from a timeline send: QUIT <KEYWORD> <NAME/ID> <DATE>. The date is optional."
}

func (h *QuitHandler) Parse(args []string) Fields {
	f := Fields{FieldKeyword: args[0]}
	if len(args) > 1 {
		f[FieldName] = args[1]
		f[FieldDate] = joinRest(args, 2)
	}
	return f
}

func (h *QuitHandler) Validators() []Validator {
	return []Validator{
		timelineKeyword(h.deps.Timelines),
		requiredName("Sorry, you must include a name or id for your unsubscription."),
		optionalDate(),
		{Check: func(ctx context.Context, cmd *Command) error {
			exists, err := activeSubscription(ctx, h.deps.Subscriptions, cmd)
			if err != nil {
				return err
			}
			if !exists {
				return notSubscribed(cmd)
			}
			return nil
		}},
		{Check: func(_ context.Context, cmd *Command) error {
			if cmd.Date != nil && cmd.Date.Before(cmd.Today()) {
				return invalid(EndDateNotInFuture, "",
					"Sorry, the end date %s must be in the future.", cmd.Date.Format(model.DateLayout))
			}
			return nil
		}},
	}
}

func (h *QuitHandler) Apply(ctx context.Context, cmd *Command) (string, error) {
	end := cmd.Now
	if cmd.Date != nil {
		end = atMidnight(*cmd.Date, cmd.Now.Location())
	}

	if err := h.deps.Subscriptions.EndSubscription(ctx, cmd.Subscription.ID, end); err != nil {
		if errors.Is(err, subscription.ErrSubscriptionNotFound) {
			return "", notSubscribed(cmd)
		}
		return "", fmt.Errorf("end subscription: %w", err)
	}

	return fmt.Sprintf(
		"Thank you! You unsubscribed from the %s for %s on %s. "+
			"You will no longer be notified when it is time for the next appointment.",
		cmd.Timeline.Name, cmd.Fields[FieldName], model.DateOf(end).Format(model.DateLayout),
	), nil
}

func notSubscribed(cmd *Command) *ValidationError {
	return invalid(NotSubscribed, "", "Sorry, you have not registered a %s for %s.",
		cmd.Timeline.Name, cmd.Fields[FieldName])
}
