package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/aliskhannn/appointments/internal/model"
	"github.com/aliskhannn/appointments/internal/repository/subscription"
)

// JoinHandler subscribes a pin to a timeline: NEW <KEYWORD> <NAME/ID> [<DATE>].
type JoinHandler struct {
	deps Deps
}

func NewJoinHandler(deps Deps) *JoinHandler {
	return &JoinHandler{deps: deps}
}

func (h *JoinHandler) Keyword() string { return "new" }

func (h *JoinHandler) Help() string {
	return "To register for a timeline send: NEW <KEYWORD> <NAME/ID> <DATE>. The date is optional."
}

func (h *JoinHandler) Parse(args []string) Fields {
	f := Fields{FieldKeyword: args[0]}
	if len(args) > 1 {
		f[FieldName] = args[1]
		f[FieldDate] = joinRest(args, 2)
	}
	return f
}

func (h *JoinHandler) Validators() []Validator {
	return []Validator{
		timelineKeyword(h.deps.Timelines),
		requiredName("Sorry, you must include a name or id for your appointments subscription."),
		optionalDate(),
		{Check: func(ctx context.Context, cmd *Command) error {
			exists, err := activeSubscription(ctx, h.deps.Subscriptions, cmd)
			if err != nil {
				return err
			}
			if exists {
				return alreadySubscribed(cmd)
			}
			return nil
		}},
	}
}

func (h *JoinHandler) Apply(ctx context.Context, cmd *Command) (string, error) {
	start := cmd.Now
	if cmd.Date != nil {
		start = atMidnight(*cmd.Date, cmd.Now.Location())
	}

	pin := cmd.Fields[FieldName]
	_, err := h.deps.Subscriptions.CreateSubscription(ctx, model.Subscription{
		TimelineID: cmd.Timeline.ID,
		EndpointID: cmd.EndpointID,
		Pin:        pin,
		Start:      start,
	}, cmd.Now)
	if err != nil {
		if errors.Is(err, subscription.ErrAlreadySubscribed) {
			return "", alreadySubscribed(cmd)
		}
		return "", fmt.Errorf("create subscription: %w", err)
	}

	return fmt.Sprintf(
		"Thank you! You registered a %s for %s on %s. "+
			"You will be notified when it is time for the next appointment.",
		cmd.Timeline.Name, pin, model.DateOf(start).Format(model.DateLayout),
	), nil
}

func alreadySubscribed(cmd *Command) *ValidationError {
	return invalid(AlreadySubscribed, "",
		"Sorry, you previously registered a %s for %s. "+
			"You will be notified when it is time for the next appointment.",
		cmd.Timeline.Name, cmd.Fields[FieldName])
}
