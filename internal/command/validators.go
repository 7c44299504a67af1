package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/aliskhannn/appointments/internal/model"
	"github.com/aliskhannn/appointments/internal/repository/subscription"
)

func timelineKeyword(timelines TimelineIndex) Validator {
	return Validator{
		Field: FieldKeyword,
		Check: func(_ context.Context, cmd *Command) error {
			keyword := cmd.Fields[FieldKeyword]
			t, ok := timelines.Lookup(keyword)
			if !ok {
				return invalid(UnknownKeyword, FieldKeyword,
					"Sorry, we could not find any appointments for the keyword: %s", keyword)
			}
			cmd.Timeline = t
			return nil
		},
	}
}

func requiredName(message string) Validator {
	return Validator{
		Field: FieldName,
		Check: func(_ context.Context, cmd *Command) error {
			if cmd.Fields[FieldName] == "" {
				return &ValidationError{Kind: MissingName, Field: FieldName, Message: message}
			}
			return nil
		},
	}
}

func optionalDate() Validator {
	return Validator{
		Field: FieldDate,
		Check: func(_ context.Context, cmd *Command) error {
			raw := cmd.Fields[FieldDate]
			if raw == "" {
				return nil
			}
			d, err := model.ParseDate(raw)
			if err != nil {
				return &ValidationError{Kind: InvalidDate, Field: FieldDate, Message: msgInvalidDate}
			}
			cmd.Date = &d
			return nil
		},
	}
}

func requiredDate() Validator {
	return Validator{
		Field: FieldDate,
		Check: func(_ context.Context, cmd *Command) error {
			raw := cmd.Fields[FieldDate]
			if raw == "" {
				return &ValidationError{
					Kind:    MissingOrInvalidDate,
					Field:   FieldDate,
					Message: "Sorry, you must include a date. For the best results please use the ISO YYYY-MM-DD format.",
				}
			}
			d, err := model.ParseDate(raw)
			if err != nil {
				return &ValidationError{Kind: MissingOrInvalidDate, Field: FieldDate, Message: msgInvalidDate}
			}
			cmd.Date = &d
			return nil
		},
	}
}

// activeByPin resolves the pin to the endpoint's active subscriptions.
func activeByPin(subs SubscriptionStore) Validator {
	return Validator{
		Field: FieldName,
		Check: func(ctx context.Context, cmd *Command) error {
			found, err := subs.GetActiveByPin(ctx, cmd.EndpointID, cmd.Fields[FieldName], cmd.Now)
			if err != nil {
				return fmt.Errorf("get subscriptions by pin: %w", err)
			}
			if len(found) == 0 {
				return &ValidationError{Kind: NoActiveSubscription, Field: FieldName, Message: msgNoActiveSubscription}
			}
			cmd.Subscriptions = found
			return nil
		},
	}
}

// activeSubscription looks up the active subscription of the pin to the
// resolved timeline. It leaves cmd.Subscription zero when there is none.
func activeSubscription(ctx context.Context, subs SubscriptionStore, cmd *Command) (bool, error) {
	s, err := subs.GetActive(ctx, cmd.Timeline.ID, cmd.EndpointID, cmd.Fields[FieldName], cmd.Now)
	if err != nil {
		if errors.Is(err, subscription.ErrSubscriptionNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get active subscription: %w", err)
	}
	cmd.Subscription = s
	return true, nil
}
