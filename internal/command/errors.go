package command

import "fmt"

// Kind classifies why a command was rejected.
type Kind string

const (
	UnknownKeyword            Kind = "unknown_keyword"
	MissingName               Kind = "missing_name"
	InvalidDate               Kind = "invalid_date"
	MissingOrInvalidDate      Kind = "missing_or_invalid_date"
	AlreadySubscribed         Kind = "already_subscribed"
	NotSubscribed             Kind = "not_subscribed"
	NoActiveSubscription      Kind = "no_active_subscription"
	NoUnconfirmedNotification Kind = "no_unconfirmed_notification"
	NoRecentAppointment       Kind = "no_recent_appointment"
	NoFutureAppointment       Kind = "no_future_appointment"
	InvalidStatus             Kind = "invalid_status"
	DateNotInFuture           Kind = "date_not_in_future"
	EndDateNotInFuture        Kind = "end_date_not_in_future"
	AppointmentConflict       Kind = "appointment_conflict"
)

// Field names, in the order the handlers declare them.
const (
	FieldKeyword = "keyword"
	FieldName    = "name"
	FieldDate    = "date"
	FieldStatus  = "status"
)

const (
	msgInvalidDate = "Sorry, we cannot understand that date format. " +
		"For the best results please use the ISO YYYY-MM-DD format."
	msgNoActiveSubscription = "Sorry, name/id does not match an active subscription."
)

// ValidationError is an expected rejection of a command. Message is the
// reply sent back to the subscriber. Field is empty for errors that are not
// tied to a single field.
type ValidationError struct {
	Kind    Kind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.Field, e.Message)
}

func invalid(kind Kind, field, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Message: fmt.Sprintf(format, args...)}
}
