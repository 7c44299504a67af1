// Package command turns inbound text messages into changes to subscriptions
// and appointments.
//
// Each keyword has a Handler that tokenizes the message into named fields,
// checks them with an ordered list of validators and applies one change. The
// first failing validator decides the reply.
package command

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/appointments/internal/model"
)

// Fields holds the raw tokens of a message by field name.
type Fields map[string]string

// Command carries a message through validation and apply. Validators fill
// in the resolved values that later validators and Apply rely on.
type Command struct {
	EndpointID string
	Now        time.Time
	Fields     Fields

	Timeline      model.Timeline
	Subscription  model.Subscription
	Subscriptions []model.Subscription
	Date          *time.Time
	Status        model.AppointmentStatus
	Appointment   model.Appointment
	Notification  model.Notification
}

// Today is the calendar day of Now.
func (c *Command) Today() time.Time {
	return model.DateOf(c.Now)
}

// SubscriptionIDs returns the ids of the resolved subscriptions.
func (c *Command) SubscriptionIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(c.Subscriptions))
	for i, s := range c.Subscriptions {
		ids[i] = s.ID
	}
	return ids
}

// Validator checks one field, or the command as a whole when Field is empty.
type Validator struct {
	Field string
	Check func(ctx context.Context, cmd *Command) error
}

// Handler implements one keyword command.
type Handler interface {
	Keyword() string
	Help() string
	Parse(args []string) Fields
	Validators() []Validator
	Apply(ctx context.Context, cmd *Command) (string, error)
}

// TimelineIndex resolves a timeline keyword.
type TimelineIndex interface {
	Lookup(keyword string) (model.Timeline, bool)
}

type SubscriptionStore interface {
	CreateSubscription(ctx context.Context, s model.Subscription, now time.Time) (uuid.UUID, error)
	GetActive(ctx context.Context, timelineID uuid.UUID, endpointID, pin string, now time.Time) (model.Subscription, error)
	GetActiveByPin(ctx context.Context, endpointID, pin string, now time.Time) ([]model.Subscription, error)
	EndSubscription(ctx context.Context, id uuid.UUID, end time.Time) error
}

type AppointmentStore interface {
	LatestPast(ctx context.Context, subscriptionIDs []uuid.UUID, today time.Time) (model.Appointment, error)
	LatestMovable(ctx context.Context, subscriptionIDs []uuid.UUID, today time.Time) (model.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus) error
	Reschedule(ctx context.Context, id uuid.UUID, date time.Time) (uuid.UUID, error)
}

type NotificationStore interface {
	LatestConfirmable(ctx context.Context, subscriptionIDs []uuid.UUID, today time.Time) (model.Notification, error)
	Confirm(ctx context.Context, id uuid.UUID, at time.Time, status model.NotificationStatus, from ...model.NotificationStatus) error
}

// Deps are the stores the handlers read and change.
type Deps struct {
	Timelines     TimelineIndex
	Subscriptions SubscriptionStore
	Appointments  AppointmentStore
	Notifications NotificationStore
}

// joinRest returns the tokens from i on joined by single spaces.
func joinRest(args []string, i int) string {
	if i >= len(args) {
		return ""
	}
	return strings.Join(args[i:], " ")
}

// atMidnight returns the start of the calendar day d in loc.
func atMidnight(d time.Time, loc *time.Location) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, loc)
}
