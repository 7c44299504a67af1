package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus is the attendance state of an appointment.
type AppointmentStatus string

const (
	AppointmentPending AppointmentStatus = "pending" // not yet occurred
	AppointmentSeen    AppointmentStatus = "seen"
	AppointmentMissed  AppointmentStatus = "missed"
)

// statusLabels maps the words accepted in STATUS commands to statuses,
// in the order they are listed back to the user.
var statusLabels = []struct {
	label  string
	status AppointmentStatus
}{
	{"SAW", AppointmentSeen},
	{"MISSED", AppointmentMissed},
}

// ParseStatusLabel maps a status word from an inbound message to a status.
// Only the non-default statuses can be set this way.
func ParseStatusLabel(s string) (AppointmentStatus, bool) {
	s = strings.TrimSpace(s)
	for _, l := range statusLabels {
		if strings.EqualFold(l.label, s) {
			return l.status, true
		}
	}
	return "", false
}

// StatusLabels returns the accepted status words.
func StatusLabels() []string {
	labels := make([]string, 0, len(statusLabels))
	for _, l := range statusLabels {
		labels = append(labels, l.label)
	}
	return labels
}

// Appointment is a dated instance of a milestone for one subscription.
//
// (SubscriptionID, MilestoneID, Date) is unique. An appointment with a
// non-nil RescheduleID has been superseded by that appointment.
type Appointment struct {
	ID             uuid.UUID         `json:"id"`
	MilestoneID    uuid.UUID         `json:"milestone_id"`
	SubscriptionID uuid.UUID         `json:"subscription_id"`
	Date           time.Time         `json:"date"` // calendar day, see DateOf
	Confirmed      *time.Time        `json:"confirmed,omitempty"`
	RescheduleID   *uuid.UUID        `json:"reschedule_id,omitempty"`
	Status         AppointmentStatus `json:"status"`
	Notes          string            `json:"notes"`
}

// Superseded reports whether the appointment was replaced by a reschedule.
func (a Appointment) Superseded() bool {
	return a.RescheduleID != nil
}

// DueAppointment is an appointment selected for a reminder together with
// the endpoint the reminder goes to.
type DueAppointment struct {
	Appointment
	EndpointID string
	Pin        string
}

// AppointmentFilter narrows appointment listings. Zero values match everything.
type AppointmentFilter struct {
	TimelineID *uuid.UUID
	Pin        string
	Status     AppointmentStatus
	Confirmed  *bool
}
