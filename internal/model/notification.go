package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationStatus is the delivery/confirmation state of a reminder.
type NotificationStatus string

const (
	NotificationSent      NotificationStatus = "sent"
	NotificationConfirmed NotificationStatus = "confirmed" // confirmed by reply
	NotificationManual    NotificationStatus = "manual"    // confirmed by staff
	NotificationError     NotificationStatus = "error"
)

// Live reports whether a notification with this status blocks another
// reminder for the same appointment. Errors do not.
func (s NotificationStatus) Live() bool {
	return s == NotificationSent || s == NotificationConfirmed || s == NotificationManual
}

// Notification represents a reminder sent for an appointment.
type Notification struct {
	ID            uuid.UUID          `json:"id"`
	AppointmentID uuid.UUID          `json:"appointment_id"`
	Status        NotificationStatus `json:"status"`
	Sent          time.Time          `json:"sent"`
	Confirmed     *time.Time         `json:"confirmed,omitempty"`
	Message       string             `json:"message"` // text handed to the gateway
}
