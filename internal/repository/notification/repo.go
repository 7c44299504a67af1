package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/appointments/internal/model"
	"github.com/aliskhannn/appointments/internal/repository"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Repository provides methods to interact with notifications table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateNotification inserts a new notification into the database and returns its ID.
func (r *Repository) CreateNotification(ctx context.Context, notification model.Notification) (uuid.UUID, error) {
	query := `
		INSERT INTO notifications (
		    appointment_id, status, sent, message
		) VALUES ($1, $2, $3, $4)
		RETURNING id;
	`

	err := r.db.Master.QueryRowContext(
		ctx, query, notification.AppointmentID, notification.Status, notification.Sent, notification.Message,
	).Scan(&notification.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return notification.ID, nil
}

// HasLive reports whether the appointment has a notification that blocks
// another reminder. It reads from the master.
func (r *Repository) HasLive(ctx context.Context, appointmentID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
		    SELECT 1 FROM notifications
		    WHERE appointment_id = $1 AND status = ANY($2)
		);
	`

	var exists bool
	if err := r.db.Master.QueryRowContext(ctx, query, appointmentID, pq.Array(liveStatuses())).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check live notifications: %w", err)
	}

	return exists, nil
}

// LatestConfirmable returns the most recently sent notification of the given
// subscriptions that can still be confirmed by reply: it is Sent and
// unconfirmed, and its appointment is unconfirmed, not superseded and dated
// today or later.
func (r *Repository) LatestConfirmable(
	ctx context.Context, subscriptionIDs []uuid.UUID, today time.Time,
) (model.Notification, error) {
	query := `
		SELECT n.id, n.appointment_id, n.status, n.sent, n.confirmed, n.message
		FROM notifications n
		JOIN appointments a ON a.id = n.appointment_id
		WHERE a.subscription_id = ANY($1::uuid[])
		  AND n.status = $2
		  AND n.confirmed IS NULL
		  AND a.confirmed IS NULL
		  AND a.reschedule_id IS NULL
		  AND a.date >= $3::date
		ORDER BY n.sent DESC, n.id DESC
		LIMIT 1;
	`

	ids := make([]string, len(subscriptionIDs))
	for i, id := range subscriptionIDs {
		ids[i] = id.String()
	}

	var (
		n         model.Notification
		confirmed sql.NullTime
	)

	err := r.db.Master.QueryRowContext(ctx, query, pq.Array(ids), model.NotificationSent, today.Format(model.DateLayout)).
		Scan(&n.ID, &n.AppointmentID, &n.Status, &n.Sent, &confirmed, &n.Message)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Notification{}, ErrNotificationNotFound
		}
		return model.Notification{}, fmt.Errorf("failed to get confirmable notification: %w", err)
	}

	if confirmed.Valid {
		n.Confirmed = &confirmed.Time
	}

	return n, nil
}

// Confirm marks the notification confirmed with the given status and
// confirms its appointment, in one transaction. Only an unconfirmed
// notification in one of the from statuses is changed.
func (r *Repository) Confirm(
	ctx context.Context, id uuid.UUID, at time.Time, status model.NotificationStatus, from ...model.NotificationStatus,
) error {
	if len(from) == 0 {
		from = []model.NotificationStatus{model.NotificationSent}
	}

	allowed := make([]string, len(from))
	for i, s := range from {
		allowed[i] = string(s)
	}

	err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		query := `
			UPDATE notifications
			SET status = $1, confirmed = $2
			WHERE id = $3 AND confirmed IS NULL AND status = ANY($4)
			RETURNING appointment_id;
		`

		var appointmentID uuid.UUID
		if err := tx.QueryRowContext(ctx, query, status, at, id, pq.Array(allowed)).Scan(&appointmentID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotificationNotFound
			}
			return fmt.Errorf("update notification: %w", err)
		}

		query = `
			UPDATE appointments
			SET confirmed = $1
			WHERE id = $2;
		`

		if _, err := tx.ExecContext(ctx, query, at, appointmentID); err != nil {
			return fmt.Errorf("confirm appointment: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotificationNotFound) {
			return err
		}
		return fmt.Errorf("failed to confirm notification: %w", err)
	}

	return nil
}

func liveStatuses() []string {
	return []string{
		string(model.NotificationSent),
		string(model.NotificationConfirmed),
		string(model.NotificationManual),
	}
}
