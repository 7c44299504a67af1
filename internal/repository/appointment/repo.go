package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/appointments/internal/model"
	"github.com/aliskhannn/appointments/internal/repository"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentConflict = errors.New("appointment already exists for that date")
)

const columns = `a.id, a.milestone_id, a.subscription_id, a.date, a.confirmed, a.reschedule_id, a.status, a.notes`

// Repository provides access to the appointments table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new appointment repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateIfAbsent inserts the appointment unless one already exists for its
// subscription, milestone and date. It reports whether a row was inserted.
func (r *Repository) CreateIfAbsent(ctx context.Context, a model.Appointment) (bool, error) {
	query := `
		INSERT INTO appointments (milestone_id, subscription_id, date)
		VALUES ($1, $2, $3::date)
		ON CONFLICT ON CONSTRAINT appointments_key DO NOTHING
		RETURNING id;
	`

	var id uuid.UUID
	err := r.db.Master.QueryRowContext(ctx, query, a.MilestoneID, a.SubscriptionID, day(a.Date)).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create appointment: %w", err)
	}

	return true, nil
}

// ListDue returns up to limit appointments dated within [from, to] that
// still need a reminder: the subscription is active at now, the appointment
// is neither confirmed nor superseded, and it has no live notification.
// Results are ordered by id and start after the given id.
func (r *Repository) ListDue(
	ctx context.Context, from, to, now time.Time, after uuid.UUID, limit int,
) ([]model.DueAppointment, error) {
	query := `
		SELECT ` + columns + `, s.endpoint_id, s.pin
		FROM appointments a
		JOIN subscriptions s ON s.id = a.subscription_id
		WHERE a.date BETWEEN $1::date AND $2::date
		  AND (s."end" IS NULL OR s."end" > $3)
		  AND a.confirmed IS NULL
		  AND a.reschedule_id IS NULL
		  AND NOT EXISTS (
		      SELECT 1 FROM notifications n
		      WHERE n.appointment_id = a.id AND n.status = ANY($4)
		  )
		  AND a.id > $5
		ORDER BY a.id
		LIMIT $6;
	`

	rows, err := r.db.QueryContext(ctx, query, day(from), day(to), now, pq.Array(liveStatuses()), after, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list due appointments: %w", err)
	}
	defer rows.Close()

	var due []model.DueAppointment
	for rows.Next() {
		var d model.DueAppointment
		a, err := scanAppointment(rows, &d.EndpointID, &d.Pin)
		if err != nil {
			return nil, fmt.Errorf("scan due appointment: %w", err)
		}
		d.Appointment = a
		due = append(due, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate due appointments: %w", err)
	}

	return due, nil
}

// LatestPast returns the latest pending, non-superseded appointment of the
// given subscriptions dated on or before today.
func (r *Repository) LatestPast(ctx context.Context, subscriptionIDs []uuid.UUID, today time.Time) (model.Appointment, error) {
	query := `
		SELECT ` + columns + `
		FROM appointments a
		WHERE a.subscription_id = ANY($1::uuid[])
		  AND a.status = $2
		  AND a.date <= $3::date
		  AND a.reschedule_id IS NULL
		ORDER BY a.date DESC, a.id DESC
		LIMIT 1;
	`

	return r.getOne(ctx, query, pq.Array(ids(subscriptionIDs)), model.AppointmentPending, day(today))
}

// LatestMovable returns the latest pending appointment of the given
// subscriptions dated on or after today that was neither rescheduled nor
// created by a reschedule.
func (r *Repository) LatestMovable(ctx context.Context, subscriptionIDs []uuid.UUID, today time.Time) (model.Appointment, error) {
	query := `
		SELECT ` + columns + `
		FROM appointments a
		WHERE a.subscription_id = ANY($1::uuid[])
		  AND a.status = $2
		  AND a.date >= $3::date
		  AND a.reschedule_id IS NULL
		  AND NOT EXISTS (SELECT 1 FROM appointments p WHERE p.reschedule_id = a.id)
		ORDER BY a.date DESC, a.id DESC
		LIMIT 1;
	`

	return r.getOne(ctx, query, pq.Array(ids(subscriptionIDs)), model.AppointmentPending, day(today))
}

// getOne reads from the master so that a command sees its own earlier writes.
func (r *Repository) getOne(ctx context.Context, query string, args ...any) (model.Appointment, error) {
	a, err := scanAppointment(r.db.Master.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Appointment{}, ErrAppointmentNotFound
		}
		return model.Appointment{}, fmt.Errorf("failed to get appointment: %w", err)
	}

	return a, nil
}

// UpdateStatus sets the attendance status of an appointment.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus) error {
	query := `
		UPDATE appointments
		SET status = $1
		WHERE id = $2;
	`

	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Reschedule copies the appointment to date and links the original to the
// copy, in one transaction. It returns the id of the new appointment.
// ErrAppointmentNotFound means the appointment is no longer movable and
// ErrAppointmentConflict that the date is already taken.
func (r *Repository) Reschedule(ctx context.Context, id uuid.UUID, date time.Time) (uuid.UUID, error) {
	var newID uuid.UUID

	err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		query := `
			SELECT ` + columns + `,
			       EXISTS (SELECT 1 FROM appointments p WHERE p.reschedule_id = a.id)
			FROM appointments a
			WHERE a.id = $1
			FOR UPDATE;
		`

		var target bool
		orig, err := scanAppointment(tx.QueryRowContext(ctx, query, id), &target)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("lock appointment: %w", err)
		}
		// A concurrent command may have moved or updated it since it was selected.
		if orig.Superseded() || target || orig.Status != model.AppointmentPending {
			return ErrAppointmentNotFound
		}

		query = `
			INSERT INTO appointments (milestone_id, subscription_id, date, confirmed, status, notes)
			VALUES ($1, $2, $3::date, $4, $5, $6)
			ON CONFLICT ON CONSTRAINT appointments_key DO NOTHING
			RETURNING id;
		`

		err = tx.QueryRowContext(
			ctx, query, orig.MilestoneID, orig.SubscriptionID, day(date), orig.Confirmed, orig.Status, orig.Notes,
		).Scan(&newID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrAppointmentConflict
			}
			return fmt.Errorf("insert rescheduled appointment: %w", err)
		}

		query = `
			UPDATE appointments
			SET reschedule_id = $1
			WHERE id = $2;
		`

		if _, err := tx.ExecContext(ctx, query, newID, id); err != nil {
			return fmt.Errorf("link rescheduled appointment: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAppointmentNotFound) || errors.Is(err, ErrAppointmentConflict) {
			return uuid.Nil, err
		}
		return uuid.Nil, fmt.Errorf("failed to reschedule appointment: %w", err)
	}

	return newID, nil
}

// ListAppointments returns appointments matching the filter, latest date first.
func (r *Repository) ListAppointments(ctx context.Context, f model.AppointmentFilter) ([]model.Appointment, error) {
	var (
		conds []string
		args  []any
	)

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.TimelineID != nil {
		add("s.timeline_id = $%d", *f.TimelineID)
	}
	if f.Pin != "" {
		add("s.pin = $%d", f.Pin)
	}
	if f.Status != "" {
		add("a.status = $%d", f.Status)
	}
	if f.Confirmed != nil {
		if *f.Confirmed {
			conds = append(conds, "a.confirmed IS NOT NULL")
		} else {
			conds = append(conds, "a.confirmed IS NULL")
		}
	}

	query := `
		SELECT ` + columns + `
		FROM appointments a
		JOIN subscriptions s ON s.id = a.subscription_id`
	if len(conds) > 0 {
		query += "\n\t\tWHERE " + strings.Join(conds, " AND ")
	}
	query += "\n\t\tORDER BY a.date DESC, a.id;"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	var appointments []model.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate appointments: %w", err)
	}

	return appointments, nil
}

type scanner interface {
	Scan(dest ...any) error
}

// scanAppointment scans the appointment columns followed by extra.
func scanAppointment(row scanner, extra ...any) (model.Appointment, error) {
	var (
		a            model.Appointment
		confirmed    sql.NullTime
		rescheduleID uuid.NullUUID
	)

	dest := append([]any{
		&a.ID, &a.MilestoneID, &a.SubscriptionID, &a.Date, &confirmed, &rescheduleID, &a.Status, &a.Notes,
	}, extra...)

	if err := row.Scan(dest...); err != nil {
		return model.Appointment{}, err
	}

	a.Date = model.DateOf(a.Date)
	if confirmed.Valid {
		a.Confirmed = &confirmed.Time
	}
	if rescheduleID.Valid {
		a.RescheduleID = &rescheduleID.UUID
	}

	return a, nil
}

func liveStatuses() []string {
	return []string{
		string(model.NotificationSent),
		string(model.NotificationConfirmed),
		string(model.NotificationManual),
	}
}

func ids(in []uuid.UUID) []string {
	out := make([]string, len(in))
	for i, id := range in {
		out[i] = id.String()
	}
	return out
}

// day renders a calendar day as a postgres date literal.
func day(t time.Time) string {
	return t.Format(model.DateLayout)
}
