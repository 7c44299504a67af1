package subscription

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/appointments/internal/model"
	"github.com/aliskhannn/appointments/internal/repository"
)

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrAlreadySubscribed    = errors.New("already subscribed")
)

const columns = `id, timeline_id, endpoint_id, pin, start, "end"`

// Repository provides access to the subscriptions table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new subscription repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateSubscription inserts s unless an active subscription for the same
// timeline, endpoint and pin exists at now. The check and the insert are
// serialised per key with a transaction scoped advisory lock.
func (r *Repository) CreateSubscription(ctx context.Context, s model.Subscription, now time.Time) (uuid.UUID, error) {
	err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		lockKey := fmt.Sprintf("subscription:%s:%s:%s", s.TimelineID, s.EndpointID, s.Pin)
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, lockKey); err != nil {
			return fmt.Errorf("lock subscription key: %w", err)
		}

		query := `
			SELECT EXISTS (
			    SELECT 1 FROM subscriptions
			    WHERE timeline_id = $1 AND endpoint_id = $2 AND pin = $3
			      AND ("end" IS NULL OR "end" > $4)
			);
		`

		var exists bool
		if err := tx.QueryRowContext(ctx, query, s.TimelineID, s.EndpointID, s.Pin, now).Scan(&exists); err != nil {
			return fmt.Errorf("check active subscription: %w", err)
		}
		if exists {
			return ErrAlreadySubscribed
		}

		query = `
			INSERT INTO subscriptions (timeline_id, endpoint_id, pin, start, "end")
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id;
		`

		if err := tx.QueryRowContext(ctx, query, s.TimelineID, s.EndpointID, s.Pin, s.Start, s.End).Scan(&s.ID); err != nil {
			return fmt.Errorf("insert subscription: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAlreadySubscribed) {
			return uuid.Nil, err
		}
		return uuid.Nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	return s.ID, nil
}

// GetActive returns the subscription of pin at endpointID to the timeline
// that is active at now. Lookups used by commands read from the master.
func (r *Repository) GetActive(ctx context.Context, timelineID uuid.UUID, endpointID, pin string, now time.Time) (model.Subscription, error) {
	query := `
		SELECT ` + columns + `
		FROM subscriptions
		WHERE timeline_id = $1 AND endpoint_id = $2 AND pin = $3
		  AND ("end" IS NULL OR "end" > $4)
		ORDER BY start DESC
		LIMIT 1;
	`

	s, err := scanSubscription(r.db.Master.QueryRowContext(ctx, query, timelineID, endpointID, pin, now))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Subscription{}, ErrSubscriptionNotFound
		}
		return model.Subscription{}, fmt.Errorf("failed to get active subscription: %w", err)
	}

	return s, nil
}

// GetActiveByPin returns every subscription of pin at endpointID, across
// timelines, that is active at now.
func (r *Repository) GetActiveByPin(ctx context.Context, endpointID, pin string, now time.Time) ([]model.Subscription, error) {
	query := `
		SELECT ` + columns + `
		FROM subscriptions
		WHERE endpoint_id = $1 AND pin = $2
		  AND ("end" IS NULL OR "end" > $3)
		ORDER BY start DESC;
	`

	rows, err := r.db.Master.QueryContext(ctx, query, endpointID, pin, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscriptions by pin: %w", err)
	}

	return collect(rows)
}

// ListActive returns up to limit subscriptions active at now with an id
// greater than after, ordered by id.
func (r *Repository) ListActive(ctx context.Context, now time.Time, after uuid.UUID, limit int) ([]model.Subscription, error) {
	query := `
		SELECT ` + columns + `
		FROM subscriptions
		WHERE ("end" IS NULL OR "end" > $1) AND id > $2
		ORDER BY id
		LIMIT $3;
	`

	rows, err := r.db.QueryContext(ctx, query, now, after, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list active subscriptions: %w", err)
	}

	return collect(rows)
}

// EndSubscription sets the end of the subscription.
func (r *Repository) EndSubscription(ctx context.Context, id uuid.UUID, end time.Time) error {
	query := `
		UPDATE subscriptions
		SET "end" = $1
		WHERE id = $2;
	`

	res, err := r.db.ExecContext(ctx, query, end, id)
	if err != nil {
		return fmt.Errorf("failed to end subscription: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrSubscriptionNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSubscription(row scanner) (model.Subscription, error) {
	var (
		s   model.Subscription
		end sql.NullTime
	)

	if err := row.Scan(&s.ID, &s.TimelineID, &s.EndpointID, &s.Pin, &s.Start, &end); err != nil {
		return model.Subscription{}, err
	}
	if end.Valid {
		s.End = &end.Time
	}

	return s, nil
}

func collect(rows *sql.Rows) ([]model.Subscription, error) {
	defer rows.Close()

	var subs []model.Subscription
	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subscriptions: %w", err)
	}

	return subs, nil
}
