package timeline

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/appointments/internal/model"
	"github.com/aliskhannn/appointments/internal/repository"
)

var ErrTimelineNotFound = errors.New("timeline not found")

// foreignKeyViolation is the postgres error code for a broken FK reference.
const foreignKeyViolation = "23503"

// Repository provides access to the timelines and milestones tables.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new timeline repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateTimeline inserts a timeline and its milestones in one transaction
// and returns the timeline ID.
func (r *Repository) CreateTimeline(ctx context.Context, t model.Timeline) (uuid.UUID, error) {
	err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		query := `
			INSERT INTO timelines (name, slug)
			VALUES ($1, $2)
			RETURNING id;
		`

		if err := tx.QueryRowContext(ctx, query, t.Name, t.Slug).Scan(&t.ID); err != nil {
			return fmt.Errorf("insert timeline: %w", err)
		}

		for _, m := range t.Milestones {
			m.TimelineID = t.ID
			if _, err := insertMilestone(ctx, tx, m); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create timeline: %w", err)
	}

	return t.ID, nil
}

// AddMilestone inserts a milestone into an existing timeline.
func (r *Repository) AddMilestone(ctx context.Context, m model.Milestone) (uuid.UUID, error) {
	id, err := insertMilestone(ctx, r.db.Master, m)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return uuid.Nil, ErrTimelineNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to add milestone: %w", err)
	}

	return id, nil
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insertMilestone(ctx context.Context, q queryRower, m model.Milestone) (uuid.UUID, error) {
	query := `
		INSERT INTO milestones (timeline_id, name, "offset")
		VALUES ($1, $2, $3)
		RETURNING id;
	`

	var id uuid.UUID
	if err := q.QueryRowContext(ctx, query, m.TimelineID, m.Name, m.Offset).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("insert milestone: %w", err)
	}

	return id, nil
}

// GetAllTimelines returns every timeline with its milestones, ordered by name.
func (r *Repository) GetAllTimelines(ctx context.Context) ([]model.Timeline, error) {
	query := `
		SELECT id, name, slug, created_at
		FROM timelines
		ORDER BY name, id;
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get timelines: %w", err)
	}
	defer rows.Close()

	var timelines []model.Timeline
	for rows.Next() {
		var t model.Timeline
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan timeline: %w", err)
		}
		timelines = append(timelines, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate timelines: %w", err)
	}

	milestones, err := r.MilestonesByTimeline(ctx)
	if err != nil {
		return nil, err
	}

	for i := range timelines {
		timelines[i].Milestones = milestones[timelines[i].ID]
	}

	return timelines, nil
}

// MilestonesByTimeline returns all milestones grouped by timeline ID.
func (r *Repository) MilestonesByTimeline(ctx context.Context) (map[uuid.UUID][]model.Milestone, error) {
	query := `
		SELECT id, timeline_id, name, "offset"
		FROM milestones
		ORDER BY timeline_id, "offset", id;
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get milestones: %w", err)
	}
	defer rows.Close()

	res := make(map[uuid.UUID][]model.Milestone)
	for rows.Next() {
		var m model.Milestone
		if err := rows.Scan(&m.ID, &m.TimelineID, &m.Name, &m.Offset); err != nil {
			return nil, fmt.Errorf("scan milestone: %w", err)
		}
		res[m.TimelineID] = append(res[m.TimelineID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate milestones: %w", err)
	}

	return res, nil
}
