package timeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/appointments/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/timeline/mock.go -package=mocks

var ErrNoKeywords = errors.New("timeline slug has no keywords")

type timelineRepository interface {
	CreateTimeline(ctx context.Context, t model.Timeline) (uuid.UUID, error)
	AddMilestone(ctx context.Context, m model.Milestone) (uuid.UUID, error)
	GetAllTimelines(ctx context.Context) ([]model.Timeline, error)
}

// Service manages timelines and keeps an in-memory index from keyword to
// timeline. The index is rebuilt on every change made through the service
// and by Reload.
type Service struct {
	repo timelineRepository

	mu        sync.RWMutex
	byKeyword map[string]model.Timeline
}

func NewService(repo timelineRepository) *Service {
	return &Service{
		repo:      repo,
		byKeyword: make(map[string]model.Timeline),
	}
}

// Lookup returns the timeline matching keyword, case-insensitively.
func (s *Service) Lookup(keyword string) (model.Timeline, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.byKeyword[strings.ToLower(strings.TrimSpace(keyword))]
	return t, ok
}

// Reload rebuilds the keyword index from the database.
func (s *Service) Reload(ctx context.Context) error {
	timelines, err := s.repo.GetAllTimelines(ctx)
	if err != nil {
		return fmt.Errorf("reload timelines: %w", err)
	}

	index := make(map[string]model.Timeline)
	for _, t := range timelines {
		t.Milestones = nil
		for _, k := range t.Keywords() {
			if prev, ok := index[k]; ok {
				zlog.Logger.Warn().
					Str("keyword", k).
					Str("timeline", t.Name).
					Str("kept", prev.Name).
					Msg("keyword used by more than one timeline")
				continue
			}
			index[k] = t
		}
	}

	s.mu.Lock()
	s.byKeyword = index
	s.mu.Unlock()

	return nil
}

// CreateTimeline stores a timeline with its milestones and refreshes the index.
func (s *Service) CreateTimeline(ctx context.Context, t model.Timeline) (uuid.UUID, error) {
	if len(t.Keywords()) == 0 {
		return uuid.Nil, ErrNoKeywords
	}

	id, err := s.repo.CreateTimeline(ctx, t)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create timeline: %w", err)
	}

	if err := s.Reload(ctx); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to refresh keyword index")
	}

	return id, nil
}

// AddMilestone adds a milestone to an existing timeline.
func (s *Service) AddMilestone(ctx context.Context, m model.Milestone) (uuid.UUID, error) {
	id, err := s.repo.AddMilestone(ctx, m)
	if err != nil {
		return uuid.Nil, fmt.Errorf("add milestone: %w", err)
	}

	return id, nil
}

// GetAllTimelines lists timelines with their milestones.
func (s *Service) GetAllTimelines(ctx context.Context) ([]model.Timeline, error) {
	timelines, err := s.repo.GetAllTimelines(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all timelines: %w", err)
	}

	return timelines, nil
}
