package timeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/appointments/internal/api/dto"
	"github.com/aliskhannn/appointments/internal/api/respond"
	"github.com/aliskhannn/appointments/internal/model"
	timelinerepo "github.com/aliskhannn/appointments/internal/repository/timeline"
	timelinesvc "github.com/aliskhannn/appointments/internal/service/timeline"
)

// timelineService defines the timeline operations the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/timeline/mock.go -package=mocks
type timelineService interface {
	CreateTimeline(ctx context.Context, t model.Timeline) (uuid.UUID, error)
	AddMilestone(ctx context.Context, m model.Milestone) (uuid.UUID, error)
	GetAllTimelines(ctx context.Context) ([]model.Timeline, error)
}

// Handler handles timeline administration requests.
type Handler struct {
	service   timelineService
	validator *validator.Validate
}

// NewHandler creates a new timeline handler.
func NewHandler(s timelineService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// Create handles POST /api/timelines.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateTimelineRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	t := model.Timeline{Name: req.Name, Slug: req.Slug}
	for _, m := range req.Milestones {
		t.Milestones = append(t.Milestones, model.Milestone{Name: m.Name, Offset: m.Offset})
	}

	id, err := h.service.CreateTimeline(c.Request.Context(), t)
	if err != nil {
		if errors.Is(err, timelinesvc.ErrNoKeywords) {
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Str("name", t.Name).Msg("failed to create timeline")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

// GetAll handles GET /api/timelines.
func (h *Handler) GetAll(c *ginext.Context) {
	timelines, err := h.service.GetAllTimelines(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get timelines")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, timelines)
}

// AddMilestone handles POST /api/timelines/:id/milestones.
func (h *Handler) AddMilestone(c *ginext.Context) {
	idStr := c.Param("id")
	timelineID, err := uuid.Parse(idStr)
	if err != nil || timelineID == uuid.Nil {
		zlog.Logger.Warn().Str("id", idStr).Msg("invalid timeline id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	var req dto.MilestoneRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	id, err := h.service.AddMilestone(c.Request.Context(), model.Milestone{
		TimelineID: timelineID,
		Name:       req.Name,
		Offset:     req.Offset,
	})
	if err != nil {
		if errors.Is(err, timelinerepo.ErrTimelineNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("timeline not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("timeline", timelineID.String()).Msg("failed to add milestone")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}
