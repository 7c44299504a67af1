package notification

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/appointments/internal/api/respond"
	"github.com/aliskhannn/appointments/internal/model"
	"github.com/aliskhannn/appointments/internal/repository/notification"
)

// notificationConfirmer confirms a notification together with its appointment.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks
type notificationConfirmer interface {
	Confirm(
		ctx context.Context, id uuid.UUID, at time.Time, status model.NotificationStatus, from ...model.NotificationStatus,
	) error
}

// Handler handles staff actions on notifications.
type Handler struct {
	repo notificationConfirmer
	now  func() time.Time
}

// NewHandler creates a new notification handler.
func NewHandler(r notificationConfirmer) *Handler {
	return &Handler{repo: r, now: time.Now}
}

// Confirm handles POST /api/notifications/:id/confirm. It confirms the
// notification manually, which also confirms its appointment. A reminder
// that failed to send can be confirmed this way as well.
func (h *Handler) Confirm(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil || id == uuid.Nil {
		zlog.Logger.Warn().Str("id", idStr).Msg("invalid notification id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	err = h.repo.Confirm(
		c.Request.Context(), id, h.now(), model.NotificationManual,
		model.NotificationSent, model.NotificationError,
	)
	if err != nil {
		if errors.Is(err, notification.ErrNotificationNotFound) {
			zlog.Logger.Warn().Str("id", id.String()).Msg("notification not found or already confirmed")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to confirm notification")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "notification confirmed")
}
