package message

import (
	"context"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/appointments/internal/metrics"
	"github.com/aliskhannn/appointments/internal/rabbitmq/queue"
	"github.com/aliskhannn/appointments/internal/service/delivery"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/message/mock.go -package=mocks
type deliveryService interface {
	Channel() string
	Send(to, message string) error
	SetStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID, status string) error
}

// Handler delivers outbound messages taken from the queue.
type Handler struct {
	service deliveryService
}

// NewHandler creates a new outbound message handler.
func NewHandler(svc deliveryService) *Handler {
	return &Handler{
		service: svc,
	}
}

// HandleMessage sends msg with retries and records the outcome.
func (h *Handler) HandleMessage(ctx context.Context, msg queue.OutboundMessage, strategy retry.Strategy) {
	zlog.Logger.Debug().Str("id", msg.ID.String()).Str("endpoint", msg.EndpointID).Msg("handling outbound message")

	channel := h.service.Channel()

	err := retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return h.service.Send(msg.EndpointID, msg.Text)
		}
	}, strategy)

	status := delivery.StatusDelivered
	if err != nil {
		status = delivery.StatusFailed
		metrics.OutboundMessages.WithLabelValues(channel, "failed").Inc()
		zlog.Logger.Error().Err(err).Str("id", msg.ID.String()).Str("channel", channel).Msg("outbound message failed")
	} else {
		metrics.OutboundMessages.WithLabelValues(channel, "delivered").Inc()
		zlog.Logger.Info().Str("id", msg.ID.String()).Str("channel", channel).Msg("outbound message delivered")
	}

	if setErr := h.service.SetStatus(ctx, strategy, msg.ID, status); setErr != nil {
		zlog.Logger.Error().Err(setErr).Msgf("failed to set status=%s for %s", status, msg.ID)
	}
}
