package delivery

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/delivery/mock.go -package=mocks

// Delivery statuses kept in the cache per outbound message.
const (
	StatusPending   = "pending"
	StatusDelivered = "delivered"
	StatusFailed    = "failed"
)

// Notifier sends a text to a recipient over one channel.
type Notifier interface {
	Send(to string, msg string) error
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service delivers outbound messages through the configured channel and
// tracks their delivery status.
type Service struct {
	notifiers map[string]Notifier
	channel   string
	cache     cache
}

// NewService creates a delivery service that sends through notifiers[channel].
func NewService(notifiers map[string]Notifier, channel string, cache cache) *Service {
	return &Service{notifiers: notifiers, channel: channel, cache: cache}
}

// Channel returns the name of the channel messages are sent through.
func (s *Service) Channel() string {
	return s.channel
}

// Send delivers message to the endpoint.
func (s *Service) Send(to, message string) error {
	notifier, ok := s.notifiers[s.channel]
	if !ok {
		return fmt.Errorf("unknown channel %s", s.channel)
	}

	if err := notifier.Send(to, message); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

// Status returns the cached delivery status of a message, StatusPending if
// none is recorded.
func (s *Service) Status(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (string, error) {
	status, err := s.cache.GetWithRetry(ctx, strategy, key(id))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return StatusPending, nil
		}
		return "", fmt.Errorf("get delivery status: %w", err)
	}

	return status, nil
}

// SetStatus records the delivery status of a message.
func (s *Service) SetStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID, status string) error {
	if err := s.cache.SetWithRetry(ctx, strategy, key(id), status); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache delivery status")
		return fmt.Errorf("set delivery status: %w", err)
	}

	return nil
}

func key(id uuid.UUID) string {
	return "outbound:" + id.String()
}
