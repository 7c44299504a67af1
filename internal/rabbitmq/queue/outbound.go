package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/appointments/internal/config"
)

// retryTTL is how long a message waits in the retry queue before it is
// dead-lettered back to the main queue.
const retryTTL = int32(5000)

// OutboundMessage is a text addressed to a messaging endpoint.
type OutboundMessage struct {
	ID         uuid.UUID `json:"id"`
	EndpointID string    `json:"endpoint_id"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

// OutboundQueue publishes outbound messages to RabbitMQ and consumes them
// back for delivery.
type OutboundQueue struct {
	publish  func(body []byte) error
	consume  func(out chan []byte) error
	strategy retry.Strategy
}

// NewOutboundQueue declares the exchange, the main, retry and dead-letter
// queues on ch and returns a queue bound to them.
func NewOutboundQueue(ch *rabbitmq.Channel, cfg config.RabbitMQ, strategy retry.Strategy) (*OutboundQueue, error) {
	exchange := rabbitmq.NewExchange(cfg.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(cfg.DLQ, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	retryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": cfg.Queue,
		"x-message-ttl":             retryTTL,
	}

	_, err = qm.DeclareQueue(cfg.RetryQueue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    retryArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare retry queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": cfg.DLQ,
	}

	mainQ, err := qm.DeclareQueue(cfg.Queue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, cfg.RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &OutboundQueue{
		publish: func(body []byte) error {
			return pub.PublishWithRetry(body, cfg.RoutingKey, "application/json", strategy)
		},
		consume: func(out chan []byte) error {
			return cons.ConsumeWithRetry(out, strategy)
		},
		strategy: strategy,
	}, nil
}

// Send enqueues text for delivery to endpointID.
func (q *OutboundQueue) Send(ctx context.Context, endpointID, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return q.Publish(OutboundMessage{
		ID:         uuid.New(),
		EndpointID: endpointID,
		Text:       text,
		CreatedAt:  time.Now().UTC(),
	})
}

// Publish marshals msg and publishes it with retries.
func (q *OutboundQueue) Publish(msg OutboundMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := q.publish(body); err != nil {
		return fmt.Errorf("failed to publish message %s: %w", msg.ID, err)
	}

	return nil
}

// Consume decodes messages from the main queue into out until ctx is done
// or the consumer stops. Malformed messages are logged and dropped.
func (q *OutboundQueue) Consume(ctx context.Context, out chan<- OutboundMessage) error {
	raw := make(chan []byte)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-raw:
				if !ok {
					return
				}

				var msg OutboundMessage
				if err := json.Unmarshal(m, &msg); err != nil {
					zlog.Logger.Error().Err(err).Msg("failed to unmarshal outbound message")
					continue
				}

				select {
				case out <- msg:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return q.consume(raw)
}
