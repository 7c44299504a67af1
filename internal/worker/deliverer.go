package worker

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/appointments/internal/rabbitmq/queue"
	"github.com/aliskhannn/appointments/internal/service/delivery"
)

//go:generate mockgen -source=deliverer.go -destination=../mocks/worker/mock.go -package=mocks
type outboundConsumer interface {
	Consume(ctx context.Context, out chan<- queue.OutboundMessage) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.OutboundMessage, strategy retry.Strategy)
}

type statusReader interface {
	Status(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (string, error)
}

// Deliverer runs a pool of goroutines that deliver outbound messages.
type Deliverer struct {
	consumer outboundConsumer
	handler  messageHandler
	status   statusReader
}

// NewDeliverer creates a new Deliverer.
func NewDeliverer(c outboundConsumer, h messageHandler, s statusReader) *Deliverer {
	return &Deliverer{
		consumer: c,
		handler:  h,
		status:   s,
	}
}

// Run consumes the outbound queue and hands messages to workerCount
// workers until ctx is done. A message already delivered is skipped.
func (d *Deliverer) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	var wg sync.WaitGroup
	msgChan := make(chan queue.OutboundMessage, workerCount*10)

	go func() {
		if err := d.consumer.Consume(ctx, msgChan); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume outbound messages")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("worker-%d shutting down", id)
					return
				case msg, ok := <-msgChan:
					if !ok {
						zlog.Logger.Printf("worker-%d channel closed, shutting down", id)
						return
					}

					status, err := d.status.Status(ctx, strategy, msg.ID)
					if err != nil {
						zlog.Logger.Warn().Err(err).Str("id", msg.ID.String()).Msg("failed to get delivery status")
					}

					if status == delivery.StatusDelivered {
						zlog.Logger.Printf("message %s already delivered, skipping", msg.ID)
						continue
					}

					d.handler.HandleMessage(ctx, msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("deliverer stopped")
}
