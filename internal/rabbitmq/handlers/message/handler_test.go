package message

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/appointments/internal/mocks/rabbitmq/handlers/message"
	"github.com/aliskhannn/appointments/internal/rabbitmq/queue"
	"github.com/aliskhannn/appointments/internal/service/delivery"
)

func newMessage() queue.OutboundMessage {
	return queue.OutboundMessage{
		ID:         uuid.New(),
		EndpointID: "12345",
		Text:       "Reminder: Your appointment is on 2025-03-12. Reply YES to confirm.",
		CreatedAt:  time.Now(),
	}
}

func TestHandler_HandleMessage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockService := mocks.NewMockdeliveryService(ctrl)
	h := NewHandler(mockService)

	msg := newMessage()
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockService.EXPECT().Channel().Return("telegram")
	mockService.EXPECT().Send(msg.EndpointID, msg.Text).Return(nil)
	mockService.EXPECT().SetStatus(gomock.Any(), strategy, msg.ID, delivery.StatusDelivered).Return(nil)

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_RetriesThenSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockService := mocks.NewMockdeliveryService(ctrl)
	h := NewHandler(mockService)

	msg := newMessage()
	strategy := retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 1}

	mockService.EXPECT().Channel().Return("telegram")
	gomock.InOrder(
		mockService.EXPECT().Send(msg.EndpointID, msg.Text).Return(errors.New("timeout")),
		mockService.EXPECT().Send(msg.EndpointID, msg.Text).Return(nil),
	)
	mockService.EXPECT().SetStatus(gomock.Any(), strategy, msg.ID, delivery.StatusDelivered).Return(nil)

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_SendFails(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockService := mocks.NewMockdeliveryService(ctrl)
	h := NewHandler(mockService)

	msg := newMessage()
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockService.EXPECT().Channel().Return("email")
	mockService.EXPECT().Send(msg.EndpointID, msg.Text).Return(errors.New("smtp down"))
	mockService.EXPECT().SetStatus(gomock.Any(), strategy, msg.ID, delivery.StatusFailed).Return(nil)

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_SetStatusFails(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockService := mocks.NewMockdeliveryService(ctrl)
	h := NewHandler(mockService)

	msg := newMessage()
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockService.EXPECT().Channel().Return("telegram")
	mockService.EXPECT().Send(msg.EndpointID, msg.Text).Return(nil)
	mockService.EXPECT().SetStatus(gomock.Any(), strategy, msg.ID, delivery.StatusDelivered).Return(errors.New("redis down"))

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_ContextCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockService := mocks.NewMockdeliveryService(ctrl)
	h := NewHandler(mockService)

	msg := newMessage()
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mockService.EXPECT().Channel().Return("telegram")
	mockService.EXPECT().SetStatus(ctx, strategy, msg.ID, delivery.StatusFailed).Return(nil)

	h.HandleMessage(ctx, msg, strategy)
}
