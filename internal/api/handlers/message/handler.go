package message

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/appointments/internal/api/dto"
	"github.com/aliskhannn/appointments/internal/api/respond"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/message/mock.go -package=mocks
type commandRouter interface {
	HandleInboundMessage(ctx context.Context, endpointID, rawText string) string
}

// Handler accepts inbound messages from messaging endpoints.
type Handler struct {
	router    commandRouter
	validator *validator.Validate
}

// NewHandler creates a new inbound message handler.
func NewHandler(r commandRouter, v *validator.Validate) *Handler {
	return &Handler{router: r, validator: v}
}

// Receive handles POST /api/messages: it routes the text as a command and
// returns the reply for the endpoint.
func (h *Handler) Receive(c *ginext.Context) {
	var req dto.MessageRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to decode message body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate message body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	reply := h.router.HandleInboundMessage(c.Request.Context(), req.EndpointID, req.Text)

	respond.OK(c.Writer, dto.MessageResponse{Reply: reply})
}
