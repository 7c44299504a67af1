package command

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/appointments/internal/metrics"
)

const (
	replyUnknown = "Sorry, we cannot understand that message. Send one of: "
	replyFailure = "Sorry, we could not process your message. Please try again later."
)

// Router dispatches inbound messages to the handler for their first word.
type Router struct {
	handlers map[string]Handler
	keywords []string
	loc      *time.Location
}

// NewRouter creates a router over handlers. loc is the zone used for the
// wall clock in HandleInboundMessage.
func NewRouter(loc *time.Location, handlers ...Handler) *Router {
	if loc == nil {
		loc = time.Local
	}

	r := &Router{handlers: make(map[string]Handler, len(handlers)), loc: loc}
	for _, h := range handlers {
		k := strings.ToLower(h.Keyword())
		r.handlers[k] = h
		r.keywords = append(r.keywords, strings.ToUpper(k))
	}

	return r
}

// NewDefaultRouter creates a router with the NEW, CONFIRM, STATUS, MOVE and
// QUIT handlers.
func NewDefaultRouter(deps Deps, loc *time.Location) *Router {
	return NewRouter(loc,
		NewJoinHandler(deps),
		NewConfirmHandler(deps),
		NewStatusHandler(deps),
		NewMoveHandler(deps),
		NewQuitHandler(deps),
	)
}

// HandleInboundMessage routes rawText at the current time.
func (r *Router) HandleInboundMessage(ctx context.Context, endpointID, rawText string) string {
	return r.Route(ctx, endpointID, rawText, time.Now().In(r.loc))
}

// Route handles one message from endpointID and returns the reply.
func (r *Router) Route(ctx context.Context, endpointID, rawText string, now time.Time) string {
	tokens := strings.Fields(rawText)
	if len(tokens) == 0 {
		metrics.Commands.WithLabelValues("", "unknown").Inc()
		return r.unknown()
	}

	keyword := strings.ToLower(tokens[0])
	h, ok := r.handlers[keyword]
	if !ok {
		metrics.Commands.WithLabelValues("", "unknown").Inc()
		return r.unknown()
	}

	args := tokens[1:]
	if len(args) == 0 {
		metrics.Commands.WithLabelValues(keyword, "help").Inc()
		return h.Help()
	}

	cmd := &Command{EndpointID: endpointID, Now: now, Fields: h.Parse(args)}

	reply, err := run(ctx, h, cmd)
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			metrics.Commands.WithLabelValues(keyword, "invalid").Inc()
			return vErr.Message
		}

		zlog.Logger.Error().Err(err).
			Str("command", keyword).
			Str("endpoint_id", endpointID).
			Msg("failed to handle command")
		metrics.Commands.WithLabelValues(keyword, "error").Inc()
		return replyFailure
	}

	metrics.Commands.WithLabelValues(keyword, "ok").Inc()
	return reply
}

func run(ctx context.Context, h Handler, cmd *Command) (string, error) {
	for _, v := range h.Validators() {
		if err := v.Check(ctx, cmd); err != nil {
			return "", err
		}
	}

	return h.Apply(ctx, cmd)
}

func (r *Router) unknown() string {
	return replyUnknown + strings.Join(r.keywords, ", ") + "."
}
