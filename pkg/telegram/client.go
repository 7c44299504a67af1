// Package telegram provides a Telegram bot client for sending messages to
// chats and reading inbound messages from bot updates.
//
// A chat id is the endpoint id of a Telegram user in the appointments system.
package telegram

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/zlog"
)

// updateTimeout is the long polling timeout in seconds.
const updateTimeout = 60

// botAPI is the part of *tgbotapi.BotAPI the client uses.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// InboundHandler answers a text received from a chat. An empty reply is not sent.
type InboundHandler func(ctx context.Context, chatID, text string) string

// Client represents a Telegram client used to send messages.
type Client struct {
	bot botAPI
}

// NewClient creates a new Telegram Client authorised with the given bot token.
func NewClient(token string) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	zlog.Logger.Info().Str("bot", bot.Self.UserName).Msg("telegram bot authorised")

	return &Client{bot: bot}, nil
}

// Send sends a text message to the chat identified by to.
func (c *Client) Send(to string, msg string) error {
	chatID, err := strconv.ParseInt(to, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid chat id %q: %w", to, err)
	}

	if _, err := c.bot.Send(tgbotapi.NewMessage(chatID, msg)); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

// Poll reads bot updates until ctx is done and replies to every text
// message with the answer of handle.
func (c *Client) Poll(ctx context.Context, handle InboundHandler) {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = updateTimeout

	updates := c.bot.GetUpdatesChan(updateConfig)
	defer c.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("telegram polling stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || update.Message.Text == "" {
				continue
			}

			chatID := strconv.FormatInt(update.Message.Chat.ID, 10)

			reply := handle(ctx, chatID, update.Message.Text)
			if reply == "" {
				continue
			}

			if err := c.Send(chatID, reply); err != nil {
				zlog.Logger.Error().Err(err).Str("chat", chatID).Msg("failed to send reply")
			}
		}
	}
}
