package telegram

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBot struct {
	mu      sync.Mutex
	sent    []tgbotapi.MessageConfig
	sendErr error
	updates chan tgbotapi.Update
	stopped bool
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.sendErr != nil {
		return tgbotapi.Message{}, b.sendErr
	}
	b.sent = append(b.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, nil
}

func (b *fakeBot) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return b.updates
}

func (b *fakeBot) StopReceivingUpdates() {
	b.mu.Lock()
	b.stopped = true
	b.mu.Unlock()
}

func (b *fakeBot) messages() []tgbotapi.MessageConfig {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]tgbotapi.MessageConfig(nil), b.sent...)
}

func TestClient_Send(t *testing.T) {
	bot := &fakeBot{}
	c := &Client{bot: bot}

	require.NoError(t, c.Send("12345", "hello"))

	sent := bot.messages()
	require.Len(t, sent, 1)
	assert.Equal(t, int64(12345), sent[0].ChatID)
	assert.Equal(t, "hello", sent[0].Text)
}

func TestClient_SendInvalidChatID(t *testing.T) {
	c := &Client{bot: &fakeBot{}}

	assert.ErrorContains(t, c.Send("not-a-chat", "hello"), "invalid chat id")
}

func TestClient_SendError(t *testing.T) {
	c := &Client{bot: &fakeBot{sendErr: errors.New("forbidden")}}

	assert.ErrorContains(t, c.Send("1", "hello"), "forbidden")
}

func TestClient_Poll(t *testing.T) {
	bot := &fakeBot{updates: make(chan tgbotapi.Update, 3)}
	c := &Client{bot: bot}

	bot.updates <- tgbotapi.Update{}
	bot.updates <- tgbotapi.Update{Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 7}, Text: "STATUS bar yes"}}
	bot.updates <- tgbotapi.Update{Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 8}, Text: "ignored"}}

	var got []string
	handle := func(_ context.Context, chatID, text string) string {
		got = append(got, chatID+":"+text)
		if chatID == "8" {
			return ""
		}
		return "Thank you!"
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Poll(ctx, handle)
		close(done)
	}()

	require.Eventually(t, func() bool { return len(bot.updates) == 0 && len(bot.messages()) == 1 }, time.Second, 10*time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, []string{"7:STATUS bar yes", "8:ignored"}, got)
	sent := bot.messages()
	assert.Equal(t, int64(7), sent[0].ChatID)
	assert.Equal(t, "Thank you!", sent[0].Text)
	assert.True(t, bot.stopped)
}
