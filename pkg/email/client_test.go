package email

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/mail.v2"
)

type fakeDialer struct {
	sent []*mail.Message
	err  error
}

func (d *fakeDialer) DialAndSend(m ...*mail.Message) error {
	d.sent = append(d.sent, m...)
	return d.err
}

func TestClient_Send(t *testing.T) {
	d := &fakeDialer{}
	c := &Client{dialer: d, from: "reminders@example.com", subject: DefaultSubject}

	require.NoError(t, c.Send("bob@example.com", "Reminder"))
	require.Len(t, d.sent, 1)

	m := d.sent[0]
	assert.Equal(t, []string{"reminders@example.com"}, m.GetHeader("From"))
	assert.Equal(t, []string{"bob@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Appointment reminder"}, m.GetHeader("Subject"))
}

func TestClient_SendError(t *testing.T) {
	c := &Client{dialer: &fakeDialer{err: errors.New("connection refused")}}

	err := c.Send("bob@example.com", "Reminder")
	assert.ErrorContains(t, err, "connection refused")
}

func TestNewClient_DefaultSubject(t *testing.T) {
	c := NewClient("localhost", 1025, "", "", "from@example.com", "")
	assert.Equal(t, DefaultSubject, c.subject)
}
