// Package email sends plain text messages over SMTP.
package email

import (
	"fmt"

	"gopkg.in/mail.v2"
)

// DefaultSubject is used when the client is created without a subject.
const DefaultSubject = "Appointment reminder"

type dialer interface {
	DialAndSend(m ...*mail.Message) error
}

// Client sends emails through one SMTP server.
type Client struct {
	dialer  dialer
	from    string
	subject string
}

// NewClient creates a client for the SMTP server at smtpHost:smtpPort.
func NewClient(smtpHost string, smtpPort int, username, password, from, subject string) *Client {
	if subject == "" {
		subject = DefaultSubject
	}

	return &Client{
		dialer:  mail.NewDialer(smtpHost, smtpPort, username, password),
		from:    from,
		subject: subject,
	}
}

// Send emails msg to the address to.
func (c *Client) Send(to string, msg string) error {
	message := c.message(to, msg)

	if err := c.dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	return nil
}

func (c *Client) message(to, msg string) *mail.Message {
	message := mail.NewMessage()

	message.SetHeader("From", c.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", c.subject)

	message.SetBody("text/plain", msg)

	return message
}
