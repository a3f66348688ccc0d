package contact

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Sender interface {
	Send(ctx context.Context, message *Message) error
}

// Message is an inbound contact form submission, relayed to the site owner.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Content string `json:"message"`
}

var _ Sender = (*MailgunSender)(nil)

type MailgunSender struct {
	mg        *mailgun.MailgunImpl
	domain    string
	recipient string
}

func NewMailgunSender(domain, apiKey, recipient string) *MailgunSender {
	mg := mailgun.NewMailgun(domain, apiKey)
	mg.SetAPIBase(mailgun.APIBaseEU)
	mg.SetClient(&http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	})

	return &MailgunSender{
		mg:        mg,
		domain:    domain,
		recipient: recipient,
	}
}

func (s *MailgunSender) Send(ctx context.Context, message *Message) error {
	subject := message.Subject
	if subject == "" {
		subject = "New message from the portfolio contact form"
	}

	body := fmt.Sprintf(
		"From: %s <%s>\n\n%s",
		message.Name, message.Email, message.Content,
	)

	mgMessage := s.mg.NewMessage(
		fmt.Sprintf("Portfolio Contact <contact@%s>", s.domain),
		subject,
		body,
		s.recipient,
	)
	mgMessage.SetReplyTo(message.Email)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, time.Second*30)
	defer cancel()

	if _, _, err := s.mg.Send(ctxWithTimeout, mgMessage); err != nil {
		return fmt.Errorf("failed to relay contact message: %w", err)
	}

	return nil
}
