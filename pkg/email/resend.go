package email

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
)

// ResendSender delivers messages through the Resend HTTPS API.
type ResendSender struct {
	client *resend.Client
	apiKey string
}

// NewResendSender creates a Resend sender. baseURL may be empty to use the
// public API endpoint.
func NewResendSender(apiKey, baseURL string, timeout time.Duration) (*ResendSender, error) {
	httpClient := &http.Client{Timeout: timeoutOrDefault(timeout)}
	client := resend.NewCustomClient(httpClient, apiKey)

	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid resend base url: %w", err)
		}
		client.BaseURL = u
	}

	return &ResendSender{client: client, apiKey: apiKey}, nil
}

func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		ReplyTo: msg.ReplyTo,
		Text:    msg.Text,
		Html:    msg.HTML,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend: %w", err)
	}
	return nil
}

func (s *ResendSender) Name() string { return "resend" }

func (s *ResendSender) Configured() bool { return s.apiKey != "" }
