package email

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"freelance-site-backend/config"
)

var (
	ErrProviderTimeout     = errors.New("email provider timed out")
	ErrProviderUnavailable = errors.New("email provider unavailable")
)

// Message is a fully rendered email ready to hand to a provider.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Sender delivers a Message through one provider.
type Sender interface {
	Send(ctx context.Context, msg Message) error
	// Name identifies the provider in logs.
	Name() string
	// Configured reports whether the provider has the credentials it needs.
	Configured() bool
}

// NewSender builds the provider selected by cfg.EmailProvider, guarded by the
// configured timeout.
func NewSender(cfg *config.Config) (Sender, error) {
	var sender Sender
	switch strings.ToLower(cfg.EmailProvider) {
	case "", "resend":
		s, err := NewResendSender(cfg.ResendAPIKey, cfg.ResendBaseURL, cfg.EmailTimeout)
		if err != nil {
			return nil, err
		}
		sender = s
	case "smtp":
		sender = NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	case "log":
		sender = NewLogSender()
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.EmailProvider)
	}
	return NewGuardedSender(sender, cfg.EmailTimeout), nil
}

func sanitizeHeader(s string) string {
	return strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(s)
}

func timeoutOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return 10 * time.Second
	}
	return d
}
