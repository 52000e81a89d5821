package email

import (
	"context"

	"freelance-site-backend/pkg/logger"
)

// LogSender only logs messages. It is meant for local development.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	logger.Log.InfoContext(ctx, "Contact email (log provider)",
		"to", msg.To,
		"reply_to", msg.ReplyTo,
		"subject", msg.Subject,
		"text", msg.Text,
	)
	return nil
}

func (s *LogSender) Name() string { return "log" }

func (s *LogSender) Configured() bool { return true }
