package email

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/afex/hystrix-go/hystrix"
)

// GuardedSender runs every send as a hystrix command so a slow or failing
// provider is cut off after a fixed timeout.
type GuardedSender struct {
	next    Sender
	command string
	timeout time.Duration
}

func NewGuardedSender(next Sender, timeout time.Duration) *GuardedSender {
	timeout = timeoutOrDefault(timeout)
	command := "email:" + next.Name()

	hystrix.ConfigureCommand(command, hystrix.CommandConfig{
		Timeout:                int(timeout / time.Millisecond),
		MaxConcurrentRequests:  50,
		RequestVolumeThreshold: 10,
		SleepWindow:            5000,
		ErrorPercentThreshold:  50,
	})

	return &GuardedSender{next: next, command: command, timeout: timeout}
}

func (g *GuardedSender) Send(ctx context.Context, msg Message) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	err := hystrix.Do(g.command, func() error {
		return g.next.Send(ctx, msg)
	}, nil)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, hystrix.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %s after %s", ErrProviderTimeout, g.next.Name(), g.timeout)
	case errors.Is(err, hystrix.ErrCircuitOpen), errors.Is(err, hystrix.ErrMaxConcurrency):
		return fmt.Errorf("%w: %s: %v", ErrProviderUnavailable, g.next.Name(), err)
	default:
		return err
	}
}

func (g *GuardedSender) Name() string { return g.next.Name() }

func (g *GuardedSender) Configured() bool { return g.next.Configured() }
