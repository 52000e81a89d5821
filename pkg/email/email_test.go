package email

import (
	"testing"
	"time"

	"freelance-site-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSender(t *testing.T) {
	cases := []struct {
		provider   string
		name       string
		configured bool
	}{
		{provider: "resend", name: "resend", configured: true},
		{provider: "", name: "resend", configured: true},
		{provider: "SMTP", name: "smtp", configured: false},
		{provider: "log", name: "log", configured: true},
	}

	for _, tc := range cases {
		t.Run(tc.provider, func(t *testing.T) {
			s, err := NewSender(&config.Config{
				EmailProvider: tc.provider,
				EmailTimeout:  time.Second,
				ResendAPIKey:  "re_test",
				SMTPHost:      "smtp.example.com",
			})
			require.NoError(t, err)
			assert.Equal(t, tc.name, s.Name())
			assert.Equal(t, tc.configured, s.Configured())
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := NewSender(&config.Config{EmailProvider: "pigeon"})
		assert.Error(t, err)
	})
}
