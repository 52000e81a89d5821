package contactform_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"freelance-site-backend/pkg/contactform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(c *contactform.Controller) {
	c.UpdateField(contactform.FieldName, "山田太郎")
	c.UpdateField(contactform.FieldEmail, "taro@example.com")
	c.UpdateField(contactform.FieldMessage, "見積り依頼")
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestControllerSuccess(t *testing.T) {
	received := make(chan contactform.Draft, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var d contactform.Draft
		_ = json.NewDecoder(r.Body).Decode(&d)
		if r.Method == http.MethodPost && r.Header.Get("Content-Type") == "application/json" {
			received <- d
		}
		respond(http.StatusOK, `{"success":true}`)(w, r)
	}))
	defer srv.Close()

	c := contactform.New(srv.URL)
	assert.Equal(t, contactform.Idle, c.Snapshot().Status)

	var seen []contactform.Status
	c.OnChange(func(s contactform.State) { seen = append(seen, s.Status) })

	fill(c)
	require.NoError(t, c.Submit(context.Background()))

	select {
	case got := <-received:
		assert.Equal(t, contactform.Draft{Name: "山田太郎", Email: "taro@example.com", Message: "見積り依頼"}, got)
	default:
		t.Fatal("no JSON POST received")
	}

	s := c.Snapshot()
	assert.Equal(t, contactform.Succeeded, s.Status)
	assert.Equal(t, contactform.Draft{}, s.Draft)
	assert.Empty(t, s.Reason)
	assert.Equal(t, []contactform.Status{
		contactform.Idle, contactform.Idle, contactform.Idle,
		contactform.Sending, contactform.Succeeded,
	}, seen)

	require.NoError(t, c.Reset())
	s = c.Snapshot()
	assert.Equal(t, contactform.Idle, s.Status)
	assert.Equal(t, contactform.Draft{}, s.Draft)
}

func TestControllerFailures(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
		reason  string
	}{
		{"server error message", respond(http.StatusBadRequest, `{"error":"すべての項目を入力してください"}`), "すべての項目を入力してください"},
		{"500 without message", respond(http.StatusInternalServerError, `{}`), contactform.GenericFailure},
		{"non-json error page", respond(http.StatusBadGateway, `<html>bad gateway</html>`), contactform.GenericFailure},
		{"2xx carrying an error", respond(http.StatusOK, `{"error":"メール送信に失敗しました"}`), "メール送信に失敗しました"},
		{"2xx with garbage body", respond(http.StatusOK, `not json`), contactform.GenericFailure},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			c := contactform.New(srv.URL)
			fill(c)
			require.NoError(t, c.Submit(context.Background()))

			s := c.Snapshot()
			assert.Equal(t, contactform.Failed, s.Status)
			assert.Equal(t, tc.reason, s.Reason)
			assert.Equal(t, "山田太郎", s.Draft.Name, "draft is kept on failure")
			assert.True(t, s.CanSubmit)
		})
	}
}

func TestControllerTransportFailure(t *testing.T) {
	srv := httptest.NewServer(respond(http.StatusOK, `{"success":true}`))
	url := srv.URL
	srv.Close()

	c := contactform.New(url)
	fill(c)
	require.NoError(t, c.Submit(context.Background()))

	s := c.Snapshot()
	assert.Equal(t, contactform.Failed, s.Status)
	assert.Equal(t, contactform.GenericFailure, s.Reason)
	assert.Equal(t, "見積り依頼", s.Draft.Message)
}

func TestControllerRetryAfterFailure(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			respond(http.StatusInternalServerError, `{"error":"メール送信に失敗しました"}`)(w, r)
			return
		}
		respond(http.StatusOK, `{"success":true}`)(w, r)
	}))
	defer srv.Close()

	c := contactform.New(srv.URL)
	fill(c)

	require.NoError(t, c.Submit(context.Background()))
	assert.Equal(t, contactform.Failed, c.Snapshot().Status)

	require.NoError(t, c.Submit(context.Background()))
	s := c.Snapshot()
	assert.Equal(t, contactform.Succeeded, s.Status)
	assert.Empty(t, s.Reason)
	mu.Lock()
	assert.Equal(t, 2, calls)
	mu.Unlock()
}

func TestControllerRejectsConcurrentSubmit(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		respond(http.StatusOK, `{"success":true}`)(w, r)
	}))
	defer srv.Close()

	c := contactform.New(srv.URL)
	fill(c)

	done := make(chan error, 1)
	go func() { done <- c.Submit(context.Background()) }()

	<-entered
	s := c.Snapshot()
	assert.Equal(t, contactform.Sending, s.Status)
	assert.False(t, s.CanSubmit)
	assert.ErrorIs(t, c.Submit(context.Background()), contactform.ErrSubmitInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, contactform.Succeeded, c.Snapshot().Status)
}

func TestControllerResetOnlyFromSucceeded(t *testing.T) {
	t.Run("Should refuse reset from idle and failed", func(t *testing.T) {
		c := contactform.New("http://127.0.0.1:0")
		assert.ErrorIs(t, c.Reset(), contactform.ErrInvalidTransition)

		fill(c)
		require.NoError(t, c.Submit(context.Background()))
		assert.Equal(t, contactform.Failed, c.Snapshot().Status)
		assert.ErrorIs(t, c.Reset(), contactform.ErrInvalidTransition)
	})

	t.Run("Should refuse submit after success until reset", func(t *testing.T) {
		var mu sync.Mutex
		requests := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			requests++
			mu.Unlock()
			respond(http.StatusOK, `{"success":true}`)(w, r)
		}))
		defer srv.Close()

		c := contactform.New(srv.URL)
		fill(c)
		require.NoError(t, c.Submit(context.Background()))
		assert.False(t, c.Snapshot().CanSubmit)

		assert.ErrorIs(t, c.Submit(context.Background()), contactform.ErrInvalidTransition)
		assert.Equal(t, contactform.Succeeded, c.Snapshot().Status)

		require.NoError(t, c.Reset())
		assert.True(t, c.Snapshot().CanSubmit)
		fill(c)
		require.NoError(t, c.Submit(context.Background()))
		assert.Equal(t, contactform.Succeeded, c.Snapshot().Status)

		mu.Lock()
		assert.Equal(t, 2, requests)
		mu.Unlock()
	})
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "idle", contactform.Idle.String())
	assert.Equal(t, "sending", contactform.Sending.String())
	assert.Equal(t, "succeeded", contactform.Succeeded.String())
	assert.Equal(t, "failed", contactform.Failed.String())
}
