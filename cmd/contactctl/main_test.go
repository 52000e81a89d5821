package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"freelance-site-backend/pkg/contactform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	t.Run("Should render sending then success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success":true}`))
		}))
		defer srv.Close()

		var out bytes.Buffer
		err := send(context.Background(), &out, contactform.New(srv.URL), "A", "a@b.com", "hi")

		require.NoError(t, err)
		assert.Equal(t, "送信中...\n送信しました。お問い合わせありがとうございます。\n", out.String())
	})

	t.Run("Should render the server error and fail", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"すべての項目を入力してください"}`))
		}))
		defer srv.Close()

		var out bytes.Buffer
		err := send(context.Background(), &out, contactform.New(srv.URL), "", "a@b.com", "hi")

		assert.ErrorIs(t, err, errSubmissionFailed)
		assert.Contains(t, out.String(), "エラー: すべての項目を入力してください")
	})
}

func TestSendCmdReadsStdin(t *testing.T) {
	bodies := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(r.Body)
		bodies <- buf.String()
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetIn(bytes.NewBufferString("line one\nline two\n"))
	root.SetArgs([]string{"send", "--endpoint", srv.URL, "--name", "A", "--email", "a@b.com", "--message", "-"})

	require.NoError(t, root.Execute())
	assert.Contains(t, <-bodies, `"message":"line one\nline two"`)
}
