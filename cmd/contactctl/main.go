package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"freelance-site-backend/pkg/contactform"

	"github.com/spf13/cobra"
)

var errSubmissionFailed = errors.New("submission failed")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "contactctl",
		Short:         "Submit the site contact form from a terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSendCmd())
	return root
}

func newSendCmd() *cobra.Command {
	var endpoint, name, addr, message string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a contact message",
		RunE: func(cmd *cobra.Command, args []string) error {
			if message == "-" {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read message: %w", err)
				}
				message = strings.TrimRight(string(b), "\n")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return send(ctx, cmd.OutOrStdout(), contactform.New(endpoint), name, addr, message)
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", "http://localhost:8080/api/contact", "contact endpoint URL")
	cmd.Flags().StringVar(&name, "name", "", "your name")
	cmd.Flags().StringVar(&addr, "email", "", "your email address")
	cmd.Flags().StringVar(&message, "message", "", "message body, - reads stdin")

	return cmd
}

func send(ctx context.Context, out io.Writer, form *contactform.Controller, name, addr, message string) error {
	form.UpdateField(contactform.FieldName, name)
	form.UpdateField(contactform.FieldEmail, addr)
	form.UpdateField(contactform.FieldMessage, message)

	form.OnChange(func(s contactform.State) { render(out, s) })

	if err := form.Submit(ctx); err != nil {
		return err
	}
	if form.Snapshot().Status != contactform.Succeeded {
		return errSubmissionFailed
	}
	return nil
}

func render(out io.Writer, s contactform.State) {
	switch s.Status {
	case contactform.Sending:
		fmt.Fprintln(out, "送信中...")
	case contactform.Succeeded:
		fmt.Fprintln(out, "送信しました。お問い合わせありがとうございます。")
	case contactform.Failed:
		fmt.Fprintf(out, "エラー: %s\n", s.Reason)
	}
}
