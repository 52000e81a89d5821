package domain

import (
	"context"
	"errors"
)

// User-facing messages returned in the {"error": ...} body.
const (
	MsgFieldsRequired = "すべての項目を入力してください"
	MsgServerConfig   = "サーバー設定エラー"
	MsgSendFailed     = "メール送信に失敗しました"
	MsgServerError    = "サーバーエラーが発生しました"
	MsgRateLimited    = "送信回数の上限に達しました。しばらくしてから再度お試しください"
)

var (
	// ErrValidation marks a submission with a missing or malformed field.
	ErrValidation = errors.New("contact: validation failed")
	// ErrNotConfigured marks a missing provider credential or destination mailbox.
	ErrNotConfigured = errors.New("contact: email service is not configured")
	// ErrDelivery marks a failed or timed out provider send.
	ErrDelivery = errors.New("contact: email delivery failed")
)

// ContactDraft represents a contact form submission
type ContactDraft struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates the draft and relays it to the email provider.
	// Errors wrap ErrValidation, ErrNotConfigured or ErrDelivery.
	SendContactMessage(ctx context.Context, draft *ContactDraft) error
}
