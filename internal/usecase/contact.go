package usecase

import (
	"context"
	"fmt"
	"strings"

	"freelance-site-backend/internal/domain"
	"freelance-site-backend/pkg/email"
	"freelance-site-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// ContactSettings is the fixed addressing applied to every contact email.
type ContactSettings struct {
	From string
	To   string
}

type contactUsecase struct {
	sender   email.Sender
	settings ContactSettings
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(sender email.Sender, settings ContactSettings, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		sender:   sender,
		settings: settings,
		validate: validate,
	}
}

// SendContactMessage checks configuration, validates the draft and sends one email.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, draft *domain.ContactDraft) error {
	if !uc.sender.Configured() {
		return fmt.Errorf("%w: %s credentials missing", domain.ErrNotConfigured, uc.sender.Name())
	}
	if uc.settings.To == "" {
		return fmt.Errorf("%w: destination mailbox missing", domain.ErrNotConfigured)
	}

	if draft == nil {
		return fmt.Errorf("%w: empty submission", domain.ErrValidation)
	}
	clean := domain.ContactDraft{
		Name:    strings.TrimSpace(draft.Name),
		Email:   strings.TrimSpace(draft.Email),
		Message: strings.TrimSpace(draft.Message),
	}
	if err := uc.validate.StructCtx(ctx, clean); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(validation.FormatValidationErrors(err), ", "))
	}

	msg, err := email.BuildContactMessage(uc.settings.From, uc.settings.To, email.ContactEmailData{
		SenderName:  clean.Name,
		SenderEmail: clean.Email,
		Message:     clean.Message,
	})
	if err != nil {
		return err
	}

	if err := uc.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDelivery, err)
	}

	return nil
}
