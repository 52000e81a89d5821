package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels used on the site form
var FieldLabels = map[string]string{
	"Name":    "お名前",
	"Email":   "メールアドレス",
	"Message": "メッセージ",
}

// FormatValidationErrors converts validator.ValidationErrors to readable messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: 必須項目です", label)
	case "email":
		return fmt.Sprintf("%s: 形式が正しくありません", label)
	case "max":
		return fmt.Sprintf("%s: %s文字以内で入力してください", label, e.Param())
	default:
		return fmt.Sprintf("%s: 入力内容が正しくありません (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}
