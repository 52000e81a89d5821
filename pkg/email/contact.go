package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Message     string
}

const contactSubjectFormat = "【お問い合わせ】%s様より"

// contactEmailTemplate is the HTML template for contact form emails
const contactEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>お問い合わせ</title>
</head>
<body style="font-family: sans-serif; line-height: 1.6; color: #333;">
    <h2>お問い合わせがありました</h2>
    <p><strong>お名前:</strong> {{.SenderName}}</p>
    <p><strong>メールアドレス:</strong> {{.SenderEmail}}</p>
    <h3>メッセージ:</h3>
    <p>{{nl2br .Message}}</p>
</body>
</html>`

var contactTemplate = template.Must(template.New("contact").
	Funcs(template.FuncMap{"nl2br": nl2br}).
	Parse(contactEmailTemplate))

// nl2br escapes s and turns line breaks into <br>.
func nl2br(s string) template.HTML {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(template.HTMLEscapeString(s), "\n", "<br>"))
}

// BuildContactMessage renders a contact submission addressed from -> to with
// the submitter as Reply-To.
func BuildContactMessage(from, to string, data ContactEmailData) (Message, error) {
	var body bytes.Buffer
	if err := contactTemplate.Execute(&body, data); err != nil {
		return Message{}, fmt.Errorf("failed to execute email template: %w", err)
	}

	text := fmt.Sprintf("お名前: %s\nメールアドレス: %s\n\nメッセージ:\n%s",
		data.SenderName, data.SenderEmail, data.Message)

	return Message{
		From:    from,
		To:      to,
		ReplyTo: sanitizeHeader(data.SenderEmail),
		Subject: fmt.Sprintf(contactSubjectFormat, sanitizeHeader(data.SenderName)),
		Text:    text,
		HTML:    body.String(),
	}, nil
}
