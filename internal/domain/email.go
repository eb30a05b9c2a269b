package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// SubmissionReceivedEmailData holds data for the email sent to an author when
// their presentation is registered in the program.
type SubmissionReceivedEmailData struct {
	Email           string
	AuthorName      string
	TitleES         string
	TitleEN         string
	Kind            string
	DurationMinutes int
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendSubmissionReceived(ctx context.Context, data *SubmissionReceivedEmailData) error
}
