package services

import (
	"context"
	"fmt"
	"log"

	"congressprogram/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendSubmissionReceived notifies an author that their presentation was
// registered, using the "submission_received" template.
func (s *emailService) SendSubmissionReceived(ctx context.Context, data *domain.SubmissionReceivedEmailData) error {
	if data == nil {
		return fmt.Errorf("submission received data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("submission_received", data)
	if err != nil {
		return fmt.Errorf("failed to render submission_received template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send submission received email: %w", err)
	}
	log.Printf("[EMAIL] Submission received email sent to %s", data.Email)
	return nil
}
