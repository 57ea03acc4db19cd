package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"isp_billing_backend/internal/email"
	"isp_billing_backend/internal/email/templates"
	"isp_billing_backend/internal/models"
)

// ErrNotificationValidation is returned when a send request is missing
// required fields; the transport is never invoked in that case.
var ErrNotificationValidation = errors.New("notification validation error")

// SendNotificationRequest describes one outgoing notification email.
// Subject, Type and Client are optional and fall back to the default subject,
// the reminder rendering and an empty snapshot respectively.
type SendNotificationRequest struct {
	Email   string                `json:"email"`
	Subject string                `json:"subject"`
	Message string                `json:"message"`
	Type    string                `json:"type"`
	Client  models.ClientSnapshot `json:"client"`
}

// --- NotificationService Interface ---
type NotificationService interface {
	SendNotification(ctx context.Context, req SendNotificationRequest) (string, error)
}

// --- notificationService Implementation ---
type notificationService struct {
	engine *templates.Engine
	sender email.Sender
}

// NewNotificationService creates a NotificationService that renders content
// with the given engine and delivers it through the given sender.
func NewNotificationService(engine *templates.Engine, sender email.Sender) NotificationService {
	return &notificationService{
		engine: engine,
		sender: sender,
	}
}

// SendNotification renders the notification and invokes the transport exactly
// once. There is no retry and no delivery state kept anywhere: the returned
// provider message ID is the only confirmation.
func (s *notificationService) SendNotification(ctx context.Context, req SendNotificationRequest) (string, error) {
	if strings.TrimSpace(req.Email) == "" {
		return "", fmt.Errorf("%w: email is required", ErrNotificationValidation)
	}
	if strings.TrimSpace(req.Message) == "" {
		return "", fmt.Errorf("%w: message is required", ErrNotificationValidation)
	}

	subject := req.Subject
	if strings.TrimSpace(subject) == "" {
		subject = templates.DefaultSubject
	}

	textBody, htmlBody := s.engine.Render(req.Client, req.Message, req.Type)

	messageID, err := s.sender.Send(ctx, email.Message{
		To:       req.Email,
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send notification: %w", err)
	}
	return messageID, nil
}
