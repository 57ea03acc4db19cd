package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isp_billing_backend/internal/email"
	"isp_billing_backend/internal/email/templates"
	"isp_billing_backend/internal/models"
	"isp_billing_backend/internal/services"
)

// fakeSender records every message it is asked to deliver.
type fakeSender struct {
	sent []email.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg email.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, msg)
	return "msg-123", nil
}

func TestSendNotification(t *testing.T) {
	t.Parallel()

	t.Run("builds content and sends exactly once", func(t *testing.T) {
		t.Parallel()

		sender := &fakeSender{}
		svc := services.NewNotificationService(templates.NewEngine(), sender)

		messageID, err := svc.SendNotification(context.Background(), services.SendNotificationRequest{
			Email:   "a@x.com",
			Subject: "Your invoice",
			Message: "Payment due soon.",
			Type:    templates.TypeReminder,
			Client:  models.ClientSnapshot{Name: "Ana", Amount: "500", Wifi: "ana-wifi"},
		})
		require.NoError(t, err)
		assert.Equal(t, "msg-123", messageID)

		require.Len(t, sender.sent, 1)
		msg := sender.sent[0]
		assert.Equal(t, "a@x.com", msg.To)
		assert.Equal(t, "Your invoice", msg.Subject)
		assert.Contains(t, msg.TextBody, "Payment due soon.")
		assert.Contains(t, msg.HTMLBody, "Payment due soon.")
		assert.Contains(t, msg.HTMLBody, "$500")
	})

	t.Run("missing subject falls back to the default", func(t *testing.T) {
		t.Parallel()

		sender := &fakeSender{}
		svc := services.NewNotificationService(templates.NewEngine(), sender)

		_, err := svc.SendNotification(context.Background(), services.SendNotificationRequest{
			Email:   "a@x.com",
			Message: "Payment due soon.",
		})
		require.NoError(t, err)
		require.Len(t, sender.sent, 1)
		assert.Equal(t, templates.DefaultSubject, sender.sent[0].Subject)
	})

	t.Run("missing destination or message never reaches the transport", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			req  services.SendNotificationRequest
		}{
			{"empty email", services.SendNotificationRequest{Message: "hi"}},
			{"empty message", services.SendNotificationRequest{Email: "a@x.com"}},
			{"whitespace message", services.SendNotificationRequest{Email: "a@x.com", Message: "   "}},
		}

		for _, tt := range tests {

			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				sender := &fakeSender{}
				svc := services.NewNotificationService(templates.NewEngine(), sender)

				_, err := svc.SendNotification(context.Background(), tt.req)
				assert.ErrorIs(t, err, services.ErrNotificationValidation)
				assert.Empty(t, sender.sent)
			})
		}
	})

	t.Run("transport failure is propagated with its cause", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("provider rejected the message")
		sender := &fakeSender{err: cause}
		svc := services.NewNotificationService(templates.NewEngine(), sender)

		_, err := svc.SendNotification(context.Background(), services.SendNotificationRequest{
			Email:   "a@x.com",
			Message: "hi",
		})
		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, services.ErrNotificationValidation)
	})

	t.Run("disabled sender fails with missing credentials", func(t *testing.T) {
		t.Parallel()

		svc := services.NewNotificationService(templates.NewEngine(), email.NewDisabledSender())
		_, err := svc.SendNotification(context.Background(), services.SendNotificationRequest{
			Email:   "a@x.com",
			Message: "hi",
		})
		assert.ErrorIs(t, err, email.ErrNoCredentials)
	})
}
