package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"isp_billing_backend/internal/email"
	"isp_billing_backend/internal/handlers"
	"isp_billing_backend/internal/services"
)

type stubNotificationService struct {
	messageID string
	err       error
	calls     int
}

func (s *stubNotificationService) SendNotification(context.Context, services.SendNotificationRequest) (string, error) {
	s.calls++
	return s.messageID, s.err
}

func newNotificationRouter(svc services.NotificationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := handlers.NewNotificationHandler(svc)
	engine.POST("/api/send-email", h.SendEmail)
	return engine
}

func TestSendEmailEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("returns the provider message id", func(t *testing.T) {
		t.Parallel()

		svc := &stubNotificationService{messageID: "pm-42"}
		engine := newNotificationRouter(svc)
		rec := doJSON(t, engine, http.MethodPost, "/api/send-email", gin.H{
			"email":   "a@x.com",
			"message": "Payment due soon.",
			"type":    "reminder",
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"messageId":"pm-42"}`, rec.Body.String())
		assert.Equal(t, 1, svc.calls)
	})

	t.Run("validation failure maps to 400", func(t *testing.T) {
		t.Parallel()

		engine := newNotificationRouter(&stubNotificationService{err: services.ErrNotificationValidation})
		rec := doJSON(t, engine, http.MethodPost, "/api/send-email", gin.H{"message": "hi"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"error"`)
	})

	t.Run("transport failure maps to 500", func(t *testing.T) {
		t.Parallel()

		engine := newNotificationRouter(&stubNotificationService{err: email.ErrSendFailed})
		rec := doJSON(t, engine, http.MethodPost, "/api/send-email", gin.H{
			"email":   "a@x.com",
			"message": "hi",
		})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("missing credentials map to 500", func(t *testing.T) {
		t.Parallel()

		engine := newNotificationRouter(&stubNotificationService{err: errors.Join(email.ErrNoCredentials)})
		rec := doJSON(t, engine, http.MethodPost, "/api/send-email", gin.H{
			"email":   "a@x.com",
			"message": "hi",
		})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
