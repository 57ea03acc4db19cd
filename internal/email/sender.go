package email

import (
	"context"
	"errors"
)

var (
	// ErrInvalidConfig is returned when a sender is constructed with incomplete configuration.
	ErrInvalidConfig = errors.New("invalid email sender configuration")

	// ErrNoCredentials is returned by a disabled sender on every send attempt.
	ErrNoCredentials = errors.New("email transport credentials not configured")

	// ErrSendFailed wraps any failure reported by the underlying email provider.
	ErrSendFailed = errors.New("failed to send email")
)

// Message is one outbound transactional email.
type Message struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Sender delivers a single email message and returns the provider-assigned
// message identifier. Implementations must not retry.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// disabledSender is the stand-in used when the process starts without mail
// credentials: non-email endpoints keep working, each send fails cleanly.
type disabledSender struct{}

// NewDisabledSender returns a Sender whose Send always fails with ErrNoCredentials.
func NewDisabledSender() Sender {
	return disabledSender{}
}

func (disabledSender) Send(ctx context.Context, msg Message) (string, error) {
	return "", ErrNoCredentials
}
