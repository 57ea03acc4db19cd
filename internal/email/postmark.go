package email

import (
	"context"
	"fmt"

	"github.com/mrz1836/postmark"
)

type postmarkSender struct {
	client *postmark.Client
	from   string
}

// NewPostmarkSender creates a Postmark-backed Sender. Both tokens and the
// sender address are required; callers that cannot provide them should use
// NewDisabledSender instead.
func NewPostmarkSender(serverToken, accountToken, from string) (Sender, error) {
	if serverToken == "" {
		return nil, fmt.Errorf("%w: server token is required", ErrInvalidConfig)
	}
	if accountToken == "" {
		return nil, fmt.Errorf("%w: account token is required", ErrInvalidConfig)
	}
	if from == "" {
		return nil, fmt.Errorf("%w: sender address is required", ErrInvalidConfig)
	}

	return &postmarkSender{
		client: postmark.NewClient(serverToken, accountToken),
		from:   from,
	}, nil
}

// Send delivers one email through Postmark's transactional API and returns
// the Postmark message ID. A provider-side rejection (non-zero error code)
// is treated the same as a network failure.
func (s *postmarkSender) Send(ctx context.Context, msg Message) (string, error) {
	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:     s.from,
		To:       msg.To,
		Subject:  msg.Subject,
		TextBody: msg.TextBody,
		HTMLBody: msg.HTMLBody,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	if resp.ErrorCode > 0 {
		return "", fmt.Errorf("%w: postmark error %d: %s", ErrSendFailed, resp.ErrorCode, resp.Message)
	}
	return resp.MessageID, nil
}
