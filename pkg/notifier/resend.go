package notifier

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v2"
)

// Resend sends emails via the Resend API.
type Resend struct {
	client *resend.Client
}

// NewResend creates a Resend sender. baseURL is optional.
func NewResend(apiKey, baseURL string) (*Resend, error) {
	if apiKey == "" {
		return nil, errors.New("resend API key is required")
	}

	client := resend.NewClient(apiKey)
	if baseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("could not parse resend base url: %w", err)
		}
		client.BaseURL = u
	}

	return &Resend{client: client}, nil
}

// Send sends msg via Resend.
func (p *Resend) Send(ctx context.Context, msg *Message) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	sent, err := p.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Text:    msg.Text,
		Html:    msg.HTML,
	})
	if err != nil {
		return "", classify(fmt.Errorf("%w: %w", ErrSendFailed, err), resendStatus(err))
	}

	return sent.Id, nil
}

// Name returns the provider name.
func (p *Resend) Name() string {
	return ProviderResend
}

// resendStatus recovers the HTTP status from the client's error text, which
// is the only place resend-go reports it.
func resendStatus(err error) int {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "429") || strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "rate_limit") || strings.Contains(msg, "too many requests") {
		return http.StatusTooManyRequests
	}

	return 0
}
