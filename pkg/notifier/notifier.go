// Package notifier sends transactional emails through a pluggable provider.
//
//go:generate mockgen -package mocknotifier -source=notifier.go -destination=mock/mocknotifier.go
package notifier

import (
	"context"
	"errors"
	"fmt"
)

// Provider names accepted by New.
const (
	ProviderMailgun = "mailgun"
	ProviderResend  = "resend"
	ProviderLog     = "log"
)

var (
	// ErrSendFailed wraps every provider failure.
	ErrSendFailed = errors.New("failed to send email")
	// ErrInvalidMessage is returned for messages missing a recipient, subject or body.
	ErrInvalidMessage = errors.New("invalid email message")
)

// Sender delivers a message and returns the provider's message id.
type Sender interface {
	Send(ctx context.Context, msg *Message) (messageID string, err error)
	Name() string
}

// Message is a provider-agnostic email message.
type Message struct {
	From    string
	To      []string
	Subject string
	Text    string
	// HTML is optional.
	HTML string
}

// Validate checks the fields every provider requires.
func (m *Message) Validate() error {
	switch {
	case m == nil:
		return fmt.Errorf("%w: message cannot be nil", ErrInvalidMessage)
	case m.From == "":
		return fmt.Errorf("%w: from address is required", ErrInvalidMessage)
	case len(m.To) == 0:
		return fmt.Errorf("%w: at least one recipient is required", ErrInvalidMessage)
	case m.Subject == "":
		return fmt.Errorf("%w: subject is required", ErrInvalidMessage)
	case m.Text == "" && m.HTML == "":
		return fmt.Errorf("%w: text or HTML body is required", ErrInvalidMessage)
	}

	return nil
}

// Options selects and configures a provider.
type Options struct {
	Provider string

	MailgunAPIKey string
	MailgunDomain string
	// MailgunRegion is "us" or "eu".
	MailgunRegion string
	// MailgunAPIBase overrides the API base url derived from the region.
	MailgunAPIBase string

	ResendAPIKey string
	// ResendBaseURL overrides the Resend API url.
	ResendBaseURL string
}

// New returns the Sender configured by opts.
func New(opts Options) (Sender, error) {
	switch opts.Provider {
	case ProviderMailgun:
		return NewMailgun(opts.MailgunAPIKey, opts.MailgunDomain, opts.MailgunRegion, opts.MailgunAPIBase)
	case ProviderResend:
		return NewResend(opts.ResendAPIKey, opts.ResendBaseURL)
	case ProviderLog, "":
		return NewLog(), nil
	default:
		return nil, fmt.Errorf("unsupported email provider: %s", opts.Provider)
	}
}
