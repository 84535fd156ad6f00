package notifier

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mailgun/mailgun-go/v4"
)

const (
	mailgunEUAPIBase = "https://api.eu.mailgun.net/v3"
	sendTimeout      = 30 * time.Second
)

// Mailgun sends emails via the Mailgun API.
type Mailgun struct {
	client *mailgun.MailgunImpl
}

// NewMailgun creates a Mailgun sender. region "eu" selects the EU endpoint
// unless apiBase is set.
func NewMailgun(apiKey, domain, region, apiBase string) (*Mailgun, error) {
	if apiKey == "" {
		return nil, errors.New("mailgun API key is required")
	}
	if domain == "" {
		return nil, errors.New("mailgun domain is required")
	}

	mg := mailgun.NewMailgun(domain, apiKey)
	switch {
	case apiBase != "":
		mg.SetAPIBase(apiBase)
	case region == "eu":
		mg.SetAPIBase(mailgunEUAPIBase)
	}

	return &Mailgun{client: mg}, nil
}

// Send sends msg via Mailgun.
func (p *Mailgun) Send(ctx context.Context, msg *Message) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}

	m := p.client.NewMessage(msg.From, msg.Subject, msg.Text, msg.To...)
	if msg.HTML != "" {
		m.SetHtml(msg.HTML)
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	_, id, err := p.client.Send(ctx, m)
	if err != nil {
		return "", classify(fmt.Errorf("%w: %w", ErrSendFailed, err), mailgunStatus(err))
	}

	return id, nil
}

// Name returns the provider name.
func (p *Mailgun) Name() string {
	return ProviderMailgun
}

func mailgunStatus(err error) int {
	var unexpected *mailgun.UnexpectedResponseError
	if errors.As(err, &unexpected) {
		return unexpected.Actual
	}

	return http.StatusOK
}
