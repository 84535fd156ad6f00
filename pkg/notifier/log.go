package notifier

import (
	"context"

	"converter/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Log writes messages to the context logger instead of sending them. It is
// meant for development environments.
type Log struct{}

// NewLog creates a Log sender.
func NewLog() *Log {
	return &Log{}
}

// Send logs msg and returns a random message id.
func (p *Log) Send(ctx context.Context, msg *Message) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}

	id := uuid.NewString()
	logger.Info(ctx, "email",
		zap.String("messageId", id),
		zap.String("from", msg.From),
		zap.Strings("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("text", msg.Text),
	)

	return id, nil
}

// Name returns the provider name.
func (p *Log) Name() string {
	return ProviderLog
}
