package worker

import (
	"context"
	"converter/internal/converter"
	"converter/pkg/domain"
	"converter/pkg/logger"
	"converter/pkg/notifier"
	"converter/pkg/serrors"
	"converter/pkg/storage"
	"errors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// DefaultRateLimitBackoff is used when FeatureRequestOptions leaves it unset.
const DefaultRateLimitBackoff = time.Minute

// FeatureRequestOptions configure the notification email.
type FeatureRequestOptions struct {
	From      string
	Recipient string
	// RateLimitBackoff is how long a job is snoozed after the provider
	// reported a rate limit.
	RateLimitBackoff time.Duration
}

// FeatureRequestWorker emails one feature request per job and marks it
// notified.
//
// A request that no longer exists or was already notified cancels the job.
// Provider rate limits snooze the job. Invalid messages are cancelled since
// retrying cannot fix them. Any other error is returned so River retries
// until MaxAttempts.
type FeatureRequestWorker struct {
	river.WorkerDefaults[converter.FeatureRequestJobArgs]

	storage storage.FeatureRequestStorage
	sender  notifier.Sender
	options FeatureRequestOptions
}

// NewFeatureRequestWorker constructs a FeatureRequestWorker.
func NewFeatureRequestWorker(storage storage.FeatureRequestStorage,
	sender notifier.Sender,
	options FeatureRequestOptions) *FeatureRequestWorker {
	if options.RateLimitBackoff <= 0 {
		options.RateLimitBackoff = DefaultRateLimitBackoff
	}

	return &FeatureRequestWorker{
		storage: storage,
		sender:  sender,
		options: options,
	}
}

// Work sends the notification for job.Args.RequestID.
func (w *FeatureRequestWorker) Work(ctx context.Context, job *river.Job[converter.FeatureRequestJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("featureRequestID", job.Args.RequestID.String()),
		zap.String("provider", w.sender.Name()))

	req, err := w.storage.FeatureRequestByID(ctx, domain.FeatureRequestID(job.Args.RequestID))
	if err != nil {
		return fmt.Errorf("could not get feature request: %w", err)
	}
	if req == nil {
		return river.JobCancel(serrors.With(serrors.ErrNotFound, "feature request not found")) //nolint: wrapcheck
	}
	if req.Status == domain.FeatureRequestNotified {
		return river.JobCancel(serrors.With(serrors.ErrConflict, "feature request already notified")) //nolint: wrapcheck
	}

	msg := notifier.FeatureRequestMessage(w.options.From, w.options.Recipient, *req)
	messageID, err := w.sender.Send(ctx, msg)
	if err != nil {
		logger.Error(ctx, "could not send feature request email", zap.Error(err))

		switch {
		case errors.Is(err, notifier.ErrInvalidMessage):
			return river.JobCancel(err) //nolint: wrapcheck
		case errors.Is(err, serrors.ErrRateLimited):
			return river.JobSnooze(w.options.RateLimitBackoff) //nolint: wrapcheck
		default:
			return fmt.Errorf("could not send feature request email: %w", err)
		}
	}

	if _, err := w.storage.MarkFeatureRequestNotified(ctx, req.ID, messageID); err != nil {
		return fmt.Errorf("could not mark feature request notified: %w", err)
	}

	logger.Info(ctx, "feature request email sent", zap.String("messageID", messageID))

	return nil
}
