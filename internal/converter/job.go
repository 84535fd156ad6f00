package converter

import (
	"converter/pkg/domain"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// FeatureRequestJobArgs asks the worker to email one feature request.
type FeatureRequestJobArgs struct {
	RequestID uuid.UUID `json:"requestId" river:"unique"`

	maxAttempts     int
	uniqueJobPeriod time.Duration
}

// NewFeatureRequestJobArgs returns the job for request id.
func NewFeatureRequestJobArgs(id domain.FeatureRequestID, maxAttempts int, uniquePeriod time.Duration) FeatureRequestJobArgs {
	return FeatureRequestJobArgs{
		RequestID:       uuid.UUID(id),
		maxAttempts:     maxAttempts,
		uniqueJobPeriod: uniquePeriod,
	}
}

// Kind returns the River job kind the notification worker is registered for.
func (args FeatureRequestJobArgs) Kind() string { return "NotifyFeatureRequestJob" }

// InsertOpts limits retries and keeps a single live job per request.
func (args FeatureRequestJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
