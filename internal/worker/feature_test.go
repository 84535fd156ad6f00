package worker_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"converter/internal/converter"
	"converter/internal/worker"
	"converter/pkg/domain"
	"converter/pkg/logger"
	"converter/pkg/notifier"
	mocknotifier "converter/pkg/notifier/mock"
	"converter/pkg/serrors"
	mockstorage "converter/pkg/storage/mock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.TestEnvironment, "")
	m.Run()
}

func makeJob(id int64, requestID uuid.UUID) *river.Job[converter.FeatureRequestJobArgs] {
	return &river.Job[converter.FeatureRequestJobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   converter.FeatureRequestJobArgs{RequestID: requestID},
	}
}

func newTestWorker(t *testing.T) (*mockstorage.MockAllStorage, *mocknotifier.MockSender, *worker.FeatureRequestWorker) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockAllStorage(ctrl)
	sender := mocknotifier.NewMockSender(ctrl)
	sender.EXPECT().Name().Return("mock").AnyTimes()

	w := worker.NewFeatureRequestWorker(st, sender, worker.FeatureRequestOptions{
		From:             "noreply@example.com",
		Recipient:        "owner@example.com",
		RateLimitBackoff: 30 * time.Second,
	})

	return st, sender, w
}

func pendingRequest(id uuid.UUID) *domain.FeatureRequest {
	return &domain.FeatureRequest{
		ID:       domain.FeatureRequestID(id),
		Category: "Luminosity",
		FromUnit: "cd",
		ToUnit:   "lm",
		Status:   domain.FeatureRequestPending,
	}
}

func TestFeatureRequestWorker_Work_Success(t *testing.T) {
	st, sender, w := newTestWorker(t)
	id := uuid.New()
	req := pendingRequest(id)

	st.EXPECT().FeatureRequestByID(gomock.Any(), domain.FeatureRequestID(id)).Return(req, nil)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg *notifier.Message) (string, error) {
			require.Equal(t, "noreply@example.com", msg.From)
			require.Equal(t, []string{"owner@example.com"}, msg.To)
			require.Contains(t, msg.Subject, "Luminosity")

			return "msg-1", nil
		},
	)
	st.EXPECT().MarkFeatureRequestNotified(gomock.Any(), req.ID, "msg-1").Return(req, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, id)))
}

func TestFeatureRequestWorker_Work_MissingCancels(t *testing.T) {
	st, _, w := newTestWorker(t)
	id := uuid.New()

	st.EXPECT().FeatureRequestByID(gomock.Any(), domain.FeatureRequestID(id)).Return(nil, nil)

	err := w.Work(context.Background(), makeJob(2, id))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestFeatureRequestWorker_Work_AlreadyNotifiedCancels(t *testing.T) {
	st, _, w := newTestWorker(t)
	id := uuid.New()
	req := pendingRequest(id)
	req.Status = domain.FeatureRequestNotified

	st.EXPECT().FeatureRequestByID(gomock.Any(), domain.FeatureRequestID(id)).Return(req, nil)

	err := w.Work(context.Background(), makeJob(3, id))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestFeatureRequestWorker_Work_RateLimitedSnoozes(t *testing.T) {
	st, sender, w := newTestWorker(t)
	id := uuid.New()

	st.EXPECT().FeatureRequestByID(gomock.Any(), gomock.Any()).Return(pendingRequest(id), nil)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).
		Return("", serrors.Wrap(serrors.ErrRateLimited, notifier.ErrSendFailed, "slow down"))

	err := w.Work(context.Background(), makeJob(4, id))
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	require.Equal(t, 30*time.Second, snoozeErr.Duration)
}

func TestFeatureRequestWorker_Work_InvalidMessageCancels(t *testing.T) {
	st, sender, w := newTestWorker(t)
	id := uuid.New()

	st.EXPECT().FeatureRequestByID(gomock.Any(), gomock.Any()).Return(pendingRequest(id), nil)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).
		Return("", fmt.Errorf("%w: no recipient", notifier.ErrInvalidMessage))

	err := w.Work(context.Background(), makeJob(5, id))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestFeatureRequestWorker_Work_SendErrorRetries(t *testing.T) {
	st, sender, w := newTestWorker(t)
	id := uuid.New()
	boom := errors.New("boom")

	st.EXPECT().FeatureRequestByID(gomock.Any(), gomock.Any()).Return(pendingRequest(id), nil)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", boom)

	err := w.Work(context.Background(), makeJob(6, id))
	require.ErrorIs(t, err, boom)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr)
	var snoozeErr *river.JobSnoozeError
	require.NotErrorAs(t, err, &snoozeErr)
}

func TestFeatureRequestWorker_Work_StorageErrors(t *testing.T) {
	st, sender, w := newTestWorker(t)
	id := uuid.New()
	boom := errors.New("db down")

	st.EXPECT().FeatureRequestByID(gomock.Any(), gomock.Any()).Return(nil, boom)
	require.ErrorIs(t, w.Work(context.Background(), makeJob(7, id)), boom)

	st.EXPECT().FeatureRequestByID(gomock.Any(), gomock.Any()).Return(pendingRequest(id), nil)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return("msg-2", nil)
	st.EXPECT().MarkFeatureRequestNotified(gomock.Any(), gomock.Any(), "msg-2").Return(nil, boom)
	require.ErrorIs(t, w.Work(context.Background(), makeJob(8, id)), boom)
}
