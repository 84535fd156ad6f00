package v1handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"converter/pkg/domain"
	"converter/pkg/serrors"
)

func (s *testServer) token(t *testing.T, clientID domain.ClientID) string {
	t.Helper()

	return signJWTRS256(t, s.priv, clientID.String(), testNow, testNow.Add(time.Hour))
}

func TestHistory_List(t *testing.T) {
	s := newTestServer(t)
	clientID := domain.ClientID(uuid.New())
	entry := domain.HistoryEntry{
		ID:        domain.HistoryID(uuid.New()),
		ClientID:  clientID,
		Category:  "Length",
		FromValue: 1,
		FromUnit:  "m",
		ToValue:   3.28084,
		ToUnit:    "ft",
		CreatedAt: testNow,
	}

	s.svc.EXPECT().History(gomock.Any(), clientID, "2025-03-14T09:00:00Z", uint(5)).
		Return([]domain.HistoryEntry{entry}, "2025-03-14T08:00:00Z", nil)
	s.svc.EXPECT().History(gomock.Any(), clientID, "", uint(0)).
		Return(nil, "", nil)

	res, body := s.do(t, http.MethodGet, "/history?cursor=2025-03-14T09:00:00Z&limit=5", "", s.token(t, clientID))
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "2025-03-14T08:00:00Z", body["nextCursor"])

	items := body["items"].([]any)
	require.Len(t, items, 1)
	require.Equal(t, map[string]any{
		"id":        uuid.UUID(entry.ID).String(),
		"category":  "Length",
		"fromValue": float64(1),
		"fromUnit":  "m",
		"toValue":   3.28084,
		"toUnit":    "ft",
		"createdAt": "2025-03-14T09:26:53Z",
	}, items[0])

	res, body = s.do(t, http.MethodGet, "/history", "", s.token(t, clientID))
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Empty(t, body["items"])
	require.Nil(t, body["nextCursor"])
}

func TestHistory_ListErrors(t *testing.T) {
	s := newTestServer(t)
	clientID := domain.ClientID(uuid.New())

	res, body := s.do(t, http.MethodGet, "/history?limit=-1", "", s.token(t, clientID))
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	requireErrorBody(t, body, "BAD_REQUEST")

	s.svc.EXPECT().History(gomock.Any(), clientID, "yesterday", uint(0)).
		Return(nil, "", serrors.With(serrors.ErrBadRequest, "invalid cursor"))

	res, body = s.do(t, http.MethodGet, "/history?cursor=yesterday", "", s.token(t, clientID))
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	requireErrorBody(t, body, "BAD_REQUEST")
}

func TestHistory_Record(t *testing.T) {
	s := newTestServer(t)
	clientID := domain.ClientID(uuid.New())

	in := domain.HistoryEntry{Category: "Temperature", FromValue: 100, FromUnit: "°C", ToValue: 212, ToUnit: "°F"}
	stored := in
	stored.ID = domain.HistoryID(uuid.New())
	stored.ClientID = clientID
	stored.CreatedAt = testNow

	s.svc.EXPECT().RecordHistory(gomock.Any(), clientID, in).Return(&stored, nil)

	res, body := s.do(t, http.MethodPost, "/history",
		`{"category": "Temperature", "fromValue": 100, "fromUnit": "°C", "toValue": 212, "toUnit": "°F"}`,
		s.token(t, clientID))
	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.Equal(t, uuid.UUID(stored.ID).String(), body["id"])
	require.Equal(t, "°F", body["toUnit"])
}

func TestHistory_RecordRejected(t *testing.T) {
	s := newTestServer(t)
	clientID := domain.ClientID(uuid.New())

	s.svc.EXPECT().RecordHistory(gomock.Any(), clientID, gomock.Any()).
		Return(nil, serrors.With(serrors.ErrUnitNotFound, "unit %q not found in Length", "parsec"))

	res, body := s.do(t, http.MethodPost, "/history",
		`{"category": "Length", "fromValue": 1, "fromUnit": "parsec", "toValue": 2, "toUnit": "m"}`,
		s.token(t, clientID))
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	requireErrorBody(t, body, "UNIT_NOT_FOUND")

	res, body = s.do(t, http.MethodPost, "/history", `{"fromValue": "1"}`, s.token(t, clientID))
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	requireErrorBody(t, body, "BAD_REQUEST")
}

func TestHistory_Delete(t *testing.T) {
	s := newTestServer(t)
	clientID := domain.ClientID(uuid.New())
	id := uuid.New()
	missing := uuid.New()

	s.svc.EXPECT().DeleteHistory(gomock.Any(), clientID, domain.HistoryID(id)).Return(nil)
	s.svc.EXPECT().DeleteHistory(gomock.Any(), clientID, domain.HistoryID(missing)).
		Return(serrors.With(serrors.ErrNotFound, "history entry not found"))

	res, _ := s.do(t, http.MethodDelete, "/history/"+id.String(), "", s.token(t, clientID))
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	res, body := s.do(t, http.MethodDelete, "/history/"+missing.String(), "", s.token(t, clientID))
	require.Equal(t, http.StatusNotFound, res.StatusCode)
	requireErrorBody(t, body, "NOT_FOUND")

	res, body = s.do(t, http.MethodDelete, "/history/not-a-uuid", "", s.token(t, clientID))
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	requireErrorBody(t, body, "BAD_REQUEST")
}

func TestHistory_Clear(t *testing.T) {
	s := newTestServer(t)
	clientID := domain.ClientID(uuid.New())

	s.svc.EXPECT().ClearHistory(gomock.Any(), clientID).Return(int64(7), nil)

	res, body := s.do(t, http.MethodDelete, "/history", "", s.token(t, clientID))
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.InDelta(t, 7, body["deleted"], 0)
}
