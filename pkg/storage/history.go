package storage

import (
	"context"
	"converter/pkg/domain"
	"time"
)

// HistoryPage groups a page of history entries with an optional NextCursor
// used for pagination.
type HistoryPage struct {
	// Entries contains the current page, newest first.
	Entries []domain.HistoryEntry
	// NextCursor is the created_at of the last entry of the page. It is nil
	// when there is no next page.
	NextCursor *time.Time
}

// HistoryStorage persists the conversions a client chose to keep.
type HistoryStorage interface {
	// StoreHistoryEntry inserts an entry and returns it with generated fields.
	StoreHistoryEntry(ctx context.Context, entry domain.HistoryEntry) (*domain.HistoryEntry, error)
	// PruneHistory deletes all but the newest keep entries of a client and
	// returns how many rows were removed.
	PruneHistory(ctx context.Context, clientID domain.ClientID, keep uint) (int64, error)
	// ClientHistory returns a page of entries created before the optional
	// cursor, newest first.
	ClientHistory(ctx context.Context, clientID domain.ClientID, cursor time.Time, limit uint) (HistoryPage, error)
	// DeleteHistoryEntry removes one entry of a client. It reports whether a
	// row was deleted.
	DeleteHistoryEntry(ctx context.Context, clientID domain.ClientID, ID domain.HistoryID) (bool, error)
	// ClearHistory removes every entry of a client.
	ClearHistory(ctx context.Context, clientID domain.ClientID) (int64, error)
}
