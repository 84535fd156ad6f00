package postgres

import (
	"context"
	"converter/pkg/domain"
	"converter/pkg/storage"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	historyTable = "history"
)

func (p *PgSQL) StoreHistoryEntry(ctx context.Context, entry domain.HistoryEntry) (*domain.HistoryEntry, error) {
	var row PgHistoryEntry
	row.FromDomain(entry)

	var stored PgHistoryEntry
	if _, err := p.Builder.Insert(historyTable).
		Rows(row).
		Returning(&PgHistoryEntry{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store history entry into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

// PruneHistory keeps the newest keep entries of a client and deletes the rest.
func (p *PgSQL) PruneHistory(ctx context.Context, clientID domain.ClientID, keep uint) (int64, error) {
	newest := p.Builder.From(historyTable).
		Select("id").
		Where(goqu.I("client_id").Eq(uuid.UUID(clientID))).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(keep)

	res, err := p.Builder.Delete(historyTable).
		Where(
			goqu.I("client_id").Eq(uuid.UUID(clientID)),
			goqu.I("id").NotIn(newest),
		).Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not prune history in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get pruned history count: %w", err)
	}

	return n, nil
}

// ClientHistory returns entries of a client created before the optional cursor.
// Results are ordered by created_at DESC, id DESC.
func (p *PgSQL) ClientHistory(ctx context.Context,
	clientID domain.ClientID,
	cursor time.Time,
	limit uint) (storage.HistoryPage, error) {
	w := []goqu.Expression{
		goqu.I("client_id").Eq(uuid.UUID(clientID)),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	ds := p.Builder.From(historyTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1)

	var rows []PgHistoryEntry
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.HistoryPage{}, fmt.Errorf("could not fetch client history from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		nextCursor = &rows[len(rows)-1].CreatedAt
	}

	return storage.HistoryPage{
		Entries:    pgHistoryToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

func (p *PgSQL) DeleteHistoryEntry(ctx context.Context, clientID domain.ClientID, id domain.HistoryID) (bool, error) {
	res, err := p.Builder.Delete(historyTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("client_id").Eq(uuid.UUID(clientID)),
		).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete history entry in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get deleted history count: %w", err)
	}

	return n > 0, nil
}

func (p *PgSQL) ClearHistory(ctx context.Context, clientID domain.ClientID) (int64, error) {
	res, err := p.Builder.Delete(historyTable).
		Where(goqu.I("client_id").Eq(uuid.UUID(clientID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not clear history in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get cleared history count: %w", err)
	}

	return n, nil
}
