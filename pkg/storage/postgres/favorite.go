package postgres

import (
	"context"
	"converter/pkg/domain"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	favoritesTable = "favorites"
)

// StoreFavorite inserts a favourite, or returns the existing row when the
// client already pinned the same category and unit pair.
func (p *PgSQL) StoreFavorite(ctx context.Context, favorite domain.Favorite) (*domain.Favorite, error) {
	var row PgFavorite
	row.FromDomain(favorite)

	var stored PgFavorite
	found, err := p.Builder.Insert(favoritesTable).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Returning(&PgFavorite{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not store favorite into pg: %w", err)
	}
	if found {
		return stored.ToDomain(), nil
	}

	found, err = p.Builder.From(favoritesTable).
		Where(
			goqu.I("client_id").Eq(row.ClientID),
			goqu.I("category").Eq(row.Category),
			goqu.I("from_unit").Eq(row.FromUnit),
			goqu.I("to_unit").Eq(row.ToUnit),
		).Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not fetch existing favorite from pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("favorite %s %s->%s vanished after conflict", row.Category, row.FromUnit, row.ToUnit)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) ClientFavorites(ctx context.Context, clientID domain.ClientID) ([]domain.Favorite, error) {
	var rows []PgFavorite
	if err := p.Builder.From(favoritesTable).
		Where(goqu.I("client_id").Eq(uuid.UUID(clientID))).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch client favorites from pg: %w", err)
	}

	out := make([]domain.Favorite, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out, nil
}

func (p *PgSQL) DeleteFavorite(ctx context.Context, clientID domain.ClientID, id domain.FavoriteID) (bool, error) {
	res, err := p.Builder.Delete(favoritesTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("client_id").Eq(uuid.UUID(clientID)),
		).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete favorite in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get deleted favorite count: %w", err)
	}

	return n > 0, nil
}
