package storage

import (
	"context"
	"converter/pkg/domain"
)

// FavoriteStorage persists the unit pairs a client pinned.
type FavoriteStorage interface {
	// StoreFavorite inserts a favourite. A pair the client already pinned is
	// not duplicated; the existing row is returned instead.
	StoreFavorite(ctx context.Context, favorite domain.Favorite) (*domain.Favorite, error)
	// ClientFavorites returns every favourite of a client, oldest first.
	ClientFavorites(ctx context.Context, clientID domain.ClientID) ([]domain.Favorite, error)
	// DeleteFavorite removes a favourite of a client. It reports whether a row
	// was deleted.
	DeleteFavorite(ctx context.Context, clientID domain.ClientID, ID domain.FavoriteID) (bool, error)
}
