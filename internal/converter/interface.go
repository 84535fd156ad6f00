package converter

import (
	"context"
	"converter/pkg/domain"
)

//go:generate mockgen -package mockconverter -source=interface.go -destination=mock/mockconverter.go *
type Service interface {
	Categories() []domain.Category
	Category(name string) (domain.Category, error)
	Evaluate(ctx context.Context, req EvaluateRequest) Evaluation
	FormatValue(ctx context.Context, req FormatRequest) FormatEvaluation

	RecordHistory(ctx context.Context, clientID domain.ClientID, entry domain.HistoryEntry) (*domain.HistoryEntry, error)
	History(ctx context.Context,
		clientID domain.ClientID,
		cursor string,
		limit uint) ([]domain.HistoryEntry, string, error)
	DeleteHistory(ctx context.Context, clientID domain.ClientID, ID domain.HistoryID) error
	ClearHistory(ctx context.Context, clientID domain.ClientID) (int64, error)

	AddFavorite(ctx context.Context, clientID domain.ClientID, favorite domain.Favorite) (*domain.Favorite, error)
	Favorites(ctx context.Context, clientID domain.ClientID) ([]domain.Favorite, error)
	RemoveFavorite(ctx context.Context, clientID domain.ClientID, ID domain.FavoriteID) error

	RequestFeature(ctx context.Context, req FeatureRequestInput) (*domain.FeatureRequest, error)
}
