package converter

import (
	"context"
	"converter/internal/config"
	"converter/pkg/catalog"
	"converter/pkg/domain"
	"converter/pkg/logger"
	"converter/pkg/numfmt"
	"converter/pkg/serrors"
	"converter/pkg/storage"
	"fmt"
	"math"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

const (
	// DefaultPageSize is used when History is called without a limit.
	DefaultPageSize = 20
	// MaxPageSize caps History page sizes.
	MaxPageSize = 100
)

// Options configure history retention and notification jobs.
type Options struct {
	// HistoryLimit is the number of history entries kept per client. Zero
	// disables pruning.
	HistoryLimit uint
	// MaxAttempts is the number of attempts the worker makes to send a
	// feature request notification.
	MaxAttempts int
	// UniqueJobPeriod is the window in which a second job for the same request
	// is treated as a duplicate.
	UniqueJobPeriod time.Duration
	// Formatter renders values. It defaults to English.
	Formatter *numfmt.Formatter
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) (Options, error) {
	f, err := numfmt.Parse(cfg.Converter.Locale)
	if err != nil {
		return Options{}, fmt.Errorf("could not parse locale %q: %w", cfg.Converter.Locale, err)
	}

	return Options{
		HistoryLimit:    cfg.Converter.HistoryLimit,
		MaxAttempts:     cfg.Worker.MaxAttempts,
		UniqueJobPeriod: cfg.Worker.UniquePeriod,
		Formatter:       f,
	}, nil
}

type service struct {
	options Options
	storage storage.Storage
	clock   clockwork.Clock
}

// New creates a Service backed by storage. A nil clock uses the real clock.
func New(storage storage.Storage, clock clockwork.Clock, options Options) Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if options.Formatter == nil {
		f, _ := numfmt.Parse("en")
		options.Formatter = f
	}

	return &service{
		options: options,
		storage: storage,
		clock:   clock,
	}
}

func (s *service) Categories() []domain.Category {
	return catalog.Categories()
}

func (s *service) Category(name string) (domain.Category, error) {
	return catalog.Category(name)
}

func (s *service) Evaluate(ctx context.Context, req EvaluateRequest) Evaluation {
	ev := Evaluate(s.options.Formatter, req)
	if ev.Err != nil && logger.IsDebug(ctx) {
		logger.Debug(ctx, "conversion failed",
			zap.String("category", req.Category),
			zap.String("from", req.From),
			zap.String("to", req.To),
			zap.Error(ev.Err))
	}

	return ev
}

func (s *service) FormatValue(_ context.Context, req FormatRequest) FormatEvaluation {
	return FormatValue(s.options.Formatter, req)
}

// RecordHistory stores a conversion the client kept and prunes the client's
// history down to HistoryLimit in the same transaction.
func (s *service) RecordHistory(ctx context.Context,
	clientID domain.ClientID,
	entry domain.HistoryEntry) (*domain.HistoryEntry, error) {
	c, err := catalog.Category(entry.Category)
	if err != nil {
		return nil, err
	}
	if _, ok := c.Unit(entry.FromUnit); !ok {
		return nil, serrors.With(serrors.ErrUnitNotFound, "unit %q not found in %s", entry.FromUnit, c.Name)
	}
	if _, ok := c.Unit(entry.ToUnit); !ok {
		return nil, serrors.With(serrors.ErrUnitNotFound, "unit %q not found in %s", entry.ToUnit, c.Name)
	}
	if !finite(entry.FromValue) || !finite(entry.ToValue) {
		return nil, serrors.With(serrors.ErrInvalidInput, "history values must be finite numbers")
	}

	entry.ClientID = clientID
	entry.Category = c.Name
	entry.CreatedAt = s.clock.Now().UTC()

	var stored *domain.HistoryEntry
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err = tx.StoreHistoryEntry(ctx, entry)
		if err != nil {
			return fmt.Errorf("could not store history entry: %w", err)
		}

		if s.options.HistoryLimit > 0 {
			pruned, err := tx.PruneHistory(ctx, clientID, s.options.HistoryLimit)
			if err != nil {
				return fmt.Errorf("could not prune history: %w", err)
			}
			if pruned > 0 {
				logger.Debug(ctx, "pruned history", zap.Int64("count", pruned))
			}
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not record history: %w", err)
	}

	return stored, nil
}

// History returns a page of the client's history, newest first. The cursor
// is the RFC3339 timestamp returned with the previous page.
func (s *service) History(ctx context.Context,
	clientID domain.ClientID,
	cursor string,
	limit uint) ([]domain.HistoryEntry, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339Nano, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	switch {
	case limit == 0:
		limit = DefaultPageSize
	case limit > MaxPageSize:
		limit = MaxPageSize
	}

	page, err := s.storage.ClientHistory(ctx, clientID, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get history: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.UTC().Format(time.RFC3339Nano)
	}

	return page.Entries, next, nil
}

func (s *service) DeleteHistory(ctx context.Context, clientID domain.ClientID, id domain.HistoryID) error {
	deleted, err := s.storage.DeleteHistoryEntry(ctx, clientID, id)
	if err != nil {
		return fmt.Errorf("could not delete history entry: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "history entry not found")
	}

	return nil
}

func (s *service) ClearHistory(ctx context.Context, clientID domain.ClientID) (int64, error) {
	n, err := s.storage.ClearHistory(ctx, clientID)
	if err != nil {
		return 0, fmt.Errorf("could not clear history: %w", err)
	}

	return n, nil
}

// AddFavorite pins a unit pair. Pinning the same pair twice returns the
// existing favourite.
func (s *service) AddFavorite(ctx context.Context,
	clientID domain.ClientID,
	favorite domain.Favorite) (*domain.Favorite, error) {
	c, err := catalog.Category(favorite.Category)
	if err != nil {
		return nil, err
	}
	if _, ok := c.Unit(favorite.FromUnit); !ok {
		return nil, serrors.With(serrors.ErrUnitNotFound, "unit %q not found in %s", favorite.FromUnit, c.Name)
	}
	if _, ok := c.Unit(favorite.ToUnit); !ok {
		return nil, serrors.With(serrors.ErrUnitNotFound, "unit %q not found in %s", favorite.ToUnit, c.Name)
	}

	favorite.ClientID = clientID
	favorite.Category = c.Name
	favorite.CreatedAt = s.clock.Now().UTC()

	stored, err := s.storage.StoreFavorite(ctx, favorite)
	if err != nil {
		return nil, fmt.Errorf("could not add favorite: %w", err)
	}

	return stored, nil
}

func (s *service) Favorites(ctx context.Context, clientID domain.ClientID) ([]domain.Favorite, error) {
	favs, err := s.storage.ClientFavorites(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("could not get favorites: %w", err)
	}

	return favs, nil
}

func (s *service) RemoveFavorite(ctx context.Context, clientID domain.ClientID, id domain.FavoriteID) error {
	deleted, err := s.storage.DeleteFavorite(ctx, clientID, id)
	if err != nil {
		return fmt.Errorf("could not remove favorite: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "favorite not found")
	}

	return nil
}

// RequestFeature stores a feature request and enqueues its notification job
// in the same transaction.
func (s *service) RequestFeature(ctx context.Context, in FeatureRequestInput) (*domain.FeatureRequest, error) {
	req, err := in.Normalize()
	if err != nil {
		return nil, err
	}
	req.Status = domain.FeatureRequestPending
	req.CreatedAt = s.clock.Now().UTC()

	var stored *domain.FeatureRequest
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err = tx.StoreFeatureRequest(ctx, req)
		if err != nil {
			return fmt.Errorf("could not store feature request: %w", err)
		}

		if _, err := tx.AddJob(ctx,
			NewFeatureRequestJobArgs(stored.ID, s.options.MaxAttempts, s.options.UniqueJobPeriod),
			nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not request feature: %w", err)
	}

	logger.Info(ctx, "feature requested",
		zap.String("category", stored.Category),
		zap.String("from", stored.FromUnit),
		zap.String("to", stored.ToUnit))

	return stored, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
