package postgres

import (
	"converter/pkg/domain"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type PgHistoryEntry struct {
	ID       uuid.UUID `db:"id"        goqu:"skipinsert"`
	ClientID uuid.UUID `db:"client_id"`

	Category  string  `db:"category"`
	FromValue float64 `db:"from_value"`
	FromUnit  string  `db:"from_unit"`
	ToValue   float64 `db:"to_value"`
	ToUnit    string  `db:"to_unit"`

	CreatedAt time.Time `db:"created_at"`
}

func (p *PgHistoryEntry) ToDomain() *domain.HistoryEntry {
	return &domain.HistoryEntry{
		ID:        domain.HistoryID(p.ID),
		ClientID:  domain.ClientID(p.ClientID),
		Category:  p.Category,
		FromValue: p.FromValue,
		FromUnit:  p.FromUnit,
		ToValue:   p.ToValue,
		ToUnit:    p.ToUnit,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgHistoryEntry) FromDomain(entry domain.HistoryEntry) {
	*p = PgHistoryEntry{
		ID:        uuid.UUID(entry.ID),
		ClientID:  uuid.UUID(entry.ClientID),
		Category:  entry.Category,
		FromValue: entry.FromValue,
		FromUnit:  entry.FromUnit,
		ToValue:   entry.ToValue,
		ToUnit:    entry.ToUnit,
		CreatedAt: createdAt(entry.CreatedAt),
	}
}

func pgHistoryToDomain(rows []PgHistoryEntry) []domain.HistoryEntry {
	out := make([]domain.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row.ToDomain())
	}

	return out
}

type PgFavorite struct {
	ID       uuid.UUID `db:"id"        goqu:"skipinsert"`
	ClientID uuid.UUID `db:"client_id"`

	Category string `db:"category"`
	FromUnit string `db:"from_unit"`
	ToUnit   string `db:"to_unit"`

	CreatedAt time.Time `db:"created_at"`
}

func (p *PgFavorite) ToDomain() *domain.Favorite {
	return &domain.Favorite{
		ID:        domain.FavoriteID(p.ID),
		ClientID:  domain.ClientID(p.ClientID),
		Category:  p.Category,
		FromUnit:  p.FromUnit,
		ToUnit:    p.ToUnit,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgFavorite) FromDomain(favorite domain.Favorite) {
	*p = PgFavorite{
		ID:        uuid.UUID(favorite.ID),
		ClientID:  uuid.UUID(favorite.ClientID),
		Category:  favorite.Category,
		FromUnit:  favorite.FromUnit,
		ToUnit:    favorite.ToUnit,
		CreatedAt: createdAt(favorite.CreatedAt),
	}
}

type PgFeatureRequest struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Category        string         `db:"category"`
	FromUnit        string         `db:"from_unit"`
	ToUnit          string         `db:"to_unit"`
	AdditionalNotes sql.NullString `db:"additional_notes"`

	Status    string         `db:"status"`
	MessageID sql.NullString `db:"message_id" goqu:"skipinsert"`

	CreatedAt  time.Time    `db:"created_at"`
	NotifiedAt sql.NullTime `db:"notified_at" goqu:"skipinsert"`
}

func (p *PgFeatureRequest) ToDomain() *domain.FeatureRequest {
	return &domain.FeatureRequest{
		ID:              domain.FeatureRequestID(p.ID),
		Category:        p.Category,
		FromUnit:        p.FromUnit,
		ToUnit:          p.ToUnit,
		AdditionalNotes: p.AdditionalNotes.String,
		Status:          domain.FeatureRequestStatus(p.Status),
		MessageID:       p.MessageID.String,
		CreatedAt:       p.CreatedAt,
		NotifiedAt:      p.NotifiedAt.Time,
	}
}

func (p *PgFeatureRequest) FromDomain(request domain.FeatureRequest) {
	status := request.Status
	if status == "" {
		status = domain.FeatureRequestPending
	}

	*p = PgFeatureRequest{
		ID:       uuid.UUID(request.ID),
		Category: request.Category,
		FromUnit: request.FromUnit,
		ToUnit:   request.ToUnit,
		AdditionalNotes: sql.NullString{
			String: request.AdditionalNotes,
			Valid:  request.AdditionalNotes != "",
		},
		Status:    string(status),
		CreatedAt: createdAt(request.CreatedAt),
	}
}

// createdAt falls back to the current time so rows never carry the zero time.
func createdAt(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}

	return t.UTC()
}
