package postgres

import (
	"context"
	"converter/pkg/domain"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	featureRequestsTable = "feature_requests"
)

func (p *PgSQL) StoreFeatureRequest(ctx context.Context, request domain.FeatureRequest) (*domain.FeatureRequest, error) {
	var row PgFeatureRequest
	row.FromDomain(request)

	var stored PgFeatureRequest
	if _, err := p.Builder.Insert(featureRequestsTable).
		Rows(row).
		Returning(&PgFeatureRequest{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store feature request into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) FeatureRequestByID(ctx context.Context, id domain.FeatureRequestID) (*domain.FeatureRequest, error) {
	var row PgFeatureRequest
	found, err := p.Builder.From(featureRequestsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch feature request by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// MarkFeatureRequestNotified updates pending requests only.
func (p *PgSQL) MarkFeatureRequestNotified(ctx context.Context,
	id domain.FeatureRequestID,
	messageID string) (*domain.FeatureRequest, error) {
	var row PgFeatureRequest
	found, err := p.Builder.Update(featureRequestsTable).
		Set(goqu.Record{
			"status":      string(domain.FeatureRequestNotified),
			"message_id":  messageID,
			"notified_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("status").Eq(string(domain.FeatureRequestPending)),
	).Returning(&PgFeatureRequest{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not mark feature request notified in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
