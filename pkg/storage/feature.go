package storage

import (
	"context"
	"converter/pkg/domain"
)

// FeatureRequestStorage persists feature requests and their notification state.
type FeatureRequestStorage interface {
	// StoreFeatureRequest inserts a request and returns it with generated fields.
	StoreFeatureRequest(ctx context.Context, request domain.FeatureRequest) (*domain.FeatureRequest, error)
	// FeatureRequestByID returns a request, or nil when it does not exist.
	FeatureRequestByID(ctx context.Context, ID domain.FeatureRequestID) (*domain.FeatureRequest, error)
	// MarkFeatureRequestNotified moves a pending request to NOTIFIED and records
	// the provider message id. It returns nil when the request is missing or
	// was already notified.
	MarkFeatureRequestNotified(ctx context.Context, ID domain.FeatureRequestID, messageID string) (*domain.FeatureRequest, error)
}
