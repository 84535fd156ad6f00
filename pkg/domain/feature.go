package domain

import (
	"time"

	"github.com/google/uuid"
)

// FeatureRequestID uniquely identifies a feature request.
type FeatureRequestID uuid.UUID

// FeatureRequestStatus is the notification state of a feature request.
type FeatureRequestStatus string

const (
	// FeatureRequestPending means the notification email has not been sent yet.
	FeatureRequestPending FeatureRequestStatus = "PENDING"
	// FeatureRequestNotified means the notification email was accepted by the provider.
	FeatureRequestNotified FeatureRequestStatus = "NOTIFIED"
)

// FeatureRequest asks for a category or unit pair the catalog does not
// support yet. Every request results in one email to a fixed recipient.
type FeatureRequest struct {
	ID              FeatureRequestID     `json:"id"`
	Category        string               `json:"category"`
	FromUnit        string               `json:"fromUnit"`
	ToUnit          string               `json:"toUnit"`
	AdditionalNotes string               `json:"additionalNotes,omitempty"`
	Status          FeatureRequestStatus `json:"status"`
	// MessageID is the provider's id for the sent email.
	MessageID  string    `json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
	NotifiedAt time.Time `json:"-"`
}
