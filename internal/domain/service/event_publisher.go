package service

import (
	"context"
)

// MerchantOnboardedEvent is emitted once a merchant has been created and indexed.
type MerchantOnboardedEvent struct {
	RequestID  string   `json:"request_id,omitempty"` // For distributed tracing
	EventID    string   `json:"event_id"`
	MerchantID string   `json:"merchant_id"`
	Name       string   `json:"name"`
	Email      string   `json:"email,omitempty"`
	Pincodes   []string `json:"pincodes"`
	Source     string   `json:"source"` // single, bulk or file
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMerchantOnboarded publishes an onboarding event for async processing
	PublishMerchantOnboarded(ctx context.Context, event *MerchantOnboardedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
