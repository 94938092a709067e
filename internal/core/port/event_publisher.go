package port

import (
	"context"
	"time"
)

// Campaign lifecycle event types.
const (
	EventCampaignIngested = "campaign.ingested"
	EventCampaignRemoved  = "campaign.removed"
)

// CampaignEvent announces a change to the stored campaign set.
type CampaignEvent struct {
	Type       string    `json:"type"`
	BatchID    string    `json:"batch_id,omitempty"`
	SourceID   string    `json:"source_id"`
	Name       string    `json:"name,omitempty"`
	Offers     int       `json:"offers"`
	DailyRows  int       `json:"daily_rows"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher delivers campaign events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, e CampaignEvent) error
}
