package port

import (
	"context"
	"errors"

	"campaign-lens/internal/core/domain"
)

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrEmptyUpload      = errors.New("empty upload")
)

// CampaignRepository stores parsed campaigns keyed by their SourceID. It is
// an outbound port in hexagonal architecture. Implementations must be
// concurrency-safe.
type CampaignRepository interface {
	// Save stores c, replacing wholesale any campaign with the same SourceID.
	Save(ctx context.Context, c domain.Campaign) error
	// Get returns the campaign or ErrCampaignNotFound.
	Get(ctx context.Context, sourceID string) (*domain.Campaign, error)
	// List returns every campaign in upload order.
	List(ctx context.Context) ([]domain.Campaign, error)
	// Delete removes the campaign or returns ErrCampaignNotFound.
	Delete(ctx context.Context, sourceID string) error
}
