// Package memory is an in-process CampaignRepository, used when no
// database is configured and in tests.
package memory

import (
	"context"
	"slices"
	"sync"

	"campaign-lens/internal/core/domain"
	"campaign-lens/internal/core/port"
)

// CampaignRepository keeps campaigns in a map and remembers first-upload
// order. Re-saving a SourceID replaces the campaign in place.
type CampaignRepository struct {
	mu        sync.RWMutex
	campaigns map[string]domain.Campaign
	order     []string
}

func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{campaigns: make(map[string]domain.Campaign)}
}

func (r *CampaignRepository) Save(_ context.Context, c domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.campaigns[c.SourceID]; !ok {
		r.order = append(r.order, c.SourceID)
	}
	r.campaigns[c.SourceID] = c
	return nil
}

func (r *CampaignRepository) Get(_ context.Context, sourceID string) (*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.campaigns[sourceID]
	if !ok {
		return nil, port.ErrCampaignNotFound
	}
	return &c, nil
}

func (r *CampaignRepository) List(_ context.Context) ([]domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Campaign, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.campaigns[id])
	}
	return out, nil
}

func (r *CampaignRepository) Delete(_ context.Context, sourceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.campaigns[sourceID]; !ok {
		return port.ErrCampaignNotFound
	}
	delete(r.campaigns, sourceID)
	r.order = slices.DeleteFunc(r.order, func(id string) bool { return id == sourceID })
	return nil
}
