package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-lens/internal/core/domain"
	"campaign-lens/internal/core/port"
)

func TestRepositoryLifecycle(t *testing.T) {
	ctx := context.Background()
	r := NewCampaignRepository()

	require.NoError(t, r.Save(ctx, domain.Campaign{SourceID: "a.csv", Name: "A"}))
	require.NoError(t, r.Save(ctx, domain.Campaign{SourceID: "b.csv", Name: "B"}))
	require.NoError(t, r.Save(ctx, domain.Campaign{SourceID: "a.csv", Name: "A2"}))

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A2", list[0].Name, "re-upload replaces in place")
	assert.Equal(t, "B", list[1].Name)

	got, err := r.Get(ctx, "b.csv")
	require.NoError(t, err)
	assert.Equal(t, "B", got.Name)

	_, err = r.Get(ctx, "zzz.csv")
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)

	require.NoError(t, r.Delete(ctx, "a.csv"))
	assert.ErrorIs(t, r.Delete(ctx, "a.csv"), port.ErrCampaignNotFound)

	list, err = r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "b.csv", list[0].SourceID)
}

func TestRepositoryGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	r := NewCampaignRepository()
	require.NoError(t, r.Save(ctx, domain.Campaign{SourceID: "a.csv", Name: "A"}))

	got, err := r.Get(ctx, "a.csv")
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := r.Get(ctx, "a.csv")
	require.NoError(t, err)
	assert.Equal(t, "A", again.Name)
}

func TestRepositoryConcurrent(t *testing.T) {
	ctx := context.Background()
	r := NewCampaignRepository()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := fmt.Sprintf("%d.csv", i%10)
			_ = r.Save(ctx, domain.Campaign{SourceID: id})
			_, _ = r.Get(ctx, id)
			_, _ = r.List(ctx)
		}()
	}
	wg.Wait()

	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 10)
}
