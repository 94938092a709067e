package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-lens/internal/adapter/memory"
	"campaign-lens/internal/adapter/usecase"
	"campaign-lens/internal/core/parser"
)

func TestSeedUploads(t *testing.T) {
	uploads, err := SeedUploads()
	require.NoError(t, err)
	require.NotEmpty(t, uploads)

	for _, up := range uploads {
		c, stats := parser.Scan(string(up.Content), up.FileName)
		assert.True(t, stats.HasSummary, up.FileName)
		assert.NotEmpty(t, c.Offers, up.FileName)
		assert.NotEmpty(t, c.Daily, up.FileName)
	}
}

func TestSampleExport(t *testing.T) {
	uploads, err := SeedUploads()
	require.NoError(t, err)

	var found bool
	for _, up := range uploads {
		if up.FileName != "spring_snacks_push.csv" {
			continue
		}
		found = true
		c, stats := parser.Scan(string(up.Content), up.FileName)
		assert.Equal(t, "Spring Snacks Push", c.Name)
		assert.Equal(t, "Snack Brands Q2", c.Group)
		assert.Equal(t, 40000.0, c.Summary.Budget)
		assert.Equal(t, 12500.0, c.Summary.Cost)
		require.Len(t, c.Offers, 2)
		assert.True(t, c.Offers[0].IsAcquisitionTactic)
		assert.True(t, c.Offers[1].IsBrandBuyerTactic)
		assert.True(t, c.Offers[1].IsSpendThreshold)
		assert.Len(t, c.Daily, 29, "the all-zero day is excluded")
		assert.Equal(t, 1, stats.DroppedDailyRows)
	}
	assert.True(t, found)
}

func TestSeedOnlyWhenEmpty(t *testing.T) {
	ctx := context.Background()
	svc := usecase.NewCampaignUseCase(memory.NewCampaignRepository())

	require.NoError(t, Seed(ctx, svc))
	first, err := svc.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	require.NoError(t, Seed(ctx, svc))
	second, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, second, len(first))
}
