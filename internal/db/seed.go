package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"

	"campaign-lens/internal/core/port"
)

//go:embed seed/*.csv
var seedFS embed.FS

// SeedUploads returns the bundled sample exports as uploads.
func SeedUploads() ([]port.Upload, error) {
	entries, err := fs.ReadDir(seedFS, "seed")
	if err != nil {
		return nil, err
	}
	uploads := make([]port.Upload, 0, len(entries))
	for _, e := range entries {
		content, err := fs.ReadFile(seedFS, path.Join("seed", e.Name()))
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, port.Upload{FileName: e.Name(), Content: content})
	}
	return uploads, nil
}

// Seed ingests the sample exports through svc when the store is empty.
func Seed(ctx context.Context, svc port.CampaignUseCase) error {
	existing, err := svc.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	uploads, err := SeedUploads()
	if err != nil {
		return err
	}
	for _, res := range svc.Ingest(ctx, uploads) {
		if res.Err != nil {
			return fmt.Errorf("seed %s: %w", res.FileName, res.Err)
		}
	}
	return nil
}
