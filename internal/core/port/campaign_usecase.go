package port

import (
	"context"
	"time"

	"campaign-lens/internal/core/analytics"
	"campaign-lens/internal/core/domain"
	"campaign-lens/internal/core/parser"
	"campaign-lens/internal/core/report"
)

// CampaignUseCase is the primary port of the application: it ingests
// export files and serves the derived views of stored campaigns. Derived
// views return a nil result, not an error, when the campaign lacks the
// data they need.
type CampaignUseCase interface {
	// Ingest parses and stores every upload. Each file gets its own
	// result; one bad file never aborts the rest.
	Ingest(ctx context.Context, uploads []Upload) []IngestResult
	Get(ctx context.Context, sourceID string) (*domain.Campaign, error)
	List(ctx context.Context) ([]domain.Campaign, error)
	Remove(ctx context.Context, sourceID string) error

	Pacing(ctx context.Context, sourceID string, req PacingReq) (*domain.PacingMetrics, error)
	SpendCurve(ctx context.Context, sourceID string) ([]domain.SpendPoint, error)
	Promo(ctx context.Context, sourceID string, req PromoReq) (*domain.PromoAnalysis, error)
	Conversion(ctx context.Context, sourceID string) (*domain.ConversionMetrics, error)
	Summary(ctx context.Context, sourceID string, req SummaryReq) (*domain.PerformanceReport, error)
	Portfolio(ctx context.Context, req PortfolioReq) (*domain.Portfolio, error)
	Snapshot(ctx context.Context, sourceID string, req SnapshotReq) (*report.Snapshot, error)
}

// Upload is one raw export file.
type Upload struct {
	FileName string
	Content  []byte
}

// IngestResult is the outcome of one upload. Err is set when the file was
// not stored; Campaign is set otherwise.
type IngestResult struct {
	FileName string
	Campaign *domain.Campaign
	Stats    parser.Stats
	Err      error
}

// PacingReq overrides the target end date (zero = summary end date) and
// optionally prices an extension.
type PacingReq struct {
	EndDate   time.Time
	Extension *domain.Extension
}

// PromoReq is an inclusive promo window.
type PromoReq struct {
	Start time.Time
	End   time.Time
	Type  string
}

// SummaryReq bounds the performance summary by ISO dates. Empty bounds are
// open; an empty comparison range means no comparison.
type SummaryReq struct {
	From        string
	To          string
	CompareFrom string
	CompareTo   string
}

type PortfolioReq struct {
	Sort analytics.SortKey
	Desc bool
}

// SnapshotReq selects the analysis type and, optionally, a promo window to
// include.
type SnapshotReq struct {
	Type       report.AnalysisType
	PromoStart time.Time
	PromoEnd   time.Time
	PromoType  string
	Question   string
}
