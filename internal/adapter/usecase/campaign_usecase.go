package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"campaign-lens/internal/core/analytics"
	"campaign-lens/internal/core/domain"
	"campaign-lens/internal/core/parser"
	"campaign-lens/internal/core/port"
	"campaign-lens/internal/core/report"
	"campaign-lens/internal/metrics"
)

const tracerName = "campaign-lens/usecase"

// CampaignUseCase implements port.CampaignUseCase. It parses uploads,
// keeps the results in a repository and derives every analytic view on
// demand from the stored campaign and the injected clock.
type CampaignUseCase struct {
	repo    port.CampaignRepository
	events  port.EventPublisher
	metrics *metrics.Collector
	logger  *slog.Logger
	tracer  trace.Tracer

	now         func() time.Time
	concurrency int
}

// Option customises a CampaignUseCase.
type Option func(*CampaignUseCase)

// WithClock replaces time.Now as the reference date for pacing.
func WithClock(now func() time.Time) Option {
	return func(u *CampaignUseCase) { u.now = now }
}

// WithEvents publishes lifecycle events after each store change.
func WithEvents(p port.EventPublisher) Option {
	return func(u *CampaignUseCase) { u.events = p }
}

func WithMetrics(c *metrics.Collector) Option {
	return func(u *CampaignUseCase) { u.metrics = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(u *CampaignUseCase) { u.logger = l }
}

// WithConcurrency bounds how many files Ingest parses at once.
func WithConcurrency(n int) Option {
	return func(u *CampaignUseCase) {
		if n > 0 {
			u.concurrency = n
		}
	}
}

// NewCampaignUseCase creates a usecase over repo. Without options it uses
// the wall clock, parses four files at a time, logs nowhere and publishes
// no events.
func NewCampaignUseCase(repo port.CampaignRepository, opts ...Option) *CampaignUseCase {
	u := &CampaignUseCase{
		repo:        repo,
		logger:      slog.New(slog.DiscardHandler),
		tracer:      otel.Tracer(tracerName),
		now:         time.Now,
		concurrency: 4,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Ingest parses and stores every upload concurrently. Results keep the
// order of uploads.
func (u *CampaignUseCase) Ingest(ctx context.Context, uploads []port.Upload) []port.IngestResult {
	ctx, span := u.tracer.Start(ctx, "CampaignUseCase.Ingest",
		trace.WithAttributes(attribute.Int("files", len(uploads))))
	defer span.End()

	batch := uuid.NewString()
	results := make([]port.IngestResult, len(uploads))

	var g errgroup.Group
	g.SetLimit(u.concurrency)
	for i, up := range uploads {
		g.Go(func() error {
			results[i] = u.ingestOne(ctx, batch, up)
			return nil
		})
	}
	_ = g.Wait()

	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	span.SetAttributes(attribute.Int("failed", failed))
	u.logger.InfoContext(ctx, "ingest finished",
		slog.String("batch", batch),
		slog.Int("files", len(uploads)),
		slog.Int("failed", failed))

	if all, err := u.repo.List(ctx); err == nil {
		u.metrics.Stored(len(all))
	}
	return results
}

func (u *CampaignUseCase) ingestOne(ctx context.Context, batch string, up port.Upload) (res port.IngestResult) {
	res.FileName = up.FileName
	defer func() {
		if r := recover(); r != nil {
			res.Campaign = nil
			res.Err = fmt.Errorf("parse %s: %v", up.FileName, r)
		}
		switch {
		case res.Err == nil:
			u.metrics.File(metrics.OutcomeStored)
		case errors.Is(res.Err, port.ErrEmptyUpload):
			u.metrics.File(metrics.OutcomeEmpty)
		default:
			u.metrics.File(metrics.OutcomeFailed)
			u.logger.WarnContext(ctx, "ingest failed", slog.String("file", up.FileName), slog.Any("error", res.Err))
		}
	}()

	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}
	if up.FileName == "" || len(bytes.TrimSpace(up.Content)) == 0 {
		res.Err = fmt.Errorf("%q: %w", up.FileName, port.ErrEmptyUpload)
		return res
	}

	start := time.Now()
	c, stats := parser.Scan(string(up.Content), up.FileName)
	u.metrics.Parsed(time.Since(start), stats.OfferRows, stats.DailyRows, stats.DroppedOfferRows, stats.DroppedDailyRows)
	c.UploadedAt = u.now().UTC()
	res.Stats = stats

	if err := u.repo.Save(ctx, c); err != nil {
		res.Err = fmt.Errorf("save %s: %w", up.FileName, err)
		return res
	}
	res.Campaign = &c

	u.publish(ctx, port.CampaignEvent{
		Type:       port.EventCampaignIngested,
		BatchID:    batch,
		SourceID:   c.SourceID,
		Name:       c.Name,
		Offers:     len(c.Offers),
		DailyRows:  len(c.Daily),
		OccurredAt: c.UploadedAt,
	})
	u.logger.DebugContext(ctx, "campaign stored",
		slog.String("source_id", c.SourceID),
		slog.Int("offers", stats.OfferRows),
		slog.Int("daily", stats.DailyRows),
		slog.Int("dropped_offers", stats.DroppedOfferRows),
		slog.Int("dropped_daily", stats.DroppedDailyRows))
	return res
}

// Get returns a stored campaign or port.ErrCampaignNotFound.
func (u *CampaignUseCase) Get(ctx context.Context, sourceID string) (*domain.Campaign, error) {
	ctx, span := u.tracer.Start(ctx, "CampaignUseCase.Get",
		trace.WithAttributes(attribute.String("source_id", sourceID)))
	defer span.End()

	c, err := u.repo.Get(ctx, sourceID)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("get campaign %q: %w", sourceID, err)
	}
	return c, nil
}

func (u *CampaignUseCase) List(ctx context.Context) ([]domain.Campaign, error) {
	list, err := u.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return list, nil
}

// Remove deletes a campaign and announces it.
func (u *CampaignUseCase) Remove(ctx context.Context, sourceID string) error {
	if err := u.repo.Delete(ctx, sourceID); err != nil {
		return fmt.Errorf("remove campaign %q: %w", sourceID, err)
	}
	u.publish(ctx, port.CampaignEvent{
		Type:       port.EventCampaignRemoved,
		SourceID:   sourceID,
		OccurredAt: u.now().UTC(),
	})
	if all, err := u.repo.List(ctx); err == nil {
		u.metrics.Stored(len(all))
	}
	return nil
}

func (u *CampaignUseCase) Pacing(ctx context.Context, sourceID string, req port.PacingReq) (*domain.PacingMetrics, error) {
	c, err := u.Get(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	return u.pacing(*c, req), nil
}

// SpendCurve is the cumulative spend curve against the summary end date.
func (u *CampaignUseCase) SpendCurve(ctx context.Context, sourceID string) ([]domain.SpendPoint, error) {
	c, err := u.Get(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	return analytics.SpendCurve(c.Daily, u.pacing(*c, port.PacingReq{})), nil
}

func (u *CampaignUseCase) Promo(ctx context.Context, sourceID string, req port.PromoReq) (*domain.PromoAnalysis, error) {
	c, err := u.Get(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	return promo(*c, req.Start, req.End, req.Type), nil
}

func (u *CampaignUseCase) Conversion(ctx context.Context, sourceID string) (*domain.ConversionMetrics, error) {
	c, err := u.Get(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	return analytics.Conversion(*c), nil
}

func (u *CampaignUseCase) Summary(ctx context.Context, sourceID string, req port.SummaryReq) (*domain.PerformanceReport, error) {
	c, err := u.Get(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	r := analytics.Report(c.Daily, req.From, req.To, req.CompareFrom, req.CompareTo)
	return &r, nil
}

// Portfolio tabulates every stored campaign.
func (u *CampaignUseCase) Portfolio(ctx context.Context, req port.PortfolioReq) (*domain.Portfolio, error) {
	ctx, span := u.tracer.Start(ctx, "CampaignUseCase.Portfolio")
	defer span.End()

	list, err := u.List(ctx)
	if err != nil {
		return nil, err
	}
	p := analytics.Portfolio(list, u.now(), req.Sort, req.Desc)
	span.SetAttributes(attribute.Int("campaigns", len(p.Rows)))
	return &p, nil
}

// Snapshot assembles the collaborator payload from every derived view the
// campaign supports.
func (u *CampaignUseCase) Snapshot(ctx context.Context, sourceID string, req port.SnapshotReq) (*report.Snapshot, error) {
	c, err := u.Get(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	in := report.Inputs{
		Type:       req.Type,
		Pacing:     u.pacing(*c, port.PacingReq{}),
		Conversion: analytics.Conversion(*c),
		Promo:      promo(*c, req.PromoStart, req.PromoEnd, req.PromoType),
		Question:   req.Question,
	}
	if len(c.Daily) > 0 {
		perf := analytics.Summarize(c.Daily, "", "")
		in.Performance = &perf
	}
	s := report.Build(*c, in)
	return &s, nil
}

func (u *CampaignUseCase) pacing(c domain.Campaign, req port.PacingReq) *domain.PacingMetrics {
	return analytics.Pacing(c, analytics.PacingRequest{
		Now:       u.now(),
		EndDate:   req.EndDate,
		Extension: req.Extension,
	})
}

func promo(c domain.Campaign, start, end time.Time, promoType string) *domain.PromoAnalysis {
	a := analytics.Promo(c.Daily, start, end)
	if a != nil {
		a.PromoType = promoType
	}
	return a
}

func (u *CampaignUseCase) publish(ctx context.Context, e port.CampaignEvent) {
	if u.events == nil {
		return
	}
	if err := u.events.Publish(ctx, e); err != nil {
		u.logger.WarnContext(ctx, "publish event",
			slog.String("type", e.Type),
			slog.String("source_id", e.SourceID),
			slog.Any("error", err))
	}
}
