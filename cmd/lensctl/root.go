package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"campaign-lens/internal/adapter/memory"
	"campaign-lens/internal/adapter/usecase"
	"campaign-lens/internal/config"
	"campaign-lens/internal/core/port"
	"campaign-lens/internal/metrics"
)

// session is the state shared by every subcommand: the reference date and
// a usecase backed by an in-memory store.
type session struct {
	now      string
	logLevel string

	logger *slog.Logger
	svc    *usecase.CampaignUseCase
}

func newRootCmd() *cobra.Command {
	s := &session{}
	root := &cobra.Command{
		Use:          "lensctl",
		Short:        "Campaign export analytics",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.init(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&s.now, "now", "", "reference date for pacing, YYYY-MM-DD (default today)")
	root.PersistentFlags().StringVar(&s.logLevel, "log-level", "", "override LOG_LEVEL")

	root.AddCommand(
		s.parseCmd(),
		s.pacingCmd(),
		s.promoCmd(),
		s.conversionCmd(),
		s.summaryCmd(),
		s.portfolioCmd(),
		s.snapshotCmd(),
		s.exportCmd(),
	)
	return root
}

func (s *session) init(stderr io.Writer) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if s.logLevel != "" {
		cfg.Log.Level = s.logLevel
	}
	s.logger = slog.New(cfg.Log.Handler(stderr))

	clock := time.Now
	if s.now != "" {
		pinned, err := time.Parse(time.DateOnly, s.now)
		if err != nil {
			return fmt.Errorf("invalid --now %q: %w", s.now, err)
		}
		clock = func() time.Time { return pinned }
	}

	s.svc = usecase.NewCampaignUseCase(memory.NewCampaignRepository(),
		usecase.WithClock(clock),
		usecase.WithLogger(s.logger),
		usecase.WithMetrics(metrics.New()),
		usecase.WithConcurrency(cfg.Ingest.Concurrency),
	)
	return nil
}

// load reads and ingests every path. Files that fail to read or parse are
// reported in the results, in argument order, and do not stop the others;
// the returned ids list only stored campaigns.
func (s *session) load(cmd *cobra.Command, paths []string) ([]port.IngestResult, []string, error) {
	results := make([]port.IngestResult, len(paths))
	uploads := make([]port.Upload, 0, len(paths))
	slots := make([]int, 0, len(paths))
	for i, p := range paths {
		results[i].FileName = filepath.Base(p)
		content, err := os.ReadFile(p)
		if err != nil {
			results[i].Err = fmt.Errorf("read %s: %w", p, err)
			continue
		}
		uploads = append(uploads, port.Upload{FileName: results[i].FileName, Content: content})
		slots = append(slots, i)
	}

	for j, res := range s.svc.Ingest(cmd.Context(), uploads) {
		results[slots[j]] = res
	}

	ids := make([]string, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			s.logger.Warn("file skipped", slog.String("file", r.FileName), slog.Any("error", r.Err))
			continue
		}
		ids = append(ids, r.Campaign.SourceID)
	}
	if len(ids) == 0 {
		return results, nil, fmt.Errorf("no campaign could be loaded")
	}
	return results, ids, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
