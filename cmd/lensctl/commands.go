package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"campaign-lens/internal/adapter/xlsx"
	"campaign-lens/internal/core/analytics"
	"campaign-lens/internal/core/domain"
	"campaign-lens/internal/core/port"
	"campaign-lens/internal/core/report"
)

// keyed is the output shape of per-campaign commands: source id → result.
// Nil results stay in the map as null.
type keyed[T any] map[string]*T

// perCampaign runs view over every loaded campaign and prints the results.
func perCampaign[T any](s *session, cmd *cobra.Command, paths []string,
	view func(ctx context.Context, id string) (*T, error)) error {
	_, ids, err := s.load(cmd, paths)
	if err != nil {
		return err
	}
	out := make(keyed[T], len(ids))
	for _, id := range ids {
		v, err := view(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("%s: %w", id, err)
		}
		out[id] = v
	}
	return printJSON(cmd.OutOrStdout(), out)
}

type parsedFile struct {
	File     string           `json:"file"`
	Campaign *domain.Campaign `json:"campaign,omitempty"`
	Stats    any              `json:"stats"`
	Error    string           `json:"error,omitempty"`
}

func (s *session) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse FILE...",
		Short: "Parse export files and print the campaigns",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, ids, err := s.load(cmd, args)
			out := make([]parsedFile, 0, len(results))
			for _, r := range results {
				pf := parsedFile{File: r.FileName, Campaign: r.Campaign, Stats: r.Stats}
				if r.Err != nil {
					pf.Error = r.Err.Error()
				}
				out = append(out, pf)
			}
			if perr := printJSON(cmd.OutOrStdout(), out); perr != nil {
				return perr
			}
			if len(ids) == 0 {
				return err
			}
			return nil
		},
	}
}

func (s *session) pacingCmd() *cobra.Command {
	var (
		endDate string
		extend  int
		unit    string
	)
	cmd := &cobra.Command{
		Use:   "pacing FILE...",
		Short: "Budget pacing per campaign",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req port.PacingReq
			if endDate != "" {
				t, err := parseDay("--end-date", endDate)
				if err != nil {
					return err
				}
				req.EndDate = t
			}
			if extend > 0 {
				u, err := domain.ParseExtensionUnit(unit)
				if err != nil {
					return err
				}
				req.Extension = &domain.Extension{Amount: extend, Unit: u}
			}
			return perCampaign(s, cmd, args, func(ctx context.Context, id string) (*domain.PacingMetrics, error) {
				return s.svc.Pacing(ctx, id, req)
			})
		},
	}
	cmd.Flags().StringVar(&endDate, "end-date", "", "override the target end date, YYYY-MM-DD")
	cmd.Flags().IntVar(&extend, "extend", 0, "price an extension of this many units")
	cmd.Flags().StringVar(&unit, "unit", string(domain.ExtendDays), "extension unit: days, weeks or months")
	return cmd
}

func (s *session) promoCmd() *cobra.Command {
	var start, end, promoType string
	cmd := &cobra.Command{
		Use:   "promo FILE...",
		Short: "Pre/during/post lift around a promo window",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseDay("--start", start)
			if err != nil {
				return err
			}
			to, err := parseDay("--end", end)
			if err != nil {
				return err
			}
			req := port.PromoReq{Start: from, End: to, Type: promoType}
			return perCampaign(s, cmd, args, func(ctx context.Context, id string) (*domain.PromoAnalysis, error) {
				return s.svc.Promo(ctx, id, req)
			})
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "first promo day, YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "last promo day, YYYY-MM-DD")
	cmd.Flags().StringVar(&promoType, "type", "", "promo label, e.g. pops or fetch_topia")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func (s *session) conversionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conversion FILE...",
		Short: "Buyer to redeemer conversion totals and insights",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return perCampaign(s, cmd, args, s.svc.Conversion)
		},
	}
}

func (s *session) summaryCmd() *cobra.Command {
	var req port.SummaryReq
	cmd := &cobra.Command{
		Use:   "summary FILE...",
		Short: "Daily performance totals, optionally compared with another range",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return perCampaign(s, cmd, args, func(ctx context.Context, id string) (*domain.PerformanceReport, error) {
				return s.svc.Summary(ctx, id, req)
			})
		},
	}
	cmd.Flags().StringVar(&req.From, "from", "", "first day, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.To, "to", "", "last day, YYYY-MM-DD")
	cmd.Flags().StringVar(&req.CompareFrom, "compare-from", "", "first day of the baseline range")
	cmd.Flags().StringVar(&req.CompareTo, "compare-to", "", "last day of the baseline range")
	return cmd
}

func (s *session) portfolioCmd() *cobra.Command {
	var (
		sortBy string
		desc   bool
	)
	cmd := &cobra.Command{
		Use:   "portfolio FILE...",
		Short: "One row per campaign plus totals",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := analytics.ParseSortKey(sortBy)
			if err != nil {
				return err
			}
			if _, _, err = s.load(cmd, args); err != nil {
				return err
			}
			p, err := s.svc.Portfolio(cmd.Context(), port.PortfolioReq{Sort: key, Desc: desc})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}
	cmd.Flags().StringVar(&sortBy, "sort", string(analytics.SortName), "sort key")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	return cmd
}

func (s *session) snapshotCmd() *cobra.Command {
	var analysis, promoStart, promoEnd, promoType, question string
	cmd := &cobra.Command{
		Use:   "snapshot FILE...",
		Short: "Data snapshot handed to the analysis assistant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := report.ParseAnalysisType(analysis)
			if err != nil {
				return err
			}
			req := port.SnapshotReq{Type: t, PromoType: promoType, Question: question}
			if promoStart != "" || promoEnd != "" {
				if req.PromoStart, err = parseDay("--promo-start", promoStart); err != nil {
					return err
				}
				if req.PromoEnd, err = parseDay("--promo-end", promoEnd); err != nil {
					return err
				}
			}
			return perCampaign(s, cmd, args, func(ctx context.Context, id string) (*report.Snapshot, error) {
				return s.svc.Snapshot(ctx, id, req)
			})
		},
	}
	cmd.Flags().StringVar(&analysis, "type", string(report.AnalysisReport), "analysis type")
	cmd.Flags().StringVar(&promoStart, "promo-start", "", "promo window start, YYYY-MM-DD")
	cmd.Flags().StringVar(&promoEnd, "promo-end", "", "promo window end, YYYY-MM-DD")
	cmd.Flags().StringVar(&promoType, "promo-type", "", "promo label")
	cmd.Flags().StringVar(&question, "question", "", "free-text question for chat snapshots")
	return cmd
}

func (s *session) exportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Write a campaign workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, ids, err := s.load(cmd, args)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			c, err := s.svc.Get(ctx, ids[0])
			if err != nil {
				return err
			}
			pacing, err := s.svc.Pacing(ctx, ids[0], port.PacingReq{})
			if err != nil {
				return err
			}
			conv, err := s.svc.Conversion(ctx, ids[0])
			if err != nil {
				return err
			}

			if output == "" {
				output = strings.TrimSuffix(ids[0], ".csv") + ".xlsx"
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err = xlsx.Write(f, xlsx.Report{Campaign: *c, Pacing: pacing, Conversion: conv}); err != nil {
				_ = f.Close()
				return fmt.Errorf("write workbook: %w", err)
			}
			if err = f.Close(); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "workbook path (default <file>.xlsx)")
	return cmd
}

func parseDay(flag, v string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: want YYYY-MM-DD", flag, v)
	}
	return t.UTC(), nil
}
