// Package report flattens a campaign and its derived metrics into the plain
// data handed to the narrative/chat collaborator. Optional values are
// pointers so that "not available" survives serialization distinct from 0.
package report

import (
	"fmt"
	"strings"
	"time"

	"campaign-lens/internal/core/classify"
	"campaign-lens/internal/core/domain"
)

// AnalysisType selects the kind of narrative requested.
type AnalysisType string

const (
	AnalysisOverview   AnalysisType = "overview"
	AnalysisPacing     AnalysisType = "pacing"
	AnalysisConversion AnalysisType = "conversion"
	AnalysisPromo      AnalysisType = "promo"
	AnalysisChat       AnalysisType = "chat"
	AnalysisRecap      AnalysisType = "recap"
	AnalysisReport     AnalysisType = "report"
)

// ParseAnalysisType validates s. Empty selects AnalysisReport.
func ParseAnalysisType(s string) (AnalysisType, error) {
	switch t := AnalysisType(strings.ToLower(strings.TrimSpace(s))); t {
	case AnalysisOverview, AnalysisPacing, AnalysisConversion, AnalysisPromo,
		AnalysisChat, AnalysisRecap, AnalysisReport:
		return t, nil
	case "":
		return AnalysisReport, nil
	default:
		return "", fmt.Errorf("unknown analysis type %q", s)
	}
}

// Snapshot is the collaborator-facing view of one campaign.
type Snapshot struct {
	AnalysisType AnalysisType `json:"analysisType"`
	CampaignName string       `json:"campaignName"`
	Group        string       `json:"group,omitempty"`
	DateRange    string       `json:"dateRange"`

	Sales  *float64 `json:"sales"`
	Cost   *float64 `json:"cost"`
	ROAS   *float64 `json:"roas"`
	Buyers *float64 `json:"buyers"`
	Units  *float64 `json:"units"`

	Budget            *float64 `json:"budget"`
	Spent             *float64 `json:"spent"`
	BudgetConsumedPct *float64 `json:"budgetConsumedPct"`
	DaysElapsed       *int     `json:"daysElapsed"`
	TotalDays         *int     `json:"totalDays"`
	TimeElapsedPct    *float64 `json:"timeElapsedPct"`
	PacingStatus      string   `json:"pacingStatus,omitempty"`
	RecentDailySpend  *float64 `json:"recentDailySpend"`

	CompletionRate    *float64 `json:"completionRate"`
	HasSpendThreshold bool     `json:"hasSpendThreshold"`
	Offers            []Offer  `json:"offers"`

	PromoType string `json:"promoType,omitempty"`
	Pre       *Promo `json:"pre,omitempty"`
	During    *Promo `json:"during,omitempty"`
	Post      *Promo `json:"post,omitempty"`

	Question string `json:"question,omitempty"`
}

// Offer is a one-line brief of an offer. CAC is nil unless the offer is
// an acquisition offer.
type Offer struct {
	Name                string         `json:"name"`
	Tactic              string         `json:"tactic"`
	ROAS                float64        `json:"roas"`
	Buyers              float64        `json:"buyers"`
	CompletionRate      float64        `json:"completionRate"`
	SalesLift           float64        `json:"salesLift"`
	CAC                 *float64       `json:"cac"`
	MetricFocus         classify.Focus `json:"metricFocus"`
	EngagementRate      float64        `json:"engagementRate"`
	BuyerValuePerTrip   float64        `json:"buyerValuePerTrip"`
	IsAcquisitionTactic bool           `json:"isAcquisitionTactic"`
	IsBrandBuyerTactic  bool           `json:"isBrandBuyerTactic"`
	IsSpendThreshold    bool           `json:"isSpendThreshold"`
}

// Promo is one promo window. Changes are nil on the pre window.
type Promo struct {
	DateRange     string   `json:"dateRange"`
	Days          int      `json:"days"`
	Sales         float64  `json:"sales"`
	Units         float64  `json:"units"`
	Buyers        float64  `json:"buyers"`
	Cost          float64  `json:"cost"`
	ROAS          float64  `json:"roas"`
	AvgDailySales float64  `json:"avgDailySales"`
	SalesChange   *float64 `json:"salesChange,omitempty"`
	ROASChange    *float64 `json:"roasChange,omitempty"`
}

// Inputs are the derived results a snapshot is assembled from. Any of them
// may be nil.
type Inputs struct {
	Type        AnalysisType
	Performance *domain.Performance
	Pacing      *domain.PacingMetrics
	Conversion  *domain.ConversionMetrics
	Promo       *domain.PromoAnalysis
	Question    string
}

// Build assembles a snapshot.
func Build(c domain.Campaign, in Inputs) Snapshot {
	s := Snapshot{
		AnalysisType:      in.Type,
		CampaignName:      c.Name,
		Group:             c.Group,
		HasSpendThreshold: c.HasSpendThreshold(),
		Offers:            make([]Offer, 0, len(c.Offers)),
		Question:          in.Question,
	}
	if s.AnalysisType == "" {
		s.AnalysisType = AnalysisReport
	}

	if sum := c.Summary; sum != nil {
		s.DateRange = dateRange(sum.StartDate, sum.EndDate, " to ")
		s.Budget = ptr(sum.Budget)
		s.Spent = ptr(sum.Cost)
	}
	if p := in.Performance; p != nil {
		s.Sales, s.Cost, s.ROAS = ptr(p.Sales), ptr(p.Cost), ptr(p.ROAS)
		s.Buyers, s.Units = ptr(p.Buyers), ptr(p.Units)
	}
	if m := in.Pacing; m != nil {
		s.BudgetConsumedPct = ptr(m.BudgetConsumedPct)
		s.DaysElapsed = ptr(m.DaysElapsed)
		s.TotalDays = ptr(m.TotalCampaignDays)
		s.TimeElapsedPct = ptr(m.TimeElapsedPct)
		s.RecentDailySpend = ptr(m.RecentAvgSpend)
		s.PacingStatus = m.Status.Label()
	}
	if cm := in.Conversion; cm != nil {
		s.CompletionRate = ptr(cm.Totals.CompletionRate)
	}
	for _, o := range c.Offers {
		s.Offers = append(s.Offers, offerBrief(o))
	}
	if a := in.Promo; a != nil {
		s.PromoType = a.PromoType
		s.Pre = promoBlock(a.Pre, nil)
		s.During = promoBlock(a.During, &a.DuringChange)
		s.Post = promoBlock(a.Post, &a.PostChange)
	}
	return s
}

func offerBrief(o domain.Offer) Offer {
	b := Offer{
		Name:                o.Name,
		Tactic:              o.Tactic,
		ROAS:                o.ROAS,
		Buyers:              o.Buyers,
		CompletionRate:      o.CompletionRate,
		SalesLift:           o.SalesLiftPct,
		EngagementRate:      o.EngagementRate,
		BuyerValuePerTrip:   o.BuyerValuePerTrip,
		IsAcquisitionTactic: o.IsAcquisitionTactic,
		IsBrandBuyerTactic:  o.IsBrandBuyerTactic,
		IsSpendThreshold:    o.IsSpendThreshold,
		MetricFocus:         classify.MetricFocus(o),
	}
	if b.MetricFocus == classify.FocusCAC {
		b.CAC = ptr(o.CAC)
	}
	return b
}

func promoBlock(w domain.PromoWindow, ch *domain.PromoChange) *Promo {
	p := &Promo{
		DateRange:     dateRange(w.Start, w.End, " - "),
		Days:          w.Days,
		Sales:         w.Sales,
		Units:         w.Units,
		Buyers:        w.Buyers,
		Cost:          w.Cost,
		ROAS:          w.ROAS,
		AvgDailySales: w.AvgDailySales,
	}
	if ch != nil {
		p.SalesChange = ptr(ch.Sales)
		p.ROASChange = ptr(ch.ROAS)
	}
	return p
}

const shortDate = "Jan 2, 2006"

func dateRange(from, to time.Time, sep string) string {
	return formatShort(from) + sep + formatShort(to)
}

func formatShort(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format(shortDate)
}

func ptr[T any](v T) *T {
	return &v
}
