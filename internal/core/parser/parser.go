// Package parser turns a campaign export into a domain.Campaign.
//
// An export mixes an optional quoted campaign name, an optional
// "Campaign Group:" line, a two-line summary anchored by "Start Date", an
// offer table headed by "Offer Name,Offer ID" and a daily table introduced
// by a "Buyer Volume" line. Nothing declares where a section starts, so a
// small state machine walks the lines once and switches state on content.
//
// Parsing never fails: unparseable cells read as zero or as the zero date,
// and rows that fail their validity checks are dropped and counted.
package parser

import (
	"slices"
	"strings"
	"time"

	"campaign-lens/internal/core/classify"
	"campaign-lens/internal/core/domain"
)

// Offer table column headers.
const (
	colOfferName        = "Offer Name"
	colOfferID          = "Offer ID"
	colTactic           = "Tactic"
	colSubBanner        = "Sub Banner"
	colAudience         = "Audience"
	colBuyers           = "Buyers"
	colRedeemers        = "Redeemers"
	colRedemptions      = "Redemptions"
	colCost             = "Cost"
	colBudget           = "Budget"
	colBuyerSales       = "Buyer Sales"
	colRedeemerSales    = "Redeemer Sales"
	colBuyerUnits       = "Buyer Units"
	colRedeemerUnits    = "Redeemer Units"
	colBuyerTrips       = "Buyer Trips"
	colRedeemerTrips    = "Redeemer Trips"
	colROAS             = "ROAS"
	colPoints           = "Points"
	colSalesLift        = "Sales Lift %"
	colIncrementalSales = "Incremental Sales"
	colCostPerDay       = "Cost / Day"
	colBudgetConsumed   = "% Budget Consumed"
	colDaysComplete     = "% Days Complete"
	colRedemptionRate   = "Redemption Rate"
	colStartDate        = "Start Date"
	colEndDate          = "End Date"
)

// Stats counts what the scanner kept and dropped.
type Stats struct {
	Lines              int  `json:"lines"`
	OfferRows          int  `json:"offer_rows"`
	DroppedOfferRows   int  `json:"dropped_offer_rows"`
	DailyRows          int  `json:"daily_rows"`
	DroppedDailyRows   int  `json:"dropped_daily_rows"`
	HasSummary         bool `json:"has_summary"`
	HasDailyHeader     bool `json:"has_daily_header"`
	HasOfferHeader     bool `json:"has_offer_header"`
	CampaignNameInFile bool `json:"campaign_name_in_file"`
}

// Parse reads the export text. fileName becomes the campaign SourceID and,
// minus a ".csv" suffix, its display name unless the file names itself.
// Every offer is classified before Parse returns.
func Parse(text, fileName string) domain.Campaign {
	c, _ := Scan(text, fileName)
	return c
}

// Scan is Parse that also reports row statistics.
func Scan(text, fileName string) (domain.Campaign, Stats) {
	s := newScanner(fileName)
	lines := Lines(text)
	s.stats.Lines = len(lines)
	for _, line := range lines {
		s.step(line)
	}
	return s.finish(), s.stats
}

type scanner struct {
	section            section
	dailyHeadersParsed bool
	offerHeaders       []string
	dailyHeaders       []string
	prev               string
	summaryFields      map[string]string

	campaign domain.Campaign
	stats    Stats
}

func newScanner(fileName string) *scanner {
	return &scanner{
		section: sectionHeader,
		campaign: domain.Campaign{
			SourceID: fileName,
			Name:     strings.TrimSuffix(fileName, ".csv"),
			Offers:   []domain.Offer{},
			Daily:    []domain.DailyRecord{},
		},
	}
}

// step feeds one line through the state machine. Transitions that are
// valid in any state are checked first, in a fixed order.
func (s *scanner) step(line string) {
	defer func() { s.prev = line }()

	switch {
	case s.section == sectionHeader && isCampaignNameLine(line):
		s.campaign.Name = strings.ReplaceAll(line, `"`, "")
		s.stats.CampaignNameInFile = true
	case isGroupLine(line):
		s.campaign.Group = strings.TrimSpace(strings.TrimPrefix(line, groupPrefix))
	case isDailyMarker(line):
		s.section = sectionDaily
		s.dailyHeadersParsed = false
	case s.section == sectionHeader && isSummaryDateLine(line):
		if isSummaryRow(line, s.prev) {
			s.summaryFields = zip(SplitFields(s.prev), SplitFields(line))
			s.stats.HasSummary = true
		}
	case isOfferHeader(line):
		s.section = sectionOffers
		s.offerHeaders = SplitFields(line)
		s.stats.HasOfferHeader = true
	case s.section == sectionOffers:
		// A lone quoted token is a stray title, never an offer.
		if isOfferLine(line) && !isCampaignNameLine(line) {
			s.offerRow(line)
		}
	case s.section == sectionDaily:
		s.dailyLine(line)
	}
}

func (s *scanner) offerRow(line string) {
	values := SplitFields(line)
	if !acceptsOfferRow(values, s.offerHeaders) {
		s.stats.DroppedOfferRows++
		return
	}
	rec := zip(s.offerHeaders, values)
	if rec[colOfferName] == "" {
		s.stats.DroppedOfferRows++
		return
	}
	o := newOffer(rec)
	classify.Apply(&o)
	s.campaign.Offers = append(s.campaign.Offers, o)
	s.stats.OfferRows++
}

func (s *scanner) dailyLine(line string) {
	if !s.dailyHeadersParsed {
		if isDailyHeader(line) {
			s.dailyHeaders = SplitFields(line)
			s.dailyHeadersParsed = true
			s.stats.HasDailyHeader = true
		}
		return
	}
	if !isDailyRow(line) {
		return
	}
	rec, ok := newDailyRecord(SplitFields(line))
	if !ok {
		s.stats.DroppedDailyRows++
		return
	}
	s.campaign.Daily = append(s.campaign.Daily, rec)
	s.stats.DailyRows++
}

func (s *scanner) finish() domain.Campaign {
	if s.summaryFields != nil {
		s.campaign.Summary = newSummary(s.summaryFields)
	}
	slices.SortStableFunc(s.campaign.Daily, func(a, b domain.DailyRecord) int {
		return strings.Compare(a.Date, b.Date)
	})
	return s.campaign
}

func newSummary(f map[string]string) *domain.Summary {
	return &domain.Summary{
		StartDate:         ParseDate(f[colStartDate]),
		EndDate:           ParseDate(f[colEndDate]),
		Cost:              ParseNumber(f[colCost]),
		Budget:            ParseNumber(f[colBudget]),
		BudgetConsumedPct: ParseNumber(f[colBudgetConsumed]),
		DaysCompletePct:   ParseNumber(f[colDaysComplete]),
		Fields:            f,
	}
}

func newOffer(rec map[string]string) domain.Offer {
	o := domain.Offer{
		Name:              rec[colOfferName],
		OfferID:           rec[colOfferID],
		Tactic:            rec[colTactic],
		SubBanner:         rec[colSubBanner],
		Audience:          ParseNumber(rec[colAudience]),
		Buyers:            ParseNumber(rec[colBuyers]),
		Redeemers:         ParseNumber(rec[colRedeemers]),
		Redemptions:       ParseNumber(rec[colRedemptions]),
		Cost:              ParseNumber(rec[colCost]),
		Budget:            ParseNumber(rec[colBudget]),
		BuyerSales:        ParseNumber(rec[colBuyerSales]),
		RedeemerSales:     ParseNumber(rec[colRedeemerSales]),
		BuyerUnits:        ParseNumber(rec[colBuyerUnits]),
		RedeemerUnits:     ParseNumber(rec[colRedeemerUnits]),
		BuyerTrips:        ParseNumber(rec[colBuyerTrips]),
		RedeemerTrips:     ParseNumber(rec[colRedeemerTrips]),
		ROAS:              ParseNumber(rec[colROAS]),
		Points:            ParseNumber(rec[colPoints]),
		SalesLiftPct:      ParseNumber(rec[colSalesLift]),
		IncrementalSales:  ParseNumber(rec[colIncrementalSales]),
		CostPerDay:        ParseNumber(rec[colCostPerDay]),
		BudgetConsumedPct: ParseNumber(rec[colBudgetConsumed]),
		DaysCompletePct:   ParseNumber(rec[colDaysComplete]),
		RedemptionRate:    ParseNumber(rec[colRedemptionRate]),
		Fields:            rec,
	}
	o.Derive()
	return o
}

// newDailyRecord maps a daily row by position: date, sales, units, trips,
// buyers, cost. The header row is not consulted. Rows with no sales, units
// or cost are rejected.
func newDailyRecord(values []string) (domain.DailyRecord, bool) {
	cell := func(i int) string {
		if i < len(values) {
			return values[i]
		}
		return ""
	}
	d := domain.DailyRecord{
		Date:   cell(0),
		Sales:  ParseNumber(cell(1)),
		Units:  ParseNumber(cell(2)),
		Trips:  ParseNumber(cell(3)),
		Buyers: ParseNumber(cell(4)),
		Cost:   ParseNumber(cell(5)),
	}
	if d.Date == "" || (d.Sales == 0 && d.Units == 0 && d.Cost == 0) {
		return d, false
	}
	if len(d.Date) >= len(time.DateOnly) {
		d.Day = ParseDate(d.Date[:len(time.DateOnly)])
	}
	d.Derive()
	return d, true
}
