package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// section is the scanner state. Exports move header → offers → daily; the
// transitions are content driven, never declared.
type section int

const (
	sectionHeader section = iota
	sectionOffers
	sectionDaily
)

func (s section) String() string {
	switch s {
	case sectionOffers:
		return "offers"
	case sectionDaily:
		return "daily"
	default:
		return "header"
	}
}

const (
	groupPrefix       = "Campaign Group:"
	dailyMarker       = "Buyer Volume"
	summaryAnchor     = "Start Date"
	offerHeaderMarker = "Offer Name,Offer ID"
	dailyHeaderMarker = "Sales"

	// minOfferLineLen filters separator and footer lines out of the offer table.
	minOfferLineLen = 10
	// offerColumnSlack lets offer rows omit up to this many trailing columns.
	offerColumnSlack = 5
)

var (
	summaryDateRe = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}`)
	isoDateRe     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
)

// isCampaignNameLine matches a lone quoted token such as "Brand Q1 Push".
func isCampaignNameLine(line string) bool {
	return strings.HasPrefix(line, `"`) && !strings.Contains(line, ",")
}

func isGroupLine(line string) bool {
	return strings.HasPrefix(line, groupPrefix)
}

func isDailyMarker(line string) bool {
	return strings.HasPrefix(line, dailyMarker)
}

// isSummaryDateLine matches a line that starts with M/D/YYYY.
func isSummaryDateLine(line string) bool {
	return summaryDateRe.MatchString(line)
}

// isSummaryRow reports whether line holds the summary values, i.e. it is
// date-leading and directly follows the "Start Date" header line.
func isSummaryRow(line, prev string) bool {
	return isSummaryDateLine(line) && strings.Contains(prev, summaryAnchor)
}

func isOfferHeader(line string) bool {
	return strings.Contains(line, offerHeaderMarker)
}

func isOfferLine(line string) bool {
	return utf8.RuneCountInString(line) > minOfferLineLen && !isDailyMarker(line)
}

// acceptsOfferRow applies the trailing-column tolerance.
func acceptsOfferRow(values, headers []string) bool {
	return len(values) >= len(headers)-offerColumnSlack
}

func isDailyHeader(line string) bool {
	return strings.Contains(line, dailyHeaderMarker)
}

func isDailyRow(line string) bool {
	return isoDateRe.MatchString(line)
}
