// Package classify tags offers with their targeting segment from free text.
// Exports carry no segment column, so the tactic, offer name and sub-banner
// are searched for known vocabulary.
package classify

import (
	"regexp"
	"strings"

	"campaign-lens/internal/core/domain"
)

var (
	spendThresholdRe = regexp.MustCompile(`(?i)spend\s*\$?\d+|purchase\s*\$?\d+|\$\d+\s*(or more|minimum)`)

	// Short tokens need word boundaries: "fence" must not read as NCE.
	nceRe   = regexp.MustCompile(`(?i)\bnce\b|\bn\.c\.e\.`)
	ntbRe   = regexp.MustCompile(`(?i)\bntb\b`)
	loyalRe = regexp.MustCompile(`(?i)\bloyal\b`)
)

var acquisitionTerms = []string{
	"new category",
	"competitive",
	"comp buyer",
	"conquest",
	"new buyer",
	"new to brand",
	"switcher",
	"win-back",
	"new customer",
}

var brandBuyerTerms = []string{
	"brand buyer",
	"loyalist",
	"brand loyalist",
	"lapsed",
	"retention",
	"existing buyer",
	"existing customer",
	"repeat buyer",
}

// Flags is the classification of one offer.
type Flags struct {
	SpendThreshold bool
	Acquisition    bool
	BrandBuyer     bool
}

// Text classifies an offer from its tactic, name and sub-banner. Matching
// is case-insensitive and deterministic. A spend-threshold offer with no
// other segment signal is treated as brand buyer.
func Text(tactic, name, subBanner string) Flags {
	offerText := strings.ToLower(name + " " + subBanner)
	combined := strings.ToLower(tactic + " " + name + " " + subBanner)

	f := Flags{
		SpendThreshold: spendThresholdRe.MatchString(offerText),
		Acquisition: nceRe.MatchString(combined) ||
			ntbRe.MatchString(combined) ||
			containsAny(combined, acquisitionTerms),
		BrandBuyer: loyalRe.MatchString(combined) ||
			containsAny(combined, brandBuyerTerms),
	}
	if !f.Acquisition && !f.BrandBuyer && f.SpendThreshold {
		f.BrandBuyer = true
	}
	return f
}

// Apply attaches the classification flags to o in place.
func Apply(o *domain.Offer) *domain.Offer {
	f := Text(o.Tactic, o.Name, o.SubBanner)
	o.IsSpendThreshold = f.SpendThreshold
	o.IsAcquisitionTactic = f.Acquisition
	o.IsBrandBuyerTactic = f.BrandBuyer
	return o
}

// Segment names the offer's segment for display.
func Segment(o domain.Offer) string {
	switch {
	case o.IsAcquisitionTactic:
		return "Acquisition"
	case o.IsBrandBuyerTactic:
		return "Brand Buyer"
	default:
		return "Unclassified"
	}
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

// Focus is the efficiency metric an offer should be judged by.
type Focus string

const (
	FocusCAC  Focus = "cac"
	FocusROAS Focus = "roas"
)

// MetricFocus picks CAC for acquisition offers. Brand buyer and
// unclassified offers are judged on ROAS and sales lift; CAC is not
// meaningful for them.
func MetricFocus(o domain.Offer) Focus {
	if o.CACMeaningful() {
		return FocusCAC
	}
	return FocusROAS
}
