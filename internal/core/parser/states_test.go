package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicates(t *testing.T) {
	assert.True(t, isCampaignNameLine(`"Brand Q1 Push"`))
	assert.False(t, isCampaignNameLine(`"Offer, with comma"`))
	assert.False(t, isCampaignNameLine(`Brand Q1 Push`))

	assert.True(t, isGroupLine("Campaign Group: Snacks"))
	assert.False(t, isGroupLine("Group: Snacks"))

	assert.True(t, isDailyMarker("Buyer Volume"))
	assert.True(t, isDailyMarker("Buyer Volume by Day"))
	assert.False(t, isDailyMarker("Total Buyer Volume"))

	assert.True(t, isSummaryDateLine("3/1/2024,5/30/2024"))
	assert.True(t, isSummaryDateLine("12/31/2023"))
	assert.False(t, isSummaryDateLine("2024-03-01,100"))

	assert.True(t, isSummaryRow("3/1/2024,5/30/2024", "Start Date,End Date"))
	assert.False(t, isSummaryRow("3/1/2024,5/30/2024", "Cost,Budget"))
	assert.False(t, isSummaryRow("Start Date,End Date", "Start Date,End Date"))

	assert.True(t, isOfferHeader("Offer Name,Offer ID,Tactic"))
	assert.False(t, isOfferHeader("Offer Name, Offer ID"))

	assert.True(t, isOfferLine("Some offer,1"))
	assert.False(t, isOfferLine("short,row"))
	assert.False(t, isOfferLine("Buyer Volume,,,,,,"))

	assert.True(t, isDailyHeader("Date,Sales,Units"))
	assert.False(t, isDailyHeader("Date,Units"))

	assert.True(t, isDailyRow("2024-03-01,10"))
	assert.False(t, isDailyRow("3/1/2024,10"))
	assert.False(t, isDailyRow("Total,10"))
}

func TestAcceptsOfferRow(t *testing.T) {
	headers := make([]string, 10)
	assert.True(t, acceptsOfferRow(make([]string, 10), headers))
	assert.True(t, acceptsOfferRow(make([]string, 5), headers))
	assert.False(t, acceptsOfferRow(make([]string, 4), headers))
}

func TestSectionString(t *testing.T) {
	assert.Equal(t, "header", sectionHeader.String())
	assert.Equal(t, "offers", sectionOffers.String())
	assert.Equal(t, "daily", sectionDaily.String())
}
