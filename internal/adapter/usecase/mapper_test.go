package usecase

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"dfp-sync/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleCampaign() domain.Campaign {
	return domain.Campaign{
		ID:          42,
		Fullname:    "t8_16",
		LinkID:      "abc123",
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Priority:    domain.PriorityMedium,
		Platform:    "mobile",
		CPM:         500,
		Impressions: 100000,
	}
}

func TestCampaignToLineItem_Example(t *testing.T) {
	m := NewMapper(time.UTC, "USD", "")

	got, err := m.CampaignToLineItem(exampleCampaign(), domain.Record{"id": int64(9)}, nil)
	require.NoError(t, err)

	assert.Equal(t, "abc123 [01/01/24-31/01/24]", got["name"])
	assert.Equal(t, "STANDARD", got["lineItemType"])
	assert.Equal(t, "MOBILE", got["targetPlatform"])
	assert.Equal(t, "CPM", got["costType"])
	assert.Equal(t, false, got["skipInventoryCheck"])
	assert.Equal(t, map[string]any{"currencyCode": "USD", "microAmount": int64(5_000_000)}, got["costPerUnit"])

	goal := got["primaryGoal"].(map[string]any)
	assert.Equal(t, int64(100000), goal["units"])
	assert.Equal(t, "DAILY", goal["goalType"])
	assert.Equal(t, "IMPRESSIONS", goal["unitType"])
}

func TestCampaignToLineItem_CreateAddsDefaults(t *testing.T) {
	m := NewMapper(time.UTC, "USD", "ad_unit_7")

	got, err := m.CampaignToLineItem(exampleCampaign(), domain.Record{"id": int64(9)}, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(9), got["orderId"])
	assert.Equal(t, "t8_16", got["externalId"])
	assert.Equal(t, "OPTIMIZED", got["creativeRotationType"])
	assert.Equal(t, false, got["reserveAtCreation"])
	assert.Equal(t, []any{map[string]any{"size": map[string]any{"width": "1", "height": "1"}}}, got["creativePlaceholders"])

	targeting := got["targeting"].(map[string]any)
	inventory := targeting["inventoryTargeting"].(map[string]any)
	assert.Equal(t, []any{map[string]any{"adUnitId": "ad_unit_7"}}, inventory["targetedAdUnits"])
}

func TestCampaignToLineItem_UpdateMergesIntoExisting(t *testing.T) {
	m := NewMapper(time.UTC, "USD", "")
	existing := domain.Record{
		"id":         int64(77),
		"orderId":    int64(9),
		"externalId": "t8_16",
		"status":     "DELIVERING",
		"name":       "old name",
		"primaryGoal": map[string]any{
			"goalType": "LIFETIME",
			"units":    int64(1),
		},
	}

	got, err := m.CampaignToLineItem(exampleCampaign(), nil, existing)
	require.NoError(t, err)

	assert.Equal(t, int64(77), got["id"])
	assert.Equal(t, "DELIVERING", got["status"])
	assert.Equal(t, "abc123 [01/01/24-31/01/24]", got["name"])
	assert.Equal(t, map[string]any{"goalType": "LIFETIME", "units": int64(100000)}, got["primaryGoal"])
	assert.NotContains(t, got, "creativeRotationType")
	assert.Equal(t, "old name", existing["name"], "existing must not be modified")
}

func TestCampaignToLineItem_RequiresOrderOrExisting(t *testing.T) {
	m := NewMapper(time.UTC, "USD", "")

	_, err := m.CampaignToLineItem(exampleCampaign(), nil, nil)
	assert.ErrorIs(t, err, domain.ErrMissingOrderOrLineItem)
}

func TestCampaignToLineItem_OrderWithoutID(t *testing.T) {
	m := NewMapper(time.UTC, "USD", "")

	_, err := m.CampaignToLineItem(exampleCampaign(), domain.Record{"name": "order"}, nil)
	assert.ErrorIs(t, err, domain.ErrMissingID)
}

func TestCampaignToLineItem_UnknownPriority(t *testing.T) {
	m := NewMapper(time.UTC, "USD", "")
	c := exampleCampaign()
	c.Priority = domain.Priority{Name: "urgent"}

	_, err := m.CampaignToLineItem(c, domain.Record{"id": int64(1)}, nil)
	assert.ErrorIs(t, err, domain.ErrUnknownPriority)
}

func TestPriorityToLineItemType(t *testing.T) {
	tests := []struct {
		priority domain.Priority
		want     string
	}{
		{domain.PriorityHigh, "SPONSORSHIP"},
		{domain.PriorityMedium, "STANDARD"},
		{domain.PriorityRemnant, "BULK"},
		{domain.PriorityHouse, "HOUSE"},
	}
	for _, tt := range tests {
		t.Run(tt.priority.Name, func(t *testing.T) {
			got, err := PriorityToLineItemType(tt.priority)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := PriorityToLineItemType(domain.Priority{})
	assert.ErrorIs(t, err, domain.ErrUnknownPriority)
}

func TestTargetPlatform(t *testing.T) {
	assert.Equal(t, "WEB", TargetPlatform("desktop"))
	assert.Equal(t, "MOBILE", TargetPlatform("mobile"))
	assert.Equal(t, "ANY", TargetPlatform("all"))
	assert.Equal(t, "ANY", TargetPlatform(""))
	assert.Equal(t, "ANY", TargetPlatform("Desktop"))
}

func TestCampaignName_Truncates(t *testing.T) {
	c := exampleCampaign()
	c.LinkID = strings.Repeat("x", 300)

	full := c.LinkID + " [01/01/24-31/01/24]"
	got := NewMapper(time.UTC, "", "").CampaignName(c)

	assert.Len(t, got, 255)
	assert.Equal(t, full[:255], got)
}

func TestCampaignName_TruncatesMultiByte(t *testing.T) {
	c := exampleCampaign()
	c.LinkID = strings.Repeat("ü", 200) + strings.Repeat("広", 100)

	got := NewMapper(time.UTC, "", "").CampaignName(c)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 255, utf8.RuneCountInString(got))
	assert.Equal(t, strings.Repeat("ü", 200)+strings.Repeat("広", 55), got)
}

func TestCampaignToLineItem_NameFollowsScheduleZone(t *testing.T) {
	m := NewMapper(time.FixedZone("EST", -5*3600), "USD", "")
	c := exampleCampaign()

	got, err := m.CampaignToLineItem(c, domain.Record{"id": int64(1)}, nil)
	require.NoError(t, err)

	assert.Equal(t, "abc123 [31/12/23-30/01/24]", got["name"])
	start := got["startDateTime"].(map[string]any)
	assert.Equal(t, map[string]any{"year": 2023, "month": 12, "day": 31}, start["date"])
	assert.Equal(t, 19, start["hour"])
}

func TestSkipInventoryCheckFollowsPriority(t *testing.T) {
	m := NewMapper(time.UTC, "USD", "")
	c := exampleCampaign()
	c.Priority = domain.PriorityRemnant

	got, err := m.CampaignToLineItem(c, domain.Record{"id": int64(1)}, nil)
	require.NoError(t, err)
	assert.Equal(t, true, got["skipInventoryCheck"])
	assert.Equal(t, "BULK", got["lineItemType"])
}

func TestToRemoteDateTime(t *testing.T) {
	loc := time.FixedZone("PST", -8*60*60)

	got := ToRemoteDateTime(time.Date(2024, 1, 2, 8, 30, 15, 0, time.UTC), loc)

	assert.Equal(t, map[string]any{
		"date":       map[string]any{"year": 2024, "month": 1, "day": 2},
		"hour":       0,
		"minute":     30,
		"second":     15,
		"timeZoneId": "PST",
	}, got)
}

func TestCentsToRemoteMoney(t *testing.T) {
	tests := []struct {
		cents int64
		want  int64
	}{
		{0, 0},
		{1, 10_000},
		{500, 5_000_000},
		{1234, 12_340_000},
	}
	for _, tt := range tests {
		got := CentsToRemoteMoney(tt.cents, "USD")
		assert.Equal(t, tt.want, got["microAmount"])
		assert.Equal(t, "USD", got["currencyCode"])
	}
}
