package usecase

import (
	"dfp-sync/internal/core/domain"
	"dfp-sync/internal/merge"
	"fmt"
	"time"
)

const (
	maxNameLength   = 255
	nameDateLayout  = "02/01/06"
	costTypeCPM     = "CPM"
	DefaultAdUnitID = "mw_card_test_1"
	DefaultCurrency = "USD"
)

// Mapper turns campaigns into line item payloads. It holds only the
// settings that differ between deployments and has no side effects.
type Mapper struct {
	// Location is the time zone schedules are sent in.
	Location *time.Location
	// Currency is the ISO 4217 code of campaign CPMs.
	Currency string
	// AdUnitID is the ad unit new line items target.
	AdUnitID string
}

// NewMapper returns a Mapper, filling unset settings with defaults.
func NewMapper(loc *time.Location, currency, adUnitID string) Mapper {
	if loc == nil {
		loc = time.UTC
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	if adUnitID == "" {
		adUnitID = DefaultAdUnitID
	}
	return Mapper{Location: loc, Currency: currency, AdUnitID: adUnitID}
}

func (m Mapper) location() *time.Location {
	if m.Location == nil {
		return time.UTC
	}
	return m.Location
}

// CampaignToLineItem builds the payload for creating (order set) or
// updating (existing set) the campaign's line item. For an update the
// computed fields are merged into existing so remote-only fields survive.
func (m Mapper) CampaignToLineItem(c domain.Campaign, order, existing domain.Record) (domain.Record, error) {
	if existing == nil && order == nil {
		return nil, domain.ErrMissingOrderOrLineItem
	}

	lineItemType, err := PriorityToLineItemType(c.Priority)
	if err != nil {
		return nil, err
	}

	computed := domain.Record{
		"name":               m.CampaignName(c),
		"startDateTime":      ToRemoteDateTime(c.StartDate, m.Location),
		"endDateTime":        ToRemoteDateTime(c.EndDate, m.Location),
		"lineItemType":       lineItemType,
		"costPerUnit":        CentsToRemoteMoney(c.CPM, m.Currency),
		"costType":           costType(c),
		"targetPlatform":     TargetPlatform(c.Platform),
		"skipInventoryCheck": c.Priority.InventoryOverride,
		"primaryGoal": map[string]any{
			"units": c.Impressions,
		},
	}

	if existing != nil {
		return merge.Records(existing, computed), nil
	}

	orderID, ok := order.ID()
	if !ok {
		return nil, fmt.Errorf("order: %w", domain.ErrMissingID)
	}
	return merge.Records(m.defaults(), domain.Record{
		"orderId":    orderID,
		"externalId": c.Fullname,
	}, computed), nil
}

// defaults are the static fields of every newly created line item.
func (m Mapper) defaults() domain.Record {
	return domain.Record{
		"creativeRotationType": "OPTIMIZED",
		"creativePlaceholders": []any{
			map[string]any{
				"size": map[string]any{"width": "1", "height": "1"},
			},
		},
		"reserveAtCreation": false,
		"primaryGoal": map[string]any{
			"goalType": "DAILY",
			"unitType": "IMPRESSIONS",
			"units":    int64(0),
		},
		"targeting": map[string]any{
			"inventoryTargeting": map[string]any{
				"targetedAdUnits": []any{
					map[string]any{"adUnitId": m.AdUnitID},
				},
			},
		},
	}
}

// CampaignName renders "link_id [dd/mm/yy-dd/mm/yy]" with the dates in the
// mapper's zone, cut to the longest name the ad server accepts.
func (m Mapper) CampaignName(c domain.Campaign) string {
	name := fmt.Sprintf("%s [%s-%s]",
		c.LinkID,
		c.StartDate.In(m.location()).Format(nameDateLayout),
		c.EndDate.In(m.location()).Format(nameDateLayout))
	runes := []rune(name)
	if len(runes) > maxNameLength {
		return string(runes[:maxNameLength])
	}
	return name
}

// TargetPlatform maps a campaign platform onto the remote enum.
func TargetPlatform(platform string) string {
	switch platform {
	case "desktop":
		return "WEB"
	case "mobile":
		return "MOBILE"
	default:
		return "ANY"
	}
}

// PriorityToLineItemType maps a campaign tier onto a line item type.
func PriorityToLineItemType(p domain.Priority) (string, error) {
	switch p.Name {
	case domain.PriorityHigh.Name:
		return "SPONSORSHIP", nil
	case domain.PriorityMedium.Name:
		return "STANDARD", nil
	case domain.PriorityRemnant.Name:
		return "BULK", nil
	case domain.PriorityHouse.Name:
		return "HOUSE", nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownPriority, p.Name)
	}
}

// everything is sold by CPM for now
func costType(domain.Campaign) string {
	return costTypeCPM
}
