package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Campaign represents an internal advertising campaign that is mirrored into
// the ad server as a single line item. CPM is stored in integer cents.
// The synchronizer never mutates a campaign.
type Campaign struct {
	ID          int64     `json:"id"`
	Fullname    string    `json:"fullname" validate:"required"`
	LinkID      string    `json:"link_id" validate:"required"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required,gtefield=StartDate"`
	Priority    Priority  `json:"priority"`
	Platform    string    `json:"platform"`    // desktop, mobile, all
	CPM         int64     `json:"cpm"`         // cost per thousand impressions, cents
	Impressions int64     `json:"impressions"` // impression goal
}

// Priority is the serving tier of a campaign. InventoryOverride marks tiers
// that may be booked without an inventory availability check.
type Priority struct {
	Name              string
	InventoryOverride bool
}

var (
	PriorityHigh    = Priority{Name: "high"}
	PriorityMedium  = Priority{Name: "standard"}
	PriorityRemnant = Priority{Name: "remnant", InventoryOverride: true}
	PriorityHouse   = Priority{Name: "house", InventoryOverride: true}
)

// Priorities lists every known tier.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityRemnant, PriorityHouse}

// ParsePriority returns the known tier with the given name.
func ParsePriority(name string) (Priority, error) {
	for _, p := range Priorities {
		if p.Name == name {
			return p, nil
		}
	}
	return Priority{}, fmt.Errorf("%w: %q", ErrUnknownPriority, name)
}

func (p Priority) String() string {
	return p.Name
}

// MarshalJSON encodes the priority as its name.
func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Name)
}

// UnmarshalJSON decodes a priority name into one of the known tiers.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParsePriority(name)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
