package domain

import (
	"time"

	"github.com/google/uuid"
)

// SyncAction names what a synchronization did on the remote side.
type SyncAction string

const (
	SyncActionCreated     SyncAction = "created"
	SyncActionUpdated     SyncAction = "updated"
	SyncActionAssociated  SyncAction = "associated"
	SyncActionDeactivated SyncAction = "deactivated"
)

// SyncEvent is one entry of the sync ledger. Changed is false when the
// operation found the remote state already in place.
type SyncEvent struct {
	ID               uuid.UUID  `json:"id"`
	CampaignID       int64      `json:"campaign_id"`
	CampaignFullname string     `json:"campaign_fullname"`
	LineItemID       int64      `json:"lineitem_id"`
	Action           SyncAction `json:"action"`
	Changed          bool       `json:"changed"`
	CreatedAt        time.Time  `json:"created_at"`
}

// NewSyncEvent stamps a ledger entry with a fresh id and the current time.
func NewSyncEvent(action SyncAction, lineItemID int64, changed bool) SyncEvent {
	return SyncEvent{
		ID:         uuid.New(),
		LineItemID: lineItemID,
		Action:     action,
		Changed:    changed,
		CreatedAt:  time.Now().UTC(),
	}
}

// ForCampaign attaches the campaign identity to the event.
func (e SyncEvent) ForCampaign(c Campaign) SyncEvent {
	e.CampaignID = c.ID
	e.CampaignFullname = c.Fullname
	return e
}
