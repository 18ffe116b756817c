package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingOrderOrLineItem is returned by the mapper when it is given
	// neither a parent order nor an existing line item to merge into.
	ErrMissingOrderOrLineItem = errors.New("must supply order or existing lineitem")
	// ErrUnknownPriority is returned for a priority with no line item type.
	ErrUnknownPriority = errors.New("unknown campaign priority")
	// ErrArchivedLineItem matches any ArchivedLineItemError.
	ErrArchivedLineItem = errors.New("cannot update archived lineitem")
	// ErrMissingID is returned when a remote record has no usable id.
	ErrMissingID = errors.New("remote record has no id")
	// ErrEmptyResult is returned when a create or update call echoes back
	// no records.
	ErrEmptyResult = errors.New("remote call returned no records")
)

// ArchivedLineItemError is returned when a campaign's line item was archived
// on the remote side. Archived line items are never updated.
type ArchivedLineItemError struct {
	LineItemID int64
	CampaignID int64
}

func (e *ArchivedLineItemError) Error() string {
	return fmt.Sprintf("%s (lid: %d, cid: %d)", ErrArchivedLineItem, e.LineItemID, e.CampaignID)
}

// Is makes errors.Is(err, ErrArchivedLineItem) hold.
func (e *ArchivedLineItemError) Is(target error) bool {
	return target == ErrArchivedLineItem
}
