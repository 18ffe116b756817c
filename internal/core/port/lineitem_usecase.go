package port

import (
	"context"

	"dfp-sync/internal/core/domain"
)

// LineItemUseCase defines the synchronization operations exposed to the
// inbound adapters (HTTP, AMQP and the CLI). Mock implementations can be
// generated from this interface for testing.
type LineItemUseCase interface {
	// GetLineItem returns the line item whose external id is the campaign
	// fullname, or nil when none exists.
	GetLineItem(ctx context.Context, campaign domain.Campaign) (domain.Record, error)

	// CreateLineItem files a new line item for the campaign under the
	// user's order, creating the order if needed.
	CreateLineItem(ctx context.Context, user domain.User, campaign domain.Campaign) (domain.Record, error)

	// UpsertLineItem creates the campaign's line item or updates the
	// existing one in place. An archived line item yields an
	// *domain.ArchivedLineItemError and is left untouched.
	UpsertLineItem(ctx context.Context, user domain.User, campaign domain.Campaign) (domain.Record, error)

	// AssociateWithCreative links a line item to a creative and returns
	// the association, reusing an existing one when present.
	AssociateWithCreative(ctx context.Context, lineItem, creative domain.Record) (domain.Record, error)

	// Deactivate stops every active creative association of the
	// campaign's line item. It reports true when the campaign has no line
	// item or when at least one association changed.
	Deactivate(ctx context.Context, campaign domain.Campaign) (bool, error)

	// ListSyncs returns the sync history of a campaign, newest first.
	ListSyncs(ctx context.Context, campaignFullname string, limit int) ([]domain.SyncEvent, error)
}
