package port

import (
	"context"

	"dfp-sync/internal/core/domain"
)

// DeactivateAssociationsAction is the association action that stops
// serving a creative under a line item.
const DeactivateAssociationsAction = "DeactivateLineItemCreativeAssociations"

// LineItemService is the outbound port to the ad server's line item API.
// Remote failures are returned unchanged to the caller.
type LineItemService interface {
	// GetLineItemsByStatement returns the page of line items matching the
	// statement.
	GetLineItemsByStatement(ctx context.Context, stmt Statement) (*Page, error)
	// CreateLineItems creates the given line items and returns them as
	// stored by the ad server.
	CreateLineItems(ctx context.Context, lineItems []domain.Record) ([]domain.Record, error)
	// UpdateLineItems replaces the given line items and returns them as
	// stored by the ad server.
	UpdateLineItems(ctx context.Context, lineItems []domain.Record) ([]domain.Record, error)
}

// AssociationService is the outbound port to the line item creative
// association API.
type AssociationService interface {
	GetLineItemCreativeAssociationsByStatement(ctx context.Context, stmt Statement) (*Page, error)
	CreateLineItemCreativeAssociations(ctx context.Context, associations []domain.Record) ([]domain.Record, error)
	// PerformLineItemCreativeAssociationAction applies action to every
	// association matched by the statement.
	PerformLineItemCreativeAssociationAction(ctx context.Context, action string, stmt Statement) (*UpdateResult, error)
}

// OrderService resolves the order that new line items of a user are filed
// under, creating it on first use.
type OrderService interface {
	UpsertOrder(ctx context.Context, user domain.User) (domain.Record, error)
}
