package adserver

import (
	"context"

	"dfp-sync/internal/core/domain"
	"dfp-sync/internal/core/port"
)

const (
	lineItemService    = "LineItemService"
	associationService = "LineItemCreativeAssociationService"
	orderService       = "OrderService"
	companyService     = "CompanyService"
)

// LineItemService implements port.LineItemService over the gateway.
type LineItemService struct {
	client *Client
}

// NewLineItemService returns a line item service bound to client.
func NewLineItemService(client *Client) *LineItemService {
	return &LineItemService{client: client}
}

func (s *LineItemService) GetLineItemsByStatement(ctx context.Context, stmt port.Statement) (*port.Page, error) {
	return s.client.getByStatement(ctx, lineItemService, "getLineItemsByStatement", stmt)
}

func (s *LineItemService) CreateLineItems(ctx context.Context, lineItems []domain.Record) ([]domain.Record, error) {
	return s.client.mutate(ctx, lineItemService, "createLineItems", "lineItems", lineItems)
}

func (s *LineItemService) UpdateLineItems(ctx context.Context, lineItems []domain.Record) ([]domain.Record, error) {
	return s.client.mutate(ctx, lineItemService, "updateLineItems", "lineItems", lineItems)
}

// AssociationService implements port.AssociationService over the gateway.
type AssociationService struct {
	client *Client
}

// NewAssociationService returns an association service bound to client.
func NewAssociationService(client *Client) *AssociationService {
	return &AssociationService{client: client}
}

func (s *AssociationService) GetLineItemCreativeAssociationsByStatement(ctx context.Context, stmt port.Statement) (*port.Page, error) {
	return s.client.getByStatement(ctx, associationService, "getLineItemCreativeAssociationsByStatement", stmt)
}

func (s *AssociationService) CreateLineItemCreativeAssociations(ctx context.Context, associations []domain.Record) ([]domain.Record, error) {
	return s.client.mutate(ctx, associationService, "createLineItemCreativeAssociations", "lineItemCreativeAssociations", associations)
}

func (s *AssociationService) PerformLineItemCreativeAssociationAction(ctx context.Context, action string, stmt port.Statement) (*port.UpdateResult, error) {
	body := map[string]any{
		"lineItemCreativeAssociationAction": map[string]any{"xsi_type": action},
		"filterStatement":                   stmt,
	}
	var result port.UpdateResult
	if err := s.client.call(ctx, associationService, "performLineItemCreativeAssociationAction", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

var (
	_ port.LineItemService    = (*LineItemService)(nil)
	_ port.AssociationService = (*AssociationService)(nil)
)
