package adserver

import (
	"context"
	"fmt"

	"dfp-sync/internal/core/domain"
	"dfp-sync/internal/core/port"
)

const companyTypeAdvertiser = "ADVERTISER"

// OrderService implements port.OrderService. Each user gets one advertiser
// company and one order, both keyed by the user's fullname as external id.
type OrderService struct {
	client       *Client
	traffickerID int64
}

// NewOrderService returns an order service that files new orders under
// the given trafficker.
func NewOrderService(client *Client, traffickerID int64) *OrderService {
	return &OrderService{client: client, traffickerID: traffickerID}
}

// UpsertOrder returns the user's order, creating it and its advertiser on
// first use.
func (s *OrderService) UpsertOrder(ctx context.Context, user domain.User) (domain.Record, error) {
	order, err := s.findByExternalID(ctx, orderService, "getOrdersByStatement", user.Fullname)
	if err != nil {
		return nil, err
	}
	if order != nil {
		return order, nil
	}

	advertiser, err := s.upsertAdvertiser(ctx, user)
	if err != nil {
		return nil, err
	}
	advertiserID, ok := advertiser.ID()
	if !ok {
		return nil, fmt.Errorf("advertiser: %w", domain.ErrMissingID)
	}

	orders, err := s.client.mutate(ctx, orderService, "createOrders", "orders", []domain.Record{{
		"name":         user.Name,
		"advertiserId": advertiserID,
		"traffickerId": s.traffickerID,
		"externalId":   user.Fullname,
	}})
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, fmt.Errorf("create orders: %w", domain.ErrEmptyResult)
	}
	return orders[0], nil
}

func (s *OrderService) upsertAdvertiser(ctx context.Context, user domain.User) (domain.Record, error) {
	company, err := s.findByExternalID(ctx, companyService, "getCompaniesByStatement", user.Fullname)
	if err != nil {
		return nil, err
	}
	if company != nil {
		return company, nil
	}

	companies, err := s.client.mutate(ctx, companyService, "createCompanies", "companies", []domain.Record{{
		"name":       user.Name,
		"type":       companyTypeAdvertiser,
		"externalId": user.Fullname,
	}})
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return nil, fmt.Errorf("create companies: %w", domain.ErrEmptyResult)
	}
	return companies[0], nil
}

func (s *OrderService) findByExternalID(ctx context.Context, service, method, externalID string) (domain.Record, error) {
	stmt := port.NewStatement("WHERE externalId = :externalId", 1,
		port.TextValue("externalId", externalID))
	page, err := s.client.getByStatement(ctx, service, method, stmt)
	if err != nil {
		return nil, err
	}
	return page.First(), nil
}

var _ port.OrderService = (*OrderService)(nil)
