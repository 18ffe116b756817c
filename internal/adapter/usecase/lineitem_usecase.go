package usecase

import (
	"context"
	"dfp-sync/internal/core/domain"
	"dfp-sync/internal/core/port"
	"dfp-sync/internal/metrics"
	"fmt"
	"log/slog"
)

const (
	defaultSyncsLimit = 50
	maxSyncsLimit     = 500

	statusActive = "ACTIVE"
)

// LineItemUseCase keeps ad server line items in step with campaigns. It
// orchestrates the ad server ports and the sync ledger to implement the
// port.LineItemUseCase interface. Calls are sequential and hold no state
// between operations, so lookup-before-create is not atomic: two callers
// syncing the same campaign at once may both create a line item.
type LineItemUseCase struct {
	lineItems    port.LineItemService
	associations port.AssociationService
	orders       port.OrderService
	syncs        port.SyncRepository
	mapper       Mapper
	logger       *slog.Logger
}

// NewLineItemUseCase creates a new usecase. A nil syncs disables the
// ledger.
func NewLineItemUseCase(
	lineItems port.LineItemService,
	associations port.AssociationService,
	orders port.OrderService,
	syncs port.SyncRepository,
	mapper Mapper,
	logger *slog.Logger,
) *LineItemUseCase {
	if syncs == nil {
		syncs = nopSyncRepository{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LineItemUseCase{
		lineItems:    lineItems,
		associations: associations,
		orders:       orders,
		syncs:        syncs,
		mapper:       mapper,
		logger:       logger,
	}
}

// GetLineItem looks the campaign's line item up by external id.
func (u *LineItemUseCase) GetLineItem(ctx context.Context, campaign domain.Campaign) (domain.Record, error) {
	stmt := port.NewStatement("WHERE externalId = :externalId", 1,
		port.TextValue("externalId", campaign.Fullname))
	page, err := u.lineItems.GetLineItemsByStatement(ctx, stmt)
	if err != nil {
		return nil, err
	}
	return page.First(), nil
}

// CreateLineItem files a new line item under the user's order.
func (u *LineItemUseCase) CreateLineItem(ctx context.Context, user domain.User, campaign domain.Campaign) (created domain.Record, err error) {
	defer func() { metrics.RecordSync(string(domain.SyncActionCreated), err) }()

	order, err := u.orders.UpsertOrder(ctx, user)
	if err != nil {
		return nil, err
	}
	payload, err := u.mapper.CampaignToLineItem(campaign, order, nil)
	if err != nil {
		return nil, err
	}
	lineItems, err := u.lineItems.CreateLineItems(ctx, []domain.Record{payload})
	if err != nil {
		return nil, err
	}
	if len(lineItems) == 0 {
		return nil, fmt.Errorf("create lineitems: %w", domain.ErrEmptyResult)
	}

	created = lineItems[0]
	id, _ := created.ID()
	u.record(ctx, domain.NewSyncEvent(domain.SyncActionCreated, id, true).ForCampaign(campaign))
	return created, nil
}

// UpsertLineItem creates the campaign's line item when absent and updates
// it otherwise. Archived line items are rejected without an update call.
func (u *LineItemUseCase) UpsertLineItem(ctx context.Context, user domain.User, campaign domain.Campaign) (domain.Record, error) {
	existing, err := u.GetLineItem(ctx, campaign)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return u.CreateLineItem(ctx, user, campaign)
	}
	return u.updateLineItem(ctx, campaign, existing)
}

func (u *LineItemUseCase) updateLineItem(ctx context.Context, campaign domain.Campaign, existing domain.Record) (updated domain.Record, err error) {
	defer func() { metrics.RecordSync(string(domain.SyncActionUpdated), err) }()

	id, _ := existing.ID()
	if existing.IsArchived() {
		return nil, &domain.ArchivedLineItemError{LineItemID: id, CampaignID: campaign.ID}
	}

	payload, err := u.mapper.CampaignToLineItem(campaign, nil, existing)
	if err != nil {
		return nil, err
	}
	lineItems, err := u.lineItems.UpdateLineItems(ctx, []domain.Record{payload})
	if err != nil {
		return nil, err
	}
	if len(lineItems) == 0 {
		return nil, fmt.Errorf("update lineitems: %w", domain.ErrEmptyResult)
	}

	u.record(ctx, domain.NewSyncEvent(domain.SyncActionUpdated, id, true).ForCampaign(campaign))
	return lineItems[0], nil
}

// AssociateWithCreative returns the association between the line item and
// the creative, creating it when none exists.
func (u *LineItemUseCase) AssociateWithCreative(ctx context.Context, lineItem, creative domain.Record) (association domain.Record, err error) {
	defer func() { metrics.RecordSync(string(domain.SyncActionAssociated), err) }()

	lineItemID, ok := lineItem.ID()
	if !ok {
		return nil, fmt.Errorf("lineitem: %w", domain.ErrMissingID)
	}
	creativeID, ok := creative.ID()
	if !ok {
		return nil, fmt.Errorf("creative: %w", domain.ErrMissingID)
	}

	stmt := port.NewStatement("WHERE lineItemId = :lineItemId AND creativeId = :creativeId", 1,
		port.NumberValue("lineItemId", lineItemID),
		port.NumberValue("creativeId", creativeID))
	page, err := u.associations.GetLineItemCreativeAssociationsByStatement(ctx, stmt)
	if err != nil {
		return nil, err
	}
	if found := page.First(); found != nil {
		return found, nil
	}

	associations, err := u.associations.CreateLineItemCreativeAssociations(ctx, []domain.Record{{
		"lineItemId": lineItemID,
		"creativeId": creativeID,
	}})
	if err != nil {
		return nil, err
	}
	if len(associations) == 0 {
		return nil, fmt.Errorf("create associations: %w", domain.ErrEmptyResult)
	}

	event := domain.NewSyncEvent(domain.SyncActionAssociated, lineItemID, true)
	event.CampaignFullname = u.externalID(ctx, lineItem, lineItemID)
	u.record(ctx, event)
	return associations[0], nil
}

// externalID returns the campaign fullname stored on the line item,
// fetching the line item when the caller only supplied its id.
func (u *LineItemUseCase) externalID(ctx context.Context, lineItem domain.Record, lineItemID int64) string {
	if fullname := lineItem.String("externalId"); fullname != "" {
		return fullname
	}
	stmt := port.NewStatement("WHERE id = :id", 1, port.NumberValue("id", lineItemID))
	page, err := u.lineItems.GetLineItemsByStatement(ctx, stmt)
	if err != nil {
		u.logger.Warn("resolve lineitem external id failed",
			slog.Int64("lineitem_id", lineItemID),
			slog.Any("error", err))
		return ""
	}
	return page.First().String("externalId")
}

// Deactivate stops every active creative association of the campaign's
// line item. A campaign without a line item has nothing to stop and
// counts as deactivated.
func (u *LineItemUseCase) Deactivate(ctx context.Context, campaign domain.Campaign) (changed bool, err error) {
	defer func() { metrics.RecordSync(string(domain.SyncActionDeactivated), err) }()

	lineItem, err := u.GetLineItem(ctx, campaign)
	if err != nil {
		return false, err
	}
	if lineItem == nil {
		return true, nil
	}
	lineItemID, ok := lineItem.ID()
	if !ok {
		return false, fmt.Errorf("lineitem: %w", domain.ErrMissingID)
	}

	stmt := port.NewStatement("WHERE lineItemId = :lineItemId AND status = :status", 0,
		port.NumberValue("lineItemId", lineItemID),
		port.TextValue("status", statusActive))
	page, err := u.associations.GetLineItemCreativeAssociationsByStatement(ctx, stmt)
	if err != nil {
		return false, err
	}
	if page.First() == nil {
		return false, nil
	}

	result, err := u.associations.PerformLineItemCreativeAssociationAction(ctx, port.DeactivateAssociationsAction, stmt)
	if err != nil {
		return false, err
	}
	changed = result != nil && result.NumChanges > 0

	u.record(ctx, domain.NewSyncEvent(domain.SyncActionDeactivated, lineItemID, changed).ForCampaign(campaign))
	return changed, nil
}

// ListSyncs returns the campaign's sync history, newest first.
func (u *LineItemUseCase) ListSyncs(ctx context.Context, campaignFullname string, limit int) ([]domain.SyncEvent, error) {
	if limit <= 0 {
		limit = defaultSyncsLimit
	}
	if limit > maxSyncsLimit {
		limit = maxSyncsLimit
	}
	return u.syncs.ListSyncs(ctx, campaignFullname, limit)
}

// record writes a ledger entry. The remote change already happened, so a
// ledger failure is logged rather than returned.
func (u *LineItemUseCase) record(ctx context.Context, event domain.SyncEvent) {
	if err := u.syncs.RecordSync(ctx, event); err != nil {
		u.logger.Warn("record sync failed",
			slog.String("campaign", event.CampaignFullname),
			slog.String("action", string(event.Action)),
			slog.Any("error", err))
	}
}

type nopSyncRepository struct{}

func (nopSyncRepository) RecordSync(context.Context, domain.SyncEvent) error { return nil }

func (nopSyncRepository) ListSyncs(context.Context, string, int) ([]domain.SyncEvent, error) {
	return []domain.SyncEvent{}, nil
}

var _ port.LineItemUseCase = (*LineItemUseCase)(nil)
