package postgres

import (
	"context"
	"dfp-sync/internal/core/domain"
	"dfp-sync/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SyncRepository implements port.SyncRepository using pgxpool for
// PostgreSQL.
type SyncRepository struct {
	pool *pgxpool.Pool
}

// NewSyncRepository returns a new repository instance.
func NewSyncRepository(pool *pgxpool.Pool) *SyncRepository {
	return &SyncRepository{pool: pool}
}

// RecordSync inserts a ledger entry. Replaying an entry with the same id
// is a no-op.
func (r *SyncRepository) RecordSync(ctx context.Context, event domain.SyncEvent) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO lineitem_syncs
            (id, campaign_id, campaign_fullname, lineitem_id, action, changed, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (id) DO NOTHING`,
		event.ID, event.CampaignID, event.CampaignFullname, event.LineItemID,
		string(event.Action), event.Changed, event.CreatedAt)
	return err
}

// ListSyncs returns up to limit entries for the campaign, newest first.
func (r *SyncRepository) ListSyncs(ctx context.Context, campaignFullname string, limit int) ([]domain.SyncEvent, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, campaign_id, campaign_fullname, lineitem_id, action, changed, created_at
        FROM lineitem_syncs
        WHERE campaign_fullname = $1
        ORDER BY created_at DESC
        LIMIT $2`, campaignFullname, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SyncEvent, error) {
		var (
			e      domain.SyncEvent
			action string
		)
		err := row.Scan(&e.ID, &e.CampaignID, &e.CampaignFullname, &e.LineItemID, &action, &e.Changed, &e.CreatedAt)
		e.Action = domain.SyncAction(action)
		return e, err
	})
}

var _ port.SyncRepository = (*SyncRepository)(nil)
