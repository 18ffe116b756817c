package port

import (
	"context"

	"dfp-sync/internal/core/domain"
)

// SyncRepository persists the sync ledger.
type SyncRepository interface {
	// RecordSync stores one ledger entry.
	RecordSync(ctx context.Context, event domain.SyncEvent) error
	// ListSyncs returns the newest entries for a campaign fullname.
	ListSyncs(ctx context.Context, campaignFullname string, limit int) ([]domain.SyncEvent, error)
}
