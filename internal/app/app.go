package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"dfp-sync/db/migrations"
	"dfp-sync/internal/adapter/adserver"
	"dfp-sync/internal/adapter/postgres"
	"dfp-sync/internal/adapter/usecase"
	"dfp-sync/internal/config"
	"dfp-sync/internal/core/port"
	"dfp-sync/internal/db"
)

// App holds the wired synchronizer shared by the server and the CLI.
type App struct {
	UseCase *usecase.LineItemUseCase
	pool    *pgxpool.Pool
}

// New wires the ad server adapters, the optional sync ledger and the line
// item use case from cfg. Close must be called to release the ledger pool.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	loc, err := cfg.AdServer.Location()
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", cfg.AdServer.TimeZone, err)
	}

	client, err := adserver.NewClient(cfg.AdServer)
	if err != nil {
		return nil, err
	}

	a := &App{}
	var syncs port.SyncRepository
	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			from, err := db.Migrate(cfg.Psql.Addr.String())
			if err != nil {
				return nil, fmt.Errorf("migrate ledger: %w", err)
			}
			logger.Info("ledger migrated", slog.Uint64("from", uint64(from)), slog.Uint64("to", uint64(migrations.Version)))
		}
		a.pool, err = db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, fmt.Errorf("connect ledger: %w", err)
		}
		syncs = postgres.NewSyncRepository(a.pool)
	} else {
		logger.Info("sync ledger disabled")
	}

	a.UseCase = usecase.NewLineItemUseCase(
		adserver.NewLineItemService(client),
		adserver.NewAssociationService(client),
		adserver.NewOrderService(client, cfg.AdServer.TraffickerID),
		syncs,
		usecase.NewMapper(loc, cfg.AdServer.Currency, cfg.AdServer.AdUnitID),
		logger,
	)
	return a, nil
}

// Close releases the ledger pool when one was opened.
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}
