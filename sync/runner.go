// Package sync implements the reconciliation engine: incremental discovery
// of new uploads, batched refresh of volatile statistics, and the
// merge/sort/normalize step that produces the persisted catalog.
package sync

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/researchaccelerator-hub/youtube-catalog-sync/common"
	"github.com/researchaccelerator-hub/youtube-catalog-sync/model"
	"github.com/researchaccelerator-hub/youtube-catalog-sync/store"
)

// Runner orchestrates one full synchronization run.
type Runner struct {
	cfg    common.Config
	client model.CatalogClient
	store  *store.CatalogStore
}

// NewRunner wires a runner from its collaborators. The client is passed in
// rather than constructed here so the engine can run against a fake remote
// in tests.
func NewRunner(cfg common.Config, client model.CatalogClient, st *store.CatalogStore) *Runner {
	return &Runner{
		cfg:    cfg,
		client: client,
		store:  st,
	}
}

// Run performs one sync: load the catalog, discover and hydrate new
// uploads, refresh statistics on known records, merge, sort, normalize and
// save. The steps are strictly sequential and the save only happens after
// every earlier step succeeded, so a failed run leaves the catalog file
// exactly as it was.
func (r *Runner) Run(ctx context.Context) error {
	syncID := common.GenerateSyncID()
	log.Info().
		Str("sync_id", syncID).
		Str("channel_id", r.cfg.ChannelID).
		Str("catalog", r.store.Path()).
		Msg("Starting catalog sync")

	existing, err := r.store.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	if err := r.client.Connect(ctx); err != nil {
		return fmt.Errorf("connect catalog client: %w", err)
	}
	defer func() {
		if err := r.client.Disconnect(ctx); err != nil {
			log.Warn().Err(err).Msg("Error disconnecting catalog client")
		}
	}()

	known := make(map[string]struct{}, len(existing))
	for _, rec := range existing {
		known[rec.ID] = struct{}{}
	}

	fresh, err := NewFetcher(r.client).FetchNew(ctx, r.cfg.ChannelID, known)
	if err != nil {
		log.Error().Err(err).Str("sync_id", syncID).Msg("Incremental fetch failed")
		return err
	}

	if err := NewRefresher(r.client).Refresh(ctx, existing); err != nil {
		log.Error().Err(err).Str("sync_id", syncID).Msg("Statistics refresh failed")
		return err
	}

	merged := mergeAndSort(existing, fresh)

	if err := r.store.Save(merged); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}

	log.Info().
		Str("sync_id", syncID).
		Int("existing", len(existing)).
		Int("new", len(fresh)).
		Int("total", len(merged)).
		Msg("Catalog sync complete")

	return nil
}
