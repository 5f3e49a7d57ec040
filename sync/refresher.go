package sync

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/researchaccelerator-hub/youtube-catalog-sync/chunk"
	"github.com/researchaccelerator-hub/youtube-catalog-sync/model"
)

// Refresher re-fetches the volatile fields of records already in the
// catalog so view and like counts stay current between runs.
type Refresher struct {
	client model.CatalogClient
}

// NewRefresher creates a refresher backed by the given catalog client.
func NewRefresher(client model.CatalogClient) *Refresher {
	return &Refresher{client: client}
}

// Refresh overwrites duration, view count and like count on every record
// the provider returned data for, in batches of DetailBatchSize. Records
// the provider omitted keep their prior values; that is a tolerated
// provider gap, not an error. A failed batch aborts the whole refresh.
func (r *Refresher) Refresh(ctx context.Context, records []*model.VideoRecord) error {
	if len(records) == 0 {
		return nil
	}

	ids := make([]string, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.ID)
	}

	refreshed := 0
	for _, batch := range chunk.Split(ids, DetailBatchSize) {
		details, err := r.client.GetVideoDetails(ctx, batch)
		if err != nil {
			return fmt.Errorf("refresh statistics: %w", err)
		}
		refreshed += applyDetails(records, details)
	}

	log.Info().
		Int("record_count", len(records)).
		Int("refreshed", refreshed).
		Msg("Refreshed catalog statistics")

	return nil
}
