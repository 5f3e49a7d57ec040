package sync

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/researchaccelerator-hub/youtube-catalog-sync/chunk"
	"github.com/researchaccelerator-hub/youtube-catalog-sync/model"
)

// DetailBatchSize is the number of video IDs sent per detail call, the
// maximum the API accepts.
const DetailBatchSize = 50

// Fetcher discovers videos that are not yet in the local catalog and
// hydrates them with duration and statistics.
type Fetcher struct {
	client model.CatalogClient
}

// NewFetcher creates a fetcher backed by the given catalog client.
func NewFetcher(client model.CatalogClient) *Fetcher {
	return &Fetcher{client: client}
}

// FetchNew walks the channel's uploads listing and returns fully hydrated
// records for every identifier absent from known. An empty channel yields
// no records and issues no detail call. Any listing or hydration failure
// aborts the fetch; nothing partial is returned.
func (f *Fetcher) FetchNew(ctx context.Context, channelID string, known map[string]struct{}) ([]*model.VideoRecord, error) {
	log.Info().Str("channel_id", channelID).Int("known_count", len(known)).Msg("Starting incremental fetch")

	var fresh []*model.VideoRecord
	pages := 0

	// Listing pages can overlap when the upload window shifts mid-walk, so
	// IDs discovered earlier in this run are skipped too, not just the ones
	// already in the catalog.
	seen := make(map[string]struct{})

	it := NewPageIterator(f.client, channelID)
	for {
		page, err := it.Next(ctx)
		if err != nil {
			return nil, err
		}
		if page == nil {
			break
		}
		pages++

		for _, item := range page.Items {
			if _, ok := known[item.ID]; ok {
				continue
			}
			if _, ok := seen[item.ID]; ok {
				continue
			}
			seen[item.ID] = struct{}{}
			// Provisional record; duration and counts arrive with hydration.
			fresh = append(fresh, &model.VideoRecord{
				ID:          item.ID,
				Title:       item.Title,
				PublishedAt: item.PublishedAt,
			})
		}
	}

	if len(fresh) == 0 {
		log.Info().Str("channel_id", channelID).Int("pages", pages).Msg("No new videos discovered")
		return nil, nil
	}

	ids := make([]string, 0, len(fresh))
	for _, rec := range fresh {
		ids = append(ids, rec.ID)
	}

	for _, batch := range chunk.Split(ids, DetailBatchSize) {
		details, err := f.client.GetVideoDetails(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("hydrate new videos: %w", err)
		}
		applyDetails(fresh, details)
	}

	log.Info().
		Str("channel_id", channelID).
		Int("pages", pages).
		Int("new_count", len(fresh)).
		Msg("Incremental fetch complete")

	return fresh, nil
}
