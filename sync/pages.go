package sync

import (
	"context"
	"fmt"

	"github.com/researchaccelerator-hub/youtube-catalog-sync/model"
)

// PageIterator walks a channel's uploads listing one page at a time. It is
// finite and non-restartable: the only stop condition is the provider
// returning no continuation token, which the iterator surfaces as a nil
// page from Next.
type PageIterator struct {
	client    model.CatalogClient
	channelID string
	token     string
	done      bool
}

// NewPageIterator creates an iterator over the uploads listing of channelID.
func NewPageIterator(client model.CatalogClient, channelID string) *PageIterator {
	return &PageIterator{
		client:    client,
		channelID: channelID,
	}
}

// Next fetches the next page of the listing. It returns nil once the
// listing is exhausted. Any client error ends the iteration permanently.
func (it *PageIterator) Next(ctx context.Context) (*model.ListPage, error) {
	if it.done {
		return nil, nil
	}

	page, err := it.client.ListUploads(ctx, it.channelID, it.token)
	if err != nil {
		it.done = true
		return nil, fmt.Errorf("list uploads for channel %s: %w", it.channelID, err)
	}

	it.token = page.NextPageToken
	if it.token == "" {
		it.done = true
	}
	return page, nil
}
