package sync

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/researchaccelerator-hub/youtube-catalog-sync/model"
)

// MockCatalogClient is a testify mock implementation of model.CatalogClient.
type MockCatalogClient struct {
	mock.Mock
}

func (m *MockCatalogClient) Connect(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogClient) Disconnect(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogClient) ListUploads(ctx context.Context, channelID, pageToken string) (*model.ListPage, error) {
	args := m.Called(ctx, channelID, pageToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ListPage), args.Error(1)
}

func (m *MockCatalogClient) GetVideoDetails(ctx context.Context, ids []string) ([]*model.VideoDetails, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.VideoDetails), args.Error(1)
}

// fakeCatalogClient is a scripted in-memory remote: a fixed listing plus a
// details table. It records the size of every detail batch so tests can
// check the batch cap, and serves pages of up to pageSize items with
// continuation tokens, newest first.
type fakeCatalogClient struct {
	listing  []*model.VideoListing
	details  map[string]*model.VideoDetails
	pageSize int

	detailBatches [][]string
}

func newFakeCatalogClient(listing []*model.VideoListing, details map[string]*model.VideoDetails) *fakeCatalogClient {
	return &fakeCatalogClient{
		listing:  listing,
		details:  details,
		pageSize: 50,
	}
}

func (f *fakeCatalogClient) Connect(ctx context.Context) error    { return nil }
func (f *fakeCatalogClient) Disconnect(ctx context.Context) error { return nil }

func (f *fakeCatalogClient) ListUploads(ctx context.Context, channelID, pageToken string) (*model.ListPage, error) {
	start := 0
	if pageToken != "" {
		for i, item := range f.listing {
			if item.ID == pageToken {
				start = i
				break
			}
		}
	}

	end := start + f.pageSize
	if end > len(f.listing) {
		end = len(f.listing)
	}

	page := &model.ListPage{Items: f.listing[start:end]}
	if end < len(f.listing) {
		page.NextPageToken = f.listing[end].ID
	}
	return page, nil
}

func (f *fakeCatalogClient) GetVideoDetails(ctx context.Context, ids []string) ([]*model.VideoDetails, error) {
	f.detailBatches = append(f.detailBatches, ids)

	out := make([]*model.VideoDetails, 0, len(ids))
	for _, id := range ids {
		if d, ok := f.details[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}
