// Package model contains the data types shared by the catalog store,
// the remote client and the sync engine.
package model

import (
	"context"
	"strconv"
	"time"
)

// VideoRecord is one row of the local catalog dataset.
type VideoRecord struct {
	ID          string
	Title       string
	PublishedAt string // RFC3339 timestamp from the listing; ordering only, never mutated
	Duration    string // ISO-8601 period string as returned by the API (e.g. "PT4M13S")
	ViewCount   int64
	LikeCount   int64
}

// PublishedTime parses the record's publish timestamp. A record with an
// unparseable timestamp sorts as the zero time, i.e. last in a
// newest-first ordering.
func (r *VideoRecord) PublishedTime() time.Time {
	t, err := time.Parse(time.RFC3339, r.PublishedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ParseCount converts a statistics field read back from the catalog file.
// Missing or non-numeric values coerce to zero.
func ParseCount(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// VideoListing is one item from the channel's uploads listing. It carries
// only the identity fields; duration and statistics arrive later through
// a detail call.
type VideoListing struct {
	ID          string
	Title       string
	PublishedAt string
}

// VideoDetails carries the volatile fields returned by a detail call.
type VideoDetails struct {
	ID        string
	Duration  string
	ViewCount int64
	LikeCount int64
}

// ListPage is one page of the uploads listing. NextPageToken is empty on
// the final page; an empty token is the only stop condition callers may
// rely on.
type ListPage struct {
	Items         []*VideoListing
	NextPageToken string
}

// CatalogClient defines the remote capabilities the sync engine depends on.
type CatalogClient interface {
	// Connect establishes a connection to the remote catalog API
	Connect(ctx context.Context) error

	// Disconnect closes the connection to the remote catalog API
	Disconnect(ctx context.Context) error

	// ListUploads retrieves one page of the channel's uploads, newest first
	ListUploads(ctx context.Context, channelID, pageToken string) (*ListPage, error)

	// GetVideoDetails retrieves duration and statistics for up to 50 videos
	GetVideoDetails(ctx context.Context, ids []string) ([]*VideoDetails, error)
}
