// Package client provides the YouTube Data API implementation of the
// remote catalog capabilities the sync engine consumes.
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/researchaccelerator-hub/youtube-catalog-sync/model"
)

// PageSize is the number of listing items requested per page, the maximum
// the API allows for playlistItems.list.
const PageSize = 50

// MaxDetailBatch is the maximum number of video IDs accepted by a single
// videos.list call.
const MaxDetailBatch = 50

// YouTubeCatalogClient implements model.CatalogClient against the YouTube
// Data API v3.
type YouTubeCatalogClient struct {
	service *ytapi.Service
	apiKey  string

	// Map of channel ID -> uploads playlist ID, resolved on first use
	uploadsCache map[string]string
}

// NewYouTubeCatalogClient creates a new YouTube catalog client.
func NewYouTubeCatalogClient(apiKey string) (*YouTubeCatalogClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	return &YouTubeCatalogClient{
		apiKey:       apiKey,
		uploadsCache: make(map[string]string),
	}, nil
}

// Connect establishes a connection to the YouTube API.
func (c *YouTubeCatalogClient) Connect(ctx context.Context) error {
	log.Info().Msg("Connecting to YouTube API")

	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	service, err := ytapi.NewService(ctx, option.WithAPIKey(c.apiKey), option.WithHTTPClient(httpClient))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create YouTube service")
		return fmt.Errorf("failed to create YouTube service: %w", err)
	}

	c.service = service
	log.Info().Msg("Connected to YouTube API successfully")
	return nil
}

// Disconnect closes the connection to the YouTube API.
func (c *YouTubeCatalogClient) Disconnect(ctx context.Context) error {
	// No explicit disconnect needed for the YouTube API client
	c.service = nil
	return nil
}

// resolveUploadsPlaylist returns the uploads playlist ID for a channel,
// caching the answer so pagination costs one channels.list call per run.
func (c *YouTubeCatalogClient) resolveUploadsPlaylist(ctx context.Context, channelID string) (string, error) {
	if id, ok := c.uploadsCache[channelID]; ok {
		return id, nil
	}

	var part = []string{"contentDetails"}
	var call *ytapi.ChannelsListCall

	if len(channelID) > 0 && channelID[0] == '@' {
		// Handle username format (@username)
		call = c.service.Channels.List(part).ForUsername(channelID[1:])
	} else if len(channelID) > 2 && channelID[0:2] == "UC" {
		// Handle channel ID format (UCxxx...)
		call = c.service.Channels.List(part).Id(channelID)
	} else {
		// Try as username without @ symbol
		call = c.service.Channels.List(part).ForUsername(channelID)
	}

	response, err := call.MaxResults(1).Context(ctx).Do()
	if err != nil {
		log.Error().Err(err).Str("channel_id", channelID).Msg("Failed to get channel from YouTube API")
		return "", fmt.Errorf("failed to get channel from YouTube API: %w", err)
	}

	if len(response.Items) == 0 {
		log.Error().Str("channel_id", channelID).Msg("Channel not found on YouTube")
		return "", fmt.Errorf("channel not found on YouTube: %s", channelID)
	}

	uploadsID := response.Items[0].ContentDetails.RelatedPlaylists.Uploads
	c.uploadsCache[channelID] = uploadsID
	return uploadsID, nil
}

// ListUploads retrieves one page of the channel's uploads playlist, newest
// first. Pass the NextPageToken of the previous page to continue; an empty
// NextPageToken on the result means the listing is exhausted.
func (c *YouTubeCatalogClient) ListUploads(ctx context.Context, channelID, pageToken string) (*model.ListPage, error) {
	if c.service == nil {
		return nil, fmt.Errorf("YouTube client not connected")
	}

	uploadsID, err := c.resolveUploadsPlaylist(ctx, channelID)
	if err != nil {
		return nil, err
	}

	call := c.service.PlaylistItems.List([]string{"snippet", "contentDetails"}).
		PlaylistId(uploadsID).
		MaxResults(PageSize).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	response, err := call.Do()
	if err != nil {
		log.Error().Err(err).Str("playlist_id", uploadsID).Msg("Failed to list uploads playlist")
		return nil, fmt.Errorf("failed to list uploads playlist: %w", err)
	}

	page := &model.ListPage{
		Items:         make([]*model.VideoListing, 0, len(response.Items)),
		NextPageToken: response.NextPageToken,
	}
	for _, item := range response.Items {
		if item.ContentDetails == nil || item.ContentDetails.VideoId == "" {
			continue
		}
		listing := &model.VideoListing{
			ID: item.ContentDetails.VideoId,
		}
		if item.Snippet != nil {
			listing.Title = item.Snippet.Title
			listing.PublishedAt = item.Snippet.PublishedAt
		}
		page.Items = append(page.Items, listing)
	}

	log.Debug().
		Str("channel_id", channelID).
		Int("item_count", len(page.Items)).
		Bool("has_next_page", page.NextPageToken != "").
		Msg("Retrieved uploads page")

	return page, nil
}

// GetVideoDetails retrieves duration and statistics for a batch of videos.
// The batch is capped at MaxDetailBatch IDs; callers split larger sets
// before calling. Videos the API does not return are simply absent from
// the result.
func (c *YouTubeCatalogClient) GetVideoDetails(ctx context.Context, ids []string) ([]*model.VideoDetails, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > MaxDetailBatch {
		return nil, fmt.Errorf("detail batch of %d exceeds maximum of %d", len(ids), MaxDetailBatch)
	}
	if c.service == nil {
		return nil, fmt.Errorf("YouTube client not connected")
	}

	call := c.service.Videos.List([]string{"contentDetails", "statistics"}).
		Id(ids...).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		log.Error().Err(err).Strs("video_ids", ids).Msg("Failed to get video details")
		return nil, fmt.Errorf("failed to get video details: %w", err)
	}

	details := make([]*model.VideoDetails, 0, len(response.Items))
	for _, item := range response.Items {
		d := &model.VideoDetails{ID: item.Id}
		if item.ContentDetails != nil {
			d.Duration = item.ContentDetails.Duration
		}
		if item.Statistics != nil {
			d.ViewCount = int64(item.Statistics.ViewCount)
			d.LikeCount = int64(item.Statistics.LikeCount)
		}
		details = append(details, d)
	}

	log.Debug().
		Int("requested", len(ids)).
		Int("returned", len(details)).
		Msg("Retrieved video details")

	return details, nil
}
