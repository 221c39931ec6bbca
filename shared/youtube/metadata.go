package youtube

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

// Metadata is the public description of a video, used to ground URL-based
// analysis prompts when the model cannot ingest the video itself.
type Metadata struct {
	Title        string
	ChannelTitle string
	Description  string
	Duration     string
	DurationSecs int
	ViewCount    uint64
}

// MetadataClient wraps the YouTube Data API for public video lookups.
// Access is key-authenticated; no user account is involved.
type MetadataClient struct {
	service *ytapi.Service
}

func NewMetadataClient(ctx context.Context, apiKey string) (*MetadataClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	service, err := ytapi.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &MetadataClient{service: service}, nil
}

// Lookup fetches title, channel, description, duration and view count for
// a single video ID.
func (c *MetadataClient) Lookup(ctx context.Context, videoID string) (*Metadata, error) {
	resp, err := c.service.Videos.
		List([]string{"snippet", "contentDetails", "statistics"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to look up video %s: %w", videoID, err)
	}

	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("video %s not found", videoID)
	}

	item := resp.Items[0]
	meta := &Metadata{
		Title:        item.Snippet.Title,
		ChannelTitle: item.Snippet.ChannelTitle,
		Description:  item.Snippet.Description,
	}
	if item.ContentDetails != nil {
		meta.Duration = item.ContentDetails.Duration
		meta.DurationSecs = parseDurationSeconds(item.ContentDetails.Duration)
	}
	if item.Statistics != nil {
		meta.ViewCount = item.Statistics.ViewCount
	}

	return meta, nil
}

var isoDurationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// parseDurationSeconds converts an ISO 8601 duration ("PT1M30S",
// "PT2H15M30S") into seconds. Unparseable input yields 0.
func parseDurationSeconds(duration string) int {
	if duration == "" {
		return 0
	}

	matches := isoDurationPattern.FindStringSubmatch(duration)
	if len(matches) == 0 {
		return 0
	}

	var totalSeconds int
	if matches[1] != "" {
		if hours, err := strconv.Atoi(matches[1]); err == nil {
			totalSeconds += hours * 3600
		}
	}
	if matches[2] != "" {
		if minutes, err := strconv.Atoi(matches[2]); err == nil {
			totalSeconds += minutes * 60
		}
	}
	if matches[3] != "" {
		if seconds, err := strconv.Atoi(matches[3]); err == nil {
			totalSeconds += seconds
		}
	}

	return totalSeconds
}
