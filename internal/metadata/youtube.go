package metadata

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/Its-donkey/archambeau-site/logging"
)

var errNoAPIKey = errors.New("youtube api key not configured")

// YouTubeMetaCollect reads video snippets from the YouTube Data API.
type YouTubeMetaCollect struct {
	logger *logging.Logger
	apiKey string
	opts   []option.ClientOption
}

// Collect fetches the snippet of a single video.
func (s *YouTubeMetaCollect) Collect(ctx context.Context, videoID string) (*Metadata, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	logInfo := func(category, message string, fields map[string]any) {
		if s.logger != nil {
			s.logger.Info(category, message, fields)
		}
	}
	logError := func(category, message string, err error, fields map[string]any) {
		if s.logger != nil {
			s.logger.Error(category, message, err, fields)
		}
	}

	apiKey := strings.TrimSpace(s.apiKey)
	if apiKey == "" {
		apiKey = strings.TrimSpace(os.Getenv("YOUTUBE_API_KEY"))
	}
	if apiKey == "" {
		return nil, errNoAPIKey
	}
	opts := append([]option.ClientOption{option.WithAPIKey(apiKey)}, s.opts...)
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		logError("Metadata - YouTube", "error creating YouTube service", err, map[string]any{
			"video_id": videoID,
		})
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	videos, err := service.Videos.List([]string{"snippet"}).Id(videoID).Context(ctx).Do()
	if err != nil {
		logError("Metadata - YouTube", "API call error for video", err, map[string]any{
			"video_id": videoID,
		})
		return nil, err
	}
	if len(videos.Items) == 0 || videos.Items[0].Snippet == nil {
		logInfo("Metadata - YouTube", "no video found", map[string]any{"video_id": videoID})
		return nil, fmt.Errorf("%w: %s", ErrUnknownVideo, videoID)
	}

	snippet := videos.Items[0].Snippet
	return &Metadata{
		Title:        strings.TrimSpace(snippet.Title),
		Description:  strings.TrimSpace(snippet.Description),
		ChannelTitle: strings.TrimSpace(snippet.ChannelTitle),
		Source:       "youtube-api",
	}, nil
}
