// Package metadata looks up public details of the videos the admin editor
// adds to the media carousel.
package metadata

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/option"

	"github.com/Its-donkey/archambeau-site/internal/ui/platforms/youtube"
	"github.com/Its-donkey/archambeau-site/logging"
)

// ErrUnknownVideo is returned when no collector can resolve a video.
var ErrUnknownVideo = errors.New("video not found")

// Metadata represents collected information about a video.
type Metadata struct {
	VideoID      string
	Title        string
	Description  string
	ChannelTitle string
	Source       string
}

// VideoMetadataCollector resolves one video ID.
type VideoMetadataCollector interface {
	Collect(ctx context.Context, videoID string) (*Metadata, error)
}

// Service tries each collector in turn and returns the first answer.
type Service struct {
	collectors []VideoMetadataCollector
	logger     *logging.Logger
}

// NewService builds the default collector chain: the Data API when a key is
// available, then the public watch page.
func NewService(httpClient *http.Client, logger *logging.Logger, youtubeAPIKey string, opts ...option.ClientOption) *Service {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{
		collectors: []VideoMetadataCollector{
			&YouTubeMetaCollect{logger: logger, apiKey: youtubeAPIKey, opts: opts},
			&WatchPageScraper{client: httpClient},
		},
		logger: logger,
	}
}

// NewServiceWith uses the given collectors in order.
func NewServiceWith(logger *logging.Logger, collectors ...VideoMetadataCollector) *Service {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{collectors: collectors, logger: logger}
}

// Fetch resolves any accepted video reference (URL or bare ID).
func (s *Service) Fetch(ctx context.Context, ref string) (*Metadata, error) {
	videoID, ok := youtube.ExtractVideoID(ref)
	if !ok {
		return nil, fmt.Errorf("invalid video reference %q", ref)
	}

	var lastErr error
	for _, c := range s.collectors {
		md, err := c.Collect(ctx, videoID)
		if err == nil && md != nil && strings.TrimSpace(md.Title) != "" {
			md.VideoID = videoID
			return md, nil
		}
		if err != nil {
			lastErr = err
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrUnknownVideo
}
