package metadata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Its-donkey/archambeau-site/internal/ui/platforms/youtube"
)

// WatchPageScraper reads Open Graph tags from the public watch page. It needs
// no credentials.
type WatchPageScraper struct {
	client  *http.Client
	baseURL string
}

// Collect fetches and parses the watch page of videoID.
func (s *WatchPageScraper) Collect(ctx context.Context, videoID string) (*Metadata, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	target := youtube.WatchURL(videoID)
	if s.baseURL != "" {
		target = strings.TrimSuffix(s.baseURL, "/") + "/watch?v=" + videoID
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	client := s.client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch watch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, 2*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	md := &Metadata{Source: "watch-page"}
	if title, exists := doc.Find(`meta[property="og:title"]`).Attr("content"); exists {
		md.Title = strings.TrimSpace(title)
	}
	if md.Title == "" {
		md.Title = strings.TrimSpace(doc.Find("title").Text())
		md.Title = strings.TrimSpace(strings.TrimSuffix(md.Title, "- YouTube"))
	}
	if desc, exists := doc.Find(`meta[property="og:description"]`).Attr("content"); exists {
		md.Description = strings.TrimSpace(desc)
	}
	if md.Title == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVideo, videoID)
	}
	return md, nil
}
