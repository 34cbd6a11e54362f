package admin

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Its-donkey/archambeau-site/internal/ui/model"
)

const mediaPage = `<!DOCTYPE html><html><body>
<div class="carousel-track">
  <div class="carousel-slide active">
    <div class="video-wrapper"><iframe src="https://www.youtube.com/embed/aaaaaaaaaaa?rel=0"></iframe></div>
    <h3> Chopin Ballade </h3>
  </div>
  <div class="carousel-slide">
    <div class="video-wrapper"><iframe src="https://player.vimeo.com/video/1"></iframe></div>
    <h3>Not YouTube</h3>
  </div>
  <div class="carousel-slide">
    <div class="video-wrapper"><iframe src="https://www.youtube.com/embed/bbbbbbbbbbb"></iframe></div>
  </div>
</div>
</body></html>`

func TestScrapeVideos(t *testing.T) {
	videos, err := ScrapeVideos(strings.NewReader(mediaPage))
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	want := []model.VideoRecord{
		{ID: 0, VideoID: "aaaaaaaaaaa", Title: "Chopin Ballade", Order: 1},
		{ID: 1, VideoID: "bbbbbbbbbbb", Title: "Performance 3", Order: 2},
	}
	if diff := cmp.Diff(want, videos); diff != "" {
		t.Fatalf("unexpected videos (-want +got):\n%s", diff)
	}
}

func TestScrapeVideosWithoutCarousel(t *testing.T) {
	videos, err := ScrapeVideos(strings.NewReader(`<html><body><p>nothing</p></body></html>`))
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	if len(videos) != 0 {
		t.Fatalf("expected no videos, got %+v", videos)
	}
}
