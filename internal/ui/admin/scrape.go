package admin

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Its-donkey/archambeau-site/internal/ui/model"
	"github.com/Its-donkey/archambeau-site/internal/ui/platforms/youtube"
)

// ScrapeVideos reads the carousel currently deployed in media.html. Slides
// whose embed URL does not yield a video ID are skipped; a slide without a
// heading is titled by its position.
func ScrapeVideos(r io.Reader) ([]model.VideoRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse media page: %w", err)
	}
	var videos []model.VideoRecord
	doc.Find(".carousel-slide").Each(func(i int, slide *goquery.Selection) {
		src, _ := slide.Find("iframe").First().Attr("src")
		id, ok := youtube.ExtractVideoID(src)
		if !ok {
			return
		}
		title := strings.TrimSpace(slide.Find("h3").First().Text())
		if title == "" {
			title = DefaultTitle(i)
		}
		videos = append(videos, model.VideoRecord{
			ID:      len(videos),
			VideoID: id,
			Title:   title,
			Order:   model.VideoOrder(len(videos) + 1),
		})
	})
	return videos, nil
}
