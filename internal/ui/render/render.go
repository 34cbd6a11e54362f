// Package render turns content records into the markup fragments the page
// runtime inserts. Every plain-text value is escaped; only RichText and
// Paragraphs produce tags derived from content.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/Its-donkey/archambeau-site/internal/ui/model"
	"github.com/Its-donkey/archambeau-site/internal/ui/platforms/youtube"
)

const iframeAllow = "accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture"

// Slide renders one carousel pane. The first slide starts active.
func Slide(video model.VideoRecord, index int) string {
	var b strings.Builder
	b.WriteString(`<div class="carousel-slide`)
	if index == 0 {
		b.WriteString(` active`)
	}
	b.WriteString(`"><div class="video-wrapper">`)
	b.WriteString(`<iframe src="` + html.EscapeString(youtube.EmbedURL(video.VideoID)) + `" frameborder="0" allow="` + iframeAllow + `" allowfullscreen></iframe>`)
	b.WriteString(`</div><h3>`)
	b.WriteString(html.EscapeString(video.Title))
	b.WriteString(`</h3></div>`)
	return b.String()
}

// Slides renders the carousel track contents.
func Slides(videos []model.VideoRecord) string {
	var b strings.Builder
	for i, v := range videos {
		b.WriteString(Slide(v, i))
	}
	return b.String()
}

// Dot renders the indicator button for slide index.
func Dot(index int) string {
	class := "carousel-dot"
	if index == 0 {
		class += " active"
	}
	return fmt.Sprintf(`<button class="%s" data-slide="%d" aria-label="Go to slide %d"></button>`, class, index, index+1)
}

// Dots renders count indicator buttons.
func Dots(count int) string {
	var b strings.Builder
	for i := 0; i < count; i++ {
		b.WriteString(Dot(i))
	}
	return b.String()
}

// FeatureCards renders the teaching/consulting feature grid.
func FeatureCards(features []model.Feature) string {
	var b strings.Builder
	for _, f := range features {
		title := strings.TrimSpace(f.Title)
		desc := strings.TrimSpace(f.Description)
		if title == "" && desc == "" {
			continue
		}
		b.WriteString(`<div class="feature-card">`)
		if title != "" {
			b.WriteString(`<h3>` + html.EscapeString(title) + `</h3>`)
		}
		if desc != "" {
			b.WriteString(`<p>` + html.EscapeString(desc) + `</p>`)
		}
		b.WriteString(`</div>`)
	}
	return b.String()
}

// GalleryItems renders the gallery grid. Images without a source are skipped.
func GalleryItems(images []model.GalleryImage) string {
	var b strings.Builder
	for _, img := range images {
		src := strings.TrimSpace(img.Src)
		if src == "" {
			continue
		}
		b.WriteString(`<div class="gallery-item">`)
		b.WriteString(`<img src="` + html.EscapeString(src) + `" alt="` + html.EscapeString(img.Alt) + `" loading="lazy">`)
		b.WriteString(`<div class="gallery-overlay"><p>` + html.EscapeString(img.Caption) + `</p></div>`)
		b.WriteString(`</div>`)
	}
	return b.String()
}

// PerformanceCards renders the upcoming performance list.
func PerformanceCards(cards []model.PerformanceCard) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(`<article class="performance-card">`)
		b.WriteString(`<div class="performance-date"><span class="performance-day">` + html.EscapeString(c.DateLabel) + `</span>`)
		if c.TimeLabel != "" {
			b.WriteString(`<span class="performance-time">` + html.EscapeString(c.TimeLabel) + `</span>`)
		}
		b.WriteString(`</div><div class="performance-details">`)
		b.WriteString(`<h3>` + html.EscapeString(c.Title) + `</h3>`)
		if c.Venue != "" {
			b.WriteString(`<p class="performance-venue">` + html.EscapeString(c.Venue) + `</p>`)
		}
		if c.Ensemble != "" {
			b.WriteString(`<p class="performance-ensemble">with ` + html.EscapeString(c.Ensemble) + `</p>`)
		}
		if c.Description != "" {
			b.WriteString(`<p class="performance-description">` + html.EscapeString(c.Description) + `</p>`)
		}
		if c.TicketURL != "" {
			b.WriteString(`<a class="btn-tickets" href="` + html.EscapeString(c.TicketURL) + `" target="_blank" rel="noopener noreferrer">Get Tickets</a>`)
		}
		b.WriteString(`</div></article>`)
	}
	return b.String()
}

// Message renders a single status paragraph, used for empty and unavailable states.
func Message(class, text string) string {
	return `<p class="` + html.EscapeString(class) + `">` + html.EscapeString(text) + `</p>`
}
