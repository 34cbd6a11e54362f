package admin

import (
	"fmt"
	"strings"

	"github.com/Its-donkey/archambeau-site/internal/ui/model"
	"github.com/Its-donkey/archambeau-site/internal/ui/render"
)

// ArtifactFilename is the name offered for the downloaded update.
const ArtifactFilename = "carousel-update.html"

// Artifact is the carousel markup produced by a save. Publishing it is a
// manual step: the admin pastes it into media.html and redeploys.
type Artifact struct {
	Slides     string
	Indicators string
	Count      int
}

// BuildArtifact renders the slides and indicator dots for videos.
func BuildArtifact(videos []model.VideoRecord) Artifact {
	var slides, dots []string
	for i, v := range videos {
		slides = append(slides, fmt.Sprintf("<!-- Video %d -->\n", i+1)+render.Slide(v, i))
		dots = append(dots, render.Dot(i))
	}
	return Artifact{
		Slides:     strings.Join(slides, "\n"),
		Indicators: strings.Join(dots, "\n"),
		Count:      len(videos),
	}
}

// Document returns the downloadable update file with deployment instructions.
func (a Artifact) Document() string {
	var b strings.Builder
	b.WriteString("<!--\nCAROUSEL UPDATE INSTRUCTIONS\n============================\n\n")
	b.WriteString("Replace the carousel section in media.html (and all theme folders) with this code:\n\n")
	b.WriteString("1. Find the \"carousel-track\" div\n")
	b.WriteString("2. Replace the carousel-slide divs with the new slides below\n")
	b.WriteString("3. Update the carousel-dots section with the new indicators\n\n")
	b.WriteString("SLIDES:\n-->\n")
	b.WriteString(a.Slides)
	b.WriteString("\n\n<!--\nINDICATORS:\n-->\n")
	b.WriteString(a.Indicators)
	b.WriteString("\n\n<!--\nAfter updating, commit and push to GitHub.\n")
	b.WriteString("The changes will appear on your live site after deployment.\n-->\n")
	return b.String()
}
