package content

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/Its-donkey/archambeau-site/internal/ui/model"
	"github.com/Its-donkey/archambeau-site/internal/ui/render"
)

// DataPrefix is where the CMS publishes page content.
const DataPrefix = "/_data/"

// FormspreeBase is the form endpoint prefix used when contact.json names a form.
const FormspreeBase = "https://formspree.io/f/"

// Anchor selectors bound by the loaders.
const (
	SelHeroTitle    = ".hero-title"
	SelHeroSubtitle = ".hero-subtitle"
	SelHeroLocation = ".hero-location"

	SelAboutText  = ".about-text"
	SelAboutLead  = ".about-text .lead"
	SelAboutImage = ".about-image img"

	SelServiceLead   = ".service-lead"
	SelServiceIntro  = ".service-intro"
	SelFeaturesGrid  = ".features-grid"
	SelCredTitle     = ".credentials-title"
	SelCredContent   = ".credentials-content"
	SelExpertTitle   = ".expertise-title"
	SelExpertContent = ".expertise-content"
	SelCTAText       = ".cta-text"

	SelGalleryGrid = ".gallery-grid"

	SelContactIntro        = ".contact-intro"
	SelContactLocations    = ".contact-locations"
	SelContactAffiliations = ".contact-affiliations"
	SelContactForm         = "#contactForm"

	SelCarouselTrack = ".carousel-track"
	SelCarouselDots  = ".carousel-dots"
)

// Loader describes one page: the resource it fetches, the anchors it may
// write, and how a payload becomes mutations.
type Loader struct {
	Page     Page
	Resource string
	Anchors  []string
	// RebindsCarousel and RebindsLightbox tell the page runtime which
	// controllers must be re-initialised after the mutations are applied.
	RebindsCarousel bool
	RebindsLightbox bool

	plan func(data []byte, p *planner) error
}

// Plan decodes data and returns the mutations for the anchors in caps.
// Fields that are absent or empty produce no mutation.
func (l Loader) Plan(data []byte, caps Capabilities) ([]Mutation, error) {
	if l.plan == nil {
		return nil, fmt.Errorf("no plan for page %q", l.Page)
	}
	p := &planner{caps: caps}
	if err := l.plan(data, p); err != nil {
		return nil, fmt.Errorf("decode %s: %w", l.Resource, err)
	}
	return p.out, nil
}

var loaders = map[Page]Loader{
	PageMedia: {
		Page:            PageMedia,
		Resource:        DataPrefix + "videos.json",
		Anchors:         []string{SelCarouselTrack, SelCarouselDots},
		RebindsCarousel: true,
		plan:            planMedia,
	},
	PageAbout: {
		Page:     PageAbout,
		Resource: DataPrefix + "about.json",
		Anchors:  []string{SelAboutText, SelAboutLead, SelAboutImage},
		plan:     planAbout,
	},
	PageTeaching: {
		Page:     PageTeaching,
		Resource: DataPrefix + "teaching.json",
		Anchors:  []string{SelServiceLead, SelServiceIntro, SelFeaturesGrid, SelCredTitle, SelCredContent, SelCTAText},
		plan:     planService(SelCredTitle, SelCredContent, func(c model.ServiceContent) (string, string) { return c.CredentialsTitle, c.Credentials }),
	},
	PageConsulting: {
		Page:     PageConsulting,
		Resource: DataPrefix + "consulting.json",
		Anchors:  []string{SelServiceLead, SelServiceIntro, SelFeaturesGrid, SelExpertTitle, SelExpertContent, SelCTAText},
		plan:     planService(SelExpertTitle, SelExpertContent, func(c model.ServiceContent) (string, string) { return c.ExpertiseTitle, c.Expertise }),
	},
	PageGallery: {
		Page:            PageGallery,
		Resource:        DataPrefix + "gallery.json",
		Anchors:         []string{SelGalleryGrid},
		RebindsLightbox: true,
		plan:            planGallery,
	},
	PageContact: {
		Page:     PageContact,
		Resource: DataPrefix + "contact.json",
		Anchors:  []string{SelContactIntro, SelContactLocations, SelContactAffiliations, SelContactForm},
		plan:     planContact,
	},
	PageHome: {
		Page:     PageHome,
		Resource: DataPrefix + "home.json",
		Anchors:  []string{SelHeroTitle, SelHeroSubtitle, SelHeroLocation},
		plan:     planHome,
	},
}

// LoaderFor returns the loader for page.
func LoaderFor(page Page) (Loader, bool) {
	l, ok := loaders[page]
	return l, ok
}

// SortVideos returns a copy of videos ordered by their order key. Equal keys
// keep their original relative order. IDs are reassigned to the new positions.
func SortVideos(videos []model.VideoRecord) []model.VideoRecord {
	sorted := append([]model.VideoRecord(nil), videos...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	for i := range sorted {
		sorted[i].ID = i
	}
	return sorted
}

func planMedia(data []byte, p *planner) error {
	var file model.VideosFile
	if err := json.Unmarshal(data, &file); err != nil {
		return err
	}
	if len(file.Videos) == 0 {
		return nil
	}
	videos := SortVideos(file.Videos)
	p.html(SelCarouselTrack, render.Slides(videos))
	p.html(SelCarouselDots, render.Dots(len(videos)))
	return nil
}

func planAbout(data []byte, p *planner) error {
	var about model.AboutContent
	if err := json.Unmarshal(data, &about); err != nil {
		return err
	}
	p.text(SelAboutLead, about.Lead)
	// The bio goes after the lead paragraph, so both anchors must exist.
	if bio := render.Paragraphs(about.Bio); bio != "" && p.caps.Has(SelAboutText) && p.caps.Has(SelAboutLead) {
		p.out = append(p.out, Mutation{
			Selector: SelAboutText,
			Kind:     ReplaceParagraphs,
			After:    SelAboutLead,
			Value:    bio,
		})
	}
	p.attr(SelAboutImage, "src", about.Headshot)
	return nil
}

func planService(titleSel, contentSel string, pick func(model.ServiceContent) (string, string)) func([]byte, *planner) error {
	return func(data []byte, p *planner) error {
		var svc model.ServiceContent
		if err := json.Unmarshal(data, &svc); err != nil {
			return err
		}
		p.text(SelServiceLead, svc.Lead)
		p.text(SelServiceIntro, svc.Intro)
		p.html(SelFeaturesGrid, render.FeatureCards(svc.Features))
		title, rich := pick(svc)
		p.text(titleSel, title)
		p.html(contentSel, render.RichText(rich))
		p.text(SelCTAText, svc.CTAText)
		return nil
	}
}

func planGallery(data []byte, p *planner) error {
	var gallery model.GalleryContent
	if err := json.Unmarshal(data, &gallery); err != nil {
		return err
	}
	p.html(SelGalleryGrid, render.GalleryItems(gallery.Images))
	return nil
}

func planContact(data []byte, p *planner) error {
	var contact model.ContactContent
	if err := json.Unmarshal(data, &contact); err != nil {
		return err
	}
	p.text(SelContactIntro, contact.Intro)
	p.html(SelContactLocations, render.RichText(contact.Locations))
	p.html(SelContactAffiliations, render.RichText(contact.Affiliations))
	if id := strings.TrimSpace(contact.FormspreeID); id != "" {
		p.attr(SelContactForm, "data-endpoint", FormspreeBase+id)
	}
	return nil
}

func planHome(data []byte, p *planner) error {
	var home model.HomeContent
	if err := json.Unmarshal(data, &home); err != nil {
		return err
	}
	p.text(SelHeroTitle, home.Title)
	p.text(SelHeroSubtitle, home.Subtitle)
	p.text(SelHeroLocation, home.Location)
	return nil
}
