package calendar

import (
	"regexp"
	"strings"
	"time"

	"github.com/Its-donkey/archambeau-site/internal/ui/model"
)

var (
	urlPattern      = regexp.MustCompile(`https?://[^\s<>"']+`)
	ensemblePattern = regexp.MustCompile(`(?i)\b(?:with|ensemble|performers)\s*:\s*([^\n]*)`)
	ticketsWord     = regexp.MustCompile(`(?i)\btickets?\b`)
	ticketsLabel    = regexp.MustCompile(`(?i)\btickets?\s*:`)
)

// Details are the fields pulled out of a free-text event description.
type Details struct {
	TicketURL string
	Ensemble  string
	Text      string
}

// ParseDescription extracts the first link as the ticket URL and a labelled
// ensemble segment, then strips ticket labels and collapses whitespace in what
// is left. The ensemble runs to the end of its line or to a "tickets" word,
// whichever comes first. Extraction is best effort; any field may come back
// empty.
func ParseDescription(text string) Details {
	var d Details
	if loc := urlPattern.FindStringIndex(text); loc != nil {
		d.TicketURL = strings.TrimRight(text[loc[0]:loc[1]], ".,;:)")
		text = text[:loc[0]] + " " + text[loc[1]:]
	}
	if m := ensemblePattern.FindStringSubmatchIndex(text); m != nil {
		end := m[3]
		if cut := ticketsWord.FindStringIndex(text[m[2]:m[3]]); cut != nil {
			end = m[2] + cut[0]
		}
		d.Ensemble = strings.TrimRight(strings.TrimSpace(text[m[2]:end]), " .,;")
		text = text[:m[0]] + " " + text[end:]
	}
	text = ticketsLabel.ReplaceAllString(text, "")
	d.Text = strings.Join(strings.Fields(text), " ")
	return d
}

const (
	dateLabelLayout = "Mon, Jan 2, 2006"
	timeLabelLayout = "3:04 PM"
)

// ToCard converts an event for display. Timed events are labelled in their own
// offset; all-day events get no time label.
func ToCard(ev model.CalendarEvent) model.PerformanceCard {
	details := ParseDescription(ev.Description)
	card := model.PerformanceCard{
		Title:       strings.TrimSpace(ev.Summary),
		Venue:       strings.TrimSpace(ev.Location),
		Ensemble:    details.Ensemble,
		Description: details.Text,
		TicketURL:   details.TicketURL,
	}
	if card.Title == "" {
		card.Title = "Performance"
	}
	switch {
	case ev.Start.DateTime != "":
		if t, err := time.Parse(time.RFC3339, ev.Start.DateTime); err == nil {
			card.Start = t
			card.DateLabel = t.Format(dateLabelLayout)
			card.TimeLabel = t.Format(timeLabelLayout)
		} else {
			card.DateLabel = ev.Start.DateTime
		}
	case ev.Start.Date != "":
		card.AllDay = true
		if t, err := time.Parse("2006-01-02", ev.Start.Date); err == nil {
			card.Start = t
			card.DateLabel = t.Format(dateLabelLayout)
		} else {
			card.DateLabel = ev.Start.Date
		}
	}
	return card
}
