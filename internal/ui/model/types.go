package model

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// VideoRecord is a single carousel entry.
type VideoRecord struct {
	ID      int        `json:"-"`
	VideoID string     `json:"videoId"`
	Title   string     `json:"title"`
	Order   VideoOrder `json:"order"`
}

// VideoOrder is a lenient sort key. CMS exports write it as a number, a numeric
// string, or leave it out; anything that is not an integer decodes to 0.
type VideoOrder int

// UnmarshalJSON implements json.Unmarshaler.
func (o *VideoOrder) UnmarshalJSON(data []byte) error {
	*o = 0
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	switch v := raw.(type) {
	case float64:
		*o = VideoOrder(int(v))
	case string:
		*o = VideoOrder(parseLeadingInt(v))
	}
	return nil
}

func parseLeadingInt(raw string) int {
	s := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// VideosFile matches /_data/videos.json.
type VideosFile struct {
	Videos []VideoRecord `json:"videos"`
}

// HomeContent matches /_data/home.json.
type HomeContent struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Location string `json:"location"`
}

// AboutContent matches /_data/about.json.
type AboutContent struct {
	Lead     string `json:"lead"`
	Bio      string `json:"bio"`
	Headshot string `json:"headshot"`
}

// Feature is one card on the teaching and consulting pages.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ServiceContent covers both teaching.json and consulting.json. Teaching uses
// the credentials fields, consulting the expertise fields.
type ServiceContent struct {
	Lead             string    `json:"lead"`
	Intro            string    `json:"intro"`
	Features         []Feature `json:"features"`
	CredentialsTitle string    `json:"credentialsTitle"`
	Credentials      string    `json:"credentials"`
	ExpertiseTitle   string    `json:"expertiseTitle"`
	Expertise        string    `json:"expertise"`
	CTAText          string    `json:"ctaText"`
}

// GalleryImage is one picture in gallery.json.
type GalleryImage struct {
	Src     string `json:"src"`
	Alt     string `json:"alt"`
	Caption string `json:"caption"`
}

// GalleryContent matches /_data/gallery.json.
type GalleryContent struct {
	Images []GalleryImage `json:"images"`
}

// ContactContent matches /_data/contact.json.
type ContactContent struct {
	Intro        string `json:"intro"`
	Locations    string `json:"locations"`
	Affiliations string `json:"affiliations"`
	FormspreeID  string `json:"formspreeId"`
}

// ContactSubmission is the payload posted by the contact form.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// EventTime mirrors the calendar API start/end object: all-day events carry
// Date, timed events carry DateTime.
type EventTime struct {
	Date     string `json:"date,omitempty"`
	DateTime string `json:"dateTime,omitempty"`
}

// CalendarEvent is the subset of a remote calendar event the site displays.
type CalendarEvent struct {
	Summary     string    `json:"summary"`
	Start       EventTime `json:"start"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
}

// PerformanceCard is the display form of a CalendarEvent.
type PerformanceCard struct {
	DateLabel   string    `json:"dateLabel"`
	TimeLabel   string    `json:"timeLabel,omitempty"`
	Title       string    `json:"title"`
	Venue       string    `json:"venue,omitempty"`
	Ensemble    string    `json:"ensemble,omitempty"`
	Description string    `json:"description,omitempty"`
	TicketURL   string    `json:"ticketUrl,omitempty"`
	AllDay      bool      `json:"allDay"`
	Start       time.Time `json:"start"`
}

// Listing statuses returned by /api/performances.
const (
	ListingOK           = "ok"
	ListingEmpty        = "empty"
	ListingUnavailable  = "unavailable"
	ListingUnconfigured = "unconfigured"
)

// PerformanceListing is the /api/performances response body.
type PerformanceListing struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Cards   []PerformanceCard `json:"cards"`
}

// LoginRequest is posted to /api/admin/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the admin session token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionResponse answers the "current user" query.
type SessionResponse struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// VideoLookupResponse is returned by /api/admin/video.
type VideoLookupResponse struct {
	VideoID string `json:"videoId"`
	Title   string `json:"title"`
}
