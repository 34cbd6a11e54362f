// Package calendar turns the public performance calendar into display cards.
// Event fetching happens server side so the API key never reaches a browser.
package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/Its-donkey/archambeau-site/internal/ui/model"
)

// Placeholder values shipped in sample configuration. They count as unset.
const (
	PlaceholderAPIKey     = "YOUR_GOOGLE_API_KEY"
	PlaceholderCalendarID = "YOUR_CALENDAR_ID"
)

// Source lists upcoming events, earliest first.
type Source interface {
	Upcoming(ctx context.Context, now time.Time, max int) ([]model.CalendarEvent, error)
}

// Configured reports whether key and id look like real credentials.
func Configured(apiKey, calendarID string) bool {
	return !isPlaceholder(apiKey, PlaceholderAPIKey) && !isPlaceholder(calendarID, PlaceholderCalendarID)
}

func isPlaceholder(value, sentinel string) bool {
	v := strings.TrimSpace(value)
	return v == "" || v == sentinel || v == sentinel+"_HERE"
}

// GoogleSource reads a public Google calendar with an API key.
type GoogleSource struct {
	calendarID string
	service    *gcal.Service
}

// NewGoogleSource builds a source for calendarID. Extra options are appended
// after the API key, which lets tests point the client at a local server.
func NewGoogleSource(ctx context.Context, apiKey, calendarID string, opts ...option.ClientOption) (*GoogleSource, error) {
	all := append([]option.ClientOption{option.WithAPIKey(strings.TrimSpace(apiKey))}, opts...)
	service, err := gcal.NewService(ctx, all...)
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	return &GoogleSource{calendarID: strings.TrimSpace(calendarID), service: service}, nil
}

// Upcoming returns at most max single-instance events starting at or after now,
// ordered by start time.
func (s *GoogleSource) Upcoming(ctx context.Context, now time.Time, max int) ([]model.CalendarEvent, error) {
	resp, err := s.service.Events.List(s.calendarID).
		TimeMin(now.UTC().Format(time.RFC3339)).
		MaxResults(int64(max)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list events for %s: %w", s.calendarID, err)
	}
	events := make([]model.CalendarEvent, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item == nil {
			continue
		}
		ev := model.CalendarEvent{
			Summary:     item.Summary,
			Location:    item.Location,
			Description: item.Description,
		}
		if item.Start != nil {
			ev.Start = model.EventTime{Date: item.Start.Date, DateTime: item.Start.DateTime}
		}
		events = append(events, ev)
	}
	return events, nil
}
