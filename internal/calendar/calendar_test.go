package calendar

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/api/option"

	"github.com/Its-donkey/archambeau-site/internal/ui/model"
)

func TestParseDescription(t *testing.T) {
	got := ParseDescription("Tickets: https://x.test/t With: Trio Foo\nSome notes")
	want := Details{TicketURL: "https://x.test/t", Ensemble: "Trio Foo", Text: "Some notes"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected details (-want +got):\n%s", diff)
	}
	for _, leftover := range []string{"http", "Tickets", "With:", "\n"} {
		if strings.Contains(got.Text, leftover) {
			t.Fatalf("text %q still contains %q", got.Text, leftover)
		}
	}
}

func TestParseDescriptionVariants(t *testing.T) {
	tests := []struct {
		in   string
		want Details
	}{
		{"", Details{}},
		{"Just a recital.", Details{Text: "Just a recital."}},
		{"Performers: The Quartet\nBuy at https://tix.example/a.", Details{TicketURL: "https://tix.example/a", Ensemble: "The Quartet", Text: "Buy at"}},
		{"With: Trio Foo Tickets: https://x.test/t\nSome notes", Details{TicketURL: "https://x.test/t", Ensemble: "Trio Foo", Text: "Some notes"}},
		{"Performers: Jane Doe, piano. Tickets at https://x.test/t", Details{TicketURL: "https://x.test/t", Ensemble: "Jane Doe, piano", Text: "Tickets at"}},
		{"ensemble:Brass Five", Details{Ensemble: "Brass Five"}},
		{"First http://a.test/1 then http://b.test/2", Details{TicketURL: "http://a.test/1", Text: "First then http://b.test/2"}},
		{"TICKET:   \n\n  free   entry  ", Details{Text: "free entry"}},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, ParseDescription(tc.in)); diff != "" {
			t.Fatalf("ParseDescription(%q) (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestToCardTimedEvent(t *testing.T) {
	card := ToCard(model.CalendarEvent{
		Summary:     "Faculty Recital",
		Location:    "Kilbourn Hall",
		Description: "With: Eastman Winds",
		Start:       model.EventTime{DateTime: "2026-11-06T19:30:00-05:00"},
	})
	if card.DateLabel != "Fri, Nov 6, 2026" || card.TimeLabel != "7:30 PM" {
		t.Fatalf("unexpected labels %q %q", card.DateLabel, card.TimeLabel)
	}
	if card.AllDay || card.Venue != "Kilbourn Hall" || card.Ensemble != "Eastman Winds" || card.Description != "" {
		t.Fatalf("unexpected card %+v", card)
	}
}

func TestToCardAllDayEvent(t *testing.T) {
	card := ToCard(model.CalendarEvent{Start: model.EventTime{Date: "2026-12-24"}})
	if !card.AllDay || card.DateLabel != "Thu, Dec 24, 2026" || card.TimeLabel != "" {
		t.Fatalf("unexpected all-day card %+v", card)
	}
	if card.Title != "Performance" {
		t.Fatalf("expected fallback title, got %q", card.Title)
	}
}

func TestConfigured(t *testing.T) {
	tests := []struct {
		key, id string
		want    bool
	}{
		{"AIza", "cal@group.calendar.google.com", true},
		{"", "cal", false},
		{"AIza", " ", false},
		{"YOUR_GOOGLE_API_KEY", "cal", false},
		{"AIza", "YOUR_CALENDAR_ID", false},
		{"YOUR_GOOGLE_API_KEY_HERE", "cal", false},
		{"AIza", "YOUR_CALENDAR_ID_HERE", false},
	}
	for _, tc := range tests {
		if got := Configured(tc.key, tc.id); got != tc.want {
			t.Fatalf("Configured(%q, %q) = %v, want %v", tc.key, tc.id, got, tc.want)
		}
	}
}

type fakeSource struct {
	events []model.CalendarEvent
	err    error
	calls  int
	max    int
}

func (f *fakeSource) Upcoming(_ context.Context, _ time.Time, max int) ([]model.CalendarEvent, error) {
	f.calls++
	f.max = max
	return f.events, f.err
}

func TestListingUnconfiguredSkipsSource(t *testing.T) {
	src := &fakeSource{}
	listing := NewService(src, false).Listing(context.Background())
	if listing.Status != model.ListingUnconfigured || listing.Message != UnavailableMessage {
		t.Fatalf("unexpected listing %+v", listing)
	}
	if src.calls != 0 {
		t.Fatalf("expected no source calls, got %d", src.calls)
	}
}

func TestListingSourceFailure(t *testing.T) {
	src := &fakeSource{err: errors.New("boom")}
	listing := NewService(src, true).Listing(context.Background())
	if listing.Status != model.ListingUnavailable || listing.Message != UnavailableMessage {
		t.Fatalf("unexpected listing %+v", listing)
	}
	if src.calls != 1 {
		t.Fatalf("expected exactly one attempt, got %d", src.calls)
	}
}

func TestListingEmptyAndOK(t *testing.T) {
	src := &fakeSource{}
	svc := NewService(src, true, WithMaxEvents(5))
	if listing := svc.Listing(context.Background()); listing.Status != model.ListingEmpty || listing.Message != EmptyMessage {
		t.Fatalf("unexpected empty listing %+v", listing)
	}
	if src.max != 5 {
		t.Fatalf("expected cap 5, got %d", src.max)
	}

	src.events = []model.CalendarEvent{
		{Summary: "A", Start: model.EventTime{Date: "2026-11-01"}},
		{Summary: "B", Start: model.EventTime{DateTime: "2026-11-02T20:00:00Z"}},
	}
	listing := svc.Listing(context.Background())
	if listing.Status != model.ListingOK || len(listing.Cards) != 2 || listing.Cards[1].Title != "B" {
		t.Fatalf("unexpected listing %+v", listing)
	}
	if NewService(src, true).max != DefaultMaxEvents {
		t.Fatalf("expected default cap %d", DefaultMaxEvents)
	}
}

func TestGoogleSourceUpcoming(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendars/primary/events" {
			http.NotFound(w, r)
			return
		}
		q := r.URL.Query()
		if q.Get("singleEvents") != "true" || q.Get("orderBy") != "startTime" || q.Get("maxResults") != "3" {
			http.Error(w, "unexpected query "+r.URL.RawQuery, http.StatusBadRequest)
			return
		}
		if q.Get("timeMin") != now.Format(time.RFC3339) {
			http.Error(w, "unexpected timeMin "+q.Get("timeMin"), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"kind":"calendar#events","items":[
			{"summary":"Recital","location":"Hall","description":"With: Duo","start":{"dateTime":"2026-11-01T19:30:00-05:00"}},
			{"summary":"Masterclass","start":{"date":"2026-11-05"}}
		]}`))
	}))
	defer ts.Close()

	src, err := NewGoogleSource(context.Background(), "key", "primary",
		option.WithHTTPClient(ts.Client()), option.WithEndpoint(ts.URL+"/"))
	if err != nil {
		t.Fatalf("new source: %v", err)
	}
	events, err := src.Upcoming(context.Background(), now, 3)
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	want := []model.CalendarEvent{
		{Summary: "Recital", Location: "Hall", Description: "With: Duo", Start: model.EventTime{DateTime: "2026-11-01T19:30:00-05:00"}},
		{Summary: "Masterclass", Start: model.EventTime{Date: "2026-11-05"}},
	}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Fatalf("unexpected events (-want +got):\n%s", diff)
	}
}

func TestGoogleSourceError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":403,"message":"forbidden"}}`, http.StatusForbidden)
	}))
	defer ts.Close()
	src, err := NewGoogleSource(context.Background(), "key", "primary",
		option.WithHTTPClient(ts.Client()), option.WithEndpoint(ts.URL+"/"))
	if err != nil {
		t.Fatalf("new source: %v", err)
	}
	if _, err := src.Upcoming(context.Background(), time.Now(), 10); err == nil {
		t.Fatalf("expected error from 403")
	}
}

func TestWriteICS(t *testing.T) {
	cards := []model.PerformanceCard{
		ToCard(model.CalendarEvent{Summary: "Recital, Part 1", Location: "Hall", Description: "Tickets: https://t.test/x With: Duo", Start: model.EventTime{DateTime: "2026-11-01T19:30:00-05:00"}}),
		ToCard(model.CalendarEvent{Summary: "Festival", Start: model.EventTime{Date: "2026-11-05"}}),
		{Title: "No date"},
	}
	var buf bytes.Buffer
	if err := WriteICS(&buf, cards, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("write: %v", err)
	}
	body := buf.String()
	for _, want := range []string{
		"BEGIN:VCALENDAR\r\n",
		"PRODID:" + ICSProductID,
		"DTSTART:20261102T003000Z",
		"SUMMARY:Recital\\, Part 1",
		"URL:https://t.test/x",
		"DESCRIPTION:With Duo",
		"DTSTART;VALUE=DATE:20261105",
		"DTEND;VALUE=DATE:20261106",
		"END:VCALENDAR\r\n",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("ics missing %q:\n%s", want, body)
		}
	}
	if n := strings.Count(body, "BEGIN:VEVENT"); n != 2 {
		t.Fatalf("expected 2 events, got %d", n)
	}
}

func TestWriteICSFoldsLongLines(t *testing.T) {
	desc := strings.Repeat("Sonatas by Brahms and Schumann, ", 6) + "and a première of new work é"
	cards := []model.PerformanceCard{{
		Title:       "Recital",
		Description: desc,
		Start:       time.Date(2026, 11, 1, 19, 30, 0, 0, time.UTC),
	}}
	var buf bytes.Buffer
	if err := WriteICS(&buf, cards, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("write: %v", err)
	}
	body := buf.String()
	for _, line := range strings.Split(strings.TrimSuffix(body, "\r\n"), "\r\n") {
		if len(line) > 75 {
			t.Fatalf("line exceeds 75 octets (%d): %q", len(line), line)
		}
		if !utf8.ValidString(line) {
			t.Fatalf("fold split a UTF-8 sequence: %q", line)
		}
	}
	unfolded := strings.ReplaceAll(body, "\r\n ", "")
	if !strings.Contains(unfolded, "DESCRIPTION:"+escapeText(desc)+"\r\n") {
		t.Fatalf("unfolded feed lost the description:\n%s", unfolded)
	}
	if strings.Count(body, "\r\n ") < 2 {
		t.Fatalf("expected the description to be folded:\n%s", body)
	}
}
