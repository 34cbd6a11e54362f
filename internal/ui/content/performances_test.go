package content

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Its-donkey/archambeau-site/internal/ui/model"
)

func TestFetchPerformances(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != PerformancesPath {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(model.PerformanceListing{
			Status: model.ListingOK,
			Cards:  []model.PerformanceCard{{DateLabel: "Sun, Mar 15, 2026", Title: "Spring Concert"}},
		})
	}))
	defer ts.Close()

	listing, err := FetchPerformances(context.Background(), ts.Client(), ts.URL+"/")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if listing.Status != model.ListingOK || len(listing.Cards) != 1 || listing.Cards[0].Title != "Spring Concert" {
		t.Fatalf("unexpected listing: %+v", listing)
	}

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer broken.Close()
	if _, err := FetchPerformances(context.Background(), broken.Client(), broken.URL); err == nil {
		t.Fatalf("expected error for 500 response")
	}
}

func TestPerformancesHTML(t *testing.T) {
	cards := PerformancesHTML(model.PerformanceListing{
		Status: model.ListingOK,
		Cards:  []model.PerformanceCard{{DateLabel: "Sun, Mar 15, 2026", Title: "Spring Concert"}},
	}, nil)
	if !strings.Contains(cards, `class="performance-card"`) || !strings.Contains(cards, "Spring Concert") {
		t.Fatalf("expected rendered cards, got %q", cards)
	}

	empty := PerformancesHTML(model.PerformanceListing{Status: model.ListingEmpty, Message: "Nothing yet"}, nil)
	if empty != `<p class="no-performances">Nothing yet</p>` {
		t.Fatalf("unexpected empty listing: %q", empty)
	}

	unconfigured := PerformancesHTML(model.PerformanceListing{Status: model.ListingUnconfigured}, nil)
	if !strings.Contains(unconfigured, ClassPerformancesError) || !strings.Contains(unconfigured, "currently unavailable") {
		t.Fatalf("unexpected unconfigured listing: %q", unconfigured)
	}

	failed := PerformancesHTML(model.PerformanceListing{}, errors.New("network"))
	if !strings.Contains(failed, "currently unavailable") {
		t.Fatalf("network failures should render the unavailable message, got %q", failed)
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestFetchesAddNoDeadline(t *testing.T) {
	var deadlines []bool
	client := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		_, ok := r.Context().Deadline()
		deadlines = append(deadlines, ok)
		return &http.Response{
			StatusCode: http.StatusOK,
			Status:     "200 OK",
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body:       io.NopCloser(strings.NewReader(`{"status":"empty","cards":[]}`)),
			Request:    r,
		}, nil
	})}

	if _, err := FetchPerformances(context.Background(), client, "http://site.test"); err != nil {
		t.Fatalf("fetch performances: %v", err)
	}
	loader, _ := LoaderFor(PageHome)
	if _, err := Fetch(context.Background(), client, "http://site.test", loader); err != nil {
		t.Fatalf("fetch content: %v", err)
	}
	if len(deadlines) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(deadlines))
	}
	for i, has := range deadlines {
		if has {
			t.Fatalf("request %d carried a deadline", i)
		}
	}
}
