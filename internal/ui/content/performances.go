package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Its-donkey/archambeau-site/internal/ui/model"
	"github.com/Its-donkey/archambeau-site/internal/ui/render"
)

// PerformancesPath is the server endpoint behind the calendar listing.
const PerformancesPath = "/api/performances"

// SelPerformances is the listing anchor; its presence turns the calendar on.
const SelPerformances = "#performances-list"

// Message classes used for non-card listings.
const (
	ClassNoPerformances     = "no-performances"
	ClassPerformancesError  = "performances-error"
	unavailableFallbackText = "Performance calendar is currently unavailable. Please check back soon."
)

// FetchPerformances asks the site server for the upcoming listing.
func FetchPerformances(ctx context.Context, client *http.Client, base string) (model.PerformanceListing, error) {
	if client == nil {
		client = http.DefaultClient
	}
	endpoint := strings.TrimSuffix(strings.TrimSpace(base), "/") + PerformancesPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.PerformanceListing{}, fmt.Errorf("build request for %s: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return model.PerformanceListing{}, fmt.Errorf("fetch %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.PerformanceListing{}, fmt.Errorf("fetch %s failed: %s", endpoint, resp.Status)
	}
	var listing model.PerformanceListing
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxPayload)).Decode(&listing); err != nil {
		return model.PerformanceListing{}, fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return listing, nil
}

// PerformancesHTML renders the listing anchor's content. A fetch error, or a
// listing the server could not fill, renders the unavailable message.
func PerformancesHTML(listing model.PerformanceListing, err error) string {
	if err != nil {
		return render.Message(ClassPerformancesError, unavailableFallbackText)
	}
	switch listing.Status {
	case model.ListingOK:
		if len(listing.Cards) > 0 {
			return render.PerformanceCards(listing.Cards)
		}
		return render.Message(ClassNoPerformances, messageOr(listing.Message, "No upcoming performances scheduled. Check back soon!"))
	case model.ListingEmpty:
		return render.Message(ClassNoPerformances, messageOr(listing.Message, "No upcoming performances scheduled. Check back soon!"))
	default:
		return render.Message(ClassPerformancesError, messageOr(listing.Message, unavailableFallbackText))
	}
}

func messageOr(msg, fallback string) string {
	if strings.TrimSpace(msg) == "" {
		return fallback
	}
	return msg
}
