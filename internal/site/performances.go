package site

import (
	"bytes"
	"net/http"

	"github.com/Its-donkey/archambeau-site/internal/calendar"
	"github.com/Its-donkey/archambeau-site/internal/ui/model"
)

const icsFilename = "performances.ics"

func (s *server) listing(r *http.Request) model.PerformanceListing {
	if s.performances == nil {
		return model.PerformanceListing{
			Status:  model.ListingUnconfigured,
			Message: calendar.UnavailableMessage,
			Cards:   []model.PerformanceCard{},
		}
	}
	return s.performances.Listing(r.Context())
}

// handlePerformances always answers 200 so the browser can render the
// listing message for every status.
func (s *server) handlePerformances(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	listing := s.listing(r)
	if listing.Status == model.ListingUnavailable {
		s.logger.FromContext(r.Context()).WithCategory("calendar").Warn("serving unavailable listing")
	}
	writeJSON(w, http.StatusOK, listing)
}

func (s *server) handlePerformancesICS(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	listing := s.listing(r)
	switch listing.Status {
	case model.ListingUnconfigured:
		http.Error(w, listing.Message, http.StatusServiceUnavailable)
		return
	case model.ListingUnavailable:
		http.Error(w, listing.Message, http.StatusBadGateway)
		return
	}

	var buf bytes.Buffer
	if err := calendar.WriteICS(&buf, listing.Cards, s.now()); err != nil {
		s.logger.FromContext(r.Context()).WithCategory("calendar").Error("write ics feed", err)
		http.Error(w, "failed to build calendar feed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+icsFilename+`"`)
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(buf.Bytes())
}
