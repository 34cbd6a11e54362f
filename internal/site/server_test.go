package site

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Its-donkey/archambeau-site/internal/calendar"
	"github.com/Its-donkey/archambeau-site/internal/identity"
	"github.com/Its-donkey/archambeau-site/internal/metadata"
	"github.com/Its-donkey/archambeau-site/internal/ui/forms"
	"github.com/Its-donkey/archambeau-site/internal/ui/model"
)

type fakeListing struct {
	listing model.PerformanceListing
}

func (f fakeListing) Listing(context.Context) model.PerformanceListing { return f.listing }

type fakeDeliverer struct {
	got []model.ContactSubmission
	err error
}

func (f *fakeDeliverer) Deliver(_ context.Context, sub model.ContactSubmission) error {
	f.got = append(f.got, sub)
	return f.err
}

type fakeIdentity struct{}

func (fakeIdentity) Login(email, password string) (model.LoginResponse, error) {
	if email == "editor@example.com" && password == "secret" {
		return model.LoginResponse{Token: "tok"}, nil
	}
	return model.LoginResponse{}, identity.ErrInvalidCredentials
}

func (fakeIdentity) Session(token string) (model.SessionResponse, error) {
	if token == "tok" {
		return model.SessionResponse{Email: "editor@example.com"}, nil
	}
	return model.SessionResponse{}, identity.ErrInvalidToken
}

type fakeTitles struct {
	title string
	err   error
}

func (f fakeTitles) Fetch(_ context.Context, ref string) (*metadata.Metadata, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &metadata.Metadata{VideoID: ref, Title: f.title}, nil
}

func newTestHandler(t *testing.T, opts Options) http.Handler {
	t.Helper()
	assets := t.TempDir()
	data := filepath.Join(assets, "_data")
	if err := os.MkdirAll(data, 0o755); err != nil {
		t.Fatalf("mkdir data: %v", err)
	}
	files := map[string]string{
		filepath.Join(assets, "index.html"): "<h1>home</h1>",
		filepath.Join(assets, "media.html"): "<h1>media</h1>",
		filepath.Join(assets, "main.wasm"):  "\x00asm",
		filepath.Join(data, "videos.json"):  `{"videos":[]}`,
	}
	for path, body := range files {
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	opts.AssetsDir = assets
	opts.DataDir = data
	handler, err := NewHandler(opts)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	return handler
}

func serve(h http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestNewHandlerRejectsMissingAssets(t *testing.T) {
	if _, err := NewHandler(Options{AssetsDir: filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Fatalf("expected error for missing assets dir")
	}
}

func TestStaticAndDataFiles(t *testing.T) {
	h := newTestHandler(t, Options{})

	rec := serve(h, http.MethodGet, "/", "", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "home") {
		t.Fatalf("expected index.html, got %d %q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}

	rec = serve(h, http.MethodGet, "/media.html", "", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "media") {
		t.Fatalf("expected media.html, got %d", rec.Code)
	}

	rec = serve(h, http.MethodGet, "/main.wasm", "", nil)
	if ct := rec.Header().Get("Content-Type"); ct != "application/wasm" {
		t.Fatalf("expected wasm content type, got %q", ct)
	}

	rec = serve(h, http.MethodGet, "/_data/videos.json", "", nil)
	if rec.Code != http.StatusOK || rec.Header().Get("Cache-Control") != "no-cache" {
		t.Fatalf("expected revalidated data file, got %d %v", rec.Code, rec.Header())
	}

	rec = serve(h, http.MethodGet, "/_data/", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected data directory listing to be hidden, got %d", rec.Code)
	}

	rec = serve(h, http.MethodPost, "/index.html", "x", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for POST to static file, got %d", rec.Code)
	}

	rec = serve(h, http.MethodGet, "/api/unknown", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown api path, got %d", rec.Code)
	}
}

func TestPerformancesEndpoint(t *testing.T) {
	start := time.Date(2026, 3, 15, 19, 30, 0, 0, time.UTC)
	want := model.PerformanceListing{
		Status: model.ListingOK,
		Cards: []model.PerformanceCard{{
			DateLabel: "Sun, Mar 15, 2026",
			TimeLabel: "7:30 PM",
			Title:     "Spring Concert",
			Venue:     "Town Hall",
			Start:     start,
		}},
	}
	h := newTestHandler(t, Options{Performances: fakeListing{listing: want}})

	rec := serve(h, http.MethodGet, "/api/performances", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got model.PerformanceListing
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("listing mismatch (-want +got):\n%s", diff)
	}

	rec = serve(h, http.MethodPost, "/api/performances", "", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestPerformancesUnconfigured(t *testing.T) {
	h := newTestHandler(t, Options{})
	rec := serve(h, http.MethodGet, "/api/performances", "", nil)
	var got model.PerformanceListing
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	if got.Status != model.ListingUnconfigured || got.Message != calendar.UnavailableMessage {
		t.Fatalf("unexpected listing: %+v", got)
	}

	rec = serve(h, http.MethodGet, "/api/performances.ics", "", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 for ics without calendar, got %d", rec.Code)
	}
}

func TestPerformancesICS(t *testing.T) {
	listing := model.PerformanceListing{
		Status: model.ListingOK,
		Cards: []model.PerformanceCard{{
			Title: "Spring Concert",
			Start: time.Date(2026, 3, 15, 19, 30, 0, 0, time.UTC),
		}},
	}
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	h := newTestHandler(t, Options{Performances: fakeListing{listing: listing}, Now: func() time.Time { return now }})

	rec := serve(h, http.MethodGet, "/api/performances.ics", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, icsFilename) {
		t.Fatalf("unexpected content disposition %q", cd)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "BEGIN:VCALENDAR") || !strings.Contains(body, "SUMMARY:Spring Concert") {
		t.Fatalf("unexpected feed:\n%s", body)
	}

	unavailable := newTestHandler(t, Options{Performances: fakeListing{listing: model.PerformanceListing{Status: model.ListingUnavailable, Message: calendar.UnavailableMessage}}})
	rec = serve(unavailable, http.MethodGet, "/api/performances.ics", "", nil)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 when the calendar is down, got %d", rec.Code)
	}
}

func TestContactRelay(t *testing.T) {
	deliverer := &fakeDeliverer{}
	h := newTestHandler(t, Options{Contact: deliverer})

	body := `{"name":" Ada ","email":"ada@example.com","subject":"Lessons","message":"Hello"}`
	rec := serve(h, http.MethodPost, "/api/contact", body, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %q", rec.Code, rec.Body.String())
	}
	want := []model.ContactSubmission{{Name: "Ada", Email: "ada@example.com", Subject: "Lessons", Message: "Hello"}}
	if diff := cmp.Diff(want, deliverer.got); diff != "" {
		t.Fatalf("delivered submission mismatch (-want +got):\n%s", diff)
	}

	rec = serve(h, http.MethodPost, "/api/contact", `{"name":"Ada","email":"nope","subject":"x","message":"y"}`, nil)
	if rec.Code != http.StatusBadRequest || strings.TrimSpace(rec.Body.String()) != forms.ErrInvalidEmail.Error() {
		t.Fatalf("expected invalid email error, got %d %q", rec.Code, rec.Body.String())
	}

	rec = serve(h, http.MethodPost, "/api/contact", `{"name":"Ada"}`, nil)
	if rec.Code != http.StatusBadRequest || strings.TrimSpace(rec.Body.String()) != forms.ErrMissingFields.Error() {
		t.Fatalf("expected missing fields error, got %d %q", rec.Code, rec.Body.String())
	}

	rec = serve(h, http.MethodPost, "/api/contact", `not json`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rec.Code)
	}
	if len(deliverer.got) != 1 {
		t.Fatalf("invalid submissions must not be delivered, got %d deliveries", len(deliverer.got))
	}
}

func TestContactRelayFailures(t *testing.T) {
	body := `{"name":"Ada","email":"ada@example.com","subject":"Lessons","message":"Hello"}`

	unconfigured := newTestHandler(t, Options{})
	if rec := serve(unconfigured, http.MethodPost, "/api/contact", body, nil); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without a deliverer, got %d", rec.Code)
	}

	failing := newTestHandler(t, Options{Contact: &fakeDeliverer{err: errors.New("smtp down")}})
	rec := serve(failing, http.MethodPost, "/api/contact", body, nil)
	if rec.Code != http.StatusBadGateway || strings.TrimSpace(rec.Body.String()) != forms.FailureMessage {
		t.Fatalf("expected failure message, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestAdminLoginAndSession(t *testing.T) {
	h := newTestHandler(t, Options{Identity: fakeIdentity{}})

	rec := serve(h, http.MethodPost, "/api/admin/login", `{"email":"editor@example.com","password":"wrong"}`, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	rec = serve(h, http.MethodPost, "/api/admin/login", `{"email":"","password":""}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty credentials, got %d", rec.Code)
	}
	rec = serve(h, http.MethodPost, "/api/admin/login", `{"email":"editor@example.com","password":"secret"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var login model.LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &login); err != nil || login.Token != "tok" {
		t.Fatalf("unexpected login response %q: %v", rec.Body.String(), err)
	}

	rec = serve(h, http.MethodGet, "/api/admin/session", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
	rec = serve(h, http.MethodGet, "/api/admin/session", "", map[string]string{"Authorization": "Bearer stale"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for stale token, got %d", rec.Code)
	}
	rec = serve(h, http.MethodGet, "/api/admin/session", "", map[string]string{"Authorization": "Bearer tok"})
	var session model.SessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &session); err != nil || session.Email != "editor@example.com" {
		t.Fatalf("unexpected session %q: %v", rec.Body.String(), err)
	}
}

func TestAdminUnconfigured(t *testing.T) {
	h := newTestHandler(t, Options{})
	rec := serve(h, http.MethodPost, "/api/admin/login", `{"email":"a@b.co","password":"x"}`, nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestAdminVideoLookup(t *testing.T) {
	auth := map[string]string{"Authorization": "Bearer tok"}
	h := newTestHandler(t, Options{Identity: fakeIdentity{}, Titles: fakeTitles{title: " Etude in C "}})

	if rec := serve(h, http.MethodGet, "/api/admin/video?id=dQw4w9WgXcQ", "", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
	if rec := serve(h, http.MethodGet, "/api/admin/video?id=bad", "", auth); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid id, got %d", rec.Code)
	}

	rec := serve(h, http.MethodGet, "/api/admin/video?id=https://youtu.be/dQw4w9WgXcQ", "", auth)
	var got model.VideoLookupResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode lookup: %v", err)
	}
	if diff := cmp.Diff(model.VideoLookupResponse{VideoID: "dQw4w9WgXcQ", Title: "Etude in C"}, got); diff != "" {
		t.Fatalf("lookup mismatch (-want +got):\n%s", diff)
	}

	failing := newTestHandler(t, Options{Identity: fakeIdentity{}, Titles: fakeTitles{err: metadata.ErrUnknownVideo}})
	rec = serve(failing, http.MethodGet, "/api/admin/video?id=dQw4w9WgXcQ", "", auth)
	if rec.Code != http.StatusOK {
		t.Fatalf("lookup failures should degrade to 200, got %d", rec.Code)
	}
	got = model.VideoLookupResponse{}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil || got.Title != "" {
		t.Fatalf("expected empty title, got %+v (%v)", got, err)
	}
}
