package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func decodeEntries(t *testing.T, buf *bytes.Buffer) []Entry {
	t.Helper()
	var entries []Entry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e Entry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			t.Fatalf("decode entry %q: %v", line, err)
		}
		entries = append(entries, e)
	}
	return entries
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New("site", WARN, &buf)
	logger.Info("calendar", "ignored", nil)
	logger.Warn("calendar", "kept", map[string]any{"n": 1})
	logger.Error("calendar", "failed", errors.New("boom"), nil)

	entries := decodeEntries(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Level != "WARN" || entries[0].Message != "kept" || entries[0].Site != "site" {
		t.Fatalf("unexpected warn entry: %+v", entries[0])
	}
	if entries[1].Level != "ERROR" || entries[1].Error != "boom" {
		t.Fatalf("unexpected error entry: %+v", entries[1])
	}
}

func TestNilAndDiscardLoggersAreSafe(t *testing.T) {
	var logger *Logger
	logger.Info("x", "y", nil)
	logger.Error("x", "y", errors.New("z"), nil)
	Discard().Error("x", "y", nil, nil)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{"debug": DEBUG, " WARN ": WARN, "warning": WARN, "error": ERROR, "": INFO, "loud": INFO}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestMiddlewareAssignsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := New("site", INFO, &buf)
	var seen string
	handler := NewHTTPLogger(logger, 0).Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r.Context())
		logger.FromContext(r.Context()).WithCategory("contact").Info("handled")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/contact?x=1", strings.NewReader(`{"name":"A"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	id := rec.Header().Get("X-Request-ID")
	if id == "" || id != seen {
		t.Fatalf("request id mismatch: header %q context %q", id, seen)
	}
	entries := decodeEntries(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("expected handler and http entries, got %d", len(entries))
	}
	if entries[0].RequestID != id || entries[0].Category != "contact" {
		t.Fatalf("handler entry missing request id: %+v", entries[0])
	}
	httpEntry := entries[1]
	if httpEntry.Category != "http" || httpEntry.Message != "POST /api/contact 202" || httpEntry.Duration == nil {
		t.Fatalf("unexpected http entry: %+v", httpEntry)
	}
	if httpEntry.Fields["query"] != "x=1" || httpEntry.Fields["response_body"] != `{"ok":true}` {
		t.Fatalf("unexpected http fields: %+v", httpEntry.Fields)
	}
}

func TestMiddlewareRedactsCredentials(t *testing.T) {
	var buf bytes.Buffer
	logger := New("site", INFO, &buf)
	var body bytes.Buffer
	handler := NewHTTPLogger(logger, 0).Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = body.ReadFrom(r.Body)
		w.WriteHeader(http.StatusUnauthorized)
	}))

	payload := `{"email":"a@b.co","password":"hunter2"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(payload))
	req.Header.Set("Authorization", "Bearer abc")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if body.String() != payload {
		t.Fatalf("handler should still see the original body, got %q", body.String())
	}
	if strings.Contains(buf.String(), "hunter2") || strings.Contains(buf.String(), "Bearer abc") {
		t.Fatalf("credentials leaked into log: %s", buf.String())
	}
	entries := decodeEntries(t, &buf)
	if entries[0].Level != "WARN" {
		t.Fatalf("expected WARN for 401, got %s", entries[0].Level)
	}
}

func TestRedactBody(t *testing.T) {
	if got := RedactBody("plain text"); got != "plain text" {
		t.Fatalf("non-json body changed: %q", got)
	}
	if got := RedactBody(`{"name":"x"}`); got != `{"name":"x"}` {
		t.Fatalf("body without secrets changed: %q", got)
	}
	got := RedactBody(`{"outer":[{"token":"t"}],"Password":"p"}`)
	if strings.Contains(got, `"t"`) || strings.Contains(got, `"p"`) {
		t.Fatalf("nested secrets not redacted: %q", got)
	}
}

func TestFileWriterRotatesAndCompresses(t *testing.T) {
	dir := t.TempDir()
	fw, err := NewFileWriter(dir, "site.log", FileOptions{MaxBytes: 16, MaxFiles: 1})
	if err != nil {
		t.Fatalf("new file writer: %v", err)
	}
	clock := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	fw.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	for i := 0; i < 3; i++ {
		if _, err := fw.Write([]byte("0123456789\n")); err != nil {
			t.Fatalf("write %d: %v", i, err)
		}
	}
	if err := fw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	current, err := os.ReadFile(fw.Path())
	if err != nil {
		t.Fatalf("read current: %v", err)
	}
	if string(current) != "0123456789\n" {
		t.Fatalf("expected only the last line in the active file, got %q", current)
	}
	archives, _ := filepath.Glob(filepath.Join(dir, "site.log.*.gz"))
	if len(archives) != 1 {
		t.Fatalf("expected one retained archive, got %v", archives)
	}
	if _, err := fw.Write([]byte("late")); err == nil {
		t.Fatalf("expected write after close to fail")
	}
}
