package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const redacted = "[redacted]"

// HTTPLogger logs HTTP requests and responses.
type HTTPLogger struct {
	logger      *Logger
	maxBodySize int
}

// NewHTTPLogger creates a new HTTP logger.
func NewHTTPLogger(logger *Logger, maxBodySize int) *HTTPLogger {
	if maxBodySize == 0 {
		maxBodySize = 10 * 1024
	}
	return &HTTPLogger{
		logger:      logger,
		maxBodySize: maxBodySize,
	}
}

// responseRecorder captures the response for logging.
type responseRecorder struct {
	http.ResponseWriter
	status      int
	size        int
	body        *bytes.Buffer
	limit       int
	wroteHeader bool
}

func (r *responseRecorder) WriteHeader(status int) {
	if !r.wroteHeader {
		r.status = status
		r.wroteHeader = true
		r.ResponseWriter.WriteHeader(status)
	}
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	n, err := r.ResponseWriter.Write(b)
	r.size += n
	if room := r.limit - r.body.Len(); room > 0 {
		r.body.Write(b[:min(len(b), room)])
	}
	return n, err
}

func (r *responseRecorder) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Middleware returns an HTTP middleware that logs requests and responses.
// Every request gets an X-Request-ID header and the same ID in its context.
func (h *HTTPLogger) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()

		var requestBody string
		if r.Body != nil && r.ContentLength > 0 && r.ContentLength < int64(h.maxBodySize) {
			bodyBytes, err := io.ReadAll(io.LimitReader(r.Body, int64(h.maxBodySize)))
			if err == nil {
				requestBody = string(bodyBytes)
				r.Body = io.NopCloser(bytes.NewReader(bodyBytes))
			}
		}

		recorder := &responseRecorder{
			ResponseWriter: w,
			status:         http.StatusOK,
			body:           &bytes.Buffer{},
			limit:          h.maxBodySize,
		}
		recorder.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(recorder, r.WithContext(ContextWithRequestID(r.Context(), requestID)))

		duration := time.Since(start).Milliseconds()

		fields := map[string]any{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      recorder.status,
			"size":        recorder.size,
			"remote_addr": r.RemoteAddr,
			"user_agent":  r.UserAgent(),
		}
		if r.URL.RawQuery != "" {
			fields["query"] = r.URL.RawQuery
		}
		if requestBody != "" {
			fields["request_body"] = truncate(RedactBody(requestBody), 1000)
		}
		if recorder.body.Len() > 0 && isTextual(recorder.Header().Get("Content-Type")) {
			fields["response_body"] = truncate(RedactBody(recorder.body.String()), 1000)
		}

		headers := make(map[string]string)
		for name, values := range r.Header {
			if !isSensitiveHeader(name) {
				headers[name] = strings.Join(values, ", ")
			}
		}
		if len(headers) > 0 {
			fields["request_headers"] = headers
		}

		level := INFO
		if recorder.status >= 400 {
			level = WARN
		}
		if recorder.status >= 500 {
			level = ERROR
		}
		if level < h.logger.minLevel {
			return
		}

		entry := h.logger.entry(level, "http", fmt.Sprintf("%s %s %d", r.Method, r.URL.Path, recorder.status), fields)
		entry.RequestID = requestID
		entry.Duration = &duration
		h.logger.write(entry)
	})
}

// RedactBody masks credential-like values in a JSON body. Non-JSON bodies
// are returned unchanged.
func RedactBody(body string) string {
	var payload any
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return body
	}
	if !redactValue(payload) {
		return body
	}
	out, err := json.Marshal(payload)
	if err != nil {
		return body
	}
	return string(out)
}

func redactValue(v any) bool {
	changed := false
	switch t := v.(type) {
	case map[string]any:
		for key, val := range t {
			if isSensitiveField(key) {
				t[key] = redacted
				changed = true
				continue
			}
			if redactValue(val) {
				changed = true
			}
		}
	case []any:
		for _, val := range t {
			if redactValue(val) {
				changed = true
			}
		}
	}
	return changed
}

func isSensitiveField(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "password") || isSensitiveHeader(name)
}

func isSensitiveHeader(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "auth") ||
		strings.Contains(lower, "token") ||
		strings.Contains(lower, "cookie") ||
		strings.Contains(lower, "key") ||
		strings.Contains(lower, "secret")
}

func isTextual(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.HasPrefix(ct, "application/json") || strings.HasPrefix(ct, "text/plain")
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "... [truncated]"
}
