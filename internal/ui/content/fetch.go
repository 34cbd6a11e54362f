package content

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxPayload bounds a content resource; CMS files are a few kilobytes.
const maxPayload = 2 * 1024 * 1024

// Fetch issues the single GET for a loader's resource. base may be empty, in
// which case the resource path is requested relative to the current origin.
// No retries and no timeout beyond ctx.
func Fetch(ctx context.Context, client *http.Client, base string, l Loader) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	endpoint := strings.TrimSuffix(strings.TrimSpace(base), "/") + l.Resource
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", endpoint, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s failed: %s", endpoint, resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayload))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", endpoint, err)
	}
	return body, nil
}
