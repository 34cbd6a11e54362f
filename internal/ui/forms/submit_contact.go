package forms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Its-donkey/archambeau-site/internal/ui/model"
)

// RelayPath is the site server's contact relay, used when the form names no
// external endpoint.
const RelayPath = "/api/contact"

const (
	SuccessMessage = "Thank you for your message! I will get back to you soon."
	FailureMessage = "Sorry, there was an error sending your message. Please try again or contact via social media."
	SendingLabel   = "Sending..."
)

// Endpoint picks where a submission goes: the form's data-endpoint when set,
// otherwise the relay.
func Endpoint(dataEndpoint string) string {
	if e := strings.TrimSpace(dataEndpoint); e != "" {
		return e
	}
	return RelayPath
}

// SubmitContact posts sub as JSON to endpoint. Any non-2xx answer is an error.
func SubmitContact(ctx context.Context, client *http.Client, endpoint string, sub model.ContactSubmission) error {
	data, err := json.Marshal(sub)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("submission failed: %s", resp.Status)
	}
	return nil
}
