package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Its-donkey/archambeau-site/internal/ui/model"
)

// ErrUnauthorized is returned when the identity service rejects the token.
var ErrUnauthorized = errors.New("Session expired. Log in again.")

// MediaPagePath is the deployed page the editor reads the live carousel from.
const MediaPagePath = "/media.html"

// API talks to the site server on behalf of the admin console.
type API struct {
	Base   string
	Client *http.Client
	Token  string
}

func (a *API) request(ctx context.Context, method, path string, payload any, requireAuth bool) ([]byte, int, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, err
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, strings.TrimSuffix(a.Base, "/")+path, body)
	if err != nil {
		return nil, 0, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requireAuth {
		token := strings.TrimSpace(a.Token)
		if token == "" {
			return nil, 0, ErrUnauthorized
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := a.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if requireAuth && resp.StatusCode == http.StatusUnauthorized {
		return nil, resp.StatusCode, ErrUnauthorized
	}
	if err != nil {
		return nil, resp.StatusCode, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := strings.TrimSpace(string(responseBody))
		if message == "" {
			message = resp.Status
		}
		return nil, resp.StatusCode, errors.New(message)
	}
	return responseBody, resp.StatusCode, nil
}

// Login exchanges credentials for a session token.
func (a *API) Login(ctx context.Context, email, password string) (model.LoginResponse, error) {
	body, _, err := a.request(ctx, http.MethodPost, "/api/admin/login", model.LoginRequest{
		Email:    email,
		Password: password,
	}, false)
	if err != nil {
		return model.LoginResponse{}, err
	}
	var resp model.LoginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return model.LoginResponse{}, err
	}
	if strings.TrimSpace(resp.Token) == "" {
		return model.LoginResponse{}, errors.New("missing admin token")
	}
	return resp, nil
}

// Session asks who the stored token belongs to.
func (a *API) Session(ctx context.Context) (model.SessionResponse, error) {
	body, _, err := a.request(ctx, http.MethodGet, "/api/admin/session", nil, true)
	if err != nil {
		return model.SessionResponse{}, err
	}
	var resp model.SessionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return model.SessionResponse{}, err
	}
	return resp, nil
}

// LookupTitle returns the public title of a video, if the server can find one.
func (a *API) LookupTitle(ctx context.Context, videoID string) (string, error) {
	body, _, err := a.request(ctx, http.MethodGet, "/api/admin/video?id="+url.QueryEscape(videoID), nil, true)
	if err != nil {
		return "", err
	}
	var resp model.VideoLookupResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", err
	}
	title := strings.TrimSpace(resp.Title)
	if title == "" {
		return "", fmt.Errorf("no title for %s", videoID)
	}
	return title, nil
}

// DeployedVideos fetches media.html and scrapes its carousel.
func (a *API) DeployedVideos(ctx context.Context) ([]model.VideoRecord, error) {
	body, _, err := a.request(ctx, http.MethodGet, MediaPagePath, nil, false)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", MediaPagePath, err)
	}
	return ScrapeVideos(bytes.NewReader(body))
}
