package site

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Its-donkey/archambeau-site/internal/identity"
	"github.com/Its-donkey/archambeau-site/internal/ui/model"
	"github.com/Its-donkey/archambeau-site/internal/ui/platforms/youtube"
)

func (s *server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	if s.identity == nil {
		http.Error(w, identity.ErrNotConfigured.Error(), http.StatusServiceUnavailable)
		return
	}
	var req model.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		http.Error(w, "invalid login request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}

	log := s.logger.FromContext(r.Context()).WithCategory("admin")
	resp, err := s.identity.Login(req.Email, req.Password)
	switch {
	case err == nil:
		log.Info("admin login succeeded")
		writeJSON(w, http.StatusOK, resp)
	case errors.Is(err, identity.ErrNotConfigured):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	case errors.Is(err, identity.ErrInvalidCredentials):
		log.Warn("admin login rejected")
		http.Error(w, err.Error(), http.StatusUnauthorized)
	default:
		log.Error("admin login failed", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
	}
}

// requireSession writes the error response and returns false when the
// request carries no valid admin token.
func (s *server) requireSession(w http.ResponseWriter, r *http.Request) (model.SessionResponse, bool) {
	if s.identity == nil {
		http.Error(w, identity.ErrNotConfigured.Error(), http.StatusServiceUnavailable)
		return model.SessionResponse{}, false
	}
	token := identity.BearerToken(r.Header.Get("Authorization"))
	if token == "" {
		http.Error(w, "missing bearer token", http.StatusUnauthorized)
		return model.SessionResponse{}, false
	}
	session, err := s.identity.Session(token)
	if err != nil {
		if errors.Is(err, identity.ErrNotConfigured) {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return model.SessionResponse{}, false
		}
		http.Error(w, "session expired", http.StatusUnauthorized)
		return model.SessionResponse{}, false
	}
	return session, true
}

func (s *server) handleAdminSession(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	session, ok := s.requireSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// handleAdminVideo looks up a video title for the editor. Lookup failures
// still answer 200 with an empty title so the editor falls back to its
// default title.
func (s *server) handleAdminVideo(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	if _, ok := s.requireSession(w, r); !ok {
		return
	}
	videoID, ok := youtube.ExtractVideoID(r.URL.Query().Get("id"))
	if !ok {
		http.Error(w, "invalid video id", http.StatusBadRequest)
		return
	}

	resp := model.VideoLookupResponse{VideoID: videoID}
	if s.titles != nil {
		md, err := s.titles.Fetch(r.Context(), videoID)
		if err != nil {
			s.logger.FromContext(r.Context()).WithCategory("metadata").WithField("video_id", videoID).Warn("title lookup failed: " + err.Error())
		} else if md != nil {
			resp.Title = strings.TrimSpace(md.Title)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
