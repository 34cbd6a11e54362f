package identity

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/Its-donkey/archambeau-site/internal/ui/model"
)

var (
	ErrNotConfigured      = errors.New("admin login is not configured")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Provider checks the configured admin credentials and manages sessions.
type Provider struct {
	email  string
	hash   string
	tokens *TokenManager
}

// NewProvider returns a provider for one admin account. Missing email, hash or
// secret leaves the provider unconfigured and every login fails.
func NewProvider(email, passwordHash, secret string, ttl time.Duration) *Provider {
	p := &Provider{
		email: strings.ToLower(strings.TrimSpace(email)),
		hash:  strings.TrimSpace(passwordHash),
	}
	if strings.TrimSpace(secret) != "" {
		p.tokens = NewTokenManager(secret, ttl)
	}
	return p
}

// Configured reports whether logins can succeed.
func (p *Provider) Configured() bool {
	return p != nil && p.email != "" && p.hash != "" && p.tokens != nil
}

// Login verifies credentials and issues a session token.
func (p *Provider) Login(email, password string) (model.LoginResponse, error) {
	if !p.Configured() {
		return model.LoginResponse{}, ErrNotConfigured
	}
	email = strings.ToLower(strings.TrimSpace(email))
	emailMatch := subtle.ConstantTimeCompare([]byte(email), []byte(p.email)) == 1
	ok, err := VerifyPassword(password, p.hash)
	if err != nil {
		return model.LoginResponse{}, err
	}
	if !emailMatch || !ok {
		return model.LoginResponse{}, ErrInvalidCredentials
	}
	token, expires, err := p.tokens.Issue(p.email)
	if err != nil {
		return model.LoginResponse{}, err
	}
	return model.LoginResponse{Token: token, ExpiresAt: expires}, nil
}

// Session returns the session behind token.
func (p *Provider) Session(token string) (model.SessionResponse, error) {
	if !p.Configured() {
		return model.SessionResponse{}, ErrNotConfigured
	}
	claims, err := p.tokens.Validate(token)
	if err != nil {
		return model.SessionResponse{}, err
	}
	if claims.Email != p.email {
		return model.SessionResponse{}, ErrInvalidToken
	}
	return model.SessionResponse{Email: claims.Email, ExpiresAt: claims.ExpiresAt.Time.UTC()}, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) string {
	const prefix = "bearer "
	header = strings.TrimSpace(header)
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
