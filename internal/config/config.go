// Package config loads and normalises site-server configuration files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultAddr     = "127.0.0.1"
	defaultPort     = ":4173"
	defaultAssets   = "site"
	defaultData     = "site/_data"
	defaultLogs     = "logs"
	defaultName     = "Archambeau"
	defaultLogLevel = "info"
	defaultTokenTTL = 12 * 60 * 60
)

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr string `json:"addr"`
	Port string `json:"port"`
}

// Listen returns the address passed to http.Server.
func (s ServerConfig) Listen() string {
	port := s.Port
	if port != "" && !strings.HasPrefix(port, ":") {
		port = ":" + port
	}
	return s.Addr + port
}

// AppConfig configures static asset, data and log locations.
type AppConfig struct {
	Name     string `json:"name"`
	Assets   string `json:"assets"`
	Data     string `json:"data"`
	Logs     string `json:"logs"`
	LogLevel string `json:"log_level"`
}

// CalendarConfig points at the public performance calendar.
type CalendarConfig struct {
	APIKey     string `json:"api_key"`
	CalendarID string `json:"calendar_id"`
	MaxEvents  int    `json:"max_events"`
}

// YouTubeConfig holds the optional Data API key used for title lookups.
type YouTubeConfig struct {
	APIKey string `json:"api_key"`
}

// AdminConfig stores the single editor account and token settings.
type AdminConfig struct {
	Email           string `json:"email"`
	PasswordHash    string `json:"password_hash"`
	TokenSecret     string `json:"token_secret"`
	TokenTTLSeconds int    `json:"token_ttl_seconds"`
}

// TokenTTL returns the configured session lifetime.
func (a AdminConfig) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLSeconds) * time.Second
}

// ContactConfig selects the contact relay backend.
type ContactConfig struct {
	FormspreeID  string `json:"formspree_id"`
	ResendAPIKey string `json:"resend_api_key"`
	From         string `json:"from"`
	To           string `json:"to"`
}

// Config represents the combined runtime settings parsed from config.json.
type Config struct {
	Server   ServerConfig   `json:"server"`
	App      AppConfig      `json:"app"`
	Calendar CalendarConfig `json:"calendar"`
	YouTube  YouTubeConfig  `json:"youtube"`
	Admin    AdminConfig    `json:"admin"`
	Contact  ContactConfig  `json:"contact"`
}

type fileConfig struct {
	ServerBlock *ServerConfig  `json:"server"`
	Addr        string         `json:"addr"`
	Port        string         `json:"port"`
	App         *AppConfig     `json:"app"`
	Calendar    CalendarConfig `json:"calendar"`
	YouTube     YouTubeConfig  `json:"youtube"`
	Admin       AdminConfig    `json:"admin"`
	Contact     ContactConfig  `json:"contact"`
}

// Load reads the JSON config at the given path and returns the parsed structure.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var raw fileConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	server := ServerConfig{Addr: raw.Addr, Port: raw.Port}
	if raw.ServerBlock != nil {
		server = *raw.ServerBlock
		if server.Addr == "" {
			server.Addr = raw.Addr
		}
		if server.Port == "" {
			server.Port = raw.Port
		}
	}

	var app AppConfig
	if raw.App != nil {
		app = *raw.App
	}

	cfg := Config{
		Server:   server,
		App:      app,
		Calendar: raw.Calendar,
		YouTube:  raw.YouTube,
		Admin:    raw.Admin,
		Contact:  raw.Contact,
	}
	cfg.normalise()
	return cfg, nil
}

// LoadOrDefault loads path, falling back to DefaultConfig when the file does
// not exist. Decode errors are still returned.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return Config{}, err
}

// DefaultConfig returns a configuration populated with default values and any
// secrets provided through the environment.
func DefaultConfig() Config {
	var cfg Config
	cfg.normalise()
	return cfg
}

func (c *Config) normalise() {
	c.Server.Addr = strings.TrimSpace(c.Server.Addr)
	c.Server.Port = strings.TrimSpace(c.Server.Port)
	if c.Server.Addr == "" {
		c.Server.Addr = defaultAddr
	}
	if c.Server.Port == "" {
		c.Server.Port = defaultPort
	}

	if c.App.Name == "" {
		c.App.Name = defaultName
	}
	if c.App.Assets == "" {
		c.App.Assets = defaultAssets
	}
	if c.App.Data == "" {
		c.App.Data = defaultData
	}
	if c.App.Logs == "" {
		c.App.Logs = defaultLogs
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = defaultLogLevel
	}

	c.Calendar.APIKey = withEnvFallback(c.Calendar.APIKey, "GOOGLE_CALENDAR_API_KEY")
	c.Calendar.CalendarID = withEnvFallback(c.Calendar.CalendarID, "GOOGLE_CALENDAR_ID")
	c.YouTube.APIKey = withEnvFallback(c.YouTube.APIKey, "YOUTUBE_API_KEY", "YT_API_KEY")
	c.Contact.ResendAPIKey = withEnvFallback(c.Contact.ResendAPIKey, "RESEND_API_KEY")
	c.Admin.TokenSecret = withEnvFallback(c.Admin.TokenSecret, "ADMIN_TOKEN_SECRET")
	c.Contact.FormspreeID = unsetIfPlaceholder(c.Contact.FormspreeID)

	if c.Admin.TokenTTLSeconds <= 0 {
		c.Admin.TokenTTLSeconds = defaultTokenTTL
	}
	c.Admin.Email = strings.TrimSpace(c.Admin.Email)
}

// IsPlaceholder reports whether value is empty or one of the sample values
// shipped in config.example.json (for example YOUR_API_KEY_HERE).
func IsPlaceholder(value string) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return true
	}
	upper := strings.ToUpper(v)
	return strings.HasPrefix(upper, "YOUR_") || strings.HasSuffix(upper, "_HERE")
}

func unsetIfPlaceholder(value string) string {
	if IsPlaceholder(value) {
		return ""
	}
	return strings.TrimSpace(value)
}

// withEnvFallback keeps a real configured value and otherwise returns the
// first non-empty environment variable in keys.
func withEnvFallback(value string, keys ...string) string {
	if !IsPlaceholder(value) {
		return strings.TrimSpace(value)
	}
	for _, key := range keys {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}
