// Package site serves the static pages, the content data directory and the
// small JSON API the browser runtime relies on.
package site

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/Its-donkey/archambeau-site/internal/metadata"
	"github.com/Its-donkey/archambeau-site/internal/ui/model"
	"github.com/Its-donkey/archambeau-site/logging"
)

// Options configures the site HTTP server.
type Options struct {
	Listen    string
	AssetsDir string
	DataDir   string
	Logger    *logging.Logger

	Performances PerformanceLister
	Contact      ContactDeliverer
	Identity     Identity
	Titles       TitleLookup
	Now          func() time.Time
}

// PerformanceLister is implemented by *calendar.Service.
type PerformanceLister interface {
	Listing(ctx context.Context) model.PerformanceListing
}

// ContactDeliverer is implemented by the contact relay backends.
type ContactDeliverer interface {
	Deliver(ctx context.Context, sub model.ContactSubmission) error
}

// Identity is implemented by *identity.Provider.
type Identity interface {
	Login(email, password string) (model.LoginResponse, error)
	Session(token string) (model.SessionResponse, error)
}

// TitleLookup is implemented by *metadata.Service.
type TitleLookup interface {
	Fetch(ctx context.Context, ref string) (*metadata.Metadata, error)
}

type server struct {
	assetsDir    string
	dataDir      string
	logger       *logging.Logger
	performances PerformanceLister
	contact      ContactDeliverer
	identity     Identity
	titles       TitleLookup
	now          func() time.Time
}

// NewHandler validates opts and returns the site's HTTP handler, wrapped in
// the request logging middleware.
func NewHandler(opts Options) (http.Handler, error) {
	assets, err := filepath.Abs(opts.AssetsDir)
	if err != nil {
		return nil, fmt.Errorf("resolve assets dir: %w", err)
	}
	if info, err := os.Stat(assets); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("assets directory %s is invalid: %v", assets, err)
	}
	data, err := filepath.Abs(opts.DataDir)
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	srv := &server{
		assetsDir:    assets,
		dataDir:      data,
		logger:       logger,
		performances: opts.Performances,
		contact:      opts.Contact,
		identity:     opts.Identity,
		titles:       opts.Titles,
		now:          now,
	}

	mime.AddExtensionType(".wasm", "application/wasm")

	mux := http.NewServeMux()
	mux.HandleFunc("/api/performances", srv.handlePerformances)
	mux.HandleFunc("/api/performances.ics", srv.handlePerformancesICS)
	mux.HandleFunc("/api/contact", srv.handleContact)
	mux.HandleFunc("/api/admin/login", srv.handleAdminLogin)
	mux.HandleFunc("/api/admin/session", srv.handleAdminSession)
	mux.HandleFunc("/api/admin/video", srv.handleAdminVideo)
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.Handle("/_data/", http.StripPrefix("/_data/", dataHandler(data)))
	mux.Handle("/", staticHandler(assets))

	return logging.NewHTTPLogger(logger, 0).Middleware(mux), nil
}

// Run starts the server and shuts it down gracefully when ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	handler, err := NewHandler(opts)
	if err != nil {
		return err
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	httpServer := &http.Server{
		Addr:              opts.Listen,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server", "listening", map[string]any{
			"addr":   opts.Listen,
			"assets": opts.AssetsDir,
			"data":   opts.DataDir,
		})
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("server", "stopped", nil)
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
