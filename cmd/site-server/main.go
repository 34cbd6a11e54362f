package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Its-donkey/archambeau-site/internal/calendar"
	"github.com/Its-donkey/archambeau-site/internal/config"
	"github.com/Its-donkey/archambeau-site/internal/contact"
	"github.com/Its-donkey/archambeau-site/internal/identity"
	"github.com/Its-donkey/archambeau-site/internal/metadata"
	"github.com/Its-donkey/archambeau-site/internal/site"
	"github.com/Its-donkey/archambeau-site/logging"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "hash-password" {
		os.Exit(hashPasswordCommand(os.Args[2:], terminalPassword, os.Stdout, os.Stderr))
	}

	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
		// A second signal skips graceful shutdown.
		<-sigCh
		log.Println("second interrupt received, forcing shutdown")
		os.Exit(1)
	}()
	defer func() {
		signal.Stop(sigCh)
		cancel()
	}()

	configPath := flag.String("config", "config.json", "path to server configuration")
	var overrides flagOverrides
	flag.StringVar(&overrides.listen, "listen", "", "address to serve the site (defaults to config.json server.addr+port)")
	flag.StringVar(&overrides.assets, "assets", "", "directory containing the static pages and main.wasm (defaults to config.json app.assets)")
	flag.StringVar(&overrides.data, "data", "", "directory served at /_data/ (defaults to config.json app.data)")
	flag.StringVar(&overrides.logs, "logs", "", "directory for log files (defaults to config.json app.logs)")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	listen := overrides.apply(&cfg)

	logger, closeLogs, err := newLogger(cfg.App)
	if err != nil {
		log.Fatalf("open logs: %v", err)
	}
	defer closeLogs()

	opts, err := buildOptions(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("configure site: %v", err)
	}
	opts.Listen = listen

	if err := site.Run(ctx, opts); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server", "server stopped with error", err, nil)
		log.Fatalf("server error: %v", err)
	}
}

type flagOverrides struct {
	listen string
	assets string
	data   string
	logs   string
}

// apply copies non-empty flag values into cfg and returns the listen address.
func (o flagOverrides) apply(cfg *config.Config) string {
	if o.assets != "" {
		cfg.App.Assets = o.assets
	}
	if o.data != "" {
		cfg.App.Data = o.data
	}
	if o.logs != "" {
		cfg.App.Logs = o.logs
	}
	if o.listen != "" {
		return o.listen
	}
	return cfg.Server.Listen()
}

func newLogger(app config.AppConfig) (*logging.Logger, func(), error) {
	fileWriter, err := logging.NewFileWriter(app.Logs, "site.log", logging.FileOptions{})
	if err != nil {
		return nil, nil, err
	}
	logger := logging.New(app.Name, logging.ParseLevel(app.LogLevel), os.Stdout, fileWriter)
	return logger, func() { _ = fileWriter.Close() }, nil
}

// buildOptions wires the collaborators described by cfg. Missing credentials
// leave a collaborator unconfigured rather than failing startup.
func buildOptions(ctx context.Context, cfg config.Config, logger *logging.Logger) (site.Options, error) {
	opts := site.Options{
		AssetsDir: cfg.App.Assets,
		DataDir:   cfg.App.Data,
		Logger:    logger,
	}
	client := &http.Client{Timeout: 10 * time.Second}

	var source calendar.Source
	configured := calendar.Configured(cfg.Calendar.APIKey, cfg.Calendar.CalendarID)
	if configured {
		google, err := calendar.NewGoogleSource(ctx, cfg.Calendar.APIKey, cfg.Calendar.CalendarID)
		if err != nil {
			return site.Options{}, fmt.Errorf("calendar: %w", err)
		}
		source = google
	} else {
		logger.Warn("calendar", "calendar credentials missing, performance listing disabled", nil)
	}
	opts.Performances = calendar.NewService(source, configured,
		calendar.WithMaxEvents(cfg.Calendar.MaxEvents),
		calendar.WithLogger(logger),
	)

	deliverer, err := contact.Select(contact.Settings{
		FormspreeID:  cfg.Contact.FormspreeID,
		ResendAPIKey: cfg.Contact.ResendAPIKey,
		From:         cfg.Contact.From,
		To:           cfg.Contact.To,
	}, client)
	switch {
	case err == nil:
		opts.Contact = deliverer
	case errors.Is(err, contact.ErrNotConfigured):
		logger.Warn("contact", "no contact relay configured, /api/contact disabled", nil)
	default:
		return site.Options{}, fmt.Errorf("contact: %w", err)
	}

	provider := identity.NewProvider(cfg.Admin.Email, cfg.Admin.PasswordHash, cfg.Admin.TokenSecret, cfg.Admin.TokenTTL())
	if !provider.Configured() {
		logger.Warn("admin", "admin credentials incomplete, admin login disabled", nil)
	}
	opts.Identity = provider
	opts.Titles = metadata.NewService(client, logger, cfg.YouTube.APIKey)

	return opts, nil
}
