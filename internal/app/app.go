package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"golang.org/x/sync/errgroup"

	"github.com/gigshift/gigshift/internal/api"
	"github.com/gigshift/gigshift/internal/tokensource"
	"github.com/gigshift/gigshift/internal/tokenstore"
)

// App wires the configured token store and API client together.
type App struct {
	cfg      *Config
	store    tokenstore.TokenStore
	client   *api.Client
	registry *prometheus.Registry
}

// New creates a new App instance. No I/O happens until the first call.
// Extra options are applied after the ones derived from cfg.
func New(cfg *Config, opts ...api.Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	store, err := cfg.Auth.NewTokenStore()
	if err != nil {
		return nil, fmt.Errorf("failed to create token store: %w", err)
	}

	src, err := tokensource.New(store)
	if err != nil {
		return nil, fmt.Errorf("failed to create token source: %w", err)
	}

	registry := prometheus.NewRegistry()

	clientOpts := append([]api.Option{
		api.WithTimeout(cfg.API.Timeout),
		api.WithUserAgent(cfg.API.UserAgent),
		api.WithLogger(slog.Default()),
		api.WithMetrics(registry),
	}, opts...)

	client, err := api.New(cfg.API.BaseURL, src, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	return &App{
		cfg:      cfg,
		store:    store,
		client:   client,
		registry: registry,
	}, nil
}

// Config returns the configuration the app was built from.
func (a *App) Config() *Config {
	return a.cfg
}

// Client returns the API client.
func (a *App) Client() *api.Client {
	return a.client
}

// WriteMetrics writes the client's request metrics in the Prometheus text format.
func (a *App) WriteMetrics(w io.Writer) error {
	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}

// Dashboard is a summary of the signed-in user's account.
type Dashboard struct {
	Profile       *api.User          `json:"profile"`
	Upcoming      []api.Shift        `json:"upcoming_shifts"`
	Applications  []api.Application  `json:"applications"`
	Notifications []api.Notification `json:"unread_notifications"`
}

// Dashboard loads the profile, upcoming shifts, pending applications and unread
// notifications concurrently. The first failure cancels the remaining calls.
func (a *App) Dashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		profile, err := a.client.GetProfile(gCtx)
		if err != nil {
			return err
		}
		d.Profile = profile
		return nil
	})
	g.Go(func() error {
		shifts, err := a.client.GetMyShifts(gCtx, "upcoming")
		if err != nil {
			return err
		}
		d.Upcoming = shifts
		return nil
	})
	g.Go(func() error {
		apps, err := a.client.GetMyApplications(gCtx, "pending")
		if err != nil {
			return err
		}
		d.Applications = apps
		return nil
	})
	g.Go(func() error {
		notes, err := a.client.GetNotifications(gCtx, true)
		if err != nil {
			return err
		}
		d.Notifications = notes
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.DebugContext(ctx, "dashboard load failed", "error", err)
		return nil, err
	}
	return &d, nil
}
