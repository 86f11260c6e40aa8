package bookmyshow

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jaydeepparmar2244/BookMyShow-FE/api"
	"github.com/jaydeepparmar2244/BookMyShow-FE/guard"
	internalaudit "github.com/jaydeepparmar2244/BookMyShow-FE/internal/audit"
	"github.com/jaydeepparmar2244/BookMyShow-FE/storage"
)

// Builder defines a public type used by the booking client APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config
	store  storage.Store

	httpClient *http.Client
	auditSink  AuditSink
	clock      func() time.Time

	built bool
}

// New describes the new operation and its observable behavior.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithBaseURL describes the withbaseurl operation and its observable behavior.
func (b *Builder) WithBaseURL(baseURL string) *Builder {
	b.config.API.BaseURL = baseURL
	return b
}

// WithStorage describes the withstorage operation and its observable behavior.
func (b *Builder) WithStorage(store storage.Store) *Builder {
	b.store = store
	return b
}

// WithHTTPClient describes the withhttpclient operation and its observable behavior.
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.httpClient = client
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithClock describes the withclock operation and its observable behavior.
func (b *Builder) WithClock(clock func() time.Time) *Builder {
	b.clock = clock
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms describes the withlatencyhistograms operation and its observable behavior.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build assembles the client and runs the one-time hydration pass against
// the configured storage. A dead persisted credential is discarded during
// this pass, never surfaced as a live session.
//
// Build may return an error when input validation, dependency calls, or upstream responses fail.
func (b *Builder) Build() (*Client, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if b.store == nil {
		return nil, errors.New("storage backend required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clock := b.clock
	if clock == nil {
		clock = time.Now
	}

	httpClient := b.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.API.Timeout}
	}

	client := &Client{
		config:  cfg,
		session: newSessionStore(b.store, clock),
		chain: guard.NewChain(guard.Paths{
			Login:        cfg.Routes.Login,
			Home:         cfg.Routes.Home,
			CitySelector: cfg.Routes.CitySelector,
		}, cfg.Routes.Rules),
		metrics: NewMetrics(cfg.Metrics),
		audit: internalaudit.NewDispatcher(internalaudit.Config{
			Enabled:    cfg.Audit.Enabled,
			BufferSize: cfg.Audit.BufferSize,
			DropIfFull: cfg.Audit.DropIfFull,
		}, b.auditSink),
	}

	gateway, err := api.NewGateway(api.GatewayConfig{
		BaseURL:     cfg.API.BaseURL,
		HTTPClient:  httpClient,
		Credentials: client,
		Observer:    client,
		UserAgent:   cfg.API.UserAgent,
		Clock:       clock,
	})
	if err != nil {
		client.audit.Close()
		return nil, err
	}
	client.gateway = gateway

	client.Users = api.NewUsersService(gateway)
	client.Movies = api.NewMoviesService(gateway)
	client.Theatres = api.NewTheatresService(gateway)
	client.Screens = api.NewScreensService(gateway)
	client.Shows = api.NewShowsService(gateway)
	client.Bookings = api.NewBookingsService(gateway)
	client.Cities = api.NewCitiesService(gateway)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Session.HydrateTimeout)
	defer cancel()

	outcome, err := client.session.hydrate(ctx)
	if err != nil {
		client.audit.Close()
		return nil, err
	}
	switch outcome {
	case hydrationRestored:
		client.metrics.Inc(MetricHydrationRestored)
		client.emitAudit(ctx, AuditEvent{EventType: AuditHydration, SubjectID: client.session.snapshot().Profile.SubjectID, Success: true})
	case hydrationDiscarded:
		client.metrics.Inc(MetricHydrationDiscarded)
		client.emitAudit(ctx, AuditEvent{EventType: AuditHydration, Success: false, Error: "persisted credential expired"})
	default:
		client.metrics.Inc(MetricHydrationEmpty)
	}

	b.built = true

	return client, nil
}
