package bookmyshow

import (
	"errors"
	"net/url"
	"time"

	"github.com/jaydeepparmar2244/BookMyShow-FE/guard"
)

// Config defines a public type used by the booking client APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	API     APIConfig
	Routes  RoutesConfig
	Session SessionConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

/*
====================================
API CONFIG
====================================
*/

// APIConfig defines a public type used by the booking client APIs.
//
// APIConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type APIConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

/*
====================================
ROUTES CONFIG
====================================
*/

// RoutesConfig defines a public type used by the booking client APIs.
//
// Rules are evaluated in order, first match wins. Paths not matched by any
// rule are treated as city-gated content. Zero-value navigation targets
// fall back to [guard.DefaultPaths].
type RoutesConfig struct {
	Login        string
	Home         string
	CitySelector string
	Rules        []guard.Rule
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionConfig defines a public type used by the booking client APIs.
//
// SessionConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SessionConfig struct {
	// PostLoginFallback is where a completed login navigates when no origin
	// was saved by a guard redirect.
	PostLoginFallback string
	// HydrateTimeout bounds the storage read performed by Build.
	HydrateTimeout time.Duration
}

// AuditConfig defines a public type used by the booking client APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig defines a public type used by the booking client APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

/*
====================================
DEFAULT CONFIG
====================================
*/

// DefaultConfig returns the stock configuration: default route table,
// conservative timeouts, audit and metrics disabled.
func DefaultConfig() Config {
	return defaultConfig()
}

// KioskConfig returns a preset for shared-terminal deployments: audit and
// metrics on, latency histograms on, and a shorter HTTP timeout so a stuck
// backend does not freeze the terminal.
func KioskConfig() Config {
	cfg := defaultConfig()
	cfg.API.Timeout = 8 * time.Second
	cfg.Audit.Enabled = true
	cfg.Metrics.Enabled = true
	cfg.Metrics.EnableLatencyHistograms = true
	return cfg
}

func defaultConfig() Config {
	return Config{
		API: APIConfig{
			Timeout: 15 * time.Second,
		},
		Routes: RoutesConfig{
			Login:        "/login",
			Home:         "/",
			CitySelector: "/select-location",
			Rules:        DefaultRules(),
		},
		Session: SessionConfig{
			PostLoginFallback: "/",
			HydrateTimeout:    5 * time.Second,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

// DefaultRules returns the rule table of the stock booking frontend:
// public-only entry views, an always-reachable city selector, an
// admin-gated management area, and city-gated content everywhere else.
func DefaultRules() []guard.Rule {
	return []guard.Rule{
		{Pattern: "/login", Exact: true, Class: guard.ClassPublicOnly},
		{Pattern: "/register", Exact: true, Class: guard.ClassPublicOnly},
		{Pattern: "/select-location", Exact: true, Class: guard.ClassCityGated},
		{Pattern: "/admin", Class: guard.ClassRoleGated, AllowedRoles: []string{RoleAdmin}},
	}
}

func cloneConfig(cfg Config) Config {
	out := cfg
	out.Routes.Rules = make([]guard.Rule, len(cfg.Routes.Rules))
	for i, rule := range cfg.Routes.Rules {
		rule.AllowedRoles = append([]string(nil), rule.AllowedRoles...)
		out.Routes.Rules[i] = rule
	}
	return out
}

/*
====================================
VALIDATION
====================================
*/

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or upstream responses fail.
func (c *Config) Validate() error {
	// API
	if c.API.BaseURL == "" {
		return errors.New("API BaseURL must be set")
	}
	base, err := url.Parse(c.API.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return errors.New("API BaseURL must be an absolute URL")
	}
	if c.API.Timeout < 0 {
		return errors.New("API Timeout must be >= 0")
	}

	// Routes
	for _, rule := range c.Routes.Rules {
		if rule.Pattern == "" {
			return errors.New("Routes rule pattern must not be empty")
		}
		if rule.Class == guard.ClassRoleGated && len(rule.AllowedRoles) == 0 {
			return errors.New("role-gated rule requires at least one allowed role")
		}
	}

	// Session
	if c.Session.PostLoginFallback == "" {
		return errors.New("Session PostLoginFallback must be set")
	}
	if c.Session.HydrateTimeout <= 0 {
		return errors.New("Session HydrateTimeout must be > 0")
	}

	// Audit
	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("Audit BufferSize must be > 0 when auditing is enabled")
	}

	return nil
}
