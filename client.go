package bookmyshow

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/jaydeepparmar2244/BookMyShow-FE/api"
	"github.com/jaydeepparmar2244/BookMyShow-FE/guard"
	internalaudit "github.com/jaydeepparmar2244/BookMyShow-FE/internal/audit"
)

// Client is the façade over the session store, the route guard chain, and
// the API gateway. Construct one per terminal via [New] and share it; all
// methods are safe for concurrent use.
type Client struct {
	config  Config
	session *sessionStore
	chain   *guard.Chain
	gateway *api.Gateway
	audit   *internalaudit.Dispatcher
	metrics *Metrics
	closed  atomic.Bool

	// Typed backend services, ready to call once Build returns.
	Users    *api.UsersService
	Movies   *api.MoviesService
	Theatres *api.TheatresService
	Screens  *api.ScreensService
	Shows    *api.ShowsService
	Bookings *api.BookingsService
	Cities   *api.CitiesService
}

// sessionView adapts the session store to the read-only [guard.Session]
// contract.
type sessionView struct {
	s *sessionStore
}

func (v sessionView) Hydrating() bool     { return v.s.hydrating() }
func (v sessionView) Authenticated() bool { return v.s.isAuthenticated() }
func (v sessionView) City() string        { return v.s.city() }
func (v sessionView) Role() string        { return v.s.role() }

/*
====================================
AUTH FLOWS
====================================
*/

// Login authenticates against the backend and installs the issued
// credential. The returned profile is synthesized from credential claims
// and enriched with the backend profile when that fetch succeeds; the
// enrichment failing does not fail the login.
//
// A logout that happens while the network call is in flight wins: the
// stale result is discarded and Login returns [ErrStaleResult].
func (c *Client) Login(ctx context.Context, email, password string) (UserProfile, error) {
	if c.closed.Load() {
		return UserProfile{}, ErrClientClosed
	}

	gen := c.session.beginAttempt()

	credential, err := c.Users.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		c.metrics.Inc(MetricLoginFailure)
		c.emitAudit(ctx, AuditEvent{EventType: AuditLogin, Success: false, Error: err.Error()})
		return UserProfile{}, err
	}

	profile := synthesizeProfile(credential)
	profile.Email = email

	if err := c.session.commitLogin(ctx, gen, credential, profile); err != nil {
		if errors.Is(err, ErrStaleResult) {
			c.metrics.Inc(MetricStaleResultDiscarded)
		}
		c.emitAudit(ctx, AuditEvent{EventType: AuditLogin, SubjectID: profile.SubjectID, Success: false, Error: err.Error()})
		return UserProfile{}, err
	}

	c.metrics.Inc(MetricLoginSuccess)
	c.emitAudit(ctx, AuditEvent{EventType: AuditLogin, SubjectID: profile.SubjectID, Success: true})

	if enriched, ok := c.fetchProfile(ctx, gen, profile); ok {
		profile = enriched
	}
	return profile, nil
}

// Register creates an account and, like the stock frontend, treats the
// returned token as an immediate login.
func (c *Client) Register(ctx context.Context, name, email, password string) (UserProfile, error) {
	if c.closed.Load() {
		return UserProfile{}, ErrClientClosed
	}

	gen := c.session.beginAttempt()

	resp, err := c.Users.Register(ctx, api.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		c.metrics.Inc(MetricRegisterFailure)
		c.emitAudit(ctx, AuditEvent{EventType: AuditRegister, Success: false, Error: err.Error()})
		return UserProfile{}, err
	}

	profile := synthesizeProfile(resp.Token)
	profile.Name = resp.User.Name
	profile.Email = resp.User.Email
	if profile.SubjectID == "" {
		profile.SubjectID = resp.User.ID
	}
	if profile.Role == "" {
		profile.Role = resp.User.Role
	}

	if err := c.session.commitLogin(ctx, gen, resp.Token, profile); err != nil {
		if errors.Is(err, ErrStaleResult) {
			c.metrics.Inc(MetricStaleResultDiscarded)
		}
		c.emitAudit(ctx, AuditEvent{EventType: AuditRegister, SubjectID: profile.SubjectID, Success: false, Error: err.Error()})
		return UserProfile{}, err
	}

	c.metrics.Inc(MetricRegisterSuccess)
	c.emitAudit(ctx, AuditEvent{EventType: AuditRegister, SubjectID: profile.SubjectID, Success: true})
	return profile, nil
}

// fetchProfile pulls the backend profile to enrich the locally synthesized
// one. Best effort only.
func (c *Client) fetchProfile(ctx context.Context, gen uint64, base UserProfile) (UserProfile, bool) {
	user, err := c.Users.Profile(ctx)
	if err != nil {
		return UserProfile{}, false
	}

	enriched := base
	if user.Name != "" {
		enriched.Name = user.Name
	}
	if user.Email != "" {
		enriched.Email = user.Email
	}
	if user.City != "" {
		enriched.City = user.City
	}
	if enriched.Role == "" {
		enriched.Role = user.Role
	}

	if err := c.session.updateProfile(ctx, gen, enriched); err != nil {
		return UserProfile{}, false
	}
	return enriched, true
}

// Logout clears the session and persisted state. Calling it while already
// logged out is a successful no-op.
func (c *Client) Logout(ctx context.Context) error {
	hadSession, err := c.session.logout(ctx)
	if err != nil {
		return err
	}
	if hadSession {
		c.metrics.Inc(MetricLogout)
		c.emitAudit(ctx, AuditEvent{EventType: AuditLogout, Success: true})
	}
	return nil
}

// UpdateCity records the selected operating city on the current session.
func (c *Client) UpdateCity(ctx context.Context, city string) error {
	if c.closed.Load() {
		return ErrClientClosed
	}
	if err := c.session.updateCity(ctx, city); err != nil {
		return err
	}
	c.metrics.Inc(MetricCitySelected)
	c.emitAudit(ctx, AuditEvent{EventType: AuditCitySelected, City: city, Success: true})
	return nil
}

/*
====================================
SESSION STATE
====================================
*/

// IsAuthenticated re-checks credential liveness at call time; a credential
// that expired since the last check reports false immediately.
func (c *Client) IsAuthenticated() bool {
	return c.session.isAuthenticated()
}

// Session returns a point-in-time snapshot of session state.
func (c *Client) Session() SessionSnapshot {
	return c.session.snapshot()
}

/*
====================================
NAVIGATION
====================================
*/

// Evaluate runs the route guard chain for one navigation attempt.
func (c *Client) Evaluate(path string) guard.Decision {
	decision := c.chain.Evaluate(sessionView{s: c.session}, path)

	paths := c.chain.Paths()
	switch decision.Action {
	case guard.ActionAllow:
		c.metrics.Inc(MetricGuardAllow)
	case guard.ActionPending:
		c.metrics.Inc(MetricGuardPending)
	case guard.ActionRedirect:
		switch decision.Target {
		case paths.Login:
			c.metrics.Inc(MetricGuardRedirectLogin)
		case paths.CitySelector:
			c.metrics.Inc(MetricGuardRedirectCity)
		default:
			c.metrics.Inc(MetricGuardRedirectHome)
		}
	}
	return decision
}

// ResumeTarget resolves where to navigate after login or city selection
// completes: the origin saved by the guard redirect when one exists,
// otherwise the configured fallback.
func (c *Client) ResumeTarget(savedOrigin string) string {
	return guard.Resume(savedOrigin, c.config.Session.PostLoginFallback)
}

/*
====================================
GATEWAY CONTRACTS
====================================
*/

// Credential implements [api.CredentialSource].
func (c *Client) Credential() (string, bool) {
	return c.session.currentCredential()
}

// ForceLogout implements [api.CredentialSource]. The gateway calls it when
// a credential is locally dead or upstream rejected it.
func (c *Client) ForceLogout(ctx context.Context, reason string) {
	hadSession, _ := c.session.logout(ctx)
	if hadSession {
		c.metrics.Inc(MetricForcedLogout)
		c.emitAudit(ctx, AuditEvent{EventType: AuditForceLogout, Success: true, Error: reason})
	}
}

// RequestCompleted implements [api.Observer] and feeds request telemetry
// into metrics.
func (c *Client) RequestCompleted(info api.RequestInfo) {
	if info.Err == nil {
		c.metrics.Inc(MetricRequestSuccess)
	} else {
		c.metrics.Inc(MetricRequestFailure)
		switch {
		case errors.Is(info.Err, ErrSessionExpired) && info.Status == 0:
			c.metrics.Inc(MetricSessionExpiredLocal)
		case errors.Is(info.Err, ErrSessionExpired):
			c.metrics.Inc(MetricSessionExpiredUpstream)
		default:
			if _, ok := api.AsUpstream(info.Err); ok {
				c.metrics.Inc(MetricUpstreamError)
			}
		}
	}
	c.metrics.Observe(MetricRequestLatency, info.Elapsed)
}

/*
====================================
OBSERVABILITY
====================================
*/

// MetricsSnapshot returns a deep copy of all counters and histograms.
func (c *Client) MetricsSnapshot() MetricsSnapshot {
	return c.metrics.Snapshot()
}

// Metrics exposes the live metrics instance for exporters.
func (c *Client) Metrics() *Metrics {
	return c.metrics
}

// AuditDropped reports how many audit events were discarded because the
// dispatcher buffer was full.
func (c *Client) AuditDropped() uint64 {
	return c.audit.Dropped()
}

func (c *Client) emitAudit(ctx context.Context, event AuditEvent) {
	if c.audit == nil {
		return
	}
	event.Timestamp = c.session.clock()
	c.audit.Emit(ctx, event)
}

// Close drains and stops the audit dispatcher. The client rejects auth
// flows afterward.
func (c *Client) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	c.audit.Close()
	return nil
}
