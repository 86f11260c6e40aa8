package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jaydeepparmar2244/BookMyShow-FE/token"
)

// CredentialSource exposes the current credential and the forced-logout
// side effect. The session store owns both; the gateway only consumes
// them.
type CredentialSource interface {
	Credential() (string, bool)
	ForceLogout(ctx context.Context, reason string)
}

// RequestInfo is handed to an [Observer] after every request attempt,
// including ones rejected locally before any network I/O (Status 0).
type RequestInfo struct {
	RequestID string
	Method    string
	Path      string
	Status    int
	Elapsed   time.Duration
	Err       error
}

// Observer receives request telemetry. Implementations must be cheap; the
// gateway calls them synchronously.
type Observer interface {
	RequestCompleted(info RequestInfo)
}

// GatewayConfig defines a public type used by the booking client APIs.
//
// GatewayConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type GatewayConfig struct {
	BaseURL     string
	HTTPClient  *http.Client
	Credentials CredentialSource
	Observer    Observer
	UserAgent   string
	Clock       func() time.Time
}

// Gateway defines a public type used by the booking client APIs.
//
// Gateway instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Gateway struct {
	base      *url.URL
	client    *http.Client
	creds     CredentialSource
	observer  Observer
	userAgent string
	clock     func() time.Time
}

// NewGateway describes the newgateway operation and its observable behavior.
//
// NewGateway may return an error when input validation, dependency calls, or upstream responses fail.
func NewGateway(cfg GatewayConfig) (*Gateway, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("gateway requires a base URL")
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.New("base URL must be absolute")
	}
	if cfg.Credentials == nil {
		return nil, errors.New("gateway requires a credential source")
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	return &Gateway{
		base:      base,
		client:    cfg.HTTPClient,
		creds:     cfg.Credentials,
		observer:  cfg.Observer,
		userAgent: cfg.UserAgent,
		clock:     cfg.Clock,
	}, nil
}

type payload struct {
	body        io.Reader
	contentType string
}

func jsonPayload(v interface{}) (payload, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return payload{}, fmt.Errorf("encode request body: %w", err)
	}
	return payload{body: bytes.NewReader(data), contentType: "application/json"}, nil
}

// multipartPayload builds a multipart/form-data body from string fields
// and an optional file part (the movie poster upload path).
func multipartPayload(fields map[string]string, fileField, fileName string, file io.Reader) (payload, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return payload{}, fmt.Errorf("write multipart field %s: %w", key, err)
		}
	}
	if file != nil {
		part, err := w.CreateFormFile(fileField, fileName)
		if err != nil {
			return payload{}, fmt.Errorf("create multipart file part: %w", err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return payload{}, fmt.Errorf("copy multipart file: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return payload{}, fmt.Errorf("finalize multipart body: %w", err)
	}

	return payload{body: &buf, contentType: w.FormDataContentType()}, nil
}

func (g *Gateway) getJSON(ctx context.Context, path string, out interface{}) error {
	return g.do(ctx, http.MethodGet, path, payload{}, out)
}

// getPublicJSON fetches an unauthenticated endpoint. Public requests skip
// the credential entirely: no pre-flight, no bearer header, and no
// auth-failure classification of the response.
func (g *Gateway) getPublicJSON(ctx context.Context, path string, out interface{}) error {
	return g.send(ctx, http.MethodGet, path, payload{}, out, true)
}

func (g *Gateway) postJSON(ctx context.Context, path string, body, out interface{}) error {
	p, err := jsonPayload(body)
	if err != nil {
		return err
	}
	return g.do(ctx, http.MethodPost, path, p, out)
}

// postPublicJSON posts to an unauthenticated endpoint (login, register). A
// dead credential left over from an expired session must never block these:
// they are how the user gets a fresh one.
func (g *Gateway) postPublicJSON(ctx context.Context, path string, body, out interface{}) error {
	p, err := jsonPayload(body)
	if err != nil {
		return err
	}
	return g.send(ctx, http.MethodPost, path, p, out, true)
}

func (g *Gateway) putJSON(ctx context.Context, path string, body, out interface{}) error {
	p, err := jsonPayload(body)
	if err != nil {
		return err
	}
	return g.do(ctx, http.MethodPut, path, p, out)
}

func (g *Gateway) putEmpty(ctx context.Context, path string, out interface{}) error {
	return g.do(ctx, http.MethodPut, path, payload{}, out)
}

func (g *Gateway) deleteJSON(ctx context.Context, path string, out interface{}) error {
	return g.do(ctx, http.MethodDelete, path, payload{}, out)
}

// do runs one credentialed request through the full gateway contract:
// local liveness pre-flight, bearer attachment, and auth-failure
// classification of the response.
func (g *Gateway) do(ctx context.Context, method, path string, p payload, out interface{}) error {
	return g.send(ctx, method, path, p, out, false)
}

// send is the shared request path. public requests carry no credential and
// their rejections are never reinterpreted as session expiry: a 401 from
// the login endpoint means wrong password, not a dead session.
func (g *Gateway) send(ctx context.Context, method, path string, p payload, out interface{}, public bool) error {
	if g == nil || g.client == nil {
		return ErrGatewayNotReady
	}

	requestID := uuid.NewString()
	start := g.clock()

	var credential string
	var hasCredential bool
	if !public {
		credential, hasCredential = g.creds.Credential()
		if hasCredential && !token.IsLive(credential, g.clock()) {
			// Locally known-dead credential: force logout and fail without
			// touching the network.
			g.creds.ForceLogout(ctx, "credential expired before request")
			err := fmt.Errorf("%s %s: %w", method, path, ErrSessionExpired)
			g.observe(RequestInfo{RequestID: requestID, Method: method, Path: path, Err: err})
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, g.resolve(path), p.body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if p.contentType != "" {
		req.Header.Set("Content-Type", p.contentType)
	}
	if g.userAgent != "" {
		req.Header.Set("User-Agent", g.userAgent)
	}
	req.Header.Set("X-Request-ID", requestID)
	if hasCredential {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		wrapped := fmt.Errorf("%s %s: %w", method, path, err)
		g.observe(RequestInfo{RequestID: requestID, Method: method, Path: path, Elapsed: g.clock().Sub(start), Err: wrapped})
		return wrapped
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	elapsed := g.clock().Sub(start)

	if !public {
		if authErr := g.classify(ctx, resp.StatusCode, body); authErr != nil {
			g.observe(RequestInfo{RequestID: requestID, Method: method, Path: path, Status: resp.StatusCode, Elapsed: elapsed, Err: authErr})
			return authErr
		}
	}

	if resp.StatusCode >= 400 {
		ue := &UpstreamError{StatusCode: resp.StatusCode, Message: backendMessage(body), Body: body}
		g.observe(RequestInfo{RequestID: requestID, Method: method, Path: path, Status: resp.StatusCode, Elapsed: elapsed, Err: ue})
		return ue
	}

	if readErr != nil {
		wrapped := fmt.Errorf("read response body: %w", readErr)
		g.observe(RequestInfo{RequestID: requestID, Method: method, Path: path, Status: resp.StatusCode, Elapsed: elapsed, Err: wrapped})
		return wrapped
	}

	g.observe(RequestInfo{RequestID: requestID, Method: method, Path: path, Status: resp.StatusCode, Elapsed: elapsed})

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// classify maps authentication-class rejections to ErrSessionExpired plus
// a forced logout. Everything else returns nil and is handled by do.
func (g *Gateway) classify(ctx context.Context, status int, body []byte) error {
	message := backendMessage(body)

	authFailure := status == http.StatusUnauthorized ||
		status == http.StatusForbidden ||
		(status >= 400 && authFailureMessage(message))
	if !authFailure {
		return nil
	}

	g.creds.ForceLogout(ctx, "backend rejected credential")
	if message != "" {
		return fmt.Errorf("%s: %w", message, ErrSessionExpired)
	}
	return ErrSessionExpired
}

func (g *Gateway) observe(info RequestInfo) {
	if g.observer != nil {
		g.observer.RequestCompleted(info)
	}
}

func (g *Gateway) resolve(path string) string {
	ref := &url.URL{Path: strings.TrimPrefix(path, "/")}
	base := *g.base
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	return base.ResolveReference(ref).String()
}

func backendMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	return envelope.Message
}
