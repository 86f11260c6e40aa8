package api

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSessionExpired is an exported constant or variable used by the booking client.
	ErrSessionExpired = errors.New("session expired")
	// ErrGatewayNotReady is an exported constant or variable used by the booking client.
	ErrGatewayNotReady = errors.New("gateway not initialized")
)

// UpstreamError is any backend rejection that is not an authentication
// failure: validation errors, not-found, server errors. It never triggers
// a logout; the calling view decides retry and display policy.
type UpstreamError struct {
	StatusCode int
	Message    string
	Body       []byte
}

// Error describes the error operation and its observable behavior.
func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream error %d", e.StatusCode)
}

// AsUpstream unwraps err into an [*UpstreamError] when possible.
func AsUpstream(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// authFailurePhrases are matched case-insensitively against backend error
// messages; any hit is treated the same as a 401.
var authFailurePhrases = []string{
	"invalid token",
	"expired token",
	"unauthorized",
}

func authFailureMessage(message string) bool {
	lower := strings.ToLower(message)
	for _, phrase := range authFailurePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
