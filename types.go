package bookmyshow

import (
	"io"
	"time"

	internalaudit "github.com/jaydeepparmar2244/BookMyShow-FE/internal/audit"
)

// Role names used by the backend's credential claims.
const (
	// RoleUser is an exported constant or variable used by the booking client.
	RoleUser = "user"
	// RoleAdmin is an exported constant or variable used by the booking client.
	RoleAdmin = "admin"
)

// SessionPhase represents the lifecycle state of the local session.
type SessionPhase uint8

const (
	// PhaseHydrating is an exported constant or variable used by the booking client.
	PhaseHydrating SessionPhase = iota
	// PhaseAnonymous is an exported constant or variable used by the booking client.
	PhaseAnonymous
	// PhaseNeedsCity is an exported constant or variable used by the booking client.
	PhaseNeedsCity
	// PhaseActive is an exported constant or variable used by the booking client.
	PhaseActive
)

// String describes the string operation and its observable behavior.
func (p SessionPhase) String() string {
	switch p {
	case PhaseHydrating:
		return "hydrating"
	case PhaseAnonymous:
		return "anonymous"
	case PhaseNeedsCity:
		return "needs-city"
	case PhaseActive:
		return "active"
	default:
		return "unknown"
	}
}

// UserProfile is the locally held view of the signed-in user. It is
// persisted alongside the credential and restored on hydration.
//
// UserProfile instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type UserProfile struct {
	SubjectID string `json:"subjectId,omitempty"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	City      string `json:"city,omitempty"`
}

// SessionSnapshot is a point-in-time copy of session state returned by
// [Client.Session]. The credential string itself is never exposed.
type SessionSnapshot struct {
	Phase         SessionPhase
	Authenticated bool
	Profile       UserProfile
	ExpiresAt     time.Time
}

// AuditEvent is a structured audit record emitted by the client.
type AuditEvent = internalaudit.Event

// Audit event types, for sinks that filter or route by event.
const (
	// AuditLogin is an exported constant or variable used by the booking client.
	AuditLogin = internalaudit.TypeLogin
	// AuditRegister is an exported constant or variable used by the booking client.
	AuditRegister = internalaudit.TypeRegister
	// AuditLogout is an exported constant or variable used by the booking client.
	AuditLogout = internalaudit.TypeLogout
	// AuditForceLogout is an exported constant or variable used by the booking client.
	AuditForceLogout = internalaudit.TypeForceLogout
	// AuditCitySelected is an exported constant or variable used by the booking client.
	AuditCitySelected = internalaudit.TypeCitySelected
	// AuditHydration is an exported constant or variable used by the booking client.
	AuditHydration = internalaudit.TypeHydration
)

// AuditSink receives [AuditEvent] values from the client's audit
// dispatcher.
type AuditSink = internalaudit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = internalaudit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes JSON-encoded events to an
// [io.Writer].
type JSONWriterSink = internalaudit.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] that writes to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}
