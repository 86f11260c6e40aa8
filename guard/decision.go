package guard

// Action defines a public type used by the booking client APIs.
//
// Action instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Action uint8

const (
	// ActionAllow is an exported constant or variable used by the route guard chain.
	ActionAllow Action = iota
	// ActionRedirect is an exported constant or variable used by the route guard chain.
	ActionRedirect
	// ActionPending is an exported constant or variable used by the route guard chain.
	ActionPending
)

// String describes the string operation and its observable behavior.
func (a Action) String() string {
	switch a {
	case ActionAllow:
		return "allow"
	case ActionRedirect:
		return "redirect"
	case ActionPending:
		return "pending"
	default:
		return "unknown"
	}
}

// Decision is the outcome of evaluating one navigation attempt. Produced
// fresh per attempt, never persisted.
//
// For ActionRedirect, Target is the path to navigate to and SavedOrigin
// optionally carries the originally requested path so the login or
// city-selector view can navigate back after completing.
type Decision struct {
	Action      Action
	Target      string
	SavedOrigin string
}

// Allowed reports whether the decision permits rendering the requested
// view.
func (d Decision) Allowed() bool {
	return d.Action == ActionAllow
}

// Allow returns the allow decision.
func Allow() Decision {
	return Decision{Action: ActionAllow}
}

// Redirect returns a redirect decision toward target, carrying origin for
// the post-completion return trip. origin may be empty.
func Redirect(target, origin string) Decision {
	return Decision{Action: ActionRedirect, Target: target, SavedOrigin: origin}
}

// Pending returns the neutral decision used while hydration has not
// finished; callers should block navigation and render a loading state
// rather than guess.
func Pending() Decision {
	return Decision{Action: ActionPending}
}

// Resume resolves the post-completion navigation target: the saved origin
// when one was carried, otherwise fallback.
func Resume(savedOrigin, fallback string) string {
	if savedOrigin != "" {
		return savedOrigin
	}
	return fallback
}
