package guard

import "strings"

// Session is the read-only view of session state consumed by guards. The
// root package's client satisfies it; tests substitute fakes.
//
// Implementations must fail closed: Authenticated must return false for any
// internally inconsistent state (for example a profile without a
// credential, or a credential that no longer passes a liveness check).
type Session interface {
	Hydrating() bool
	Authenticated() bool
	City() string
	Role() string
}

// Class defines a public type used by the booking client APIs.
//
// Class instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Class uint8

const (
	// ClassCityGated is an exported constant or variable used by the route guard chain.
	ClassCityGated Class = iota
	// ClassAlwaysPublic is an exported constant or variable used by the route guard chain.
	ClassAlwaysPublic
	// ClassPublicOnly is an exported constant or variable used by the route guard chain.
	ClassPublicOnly
	// ClassRoleGated is an exported constant or variable used by the route guard chain.
	ClassRoleGated
)

// Paths carries the well-known navigation targets guards redirect to.
//
// Paths instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Paths struct {
	Login        string
	Home         string
	CitySelector string
}

// DefaultPaths returns the navigation targets used when a [Chain] is built
// with zero-value paths.
func DefaultPaths() Paths {
	return Paths{
		Login:        "/login",
		Home:         "/",
		CitySelector: "/select-location",
	}
}

func (p Paths) withDefaults() Paths {
	d := DefaultPaths()
	if p.Login == "" {
		p.Login = d.Login
	}
	if p.Home == "" {
		p.Home = d.Home
	}
	if p.CitySelector == "" {
		p.CitySelector = d.CitySelector
	}
	return p
}

// Rule binds a path pattern to a route class. Exact rules match the path
// verbatim; prefix rules match the path and everything nested under it.
type Rule struct {
	Pattern      string
	Exact        bool
	Class        Class
	AllowedRoles []string
}

// Chain is an ordered rule table evaluated per navigation attempt. Rules
// are checked in order, first match wins; unmatched paths fall back to
// [ClassCityGated], the most restrictive content class (fail closed).
type Chain struct {
	paths Paths
	rules []Rule
}

// NewChain creates a guard chain from paths and an ordered rule list.
func NewChain(paths Paths, rules []Rule) *Chain {
	return &Chain{
		paths: paths.withDefaults(),
		rules: append([]Rule(nil), rules...),
	}
}

// Paths returns the resolved navigation targets of the chain.
func (c *Chain) Paths() Paths {
	return c.paths
}

// Evaluate runs the guard chain for one navigation attempt. It never
// panics; a nil session is treated as anonymous.
func (c *Chain) Evaluate(s Session, path string) Decision {
	if s != nil && s.Hydrating() {
		return Pending()
	}

	rule, matched := c.match(path)
	if !matched {
		rule = Rule{Class: ClassCityGated}
	}

	switch rule.Class {
	case ClassAlwaysPublic:
		return Allow()
	case ClassPublicOnly:
		return PublicOnly(s, c.paths)
	case ClassRoleGated:
		return RoleGated(s, path, rule.AllowedRoles, c.paths)
	default:
		return CityGated(s, path, c.paths)
	}
}

func (c *Chain) match(path string) (Rule, bool) {
	for _, rule := range c.rules {
		if rule.Pattern == "" {
			continue
		}
		if rule.Exact {
			if path == rule.Pattern {
				return rule, true
			}
			continue
		}
		if path == rule.Pattern || strings.HasPrefix(path, strings.TrimSuffix(rule.Pattern, "/")+"/") {
			return rule, true
		}
	}
	return Rule{}, false
}

// PublicOnly gates login/signup style views: an authenticated user is
// bounced home, everyone else is allowed.
func PublicOnly(s Session, paths Paths) Decision {
	if authenticated(s) {
		return Redirect(paths.Home, "")
	}
	return Allow()
}

// CityGated gates content views on authentication and a selected city. The
// city-selector path itself is allowed unconditionally so the chain cannot
// loop between "needs city" and "is on the selector".
func CityGated(s Session, path string, paths Paths) Decision {
	if path == paths.CitySelector {
		return Allow()
	}
	if !authenticated(s) {
		return Redirect(paths.Login, path)
	}
	if s.City() == "" {
		return Redirect(paths.CitySelector, path)
	}
	return Allow()
}

// RoleGated gates admin views on authentication and role membership. A
// denied role redirects home with no saved origin: the route simply does
// not exist for that user. City selection is not required here.
func RoleGated(s Session, path string, allowedRoles []string, paths Paths) Decision {
	if !authenticated(s) {
		return Redirect(paths.Login, path)
	}
	if len(allowedRoles) > 0 && !roleAllowed(s.Role(), allowedRoles) {
		return Redirect(paths.Home, "")
	}
	return Allow()
}

func authenticated(s Session) bool {
	return s != nil && s.Authenticated()
}

func roleAllowed(role string, allowed []string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
