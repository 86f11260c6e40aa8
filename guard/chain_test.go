package guard

import "testing"

type fakeSession struct {
	hydrating     bool
	authenticated bool
	city          string
	role          string
}

func (f *fakeSession) Hydrating() bool     { return f.hydrating }
func (f *fakeSession) Authenticated() bool { return f.authenticated }
func (f *fakeSession) City() string        { return f.city }
func (f *fakeSession) Role() string        { return f.role }

func testChain() *Chain {
	return NewChain(DefaultPaths(), []Rule{
		{Pattern: "/login", Exact: true, Class: ClassPublicOnly},
		{Pattern: "/signup", Exact: true, Class: ClassPublicOnly},
		{Pattern: "/faqs", Exact: true, Class: ClassAlwaysPublic},
		{Pattern: "/terms", Exact: true, Class: ClassAlwaysPublic},
		{Pattern: "/admin", Class: ClassRoleGated, AllowedRoles: []string{"admin"}},
	})
}

func TestAnonymousOnCityGatedPathRedirectsToLogin(t *testing.T) {
	chain := testChain()
	s := &fakeSession{}

	d := chain.Evaluate(s, "/movie/42")
	if d.Action != ActionRedirect {
		t.Fatalf("expected redirect, got %v", d.Action)
	}
	if d.Target != "/login" {
		t.Fatalf("expected /login target, got %q", d.Target)
	}
	if d.SavedOrigin != "/movie/42" {
		t.Fatalf("expected saved origin /movie/42, got %q", d.SavedOrigin)
	}
}

func TestCitySelectorIsAlwaysReachable(t *testing.T) {
	chain := testChain()

	// Authenticated without a city: the selector must not redirect away
	// from itself, or the chain would loop.
	s := &fakeSession{authenticated: true, role: "user"}
	if d := chain.Evaluate(s, "/select-location"); !d.Allowed() {
		t.Fatalf("expected selector to be allowed, got %+v", d)
	}

	// Any other content path redirects to the selector with the origin.
	d := chain.Evaluate(s, "/movie/7")
	if d.Action != ActionRedirect || d.Target != "/select-location" {
		t.Fatalf("expected redirect to selector, got %+v", d)
	}
	if d.SavedOrigin != "/movie/7" {
		t.Fatalf("expected saved origin /movie/7, got %q", d.SavedOrigin)
	}
}

func TestCityGatedAllowsWithCity(t *testing.T) {
	chain := testChain()
	s := &fakeSession{authenticated: true, city: "Mumbai", role: "user"}

	if d := chain.Evaluate(s, "/movie/7"); !d.Allowed() {
		t.Fatalf("expected allow, got %+v", d)
	}
}

func TestRoleGatedDeniesUserRole(t *testing.T) {
	chain := testChain()
	s := &fakeSession{authenticated: true, city: "Mumbai", role: "user"}

	d := chain.Evaluate(s, "/admin/movies")
	if d.Action != ActionRedirect {
		t.Fatalf("expected redirect, got %+v", d)
	}
	if d.Target != "/" {
		t.Fatalf("expected home target, got %q", d.Target)
	}
	if d.SavedOrigin != "" {
		t.Fatalf("expected no saved origin on role denial, got %q", d.SavedOrigin)
	}
}

func TestRoleGatedAllowsAdminWithoutCity(t *testing.T) {
	chain := testChain()

	// Admin routes are exempt from city gating.
	s := &fakeSession{authenticated: true, role: "admin"}
	if d := chain.Evaluate(s, "/admin"); !d.Allowed() {
		t.Fatalf("expected allow, got %+v", d)
	}
	if d := chain.Evaluate(s, "/admin/theatres"); !d.Allowed() {
		t.Fatalf("expected allow on nested admin path, got %+v", d)
	}
}

func TestRoleGatedAnonymousSavesOrigin(t *testing.T) {
	chain := testChain()

	d := chain.Evaluate(&fakeSession{}, "/admin/shows")
	if d.Action != ActionRedirect || d.Target != "/login" {
		t.Fatalf("expected redirect to login, got %+v", d)
	}
	if d.SavedOrigin != "/admin/shows" {
		t.Fatalf("expected saved origin, got %q", d.SavedOrigin)
	}
}

func TestPublicOnlyBouncesAuthenticated(t *testing.T) {
	chain := testChain()

	s := &fakeSession{authenticated: true, city: "Pune", role: "user"}
	d := chain.Evaluate(s, "/login")
	if d.Action != ActionRedirect || d.Target != "/" {
		t.Fatalf("expected redirect home, got %+v", d)
	}
	if d.SavedOrigin != "" {
		t.Fatalf("expected no saved origin, got %q", d.SavedOrigin)
	}

	if d := chain.Evaluate(&fakeSession{}, "/login"); !d.Allowed() {
		t.Fatalf("expected anonymous user allowed on login, got %+v", d)
	}
}

func TestAlwaysPublicNeedsNoSession(t *testing.T) {
	chain := testChain()

	if d := chain.Evaluate(&fakeSession{}, "/faqs"); !d.Allowed() {
		t.Fatalf("expected allow on /faqs, got %+v", d)
	}
	if d := chain.Evaluate(&fakeSession{authenticated: true, role: "user"}, "/terms"); !d.Allowed() {
		t.Fatalf("expected allow on /terms, got %+v", d)
	}
}

func TestHydratingYieldsPending(t *testing.T) {
	chain := testChain()
	s := &fakeSession{hydrating: true, authenticated: true, city: "Mumbai"}

	for _, path := range []string{"/", "/login", "/admin", "/faqs"} {
		if d := chain.Evaluate(s, path); d.Action != ActionPending {
			t.Fatalf("expected pending for %s while hydrating, got %+v", path, d)
		}
	}
}

func TestNilSessionFailsClosed(t *testing.T) {
	chain := testChain()

	d := chain.Evaluate(nil, "/movie/1")
	if d.Action != ActionRedirect || d.Target != "/login" {
		t.Fatalf("expected nil session to be treated as anonymous, got %+v", d)
	}
	if d := chain.Evaluate(nil, "/faqs"); !d.Allowed() {
		t.Fatalf("expected nil session allowed on public path, got %+v", d)
	}
}

func TestUnmatchedPathFallsBackToCityGated(t *testing.T) {
	chain := testChain()

	d := chain.Evaluate(&fakeSession{}, "/totally/unknown")
	if d.Action != ActionRedirect || d.Target != "/login" {
		t.Fatalf("expected unmatched path to be city-gated, got %+v", d)
	}
}

func TestPrefixMatchingDoesNotCrossSegments(t *testing.T) {
	chain := testChain()

	// /administration must not match the /admin prefix rule.
	s := &fakeSession{authenticated: true, city: "Delhi", role: "user"}
	if d := chain.Evaluate(s, "/administration"); !d.Allowed() {
		t.Fatalf("expected /administration to fall through to city gating, got %+v", d)
	}
}

func TestResume(t *testing.T) {
	if got := Resume("/movie/3", "/"); got != "/movie/3" {
		t.Fatalf("expected saved origin to win, got %q", got)
	}
	if got := Resume("", "/"); got != "/" {
		t.Fatalf("expected fallback, got %q", got)
	}
}
