package middleware

import (
	"context"
	"net/http"
	"net/url"

	bookmyshow "github.com/jaydeepparmar2244/BookMyShow-FE"
	"github.com/jaydeepparmar2244/BookMyShow-FE/guard"
)

// originParam carries the saved origin across a guard redirect so the
// login or city-selector view can navigate back after completing.
const originParam = "from"

type decisionContextKey struct{}

// DecisionFromContext returns the guard decision recorded for the current
// request, when the request passed through [Guard].
func DecisionFromContext(ctx context.Context) (guard.Decision, bool) {
	d, ok := ctx.Value(decisionContextKey{}).(guard.Decision)
	return d, ok
}

// SavedOrigin extracts the origin carried by a previous guard redirect,
// if any.
func SavedOrigin(r *http.Request) string {
	return r.URL.Query().Get(originParam)
}

// Guard returns middleware that runs the client's route guard chain
// against each request path and translates the decision into HTTP
// semantics: allowed requests proceed with the decision in context,
// redirects become 303s carrying the saved origin, and pending hydration
// answers 503 so the caller retries.
func Guard(client *bookmyshow.Client) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if client == nil {
				http.Error(w, "service unavailable", http.StatusServiceUnavailable)
				return
			}

			decision := client.Evaluate(r.URL.Path)
			switch decision.Action {
			case guard.ActionPending:
				w.Header().Set("Retry-After", "1")
				http.Error(w, "session loading", http.StatusServiceUnavailable)
			case guard.ActionRedirect:
				http.Redirect(w, r, redirectTarget(decision), http.StatusSeeOther)
			default:
				ctx := context.WithValue(r.Context(), decisionContextKey{}, decision)
				next.ServeHTTP(w, r.WithContext(ctx))
			}
		})
	}
}

func redirectTarget(decision guard.Decision) string {
	if decision.SavedOrigin == "" {
		return decision.Target
	}
	return decision.Target + "?" + originParam + "=" + url.QueryEscape(decision.SavedOrigin)
}
