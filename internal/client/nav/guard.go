package nav

import (
	"context"
	"net/url"

	"github.com/jobboardhq/backoffice/internal/client/models"
)

// SessionState is the slice of the session store the guard needs.
type SessionState interface {
	IsAuthenticated(ctx context.Context) bool
	CurrentUser() *models.User
}

// Decision is the outcome of a guard check.
type Decision struct {
	Allow bool
	// RedirectTo is the target to navigate to instead when Allow is false.
	RedirectTo string
	// Replace requests replace semantics for the redirect, so the blocked
	// location does not enter the history.
	Replace bool
}

func allow() Decision { return Decision{Allow: true} }

func redirect(target string, replace bool) Decision {
	return Decision{RedirectTo: target, Replace: replace}
}

// Check evaluates the route's policy against the current session. The
// target URL is the full requested location including its query, used to
// build returnUrl parameters on redirects.
func Check(ctx context.Context, sess SessionState, route Route, target *url.URL) Decision {
	switch route.Policy {
	case PolicyAnonymous:
		if !sess.IsAuthenticated(ctx) {
			return allow()
		}
		// Already signed in. Honor a returnUrl if the role may visit it,
		// otherwise go to the role's landing page.
		var role models.Role
		if u := sess.CurrentUser(); u != nil {
			role = u.Role
		}
		return redirect(LandingPath(role, target.Query().Get("returnUrl")), true)

	case PolicyAuthenticated:
		if !sess.IsAuthenticated(ctx) {
			return redirect(loginRedirect(target, "not_authenticated"), true)
		}
		u := sess.CurrentUser()
		if u == nil {
			return redirect(loginRedirect(target, "not_authenticated"), true)
		}
		if !route.Allows(u.Role) {
			return redirect(deniedRedirect(target), false)
		}
		return allow()

	default:
		return allow()
	}
}

func loginRedirect(target *url.URL, reason string) string {
	q := url.Values{}
	q.Set("returnUrl", target.String())
	q.Set("reason", reason)
	return PathLogin + "?" + q.Encode()
}

func deniedRedirect(target *url.URL) string {
	q := url.Values{}
	q.Set("returnUrl", target.String())
	return PathAccessDenied + "?" + q.Encode()
}
