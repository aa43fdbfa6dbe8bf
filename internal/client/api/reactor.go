package api

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/jobboardhq/backoffice/internal/client/nav"
	"github.com/jobboardhq/backoffice/internal/logging"
)

type sessionClearer interface {
	Clear(ctx context.Context) error
}

type navControl interface {
	Current() string
	Navigate(ctx context.Context, target string) (string, error)
	NavigateReplace(ctx context.Context, target string) (string, error)
}

// Redirector implements the centralized reactions to auth failures. An
// unauthenticated response ends the session and replace-navigates to the
// sign-in page with the interrupted location preserved; a forbidden one
// pushes the access-denied page so the blocked location stays one step
// back in the history.
type Redirector struct {
	sess sessionClearer
	nav  navControl
	log  logging.Logger
}

// NewRedirector wires the reactor to the session store and navigator.
func NewRedirector(sess sessionClearer, navigator navControl, log logging.Logger) *Redirector {
	return &Redirector{sess: sess, nav: navigator, log: log}
}

// OnUnauthenticated ends the session. Navigation is skipped when the
// sign-in page is already showing, so a burst of rejected requests settles
// after the first one.
func (r *Redirector) OnUnauthenticated(ctx context.Context) {
	if err := r.sess.Clear(ctx); err != nil {
		r.log.Error(ctx, "clearing session after 401", "error", err)
	}

	current := r.nav.Current()
	if strings.HasPrefix(current, nav.PathLogin) {
		return
	}

	q := url.Values{}
	q.Set("returnUrl", current)
	q.Set("sessionExpired", "true")
	r.redirect(ctx, nav.PathLogin+"?"+q.Encode(), r.nav.NavigateReplace)
}

// OnForbidden shows the access-denied page, keeping the rejected location
// one step back so the operator can retry after a role change.
func (r *Redirector) OnForbidden(ctx context.Context) {
	q := url.Values{}
	q.Set("returnUrl", r.nav.Current())
	r.redirect(ctx, nav.PathAccessDenied+"?"+q.Encode(), r.nav.Navigate)
}

func (r *Redirector) redirect(ctx context.Context, target string, move func(context.Context, string) (string, error)) {
	if _, err := move(ctx, target); err != nil {
		if errors.Is(err, nav.ErrSuperseded) {
			r.log.Debug(ctx, "auth redirect superseded", "target", target)
			return
		}
		r.log.Error(ctx, "auth redirect failed", "target", target, "error", err)
	}
}
