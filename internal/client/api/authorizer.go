package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jobboardhq/backoffice/internal/logging"
)

// TokenSource yields the current bearer token, empty when there is none.
type TokenSource interface {
	Token(ctx context.Context) string
}

// Reactor receives the centralized auth failure signals. Implementations
// clear the session and move the navigator; the failing response still
// travels back to the originating caller.
type Reactor interface {
	OnUnauthenticated(ctx context.Context)
	OnForbidden(ctx context.Context)
}

// authorizer decorates every outgoing request with standard headers and a
// bearer token, and funnels 401/403 responses into the reactor. The token
// goes on every request that has one; only the reactions exempt
// authentication endpoints, since a failed login attempt is not an expired
// session.
type authorizer struct {
	next    http.RoundTripper
	tokens  TokenSource
	reactor Reactor
	log     logging.Logger
}

func isAuthEndpoint(path string) bool {
	return strings.Contains(path, "/auth/")
}

func (a *authorizer) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	// Per net/http contract the request is not modified in place.
	req = req.Clone(ctx)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if token := a.tokens.Token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.next.RoundTrip(req)
	if err != nil || isAuthEndpoint(req.URL.Path) {
		return resp, err
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		a.log.Warn(ctx, "request rejected as unauthenticated", "path", req.URL.Path)
		a.reactor.OnUnauthenticated(ctx)
	case http.StatusForbidden:
		a.log.Warn(ctx, "request rejected as forbidden", "path", req.URL.Path)
		a.reactor.OnForbidden(ctx)
	}
	return resp, nil
}
