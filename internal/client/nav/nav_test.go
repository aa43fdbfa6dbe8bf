package nav

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jobboardhq/backoffice/internal/client/models"
	"github.com/jobboardhq/backoffice/internal/logging"
)

type fakeSession struct {
	user *models.User
}

func (f *fakeSession) IsAuthenticated(context.Context) bool { return f.user != nil }
func (f *fakeSession) CurrentUser() *models.User            { return f.user }

func userWithRole(role models.Role) *models.User {
	return &models.User{ID: 1, Email: "u@example.com", FullName: "U", Role: role}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/dashboard", PathDashboard},
		{"/dashboard/", PathDashboard},
		{"/users-management/5/edit", PathUsers},
		{"/auth/login", PathLogin},
		{"/auth/register", PathRegister},
		{"/offers-list-management", PathOffers},
		{"/something-else", PathNotFound},
		{"/users-managementx", PathNotFound},
		{"/notfound", PathNotFound},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Lookup(tt.path).Path, "path %q", tt.path)
	}
}

func TestGuardRedirectsAnonymousToLogin(t *testing.T) {
	n := New(&fakeSession{}, logging.Nop())

	got, err := n.Navigate(context.Background(), "/users-management")
	require.NoError(t, err)

	u, err := url.Parse(got)
	require.NoError(t, err)
	require.Equal(t, PathLogin, u.Path)
	require.Equal(t, "/users-management", u.Query().Get("returnUrl"))
	require.Equal(t, "not_authenticated", u.Query().Get("reason"))

	// Replace semantics: the blocked page never entered the history.
	require.NotContains(t, n.History(), "/users-management")
}

func TestGuardDeniesWrongRole(t *testing.T) {
	n := New(&fakeSession{user: userWithRole(models.RoleJobSeeker)}, logging.Nop())

	got, err := n.Navigate(context.Background(), "/users-management")
	require.NoError(t, err)

	u, err := url.Parse(got)
	require.NoError(t, err)
	require.Equal(t, PathAccessDenied, u.Path)
	require.Equal(t, "/users-management", u.Query().Get("returnUrl"))
}

func TestGuardAdmitsListedRole(t *testing.T) {
	tests := []struct {
		role models.Role
		path string
		ok   bool
	}{
		{models.RoleAdmin, PathUsers, true},
		{models.RoleAdmin, PathRoles, true},
		{models.RoleRecruiter, PathOffers, true},
		{models.RoleRecruiter, PathNotifications, true},
		{models.RoleRecruiter, PathUsers, false},
		{models.RoleJobSeeker, PathOffers, true},
		{models.RoleJobSeeker, PathNotifications, false},
	}
	for _, tt := range tests {
		n := New(&fakeSession{user: userWithRole(tt.role)}, logging.Nop())
		got, err := n.Navigate(context.Background(), tt.path)
		require.NoError(t, err)
		if tt.ok {
			require.Equal(t, tt.path, got, "%s on %s", tt.role, tt.path)
		} else {
			u, perr := url.Parse(got)
			require.NoError(t, perr)
			require.Equal(t, PathAccessDenied, u.Path, "%s on %s", tt.role, tt.path)
		}
	}
}

func TestLoginPageRedirectsAuthenticatedUser(t *testing.T) {
	n := New(&fakeSession{user: userWithRole(models.RoleAdmin)}, logging.Nop())

	got, err := n.Navigate(context.Background(), "/auth/login")
	require.NoError(t, err)
	require.Equal(t, PathDashboard, got)
}

func TestLoginPageHonorsReturnURL(t *testing.T) {
	n := New(&fakeSession{user: userWithRole(models.RoleAdmin)}, logging.Nop())

	got, err := n.Navigate(context.Background(), "/auth/login?returnUrl=%2Froles-management")
	require.NoError(t, err)
	require.Equal(t, "/roles-management", got)
}

func TestReturnURLOutsideRoleAllowlistFallsBack(t *testing.T) {
	n := New(&fakeSession{user: userWithRole(models.RoleJobSeeker)}, logging.Nop())

	got, err := n.Navigate(context.Background(), "/auth/login?returnUrl=%2Fusers-management")
	require.NoError(t, err)
	require.Equal(t, PathDashboard, got)
}

func TestUnknownPathShowsNotFound(t *testing.T) {
	n := New(&fakeSession{user: userWithRole(models.RoleAdmin)}, logging.Nop())

	got, err := n.Navigate(context.Background(), "/no-such-section")
	require.NoError(t, err)
	require.Equal(t, PathNotFound, got)
}

func TestLandingPath(t *testing.T) {
	tests := []struct {
		role      models.Role
		returnURL string
		want      string
	}{
		{models.RoleAdmin, "", PathDashboard},
		{models.RoleAdmin, "/users-management", "/users-management"},
		{models.RoleRecruiter, "/users-management", PathDashboard},
		{models.RoleJobSeeker, "/offers-list-management?page=2", "/offers-list-management?page=2"},
		{models.RoleAdmin, "https://evil.example/users-management", PathDashboard},
		{models.RoleAdmin, "://bad url", PathDashboard},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, LandingPath(tt.role, tt.returnURL), "%s %q", tt.role, tt.returnURL)
	}
}

func TestNavigateReplaceKeepsHistoryFlat(t *testing.T) {
	n := New(&fakeSession{user: userWithRole(models.RoleAdmin)}, logging.Nop())
	ctx := context.Background()

	_, err := n.Navigate(ctx, PathDashboard)
	require.NoError(t, err)
	_, err = n.Navigate(ctx, PathUsers)
	require.NoError(t, err)
	before := len(n.History())

	_, err = n.NavigateReplace(ctx, PathRoles)
	require.NoError(t, err)
	require.Len(t, n.History(), before)
	require.Equal(t, PathRoles, n.Current())
}

func TestNavigateSuperseded(t *testing.T) {
	sess := &fakeSession{user: userWithRole(models.RoleAdmin)}
	n := New(sess, logging.Nop())
	ctx := context.Background()

	n.mu.Lock()
	n.seq++
	ticket := n.seq
	n.mu.Unlock()

	// A later navigation lands first; the earlier ticket must lose.
	_, err := n.Navigate(ctx, PathDashboard)
	require.NoError(t, err)

	_, err = n.settle(ticket, PathUsers, false)
	require.ErrorIs(t, err, ErrSuperseded)
	require.Equal(t, PathDashboard, n.Current())
}
