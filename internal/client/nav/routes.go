// Package nav implements client side navigation: a route table, access
// guards and a navigator that keeps the current location and history.
package nav

import (
	"strings"

	"github.com/jobboardhq/backoffice/internal/client/models"
)

// Policy controls who may enter a route.
type Policy int

const (
	// PolicyNone admits everyone.
	PolicyNone Policy = iota
	// PolicyAnonymous admits only unauthenticated visitors; authenticated
	// ones are sent to their landing page.
	PolicyAnonymous
	// PolicyAuthenticated requires a valid session. When Roles is non-empty
	// the session user's role must also be listed.
	PolicyAuthenticated
)

// Route is one entry of the route table.
type Route struct {
	Path   string
	Policy Policy
	// Roles narrows PolicyAuthenticated. Empty means any authenticated user.
	Roles []models.Role
}

// Allows reports whether the route admits the given role.
func (r Route) Allows(role models.Role) bool {
	if len(r.Roles) == 0 {
		return true
	}
	for _, allowed := range r.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}

const (
	PathDashboard     = "/dashboard"
	PathUsers         = "/users-management"
	PathRoles         = "/roles-management"
	PathSkillTypes    = "/skill-types-management"
	PathOffers        = "/offers-list-management"
	PathNotifications = "/notifications-management"
	PathLogin         = "/auth/login"
	PathRegister      = "/auth/register"
	PathAccessDenied  = "/access-denied"
	PathNotFound      = "/notfound"
)

var routes = []Route{
	{Path: PathDashboard, Policy: PolicyAuthenticated},
	{Path: PathUsers, Policy: PolicyAuthenticated, Roles: []models.Role{models.RoleAdmin}},
	{Path: PathRoles, Policy: PolicyAuthenticated, Roles: []models.Role{models.RoleAdmin}},
	{Path: PathSkillTypes, Policy: PolicyAuthenticated, Roles: []models.Role{models.RoleAdmin}},
	{Path: PathOffers, Policy: PolicyAuthenticated, Roles: []models.Role{models.RoleAdmin, models.RoleRecruiter, models.RoleJobSeeker}},
	{Path: PathNotifications, Policy: PolicyAuthenticated, Roles: []models.Role{models.RoleAdmin, models.RoleRecruiter}},
	{Path: PathLogin, Policy: PolicyAnonymous},
	{Path: PathRegister, Policy: PolicyAnonymous},
	{Path: PathAccessDenied, Policy: PolicyNone},
	{Path: PathNotFound, Policy: PolicyNone},
}

// Lookup resolves a path to its route. Unknown paths resolve to the
// not-found route. Matching is by path segment prefix, longest match wins,
// so "/auth/login?x=1" and "/users-management/5/edit" both resolve.
func Lookup(path string) Route {
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		path = PathDashboard
	}

	best := Route{Path: PathNotFound, Policy: PolicyNone}
	bestLen := -1
	for _, r := range routes {
		if !matchPrefix(path, r.Path) {
			continue
		}
		if len(r.Path) > bestLen {
			best = r
			bestLen = len(r.Path)
		}
	}
	return best
}

func matchPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	rest := path[len(prefix):]
	return rest == "" || rest[0] == '/'
}
