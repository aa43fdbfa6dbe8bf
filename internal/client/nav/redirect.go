package nav

import (
	"net/url"

	"github.com/jobboardhq/backoffice/internal/client/models"
)

// rolePaths lists the sections each role may be sent to after sign in.
// Redirect targets outside the allowlist fall back to the dashboard, so a
// stale or forged returnUrl can never land a user on a screen their role
// cannot open.
var rolePaths = map[models.Role][]string{
	models.RoleAdmin: {
		PathDashboard,
		PathUsers,
		PathRoles,
		PathSkillTypes,
		PathOffers,
		PathNotifications,
	},
	models.RoleRecruiter: {
		PathDashboard,
		PathOffers,
		PathNotifications,
	},
	models.RoleJobSeeker: {
		PathDashboard,
		PathOffers,
	},
}

// LandingPath resolves where an authenticated user should land: the
// requested returnURL when the role is allowed to visit it, the dashboard
// otherwise.
func LandingPath(role models.Role, returnURL string) string {
	if returnURL == "" {
		return PathDashboard
	}
	parsed, err := url.Parse(returnURL)
	if err != nil || parsed.IsAbs() || parsed.Host != "" {
		return PathDashboard
	}
	for _, p := range rolePaths[role] {
		if matchPrefix(parsed.Path, p) {
			return returnURL
		}
	}
	return PathDashboard
}
