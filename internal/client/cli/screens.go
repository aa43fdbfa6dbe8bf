package cli

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/jobboardhq/backoffice/internal/client/models"
	"github.com/jobboardhq/backoffice/internal/client/nav"
)

const defaultPageSize = 10

// visit moves the navigator to the section's path and reports whether the
// screen may render. A guard redirect prints where the operator landed
// instead.
func (a *App) visit(ctx context.Context, path string) bool {
	settled, err := a.navigator.Navigate(ctx, path)
	if err != nil {
		a.log.Debug(ctx, "navigation failed", "path", path, "error", err)
		return false
	}
	parsed, err := url.Parse(settled)
	if err != nil || parsed.Path != strings.SplitN(path, "?", 2)[0] {
		switch {
		case parsed != nil && parsed.Path == nav.PathLogin:
			printlnFn("Please sign in first.")
		case parsed != nil && parsed.Path == nav.PathAccessDenied:
			printlnFn("Access denied: your role cannot open this section.")
		default:
			printlnFn("Now at", settled)
		}
		return false
	}
	return true
}

func parsePage(args []string) int {
	if len(args) == 0 {
		return 0
	}
	page, err := strconv.Atoi(args[len(args)-1])
	if err != nil || page < 0 {
		return 0
	}
	return page
}

// Open navigates to an arbitrary path and prints where the operator landed.
func (a *App) Open(ctx context.Context, path string) error {
	settled, err := a.navigator.Navigate(ctx, path)
	if err != nil {
		printlnFn("Navigation failed:", err.Error())
		return err
	}
	printlnFn("Now at", settled)
	return nil
}

// Back returns to the previous location.
func (a *App) Back(ctx context.Context) error {
	settled, err := a.navigator.Back(ctx)
	if err != nil {
		printlnFn("Navigation failed:", err.Error())
		return err
	}
	printlnFn("Now at", settled)
	return nil
}

// Users renders the user management screen. The first argument picks the
// subset (users, recruiters, jobseekers), the last one the page number.
func (a *App) Users(ctx context.Context, args []string) error {
	if !a.visit(ctx, nav.PathUsers) {
		return nil
	}

	subset := "users"
	if len(args) > 0 {
		subset = args[0]
	}
	page := parsePage(args[1:])

	var (
		result models.Paginated[models.User]
		err    error
	)
	switch subset {
	case "recruiters":
		result, err = a.users.ListRecruiters(ctx, page, defaultPageSize)
	case "jobseekers":
		result, err = a.users.ListJobSeekers(ctx, page, defaultPageSize)
	default:
		result, err = a.users.List(ctx, page, defaultPageSize)
	}
	if err != nil {
		printlnFn("Loading users failed:", err.Error())
		return err
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tEMAIL\tNAME\tROLE\tACTIVE\tVERIFICATION")
	for _, u := range result.Content {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\t%s\n",
			u.ID, u.Email, u.FullName, u.Role, u.Active, u.VerificationStatus)
	}
	w.Flush()
	printFooter(result.Number, result.TotalPages, result.TotalElements)
	return nil
}

// ToggleUser flips an account's active flag: toggle-user <id> <true|false>.
func (a *App) ToggleUser(ctx context.Context, args []string) error {
	if len(args) != 2 {
		printlnFn("Usage: toggle-user <id> <true|false>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Invalid user id:", args[0])
		return nil
	}
	active, err := strconv.ParseBool(args[1])
	if err != nil {
		printlnFn("Invalid active flag:", args[1])
		return nil
	}

	if !a.visit(ctx, nav.PathUsers) {
		return nil
	}

	u, err := a.users.ToggleStatus(ctx, id, active)
	if err != nil {
		printlnFn("Toggling user failed:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("User %s is now active=%t", u.Email, u.Active))
	return nil
}

// Offers renders the offer list screen.
func (a *App) Offers(ctx context.Context, args []string) error {
	if !a.visit(ctx, nav.PathOffers) {
		return nil
	}

	result, err := a.offers.List(ctx, parsePage(args), defaultPageSize)
	if err != nil {
		printlnFn("Loading offers failed:", err.Error())
		return err
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tTITLE\tCOMPANY\tLOCATION\tSTATUS\tAPPLICATIONS")
	for _, o := range result.Content {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\n",
			o.ID, o.Title, o.CompanyName, o.Location, o.Status, o.ApplicationsCount)
	}
	w.Flush()
	printFooter(result.Number, result.TotalPages, result.TotalElements)
	return nil
}

// SkillTypes renders the skill taxonomy screen.
func (a *App) SkillTypes(ctx context.Context, args []string) error {
	if !a.visit(ctx, nav.PathSkillTypes) {
		return nil
	}

	result, err := a.skillTypes.List(ctx, parsePage(args), defaultPageSize)
	if err != nil {
		printlnFn("Loading skill types failed:", err.Error())
		return err
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tACTIVE")
	for _, st := range result.Content {
		fmt.Fprintf(w, "%d\t%s\t%s\t%t\n", st.ID, st.Name, st.Category, st.Active)
	}
	w.Flush()
	printFooter(result.Number, result.TotalPages, result.TotalElements)
	return nil
}

// Roles renders the role definition screen.
func (a *App) Roles(ctx context.Context, args []string) error {
	if !a.visit(ctx, nav.PathRoles) {
		return nil
	}

	result, err := a.roles.List(ctx, parsePage(args), defaultPageSize)
	if err != nil {
		printlnFn("Loading roles failed:", err.Error())
		return err
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tDISPLAY NAME\tUSERS\tACTIVE")
	for _, r := range result.Content {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%t\n", r.ID, r.Name, r.DisplayName, r.UserCount, r.Active)
	}
	w.Flush()
	printFooter(result.Number, result.TotalPages, result.TotalElements)
	return nil
}

// Notifications renders the notification screen.
func (a *App) Notifications(ctx context.Context, args []string) error {
	if !a.visit(ctx, nav.PathNotifications) {
		return nil
	}

	result, err := a.notifications.List(ctx, parsePage(args), defaultPageSize)
	if err != nil {
		printlnFn("Loading notifications failed:", err.Error())
		return err
	}

	w := newTable()
	fmt.Fprintln(w, "ID\tTITLE\tMESSAGE\tREAD")
	for _, n := range result.Content {
		fmt.Fprintf(w, "%d\t%s\t%s\t%t\n", n.ID, n.Title, n.Message, n.IsRead)
	}
	w.Flush()
	printFooter(result.Number, result.TotalPages, result.TotalElements)
	return nil
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func printFooter(page, totalPages, total int) {
	if totalPages == 0 {
		printlnFn("No entries.")
		return
	}
	printlnFn(fmt.Sprintf("Page %d of %d (%d entries)", page+1, totalPages, total))
}
