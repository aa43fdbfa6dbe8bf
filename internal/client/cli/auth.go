package cli

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/jobboardhq/backoffice/internal/client/api"
	"github.com/jobboardhq/backoffice/internal/client/models"
	"github.com/jobboardhq/backoffice/internal/client/nav"
	"github.com/jobboardhq/backoffice/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// loginContext reads the query of the current location: whether the sign-in
// page was reached through a session expiry, and where to return afterwards.
func (a *App) loginContext() (expired bool, returnURL string) {
	current, err := url.Parse(a.navigator.Current())
	if err != nil {
		return false, ""
	}
	q := current.Query()
	return q.Get("sessionExpired") == "true", q.Get("returnUrl")
}

// Login prompts for credentials, authenticates and lands on the page the
// operator was originally heading for, falling back to the dashboard.
func (a *App) Login(ctx context.Context) error {
	expired, returnURL := a.loginContext()
	if expired {
		printlnFn("Your session expired, please sign in again.")
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, models.Credentials{Email: email, Password: string(password)})
	if err != nil {
		var authErr *common.AuthenticationError
		var netErr *common.NetworkError
		switch {
		case errors.As(err, &authErr):
			printlnFn("Invalid email or password.")
		case errors.As(err, &netErr):
			printlnFn("Server unreachable, try again later.")
		default:
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	printlnFn(fmt.Sprintf("Signed in as %s (%s)", user.FullName, user.Role))
	if user.IsFirstLogin {
		printlnFn("This is your first sign-in, please change your password.")
	}
	if user.VerificationStatus == models.VerificationPending {
		printlnFn("Your account is awaiting verification; some sections may be unavailable.")
	}

	landing, err := a.navigator.NavigateReplace(ctx, nav.LandingPath(user.Role, returnURL))
	if err != nil {
		if !errors.Is(err, nav.ErrSuperseded) {
			a.log.Error(ctx, "post-login navigation failed", "error", err)
		}
		return nil
	}
	printlnFn("Now at", landing)
	return nil
}

// Register prompts for the new account's details and creates it. The new
// account signs in separately afterwards.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Enter role (ADMIN, RECRUITER, JOB_SEEKER)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.Register(ctx, api.RegisterRequest{
		Email:    email,
		Password: string(password),
		FullName: fullName,
		Role:     models.Role(role),
	})
	if err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Account %s created, you can sign in now.", user.Email))
	return nil
}

// Logout ends the session and returns to the sign-in page.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	return nil
}

// WhoAmI prints the session's user.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.sess.CurrentUser()
	if u == nil {
		printlnFn("Not signed in.")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s> role=%s active=%t verification=%s",
		u.FullName, u.Email, u.Role, u.Active, u.VerificationStatus))
	return nil
}
