package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) record(name string, args ...string) {
	f.calls = append(f.calls, name)
	f.args = args
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.record("login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Register(ctx context.Context) error { f.record("register"); return nil }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.record("logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Open(ctx context.Context, path string) error {
	f.record("open", path)
	return nil
}
func (f *fakeExec) Back(ctx context.Context) error   { f.record("back"); return nil }
func (f *fakeExec) WhoAmI(ctx context.Context) error { f.record("whoami"); return nil }
func (f *fakeExec) Users(ctx context.Context, args []string) error {
	f.record("users", args...)
	return nil
}
func (f *fakeExec) Offers(ctx context.Context, args []string) error {
	f.record("offers", args...)
	return nil
}
func (f *fakeExec) SkillTypes(ctx context.Context, args []string) error {
	f.record("skills", args...)
	return nil
}
func (f *fakeExec) Roles(ctx context.Context, args []string) error {
	f.record("roles", args...)
	return nil
}
func (f *fakeExec) Notifications(ctx context.Context, args []string) error {
	f.record("notifications", args...)
	return nil
}
func (f *fakeExec) ToggleUser(ctx context.Context, args []string) error {
	f.record("toggle-user", args...)
	return nil
}

func muteOutput(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPLDispatch(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"users 2",
		"recruiters",
		"offers",
		"skills",
		"roles",
		"notifications",
		"open /dashboard",
		"back",
		"whoami",
		"logout",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewScanner(input))

	require.Equal(t, []string{
		"login", "users", "users", "offers", "skills", "roles",
		"notifications", "open", "back", "whoami", "logout",
	}, exec.calls)
}

func TestRunREPLUsageLines(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader("open\ntoggle-user 5 true\nquit\n")
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	// "open" without a path prints usage and dispatches nothing.
	require.Equal(t, []string{"toggle-user"}, exec.calls)
	require.Equal(t, []string{"5", "true"}, exec.args)
}

func TestRunREPLStopsOnEOF(t *testing.T) {
	muteOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("")))
	require.Empty(t, exec.calls)
}
