package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/jobboardhq/backoffice/internal/client/api"
	"github.com/jobboardhq/backoffice/internal/client/config"
	"github.com/jobboardhq/backoffice/internal/client/nav"
	"github.com/jobboardhq/backoffice/internal/client/session"
	"github.com/jobboardhq/backoffice/internal/logging"
)

// App wires the session store, navigator and API services behind the REPL
// commands.
type App struct {
	config    *config.Config
	log       logging.Logger
	sess      *session.Store
	navigator *nav.Navigator

	auth          *api.AuthService
	users         *api.UsersService
	offers        *api.OffersService
	skillTypes    *api.SkillTypesService
	roles         *api.RolesService
	notifications *api.NotificationsService

	reader *bufio.Reader

	// userName is written by the watcher goroutine and read by the prompt.
	mu       sync.Mutex
	userName string
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	sess, err := session.Open(ctx, c.SessionDBPath, log)
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}

	navigator := nav.New(sess, log)
	redirector := api.NewRedirector(sess, navigator, log)

	client, err := api.New(c.ServerBaseURL, c.RequestTimeout, sess, redirector, log)
	if err != nil {
		_ = sess.Close()
		return nil, err
	}

	return &App{
		config:        c,
		log:           log,
		sess:          sess,
		navigator:     navigator,
		auth:          api.NewAuthService(client, sess, navigator, c.LoginTimeout, log),
		users:         api.NewUsersService(client),
		offers:        api.NewOffersService(client),
		skillTypes:    api.NewSkillTypesService(client),
		roles:         api.NewRolesService(client),
		notifications: api.NewNotificationsService(client),
		reader:        bufio.NewReader(os.Stdin),
	}, nil
}

// Close releases the session store.
func (a *App) Close() error {
	return a.sess.Close()
}

func (a *App) isLoggedIn() bool {
	return a.sess.IsAuthenticated(context.Background())
}

// startUserWatcher keeps the prompt's user name in sync with the session.
// The store replays the latest value on subscription, so a restored session
// shows up immediately.
func (a *App) startUserWatcher(ctx context.Context) func() {
	ch, cancel := a.sess.Subscribe()
	go func() {
		for {
			select {
			case u, ok := <-ch:
				if !ok {
					return
				}
				name := ""
				if u != nil {
					name = u.FullName
				}
				if a.setUserName(name) && name == "" {
					printlnFn("Session ended.")
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return cancel
}

// setUserName swaps the prompt name and reports whether it changed.
func (a *App) setUserName(name string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	changed := a.userName != name
	a.userName = name
	return changed
}

func (a *App) currentUserName() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.userName
}

func (a *App) getStatus() string {
	s := ""
	if name := a.currentUserName(); name != "" {
		s = name + " "
	}
	s += a.navigator.Current()
	return fmt.Sprintf("(%s)", s)
}

// Run starts the interactive console and blocks until the operator exits.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to the job board back office (type 'help' for commands)")

	stop := a.startUserWatcher(ctx)
	defer stop()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
