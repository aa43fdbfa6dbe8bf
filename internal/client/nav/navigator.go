package nav

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/jobboardhq/backoffice/internal/logging"
)

// ErrSuperseded is returned when another navigation started while this one
// was still resolving. The later call wins.
var ErrSuperseded = errors.New("navigation superseded")

// maxHops bounds guard redirect chains. The table is small and chains are
// at most two hops deep; anything longer is a routing bug.
const maxHops = 8

// Navigator tracks the current location and applies route guards on every
// transition.
type Navigator struct {
	sess SessionState
	log  logging.Logger

	mu      sync.Mutex
	seq     uint64
	history []string
}

// New returns a navigator positioned on the sign-in page.
func New(sess SessionState, log logging.Logger) *Navigator {
	return &Navigator{
		sess:    sess,
		log:     log,
		history: []string{PathLogin},
	}
}

// Current returns the location the navigator last settled on.
func (n *Navigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.history[len(n.history)-1]
}

// History returns a copy of the visited locations, oldest first.
func (n *Navigator) History() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.history))
	copy(out, n.history)
	return out
}

// Navigate moves to the target, pushing the previous location onto the
// history. Guard redirects are followed; the settled location is returned.
func (n *Navigator) Navigate(ctx context.Context, target string) (string, error) {
	return n.navigate(ctx, target, false)
}

// NavigateReplace moves to the target without keeping the current location
// in the history. Used for session expiry and access denial, where going
// back to the blocked page would just bounce again.
func (n *Navigator) NavigateReplace(ctx context.Context, target string) (string, error) {
	return n.navigate(ctx, target, true)
}

// Back pops the history and settles on the previous location, with guards
// applied again since the session may have changed in between. On an empty
// history it stays put.
func (n *Navigator) Back(ctx context.Context) (string, error) {
	n.mu.Lock()
	if len(n.history) < 2 {
		current := n.history[len(n.history)-1]
		n.mu.Unlock()
		return current, nil
	}
	n.history = n.history[:len(n.history)-1]
	target := n.history[len(n.history)-1]
	n.mu.Unlock()

	return n.navigate(ctx, target, true)
}

func (n *Navigator) navigate(ctx context.Context, target string, replace bool) (string, error) {
	n.mu.Lock()
	n.seq++
	ticket := n.seq
	n.mu.Unlock()

	for hop := 0; hop < maxHops; hop++ {
		parsed, err := url.Parse(target)
		if err != nil {
			return "", fmt.Errorf("parsing target %q: %w", target, err)
		}

		route := Lookup(parsed.Path)
		if route.Path == PathNotFound && parsed.Path != PathNotFound {
			n.log.Debug(ctx, "unknown path, showing not found", "path", parsed.Path)
			target = PathNotFound
			continue
		}

		// Guard checks may touch the session store; keep the lock released.
		decision := Check(ctx, n.sess, route, parsed)
		if decision.Allow {
			return n.settle(ticket, target, replace)
		}

		n.log.Debug(ctx, "guard redirect", "from", target, "to", decision.RedirectTo)
		target = decision.RedirectTo
		replace = replace || decision.Replace
	}

	return "", fmt.Errorf("redirect chain for %q exceeded %d hops", target, maxHops)
}

func (n *Navigator) settle(ticket uint64, target string, replace bool) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.seq != ticket {
		return "", ErrSuperseded
	}
	if replace && len(n.history) > 0 {
		n.history[len(n.history)-1] = target
	} else {
		n.history = append(n.history, target)
	}
	return target, nil
}
