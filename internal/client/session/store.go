// Package session is the single source of truth for "who is logged in".
//
// The store persists the bearer token and the user profile in a local SQLite
// key/value table so a session survives console restarts, and broadcasts
// user changes to subscribers with replay-latest semantics: a late
// subscriber immediately receives the most recent value.
//
// Corrupt persisted state is never surfaced as an error; the store purges it
// and behaves as logged-out (self-healing).
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jobboardhq/backoffice/internal/client/models"
	"github.com/jobboardhq/backoffice/internal/common"
	"github.com/jobboardhq/backoffice/internal/dbx"
	"github.com/jobboardhq/backoffice/internal/logging"
)

// Storage keys, kept byte-compatible with the browser incarnation of the
// back office so an exported session dump reads the same.
const (
	keyToken = "auth_token"
	keyUser  = "user_data"
)

// Store holds the current authentication token and user profile.
//
// All mutations happen in response to discrete events (login success,
// logout, 401 interception); the mutex only protects the subscriber list and
// the cached user against the prompt-watcher goroutine.
type Store struct {
	db  *sql.DB
	log logging.Logger

	mu      sync.Mutex
	current *models.User
	subs    map[int]chan *models.User
	nextSub int
}

// Open opens (creating if needed) the session database at path and loads any
// persisted user. A corrupt stored user is purged and the store starts
// logged-out.
func Open(ctx context.Context, path string, log logging.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS session (
			key   TEXT PRIMARY KEY,
			value BLOB NOT NULL
		)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init session db: %w", err)
	}

	s := &Store{
		db:   db,
		log:  log,
		subs: make(map[int]chan *models.User),
	}
	s.current = s.loadStoredUser(ctx)
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// --- token ---

// Token returns the persisted bearer token if present and structurally
// valid. A credential that does not parse as a compact three-segment token
// is treated as corrupt: it is purged and "" is returned, so a malformed
// stored credential is never silently reused.
func (s *Store) Token(ctx context.Context) string {
	raw, err := s.get(ctx, keyToken)
	if err != nil {
		s.log.Error(ctx, "session: token read failed", "error", err)
		return ""
	}
	if len(raw) == 0 {
		return ""
	}

	token := string(raw)
	if _, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{}); err != nil {
		s.log.Warn(ctx, "session: purging malformed stored token", "error", err)
		_ = s.del(ctx, keyToken)
		return ""
	}
	return token
}

// SetToken persists the token unconditionally. Format is validated lazily on
// read, not on write: the value arrives from a trusted login response.
func (s *Store) SetToken(ctx context.Context, token string) error {
	return s.set(ctx, keyToken, []byte(token))
}

// RemoveToken clears the persisted token.
func (s *Store) RemoveToken(ctx context.Context) error {
	return s.del(ctx, keyToken)
}

// IsAuthenticated reports whether a structurally valid token is present.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	return s.Token(ctx) != ""
}

// --- user ---

// SetUser validates, persists and publishes the user.
//
// Required fields are id, email, fullName and a known role; a payload
// missing any of them fails with *common.ValidationError and leaves storage
// unchanged. Optional bookkeeping fields receive defaults when absent
// (verificationStatus=PENDING, timestamps=now); the defaults are written
// back into u so callers observe the stored state.
func (s *Store) SetUser(ctx context.Context, u *models.User) error {
	if u == nil {
		return &common.ValidationError{Message: "empty user"}
	}

	var missing []string
	if u.ID == 0 {
		missing = append(missing, "id")
	}
	if u.Email == "" {
		missing = append(missing, "email")
	}
	if u.FullName == "" {
		missing = append(missing, "fullName")
	}
	if u.Role == "" {
		missing = append(missing, "role")
	}
	if len(missing) > 0 {
		return &common.ValidationError{Missing: missing}
	}
	if !u.Role.Valid() {
		return &common.ValidationError{Message: fmt.Sprintf("unknown role %q", u.Role)}
	}

	if u.VerificationStatus == "" {
		u.VerificationStatus = models.VerificationPending
	}
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	stored := *u
	data, err := json.Marshal(&stored)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.set(ctx, keyUser, data); err != nil {
		return err
	}

	s.publish(&stored)
	return nil
}

// CurrentUser returns the last published value (a synchronous read of
// cached state, not a fresh fetch).
func (s *Store) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// RemoveUser clears the persisted user and publishes nil.
func (s *Store) RemoveUser(ctx context.Context) error {
	if err := s.del(ctx, keyUser); err != nil {
		return err
	}
	s.publish(nil)
	return nil
}

// Subscribe registers a listener for user changes. The returned channel
// immediately yields the current value, then every subsequent change in
// arrival order; a slow consumer only ever observes the latest value. The
// cancel function detaches the subscription and closes the channel.
func (s *Store) Subscribe() (<-chan *models.User, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan *models.User, 1)
	ch <- s.current

	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
	return ch, cancel
}

func (s *Store) publish(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = u
	for _, ch := range s.subs {
		// Replace any undelivered value so the subscriber always gets the
		// latest state.
		select {
		case <-ch:
		default:
		}
		ch <- u
	}
}

// userPayload decodes a stored or received user while distinguishing an
// absent "active" flag from an explicit false.
type userPayload struct {
	models.User
	Active *bool `json:"active"`
}

// resolve converts the payload into a User, defaulting the active flag to
// true when the payload did not carry it.
func (p *userPayload) resolve() *models.User {
	u := p.User
	u.Active = p.Active == nil || *p.Active
	return &u
}

// DecodeUser parses a user JSON document, applying the absent-field
// defaults shared by the session store and the login normalizer.
func DecodeUser(data []byte) (*models.User, error) {
	var p userPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return p.resolve(), nil
}

// loadStoredUser reads the persisted user, purging it when it fails
// structural validation. Corruption is logged and healed, never propagated.
func (s *Store) loadStoredUser(ctx context.Context) *models.User {
	raw, err := s.get(ctx, keyUser)
	if err != nil {
		s.log.Error(ctx, "session: user read failed", "error", err)
		return nil
	}
	if len(raw) == 0 {
		return nil
	}

	u, err := DecodeUser(raw)
	if err != nil {
		s.log.Warn(ctx, "session: purging corrupt stored user", "error", err)
		_ = s.del(ctx, keyUser)
		return nil
	}
	if u.ID == 0 || u.Email == "" || u.FullName == "" || !u.Role.Valid() {
		s.log.Warn(ctx, "session: purging incomplete stored user")
		_ = s.del(ctx, keyUser)
		return nil
	}
	return u
}

// --- key/value plumbing ---

func (s *Store) get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session[%s]: %w", key, err)
	}
	return value, nil
}

func (s *Store) set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set session[%s]: %w", key, err)
	}
	return nil
}

func (s *Store) del(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("delete session[%s]: %w", key, err)
	}
	return nil
}

// Clear removes both token and user in one transaction and publishes nil.
// Used by logout so a guard re-evaluating immediately after sees a fully
// cleared session.
func (s *Store) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, keyToken); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, keyUser)
		return err
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.publish(nil)
	return nil
}
