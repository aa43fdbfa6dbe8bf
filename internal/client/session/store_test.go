package session

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/jobboardhq/backoffice/internal/client/models"
	"github.com/jobboardhq/backoffice/internal/common"
	"github.com/jobboardhq/backoffice/internal/logging"
)

// Structurally valid (three dot-separated segments); signature is irrelevant
// for storage-level checks.
const wellFormedToken = "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiI0MiJ9.c2ln"

func openStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.db")
	s, err := Open(context.Background(), path, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func validUser() *models.User {
	return &models.User{
		ID:       42,
		Email:    "admin@jobboard.example",
		FullName: "Ada Admin",
		Role:     models.RoleAdmin,
		Active:   true,
	}
}

func rawValue(t *testing.T, s *Store, key string) []byte {
	t.Helper()
	var v []byte
	err := s.db.QueryRow(`SELECT value FROM session WHERE key = ?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return nil
	}
	require.NoError(t, err)
	return v
}

func TestTokenRoundTrip(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	require.Empty(t, s.Token(ctx))
	require.False(t, s.IsAuthenticated(ctx))

	require.NoError(t, s.SetToken(ctx, wellFormedToken))
	require.Equal(t, wellFormedToken, s.Token(ctx))
	require.True(t, s.IsAuthenticated(ctx))

	require.NoError(t, s.RemoveToken(ctx))
	require.Empty(t, s.Token(ctx))
}

func TestMalformedTokenIsPurgedOnRead(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"two segments", "aaa.bbb"},
		{"four segments", "a.b.c.d"},
		{"plain string", "not-a-token"},
		{"empty segments", ".."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := openStore(t)
			ctx := context.Background()

			require.NoError(t, s.SetToken(ctx, tt.token))
			require.Empty(t, s.Token(ctx))

			// Malformed input never survives a read.
			require.Nil(t, rawValue(t, s, keyToken))
			require.False(t, s.IsAuthenticated(ctx))
		})
	}
}

func TestSetUserValidation(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	u := validUser()
	u.Email = ""
	u.FullName = ""

	err := s.SetUser(ctx, u)
	var verr *common.ValidationError
	require.ErrorAs(t, err, &verr)
	require.ElementsMatch(t, []string{"email", "fullName"}, verr.Missing)

	// Atomicity: nothing was persisted, nothing published.
	require.Nil(t, rawValue(t, s, keyUser))
	require.Nil(t, s.CurrentUser())
}

func TestSetUserRejectsUnknownRole(t *testing.T) {
	s := openStore(t)

	u := validUser()
	u.Role = "SUPERVISOR"

	var verr *common.ValidationError
	require.ErrorAs(t, s.SetUser(context.Background(), u), &verr)
	require.Nil(t, rawValue(t, s, keyUser))
}

func TestSetUserAppliesDefaultsAndPublishes(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetUser(ctx, validUser()))

	got := s.CurrentUser()
	require.NotNil(t, got)
	require.Equal(t, models.VerificationPending, got.VerificationStatus)
	require.False(t, got.CreatedAt.IsZero())
	require.False(t, got.UpdatedAt.IsZero())
}

func TestStoredUserSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	s, err := Open(ctx, path, logging.Nop())
	require.NoError(t, err)
	require.NoError(t, s.SetToken(ctx, wellFormedToken))
	require.NoError(t, s.SetUser(ctx, validUser()))
	require.NoError(t, s.Close())

	s2, err := Open(ctx, path, logging.Nop())
	require.NoError(t, err)
	defer s2.Close()

	require.Equal(t, wellFormedToken, s2.Token(ctx))
	got := s2.CurrentUser()
	require.NotNil(t, got)
	require.Equal(t, "admin@jobboard.example", got.Email)
	// Stored document carried active=true explicitly.
	require.True(t, got.Active)
}

func TestCorruptStoredUserIsHealed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"id": 42,`},
		{"missing fields", `{"id": 42, "email": "x@y.z"}`},
		{"unknown role", `{"id":1,"email":"x@y.z","fullName":"X","role":"NOPE"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "session.db")
			ctx := context.Background()

			s, err := Open(ctx, path, logging.Nop())
			require.NoError(t, err)
			require.NoError(t, s.set(ctx, keyUser, []byte(tt.data)))
			require.NoError(t, s.Close())

			s2, err := Open(ctx, path, logging.Nop())
			require.NoError(t, err)
			defer s2.Close()

			require.Nil(t, s2.CurrentUser())
			require.Nil(t, rawValue(t, s2, keyUser))
		})
	}
}

func TestDecodeUserDefaultsActive(t *testing.T) {
	u, err := DecodeUser([]byte(`{"id":1,"email":"x@y.z","fullName":"X","role":"ADMIN"}`))
	require.NoError(t, err)
	require.True(t, u.Active)

	u, err = DecodeUser([]byte(`{"id":1,"email":"x@y.z","fullName":"X","role":"ADMIN","active":false}`))
	require.NoError(t, err)
	require.False(t, u.Active)
}

func TestSubscribeReplaysLatest(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetUser(ctx, validUser()))

	ch, cancel := s.Subscribe()
	defer cancel()

	select {
	case u := <-ch:
		require.NotNil(t, u)
		require.Equal(t, int64(42), u.ID)
	case <-time.After(time.Second):
		t.Fatal("expected immediate replay of latest value")
	}

	require.NoError(t, s.RemoveUser(ctx))
	select {
	case u := <-ch:
		require.Nil(t, u)
	case <-time.After(time.Second):
		t.Fatal("expected nil publication after RemoveUser")
	}
}

func TestSlowSubscriberObservesLatestOnly(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	ch, cancel := s.Subscribe()
	defer cancel()

	// Replay slot is occupied; two publications follow without a read in
	// between.
	require.NoError(t, s.SetUser(ctx, validUser()))
	second := validUser()
	second.FullName = "Ada Updated"
	require.NoError(t, s.SetUser(ctx, second))

	u := <-ch
	require.NotNil(t, u)
	require.Equal(t, "Ada Updated", u.FullName)
}

func TestClearRemovesEverythingAndPublishesNil(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetToken(ctx, wellFormedToken))
	require.NoError(t, s.SetUser(ctx, validUser()))

	require.NoError(t, s.Clear(ctx))

	require.Empty(t, s.Token(ctx))
	require.Nil(t, s.CurrentUser())
	require.False(t, s.IsAuthenticated(ctx))
}
