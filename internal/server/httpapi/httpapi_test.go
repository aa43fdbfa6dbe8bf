package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jobboardhq/backoffice/internal/client/models"
	"github.com/jobboardhq/backoffice/internal/logging"
	"github.com/jobboardhq/backoffice/internal/server/store"
)

const seedPassword = "dev-password"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st := store.New()
	require.NoError(t, st.Seed(seedPassword))

	h := NewHandler(st, []byte("test-secret"), time.Hour, logging.Nop())
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func login(t *testing.T, srv *httptest.Server, email string) string {
	t.Helper()

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/admin/auth/login", "",
		map[string]string{"email": email, "password": seedPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Token string `json:"token"`
		models.User
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	require.Equal(t, email, out.Email)
	return out.Token
}

func TestLoginRejectsBadPassword(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/admin/auth/login", "",
		map[string]string{"email": "admin@jobboard.example", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "invalid credentials", body.Message)
}

func TestProtectedEndpointsRequireToken(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/v1/admin/users/", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/admin/users/", "garbage-token", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRoleEnforcement(t *testing.T) {
	srv := newTestServer(t)

	adminToken := login(t, srv, "admin@jobboard.example")
	recruiterToken := login(t, srv, "recruiter@jobboard.example")
	seekerToken := login(t, srv, "seeker@jobboard.example")

	tests := []struct {
		name  string
		token string
		path  string
		want  int
	}{
		{"admin lists users", adminToken, "/users/", http.StatusOK},
		{"recruiter cannot list users", recruiterToken, "/users/", http.StatusForbidden},
		{"recruiter lists offers", recruiterToken, "/offers/", http.StatusOK},
		{"seeker lists offers", seekerToken, "/offers/", http.StatusOK},
		{"recruiter lists notifications", recruiterToken, "/notifications/", http.StatusOK},
		{"seeker cannot list notifications", seekerToken, "/notifications/", http.StatusForbidden},
		{"recruiter cannot list roles", recruiterToken, "/roles/", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, http.MethodGet, srv.URL+"/api/v1/admin"+tt.path, tt.token, nil)
			require.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestRegisterAndLogin(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/admin/auth/register", "", map[string]string{
		"email":    "new@jobboard.example",
		"password": seedPassword,
		"fullName": "New Recruiter",
		"role":     "RECRUITER",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.True(t, created.Active)
	require.True(t, created.IsFirstLogin)
	require.Equal(t, models.VerificationPending, created.VerificationStatus)

	login(t, srv, "new@jobboard.example")

	// Same email again conflicts.
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/admin/auth/register", "", map[string]string{
		"email":    "new@jobboard.example",
		"password": seedPassword,
		"fullName": "Dup",
		"role":     "RECRUITER",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestToggleUserStatusBlocksLogin(t *testing.T) {
	srv := newTestServer(t)
	adminToken := login(t, srv, "admin@jobboard.example")

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/v1/admin/users/", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var users []models.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))

	var seekerID int64
	for _, u := range users {
		if u.Role == models.RoleJobSeeker {
			seekerID = u.ID
		}
	}
	require.NotZero(t, seekerID)

	resp = doJSON(t, http.MethodPatch,
		fmt.Sprintf("%s/api/v1/admin/users/%d/status?active=false", srv.URL, seekerID), adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/admin/auth/login", "",
		map[string]string{"email": "seeker@jobboard.example", "password": seedPassword})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestOffersPagination(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "recruiter@jobboard.example")

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/v1/admin/offers/?page=0&size=2", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page models.Paginated[models.Offer]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.Len(t, page.Content, 2)
	require.Equal(t, 3, page.TotalElements)
	require.Equal(t, 2, page.TotalPages)
	require.True(t, page.First)
	require.False(t, page.Last)
}

func TestCreateOfferAssignsRecruiter(t *testing.T) {
	srv := newTestServer(t)
	token := login(t, srv, "recruiter@jobboard.example")

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/admin/offers/", token,
		map[string]string{"title": "DevOps Engineer"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Offer
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotZero(t, created.ID)
	require.NotZero(t, created.RecruiterID)
}
