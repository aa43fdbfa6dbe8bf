package api

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jobboardhq/backoffice/internal/client/models"
	"github.com/jobboardhq/backoffice/internal/client/nav"
	"github.com/jobboardhq/backoffice/internal/client/session"
	"github.com/jobboardhq/backoffice/internal/common"
	"github.com/jobboardhq/backoffice/internal/logging"
)

// DefaultLoginTimeout bounds how long a sign-in attempt may hang on a slow
// backend.
const DefaultLoginTimeout = 10 * time.Second

type sessionWriter interface {
	SetToken(ctx context.Context, token string) error
	SetUser(ctx context.Context, u *models.User) error
	Clear(ctx context.Context) error
}

// AuthService signs operators in and out.
type AuthService struct {
	client       *Client
	sess         sessionWriter
	nav          navControl
	log          logging.Logger
	loginTimeout time.Duration
}

// NewAuthService builds the auth service. A non-positive loginTimeout falls
// back to DefaultLoginTimeout.
func NewAuthService(client *Client, sess sessionWriter, navigator navControl, loginTimeout time.Duration, log logging.Logger) *AuthService {
	if loginTimeout <= 0 {
		loginTimeout = DefaultLoginTimeout
	}
	return &AuthService{
		client:       client,
		sess:         sess,
		nav:          navigator,
		log:          log,
		loginTimeout: loginTimeout,
	}
}

// Login authenticates the credentials and establishes the session. The
// response carries the token alongside the profile fields; the token is
// stored before the profile, so a crash between the two leaves a
// recoverable session rather than a profile without credentials.
func (s *AuthService) Login(ctx context.Context, creds models.Credentials) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.loginTimeout)
	defer cancel()

	var raw json.RawMessage
	if err := s.client.post(ctx, "/auth/login", creds, &raw); err != nil {
		return nil, err
	}
	var envelope struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &common.ProtocolError{Message: "login response is malformed: " + err.Error()}
	}
	if envelope.Token == "" {
		return nil, &common.ProtocolError{Message: "login response has no token"}
	}

	user, err := session.DecodeUser(raw)
	if err != nil {
		return nil, &common.ProtocolError{Message: "login response user is malformed: " + err.Error()}
	}

	if err := s.sess.SetToken(ctx, envelope.Token); err != nil {
		return nil, err
	}
	if err := s.sess.SetUser(ctx, user); err != nil {
		// Do not keep credentials for a profile that was refused.
		if cerr := s.sess.Clear(ctx); cerr != nil {
			s.log.Error(ctx, "clearing session after rejected profile", "error", cerr)
		}
		return nil, &common.ProtocolError{Message: "login response user is incomplete: " + err.Error()}
	}

	s.log.Info(ctx, "signed in", "email", user.Email, "role", user.Role)
	return user, nil
}

// Logout notifies the backend, ends the local session and returns to the
// sign-in page. The backend call is best effort; the local session is
// cleared regardless.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.client.post(ctx, "/auth/logout", nil, nil); err != nil {
		s.log.Warn(ctx, "logout notification failed", "error", err)
	}
	if err := s.sess.Clear(ctx); err != nil {
		return err
	}
	if _, err := s.nav.NavigateReplace(ctx, nav.PathLogin); err != nil {
		s.log.Debug(ctx, "post-logout navigation skipped", "error", err)
	}
	s.log.Info(ctx, "signed out")
	return nil
}

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Email       string      `json:"email"`
	Password    string      `json:"password"`
	FullName    string      `json:"fullName"`
	Role        models.Role `json:"role"`
	PhoneNumber string      `json:"phoneNumber,omitempty"`
	CompanyName string      `json:"companyName,omitempty"`
}

// Register creates an account. It does not establish a session; the new
// account signs in on its own.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	var user models.User
	if err := s.client.post(ctx, "/auth/register", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
