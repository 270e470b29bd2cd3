package auth

import (
	"context"
	"log/slog"

	"github.com/me/manyas/internal/apiclient"
	"github.com/me/manyas/internal/credential"
	"github.com/me/manyas/pkg/model"
)

// Fallback messages shown when the API gives no error text.
const (
	MsgLoginFailed    = "Error al iniciar sesión"
	MsgRegisterFailed = "Error al registrar usuario"
)

// API is the subset of the API client the session lifecycle needs.
type API interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
}

// Store derives the session from the persisted credential and is the only
// writer of it. A Store belongs to one application load (one HTTP request
// in the web frontend, one process in the CLI) and is not safe for
// concurrent use.
type Store struct {
	api     API
	creds   credential.Store
	logger  *slog.Logger
	state   State
	session Session
}

// NewStore returns an Unchecked store. api must attach the credential held
// by creds to its requests.
func NewStore(api API, creds credential.Store, logger *slog.Logger) *Store {
	return &Store{
		api:     api,
		creds:   creds,
		logger:  logger.With("component", "auth"),
		state:   Unchecked,
		session: AnonymousSession{},
	}
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	return s.state
}

// Session returns the current session.
func (s *Store) Session() Session {
	return s.session
}

// User returns the authenticated user, if any.
func (s *Store) User() (model.User, bool) {
	if auth, ok := s.session.(AuthenticatedSession); ok {
		return auth.User, true
	}
	return model.User{}, false
}

// Check derives the session from the persisted credential. Without a
// credential no request is made. Any profile-fetch failure, transport
// errors included, discards the credential and leaves the store Anonymous.
func (s *Store) Check(ctx context.Context) {
	s.state = Checking

	token, err := s.creds.Load(ctx)
	if err != nil {
		s.logger.Warn("load credential failed", "error", err)
		s.downgrade(ctx)
		return
	}
	if token == "" {
		s.setAnonymous()
		return
	}

	user, err := s.fetchProfile(ctx)
	if err != nil {
		s.logger.Info("credential rejected", "transport", apiclient.IsTransport(err), "error", err)
		s.downgrade(ctx)
		return
	}
	s.setAuthenticated(user)
}

// Login authenticates against the API. On success the returned token
// becomes the persisted credential and Redirect names the role's
// dashboard. On failure the state is left untouched.
func (s *Store) Login(ctx context.Context, email, password string) Outcome {
	var resp model.LoginResponse
	err := s.api.Post(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		s.logger.Info("login failed", "email", email, "error", err)
		return failure(apiclient.Message(err, MsgLoginFailed))
	}
	if resp.Token == "" {
		s.logger.Warn("login response without token", "email", email)
		return failure(MsgLoginFailed)
	}

	if err := s.creds.Save(ctx, resp.Token); err != nil {
		s.logger.Error("save credential failed", "error", err)
		return failure(MsgLoginFailed)
	}
	s.setAuthenticated(resp.User)

	s.logger.Info("user logged in", "user_id", resp.User.ID, "role", resp.User.Role)
	return Outcome{Redirect: landing(resp.User.Role)}
}

// Register creates the account and then logs in with the same
// credentials. A registration failure is returned before any login
// attempt; a failed follow-up login is returned as-is.
func (s *Store) Register(ctx context.Context, reg model.Registration) Outcome {
	if err := s.api.Post(ctx, "/auth/register", reg, nil); err != nil {
		s.logger.Info("registration failed", "email", reg.Email, "error", err)
		return failure(apiclient.Message(err, MsgRegisterFailed))
	}
	s.logger.Info("user registered", "email", reg.Email, "role", reg.Role)
	return s.Login(ctx, reg.Email, reg.Password)
}

// Logout discards the credential and the session and sends the user to
// the public landing page.
func (s *Store) Logout(ctx context.Context) Outcome {
	if user, ok := s.User(); ok {
		s.logger.Info("user logged out", "user_id", user.ID)
	}
	s.downgrade(ctx)
	return Outcome{Redirect: LandingPath}
}

func (s *Store) fetchProfile(ctx context.Context) (model.User, error) {
	var user model.User
	if err := s.api.Get(ctx, "/auth/profile", &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (s *Store) downgrade(ctx context.Context) {
	if err := s.creds.Clear(ctx); err != nil {
		s.logger.Error("clear credential failed", "error", err)
	}
	s.setAnonymous()
}

func (s *Store) setAnonymous() {
	s.session = AnonymousSession{}
	s.state = Anonymous
}

func (s *Store) setAuthenticated(user model.User) {
	s.session = AuthenticatedSession{User: user}
	s.state = Authenticated
}
