package ui

import (
	"context"
	"net/http"

	"github.com/me/manyas/internal/auth"
	"github.com/me/manyas/internal/market"
	"github.com/me/manyas/pkg/model"
)

// Context keys for session data.
type contextKey string

const (
	sessionContextKey contextKey = "session"
)

// Session is the per-request view of the browser's session: the session
// store derived from its credential and an API client bound to it.
type Session struct {
	Auth   *auth.Store
	Market *market.Client
}

// SessionFromContext retrieves the session from the request context.
func SessionFromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(sessionContextKey).(*Session)
	return sess
}

// SessionMiddleware binds a fresh session store to the request and runs
// its check, so every page load rederives the session from the credential.
func (ui *UI) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		creds := ui.credentialFor(w, r)
		api := ui.api.WithCredentials(creds)
		sess := &Session{
			Auth:   auth.NewStore(api, creds, ui.logger),
			Market: market.New(api),
		}
		sess.Auth.Check(r.Context())

		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a route group on role. Must be used after
// SessionMiddleware.
func (ui *UI) RequireRole(role model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := SessionFromContext(r.Context())
			if sess == nil {
				http.Redirect(w, r, auth.LoginPath, http.StatusSeeOther)
				return
			}

			d := auth.Decide(sess.Auth, role)
			switch d.Kind {
			case auth.Loading:
				ui.render(w, r, http.StatusOK, "loading", map[string]any{"Title": "Manyas AI", "Refresh": true})
			case auth.RedirectLogin, auth.RedirectDashboard:
				http.Redirect(w, r, d.Location, http.StatusSeeOther)
			case auth.Render:
				next.ServeHTTP(w, r)
			}
		})
	}
}
