package auth

import "github.com/me/manyas/pkg/model"

// DecisionKind is what a route guard does with a request.
type DecisionKind int

const (
	// Loading shows a neutral indicator and navigates nowhere.
	Loading DecisionKind = iota
	// RedirectLogin sends an anonymous visitor to the login route.
	RedirectLogin
	// RedirectDashboard sends a user of another role to their own dashboard.
	RedirectDashboard
	// Render shows the protected view for Decision.User.
	Render
)

// Decision is the outcome of Decide.
type Decision struct {
	Kind DecisionKind
	// Location is the redirect target for the redirect kinds.
	Location string
	User     model.User
}

// Decide gates a view that requires role. It is a pure function of the
// store's state and session and performs no I/O:
//   - Unchecked or Checking: Loading.
//   - Anonymous: RedirectLogin.
//   - Authenticated with another role: RedirectDashboard.
//   - Authenticated with an unknown role: RedirectLogin.
//   - Authenticated with role: Render.
func Decide(s *Store, role model.Role) Decision {
	switch s.State() {
	case Unchecked, Checking:
		return Decision{Kind: Loading}
	case Anonymous:
		return Decision{Kind: RedirectLogin, Location: LoginPath}
	}

	sess, ok := s.Session().(AuthenticatedSession)
	if !ok || !sess.User.Role.Valid() {
		return Decision{Kind: RedirectLogin, Location: LoginPath}
	}
	if sess.User.Role != role {
		return Decision{Kind: RedirectDashboard, Location: sess.User.Role.DashboardPath()}
	}
	return Decision{Kind: Render, User: sess.User}
}
