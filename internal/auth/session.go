// Package auth owns the session lifecycle: it derives the current session
// from the persisted credential, mediates login, registration and logout,
// and gates role-protected views.
package auth

import (
	"github.com/me/manyas/pkg/model"
)

// Public routes the session lifecycle navigates to.
const (
	LandingPath = "/"
	LoginPath   = "/login"
)

// State is the position of a Store in its lifecycle.
type State int

const (
	// Unchecked is the state before the first Check.
	Unchecked State = iota
	// Checking is held while the profile fetch is in flight.
	Checking
	// Authenticated means a validated session exists.
	Authenticated
	// Anonymous means the check completed without a valid session.
	Anonymous
)

func (s State) String() string {
	switch s {
	case Unchecked:
		return "unchecked"
	case Checking:
		return "checking"
	case Authenticated:
		return "authenticated"
	case Anonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Session is the current identity: either AnonymousSession or
// AuthenticatedSession. Match it with a type switch.
type Session interface {
	isSession()
}

// AnonymousSession is the absence of a user.
type AnonymousSession struct{}

// AuthenticatedSession carries the user returned by login or profile fetch.
type AuthenticatedSession struct {
	User model.User
}

func (AnonymousSession) isSession()     {}
func (AuthenticatedSession) isSession() {}

// Outcome is the result of a Store operation. Operations never fail with a
// Go error; a non-empty Error is a message fit for display.
type Outcome struct {
	Error    string
	Redirect string
}

// Success reports whether the operation succeeded.
func (o Outcome) Success() bool {
	return o.Error == ""
}

func failure(msg string) Outcome {
	return Outcome{Error: msg}
}

// landing returns the route a freshly authenticated user is sent to.
// Unknown roles get no navigation.
func landing(role model.Role) string {
	if !role.Valid() {
		return ""
	}
	return role.DashboardPath()
}
