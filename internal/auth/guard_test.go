package auth

import (
	"context"
	"testing"

	"github.com/me/manyas/internal/credential"
	"github.com/me/manyas/internal/logging"
	"github.com/me/manyas/pkg/model"
)

func TestDecide(t *testing.T) {
	creator := model.User{ID: 1, Role: model.RoleCreator}
	company := model.User{ID: 2, Role: model.RoleCompany}
	admin := model.User{ID: 3, Role: model.Role("admin")}

	tests := []struct {
		name     string
		state    State
		session  Session
		role     model.Role
		kind     DecisionKind
		location string
	}{
		{"unchecked waits", Unchecked, AnonymousSession{}, model.RoleCreator, Loading, ""},
		{"checking waits", Checking, AnonymousSession{}, model.RoleCompany, Loading, ""},
		{"anonymous to login", Anonymous, AnonymousSession{}, model.RoleCreator, RedirectLogin, "/login"},
		{"matching creator renders", Authenticated, AuthenticatedSession{User: creator}, model.RoleCreator, Render, ""},
		{"matching company renders", Authenticated, AuthenticatedSession{User: company}, model.RoleCompany, Render, ""},
		{"creator on company view", Authenticated, AuthenticatedSession{User: creator}, model.RoleCompany, RedirectDashboard, "/dashboard/creator"},
		{"company on creator view", Authenticated, AuthenticatedSession{User: company}, model.RoleCreator, RedirectDashboard, "/dashboard/company"},
		{"unknown role to login", Authenticated, AuthenticatedSession{User: admin}, model.RoleCreator, RedirectLogin, "/login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Store{state: tt.state, session: tt.session}
			d := Decide(s, tt.role)
			if d.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", d.Kind, tt.kind)
			}
			if d.Location != tt.location {
				t.Errorf("Location = %q, want %q", d.Location, tt.location)
			}
			if d.Kind == Render && d.User.Role != tt.role {
				t.Errorf("rendered user role = %q, want %q", d.User.Role, tt.role)
			}
		})
	}
}

func TestDecide_CheckedCompanyGuardWithCreatorCredential(t *testing.T) {
	s, _ := setup(t, newFakeAPI(), "tok123")
	s.Check(context.Background())

	d := Decide(s, model.RoleCompany)
	if d.Kind != RedirectDashboard || d.Location != "/dashboard/creator" {
		t.Fatalf("Decide = %+v, want redirect to /dashboard/creator", d)
	}
}

func TestDecide_NoIO(t *testing.T) {
	// A store with no API behind it must still be decidable.
	s := NewStore(nil, credential.NewMemoryStore(""), logging.Discard())
	if d := Decide(s, model.RoleCreator); d.Kind != Loading {
		t.Fatalf("Decide on fresh store = %+v, want Loading", d)
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{
		Unchecked:     "unchecked",
		Checking:      "checking",
		Authenticated: "authenticated",
		Anonymous:     "anonymous",
		State(42):     "unknown",
	} {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}
