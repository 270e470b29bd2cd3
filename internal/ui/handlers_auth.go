package ui

import (
	"net/http"
	"strings"

	"github.com/me/manyas/internal/auth"
	"github.com/me/manyas/pkg/model"
)

const (
	msgPasswordMismatch = "Las contraseñas no coinciden"
	msgPasswordTooShort = "La contraseña debe tener al menos 6 caracteres"
	msgInvalidRequest   = "Solicitud inválida"
)

// signedInUser returns the authenticated user of the request, if any.
func signedInUser(r *http.Request) (model.User, bool) {
	sess := SessionFromContext(r.Context())
	if sess == nil {
		return model.User{}, false
	}
	return sess.Auth.User()
}

// HandleLanding renders the public landing page. Signed in users go
// straight to their dashboard.
func (ui *UI) HandleLanding(w http.ResponseWriter, r *http.Request) {
	if user, ok := signedInUser(r); ok && user.Role.Valid() {
		http.Redirect(w, r, user.Role.DashboardPath(), http.StatusSeeOther)
		return
	}
	ui.render(w, r, http.StatusOK, "landing", map[string]any{
		"Title": "Manyas AI - Marketplace UGC para Latinoamérica",
	})
}

// HandleLogin renders the login page.
func (ui *UI) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if user, ok := signedInUser(r); ok && user.Role.Valid() {
		http.Redirect(w, r, user.Role.DashboardPath(), http.StatusSeeOther)
		return
	}
	ui.render(w, r, http.StatusOK, "login", map[string]any{
		"Title": "Iniciar Sesión - Manyas AI",
		"Email": r.URL.Query().Get("email"),
	})
}

// HandleLoginPost processes the login form.
func (ui *UI) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectFlash(w, r, auth.LoginPath, "error", msgInvalidRequest)
		return
	}
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	sess := SessionFromContext(r.Context())
	out := sess.Auth.Login(r.Context(), email, password)
	if !out.Success() {
		redirectFlash(w, r, auth.LoginPath, "error", out.Error)
		return
	}

	dest := out.Redirect
	if dest == "" {
		dest = auth.LandingPath
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

// HandleRegister renders the registration form. The role is preselected
// from ?role=, defaulting to creator.
func (ui *UI) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if user, ok := signedInUser(r); ok && user.Role.Valid() {
		http.Redirect(w, r, user.Role.DashboardPath(), http.StatusSeeOther)
		return
	}
	role := model.Role(r.URL.Query().Get("role"))
	if !role.Valid() {
		role = model.RoleCreator
	}
	ui.renderRegister(w, r, http.StatusOK, model.Registration{Role: role}, "")
}

func (ui *UI) renderRegister(w http.ResponseWriter, r *http.Request, status int, form model.Registration, errMsg string) {
	form.Password = ""
	data := map[string]any{
		"Title": "Crear cuenta - Manyas AI",
		"Form":  form,
	}
	if errMsg != "" {
		data["Error"] = errMsg
	}
	ui.render(w, r, status, "register", data)
}

// HandleRegisterPost validates the registration form and, when the API
// accepts it, signs the new user in.
func (ui *UI) HandleRegisterPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectFlash(w, r, "/register", "error", msgInvalidRequest)
		return
	}
	reg := model.Registration{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
		Role:     model.Role(r.FormValue("role")),
	}
	if !reg.Role.Valid() {
		reg.Role = model.RoleCreator
	}

	if reg.Password != r.FormValue("confirm_password") {
		ui.renderRegister(w, r, http.StatusUnprocessableEntity, reg, msgPasswordMismatch)
		return
	}
	if len([]rune(reg.Password)) < model.MinPasswordLength {
		ui.renderRegister(w, r, http.StatusUnprocessableEntity, reg, msgPasswordTooShort)
		return
	}

	sess := SessionFromContext(r.Context())
	out := sess.Auth.Register(r.Context(), reg)
	if !out.Success() {
		ui.renderRegister(w, r, http.StatusUnprocessableEntity, reg, out.Error)
		return
	}

	dest := out.Redirect
	if dest == "" {
		dest = auth.LandingPath
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

// HandleLogout clears the session and returns to the landing page.
func (ui *UI) HandleLogout(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	out := sess.Auth.Logout(r.Context())
	http.Redirect(w, r, out.Redirect, http.StatusSeeOther)
}
