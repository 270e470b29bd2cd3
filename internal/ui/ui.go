// Package ui serves the server-rendered Manyas web frontend: the public
// pages, the login and registration forms, and the company and creator
// dashboards.
package ui

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/me/manyas/internal/apiclient"
	"github.com/me/manyas/internal/store"
)

// UI handles the web user interface.
type UI struct {
	api    *apiclient.Client
	store  store.Store
	logger *slog.Logger
	pages  map[string]*template.Template
	secure bool
	ttl    time.Duration
}

// Config holds UI configuration.
type Config struct {
	Secure        bool          // Use secure cookies for HTTPS
	CredentialTTL time.Duration // Upper bound on a stored credential's lifetime
}

// New creates a UI. api must not carry credentials of its own; each
// request binds it to the browser's credential.
func New(api *apiclient.Client, st store.Store, logger *slog.Logger, cfg Config) (*UI, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}
	ttl := cfg.CredentialTTL
	if ttl <= 0 {
		ttl = DefaultCredentialTTL
	}
	return &UI{
		api:    api,
		store:  st,
		logger: logger.With("component", "ui"),
		pages:  pages,
		secure: cfg.Secure,
		ttl:    ttl,
	}, nil
}

// render writes page with the shared shell. The session, navigation and
// flash messages are filled in from the request.
func (ui *UI) render(w http.ResponseWriter, r *http.Request, status int, page string, data map[string]any) {
	tmpl, ok := ui.pages[page]
	if !ok {
		ui.logger.Error("unknown page", "page", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = map[string]any{}
	}
	q := r.URL.Query()
	if _, set := data["Error"]; !set {
		data["Error"] = q.Get("error")
	}
	if _, set := data["Notice"]; !set {
		data["Notice"] = q.Get("notice")
	}
	if sess := SessionFromContext(r.Context()); sess != nil {
		if user, ok := sess.Auth.User(); ok {
			data["User"] = user
			data["RoleLabel"] = user.Role.Label()
			data["Nav"] = navLinks(user.Role, r.URL.Path)
		}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		ui.logger.Error("template render failed", "page", page, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (ui *UI) renderError(w http.ResponseWriter, r *http.Request, message string, err error) {
	ui.logger.Error(message, "error", err, "path", r.URL.Path)
	status := http.StatusBadGateway
	if apiclient.IsNotFound(err) {
		status = http.StatusNotFound
	}
	ui.render(w, r, status, "error", map[string]any{
		"Title":   "Error - Manyas AI",
		"Message": apiclient.Message(err, message),
	})
}

func (ui *UI) renderNotFound(w http.ResponseWriter, r *http.Request, message string) {
	ui.render(w, r, http.StatusNotFound, "error", map[string]any{
		"Title":   "No encontrado - Manyas AI",
		"Message": message,
	})
}

// redirectFlash sends the browser to path with a flash message in the
// query string. kind is "error" or "notice".
func redirectFlash(w http.ResponseWriter, r *http.Request, path, kind, msg string) {
	if msg != "" {
		path += "?" + url.Values{kind: {msg}}.Encode()
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

// idParam parses a numeric chi URL parameter.
func idParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}
