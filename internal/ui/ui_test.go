package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/me/manyas/internal/apiclient"
	"github.com/me/manyas/internal/logging"
	"github.com/me/manyas/internal/store"
	"github.com/me/manyas/pkg/model"
)

// upstream is a fake Manyas API. Tokens map to users; revoked tokens are
// rejected by /auth/profile.
type upstream struct {
	mu            sync.Mutex
	tokens        map[string]model.User
	passwords     map[string]string
	registerCalls atomic.Int32
	profileCalls  atomic.Int32
	statusUpdates []string
	applied       []model.ApplicationInput
}

func newUpstream() *upstream {
	return &upstream{
		tokens: map[string]model.User{
			"tok-creator": {ID: 7, Name: "Ana Creadora", Email: "ana@example.com", Role: model.RoleCreator},
			"tok-company": {ID: 8, Name: "Acme", Email: "acme@example.com", Role: model.RoleCompany,
				Profile: &model.Profile{ID: 3, CompanyName: "Acme S.A.", Location: "Lima, Perú"}},
		},
		passwords: map[string]string{
			"ana@example.com":  "secret1",
			"acme@example.com": "secret2",
		},
	}
}

func (u *upstream) revoke(token string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.tokens, token)
}

func (u *upstream) updates() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.statusUpdates...)
}

func (u *upstream) applications() []model.ApplicationInput {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]model.ApplicationInput(nil), u.applied...)
}

func (u *upstream) user(r *http.Request) (model.User, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	user, ok := u.tokens[strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")]
	return user, ok
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (u *upstream) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct{ Email, Password string }
		json.NewDecoder(r.Body).Decode(&body)
		u.mu.Lock()
		defer u.mu.Unlock()
		if u.passwords[body.Email] == "" || u.passwords[body.Email] != body.Password {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
			return
		}
		for tok, user := range u.tokens {
			if user.Email == body.Email {
				writeJSON(w, http.StatusOK, model.LoginResponse{Token: tok, User: user})
				return
			}
		}
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
	})
	mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		u.registerCalls.Add(1)
		var reg model.Registration
		json.NewDecoder(r.Body).Decode(&reg)
		u.mu.Lock()
		defer u.mu.Unlock()
		if _, taken := u.passwords[reg.Email]; taken {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "User already exists"})
			return
		}
		u.passwords[reg.Email] = reg.Password
		u.tokens["tok-"+reg.Email] = model.User{ID: 99, Name: reg.Name, Email: reg.Email, Role: reg.Role}
		writeJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
	})
	mux.HandleFunc("GET /auth/profile", func(w http.ResponseWriter, r *http.Request) {
		u.profileCalls.Add(1)
		user, ok := u.user(r)
		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid token"})
			return
		}
		writeJSON(w, http.StatusOK, user)
	})
	mux.HandleFunc("GET /companies/jobs/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []model.Job{
			{ID: 1, Title: "Reel de verano", Status: model.JobOpen},
			{ID: 2, Title: "Unboxing", Status: model.JobClosed},
		})
	})
	mux.HandleFunc("GET /companies/jobs/{id}/applications", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") == "1" {
			writeJSON(w, http.StatusOK, []model.Application{{ID: 10, Status: model.ApplicationPending}, {ID: 11}})
			return
		}
		writeJSON(w, http.StatusOK, []model.Application{})
	})
	mux.HandleFunc("GET /jobs/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "1" {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Job not found"})
			return
		}
		writeJSON(w, http.StatusOK, model.Job{ID: 1, Title: "Reel de verano", Description: "Video corto", Status: model.JobOpen})
	})
	mux.HandleFunc("PUT /companies/jobs/{id}", func(w http.ResponseWriter, r *http.Request) {
		var in model.JobInput
		json.NewDecoder(r.Body).Decode(&in)
		u.mu.Lock()
		u.statusUpdates = append(u.statusUpdates, string(in.Status))
		u.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]string{"message": "Job updated"})
	})
	mux.HandleFunc("GET /jobs", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []model.Job{{ID: 1, Title: "Reel de verano", Status: model.JobOpen}})
	})
	mux.HandleFunc("GET /applications/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []model.Application{{ID: 10}})
	})
	mux.HandleFunc("GET /creators/portfolio/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []model.PortfolioItem{})
	})
	mux.HandleFunc("POST /applications", func(w http.ResponseWriter, r *http.Request) {
		var in model.ApplicationInput
		json.NewDecoder(r.Body).Decode(&in)
		u.mu.Lock()
		u.applied = append(u.applied, in)
		u.mu.Unlock()
		writeJSON(w, http.StatusCreated, map[string]string{"message": "Application submitted"})
	})
	mux.HandleFunc("DELETE /creators/portfolio/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Database error"})
	})
	mux.HandleFunc("PUT /companies/profile", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Profile updated"})
	})
	mux.HandleFunc("GET /categories", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []model.Category{{ID: 1, Name: "Video"}})
	})
	return mux
}

type testEnv struct {
	upstream *upstream
	store    store.Store
	router   http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithLogger(t, logging.Discard())
}

func newTestEnvWithLogger(t *testing.T, logger *slog.Logger) *testEnv {
	t.Helper()
	up := newUpstream()
	api := httptest.NewServer(up.handler())
	t.Cleanup(api.Close)

	st, err := store.NewSQLiteStore(":memory:", logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	u, err := New(apiclient.New(api.URL, nil, logger), st, logger, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r := chi.NewRouter()
	r.Handle("/static/*", StaticHandler())
	u.RegisterRoutes(r, nil)
	return &testEnv{upstream: up, store: st, router: r}
}

func (e *testEnv) do(method, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	return nil
}

// login signs in through the form and returns the session cookie.
func (e *testEnv) login(t *testing.T, email, password string) *http.Cookie {
	t.Helper()
	w := e.do("POST", "/login", url.Values{"email": {email}, "password": {password}}, nil)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("POST /login: status=%d, want 303", w.Code)
	}
	c := sessionCookie(w)
	if c == nil {
		t.Fatal("POST /login: no session cookie")
	}
	return c
}

func assertRedirect(t *testing.T, w *httptest.ResponseRecorder, want string) {
	t.Helper()
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status=%d, want 303, body=%s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != want {
		t.Errorf("Location = %q, want %q", got, want)
	}
}

func TestParsePages(t *testing.T) {
	pages, err := parsePages()
	if err != nil {
		t.Fatalf("parsePages: %v", err)
	}
	for name := range templates {
		if pages[name] == nil {
			t.Errorf("page %q not parsed", name)
		}
	}
}

func TestLanding_Anonymous(t *testing.T) {
	env := newTestEnv(t)
	w := env.do("GET", "/", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Conecta Marcas y Creadores", "/register?role=creator", "/register?role=company"} {
		if !strings.Contains(body, want) {
			t.Errorf("landing page missing %q", want)
		}
	}
	if strings.Contains(body, "Cerrar Sesión") {
		t.Error("anonymous page should not show the logout button")
	}
}

func TestDashboard_AnonymousRedirectsToLogin(t *testing.T) {
	env := newTestEnv(t)
	assertRedirect(t, env.do("GET", "/dashboard/company", nil, nil), "/login")
	assertRedirect(t, env.do("GET", "/dashboard/creator/jobs", nil, nil), "/login")
}

func TestLoginFlow(t *testing.T) {
	env := newTestEnv(t)
	w := env.do("POST", "/login", url.Values{"email": {"ana@example.com"}, "password": {"secret1"}}, nil)
	assertRedirect(t, w, "/dashboard/creator")

	cookie := sessionCookie(w)
	if cookie == nil {
		t.Fatal("no session cookie")
	}
	if !cookie.HttpOnly {
		t.Error("session cookie should be HttpOnly")
	}
	if cookie.SameSite != http.SameSiteStrictMode {
		t.Errorf("SameSite = %v, want Strict", cookie.SameSite)
	}
	if !strings.HasPrefix(cookie.Value, "cred_") {
		t.Errorf("cookie value %q should be an opaque credential ID", cookie.Value)
	}
	if strings.Contains(cookie.Value, "tok-creator") {
		t.Error("cookie must not carry the token")
	}

	w = env.do("GET", "/dashboard/creator", nil, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /dashboard/creator: status=%d, body=%s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{"Panel de Creador", "Ana Creadora", "Cerrar Sesión", "Reel de verano"} {
		if !strings.Contains(body, want) {
			t.Errorf("creator dashboard missing %q", want)
		}
	}

	// Wrong-role pages send the user to their own dashboard.
	assertRedirect(t, env.do("GET", "/dashboard/company/jobs", nil, cookie), "/dashboard/creator")
	// Public entry points do too.
	assertRedirect(t, env.do("GET", "/login", nil, cookie), "/dashboard/creator")
	assertRedirect(t, env.do("GET", "/", nil, cookie), "/dashboard/creator")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	w := env.do("POST", "/login", url.Values{"email": {"ana@example.com"}, "password": {"wrong"}}, nil)
	assertRedirect(t, w, "/login?error=Invalid+credentials")
	if sessionCookie(w) != nil {
		t.Error("failed login should not set a cookie")
	}
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "ana@example.com", "secret1")

	w := env.do("POST", "/logout", nil, cookie)
	assertRedirect(t, w, "/")
	if c := sessionCookie(w); c == nil || c.MaxAge >= 0 {
		t.Errorf("logout should expire the cookie, got %+v", c)
	}

	cred, err := env.store.GetCredential(context.Background(), cookie.Value)
	if err != nil {
		t.Fatalf("GetCredential: %v", err)
	}
	if cred != nil {
		t.Error("credential should be deleted on logout")
	}

	// The stale cookie no longer grants access.
	assertRedirect(t, env.do("GET", "/dashboard/creator", nil, cookie), "/login")
}

func TestRevokedTokenDowngradesSession(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "ana@example.com", "secret1")
	env.upstream.revoke("tok-creator")

	w := env.do("GET", "/dashboard/creator", nil, cookie)
	assertRedirect(t, w, "/login")
	if c := sessionCookie(w); c == nil || c.MaxAge >= 0 {
		t.Error("rejected credential should clear the cookie")
	}
}

func TestExpiredCredentialIsAnonymous(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	now := time.Now()
	err := env.store.CreateCredential(ctx, &store.Credential{
		ID:        "cred_expired",
		Token:     "tok-creator",
		CreatedAt: now.Add(-2 * time.Hour),
		ExpiresAt: now.Add(-time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateCredential: %v", err)
	}

	cookie := &http.Cookie{Name: CookieName, Value: "cred_expired"}
	assertRedirect(t, env.do("GET", "/dashboard/creator", nil, cookie), "/login")

	cred, err := env.store.GetCredential(ctx, "cred_expired")
	if err != nil {
		t.Fatalf("GetCredential: %v", err)
	}
	if cred != nil {
		t.Error("expired credential should be deleted on use")
	}
}

func TestRegister_RolePreselected(t *testing.T) {
	env := newTestEnv(t)
	w := env.do("GET", "/register?role=company", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `value="company" selected`) {
		t.Error("company role should be preselected")
	}
	if !strings.Contains(body, "Crea tu cuenta") {
		t.Error("register heading missing")
	}

	w = env.do("GET", "/register?role=admin", nil, nil)
	if !strings.Contains(w.Body.String(), `value="creator" selected`) {
		t.Error("unknown role should fall back to creator")
	}
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name     string
		password string
		confirm  string
		want     string
	}{
		{"mismatch", "secret1", "secret2", msgPasswordMismatch},
		{"too short", "abc", "abc", msgPasswordTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			w := env.do("POST", "/register", url.Values{
				"name":             {"Nuevo"},
				"email":            {"nuevo@example.com"},
				"password":         {tt.password},
				"confirm_password": {tt.confirm},
				"role":             {"creator"},
			}, nil)
			if w.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status=%d, want 422", w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.want) {
				t.Errorf("body missing %q", tt.want)
			}
			if n := env.upstream.registerCalls.Load(); n != 0 {
				t.Errorf("register called %d times, want 0", n)
			}
		})
	}
}

func TestRegister_SignsIn(t *testing.T) {
	env := newTestEnv(t)
	w := env.do("POST", "/register", url.Values{
		"name":             {"Marca Nueva"},
		"email":            {"marca@example.com"},
		"password":         {"secret9"},
		"confirm_password": {"secret9"},
		"role":             {"company"},
	}, nil)
	assertRedirect(t, w, "/dashboard/company")
	if sessionCookie(w) == nil {
		t.Error("registration should leave the user signed in")
	}
}

func TestRegister_APIError(t *testing.T) {
	env := newTestEnv(t)
	w := env.do("POST", "/register", url.Values{
		"name":             {"Ana"},
		"email":            {"ana@example.com"},
		"password":         {"secret1"},
		"confirm_password": {"secret1"},
		"role":             {"creator"},
	}, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status=%d, want 422", w.Code)
	}
	if !strings.Contains(w.Body.String(), "User already exists") {
		t.Error("API error message should be shown")
	}
}

func TestCompanyDashboard(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "acme@example.com", "secret2")

	w := env.do("GET", "/dashboard/company", nil, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{"Panel de Empresa", "Ofertas Activas", "Reel de verano", "Unboxing"} {
		if !strings.Contains(body, want) {
			t.Errorf("company dashboard missing %q", want)
		}
	}
}

func TestCompanyJobStatus(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "acme@example.com", "secret2")

	w := env.do("POST", "/dashboard/company/jobs/1/status", url.Values{"status": {"closed"}}, cookie)
	assertRedirect(t, w, "/dashboard/company/jobs?notice=Estado+actualizado")
	if got := env.upstream.updates(); len(got) != 1 || got[0] != "closed" {
		t.Errorf("status updates = %v, want [closed]", got)
	}

	w = env.do("POST", "/dashboard/company/jobs/1/status", url.Values{"status": {"archived"}}, cookie)
	if got := w.Header().Get("Location"); !strings.Contains(got, "error=") {
		t.Errorf("invalid status should flash an error, Location = %q", got)
	}
}

func TestCompanyJobDetail_NotFound(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "acme@example.com", "secret2")

	w := env.do("GET", "/dashboard/company/jobs/42", nil, cookie)
	if w.Code != http.StatusNotFound {
		t.Errorf("status=%d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Job not found") {
		t.Error("API error message should be shown")
	}
}

func TestCompanyProfile_Prefilled(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "acme@example.com", "secret2")

	w := env.do("GET", "/dashboard/company/profile", nil, cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `value="Acme S.A."`) {
		t.Error("profile form should be prefilled from the session")
	}
}

func TestFlashMessages(t *testing.T) {
	env := newTestEnv(t)
	w := env.do("GET", "/login?error=Algo+fall%C3%B3", nil, nil)
	if !strings.Contains(w.Body.String(), "Algo falló") {
		t.Error("error flash should be rendered")
	}
}

func TestStaticAssets(t *testing.T) {
	env := newTestEnv(t)
	w := env.do("GET", "/static/app.css", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), ".spinner") {
		t.Error("stylesheet content missing")
	}
}

func TestNavLinks(t *testing.T) {
	tests := []struct {
		role   model.Role
		path   string
		active string
	}{
		{model.RoleCreator, "/dashboard/creator", "Inicio"},
		{model.RoleCreator, "/dashboard/creator/jobs/4", "Ofertas"},
		{model.RoleCreator, "/dashboard/creator/profile", "Perfil"},
		{model.RoleCompany, "/dashboard/company/creators", "Creadores"},
		{model.RoleCompany, "/dashboard/company/jobs/new", "Ofertas"},
	}
	for _, tt := range tests {
		var active []string
		for _, l := range navLinks(tt.role, tt.path) {
			if l.Active {
				active = append(active, l.Label)
			}
		}
		if len(active) != 1 || active[0] != tt.active {
			t.Errorf("navLinks(%s, %s) active = %v, want [%s]", tt.role, tt.path, active, tt.active)
		}
	}
	if links := navLinks("admin", "/"); len(links) != 0 {
		t.Errorf("unknown role should have no menu, got %v", links)
	}
}

func TestCreatorPages(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "ana@example.com", "secret1")

	pages := map[string]string{
		"/dashboard/creator/jobs":         "Reel de verano",
		"/dashboard/creator/jobs/1":       "Aplicar a esta oferta",
		"/dashboard/creator/applications": "Mis Aplicaciones",
		"/dashboard/creator/portfolio":    "Mi Portafolio",
		"/dashboard/creator/profile":      "Video",
	}
	for path, want := range pages {
		w := env.do("GET", path, nil, cookie)
		if w.Code != http.StatusOK {
			t.Errorf("GET %s: status=%d, want 200", path, w.Code)
			continue
		}
		if !strings.Contains(w.Body.String(), want) {
			t.Errorf("GET %s: body missing %q", path, want)
		}
	}
}

func TestJobApply(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "ana@example.com", "secret1")

	w := env.do("POST", "/dashboard/creator/jobs/1/apply", url.Values{
		"cover_letter":    {"Tengo experiencia en reels"},
		"proposed_budget": {"250.50"},
	}, cookie)
	assertRedirect(t, w, "/dashboard/creator/applications?notice="+url.QueryEscape("¡Aplicación enviada exitosamente!"))

	applied := env.upstream.applications()
	if len(applied) != 1 {
		t.Fatalf("upstream got %d applications, want 1", len(applied))
	}
	if applied[0].JobOpeningID != 1 || applied[0].ProposedBudget == nil || *applied[0].ProposedBudget != 250.5 {
		t.Errorf("application = %+v", applied[0])
	}

	w = env.do("POST", "/dashboard/creator/jobs/1/apply", url.Values{"proposed_budget": {"mucho"}}, cookie)
	assertRedirect(t, w, "/dashboard/creator/jobs/1?error="+url.QueryEscape("Presupuesto inválido"))
	if n := len(env.upstream.applications()); n != 1 {
		t.Errorf("invalid budget reached the API: %d applications", n)
	}
}

func TestPortfolioDelete_APIError(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "ana@example.com", "secret1")

	w := env.do("POST", "/dashboard/creator/portfolio/4/delete", nil, cookie)
	assertRedirect(t, w, "/dashboard/creator/portfolio?error=Error+al+eliminar+item")
}

func TestCompanyProfilePost_NoExtraProfileFetch(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "acme@example.com", "secret2")
	before := env.upstream.profileCalls.Load()

	w := env.do("POST", "/dashboard/company/profile", url.Values{
		"company_name": {"Acme S.A."},
		"industry":     {"Retail"},
	}, cookie)
	assertRedirect(t, w, "/dashboard/company/profile?notice=Perfil+actualizado+exitosamente")

	// Only the request's own session check reads the profile.
	if got := env.upstream.profileCalls.Load() - before; got != 1 {
		t.Errorf("profile fetches during save = %d, want 1", got)
	}
	if c := sessionCookie(w); c != nil && c.MaxAge < 0 {
		t.Error("saving the profile must not clear the session cookie")
	}
}

func TestAuthEventsLoggedOnce(t *testing.T) {
	var buf bytes.Buffer
	env := newTestEnvWithLogger(t, logging.NewLoggerWithWriter(slog.LevelInfo, "text", &buf))

	cookie := env.login(t, "ana@example.com", "secret1")
	env.do("POST", "/logout", nil, cookie)
	env.do("POST", "/register", url.Values{
		"name":             {"Nuevo"},
		"email":            {"nuevo@example.com"},
		"password":         {"secret9"},
		"confirm_password": {"secret9"},
		"role":             {"creator"},
	}, nil)

	out := buf.String()
	for msg, want := range map[string]int{
		`msg="user logged in"`:  2,
		`msg="user logged out"`: 1,
		`msg="user registered"`: 1,
	} {
		if got := strings.Count(out, msg); got != want {
			t.Errorf("%s logged %d times, want %d", msg, got, want)
		}
	}
}
