package ui

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/me/manyas/internal/credential"
	"github.com/me/manyas/internal/store"
)

const (
	// CookieName is the name of the cookie holding the credential ID.
	CookieName = "manyas_session"
	// DefaultCredentialTTL is the default credential lifetime.
	DefaultCredentialTTL = 7 * 24 * time.Hour
)

// cookieCredential is the credential.Store of one browser request. The
// token lives in the store; the browser holds only a random ID.
type cookieCredential struct {
	store  store.Store
	w      http.ResponseWriter
	id     string
	ttl    time.Duration
	secure bool
}

var _ credential.Store = (*cookieCredential)(nil)

func (ui *UI) credentialFor(w http.ResponseWriter, r *http.Request) *cookieCredential {
	c := &cookieCredential{store: ui.store, w: w, ttl: ui.ttl, secure: ui.secure}
	if cookie, err := r.Cookie(CookieName); err == nil {
		c.id = cookie.Value
	}
	return c
}

// Load returns "" when the browser has no cookie or the row is missing or
// expired.
func (c *cookieCredential) Load(ctx context.Context) (string, error) {
	if c.id == "" {
		return "", nil
	}
	cred, err := c.store.GetCredential(ctx, c.id)
	if err != nil {
		return "", fmt.Errorf("get credential: %w", err)
	}
	if cred == nil {
		return "", nil
	}
	if cred.IsExpired() {
		_ = c.store.DeleteCredential(ctx, c.id)
		return "", nil
	}
	return cred.Token, nil
}

// Save replaces any previous credential of this browser with token.
func (c *cookieCredential) Save(ctx context.Context, token string) error {
	id, err := generateCredentialID()
	if err != nil {
		return fmt.Errorf("generate credential id: %w", err)
	}

	now := time.Now()
	cred := &store.Credential{
		ID:        id,
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}
	// Limit credential expiry to token expiry if token expires sooner.
	if exp := credential.Expiry(token); !exp.IsZero() && exp.Before(cred.ExpiresAt) {
		cred.ExpiresAt = exp
	}

	if err := c.store.CreateCredential(ctx, cred); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}
	if c.id != "" {
		_ = c.store.DeleteCredential(ctx, c.id)
	}
	c.id = id

	http.SetCookie(c.w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
		Expires:  cred.ExpiresAt,
	})
	return nil
}

// Clear deletes the credential and expires the cookie.
func (c *cookieCredential) Clear(ctx context.Context) error {
	if c.id == "" {
		return nil
	}
	err := c.store.DeleteCredential(ctx, c.id)
	c.id = ""
	http.SetCookie(c.w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		MaxAge:   -1,
	})
	if err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	return nil
}

// generateCredentialID generates a cryptographically secure random ID.
func generateCredentialID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "cred_" + hex.EncodeToString(b), nil
}
