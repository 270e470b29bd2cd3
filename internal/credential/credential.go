// Package credential persists the bearer token that identifies a session
// across application loads. The token is opaque to this package; the
// session itself is always rederived from it by a profile fetch.
package credential

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Store holds at most one credential. Load returns "" and a nil error when
// nothing is stored.
type Store interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// FileName is the name of the CLI credentials file inside the config dir.
const FileName = "credentials.json"

type fileContents struct {
	Token string `json:"token"`
}

// FileStore keeps the credential in a JSON file readable only by the owner.
type FileStore struct {
	Path string
}

// DefaultPath returns ~/.manyas/credentials.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	return filepath.Join(home, ".manyas", FileName), nil
}

// NewFileStore returns a FileStore at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (f *FileStore) Load(_ context.Context) (string, error) {
	data, err := os.ReadFile(f.Path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read credentials: %w", err)
	}
	var c fileContents
	if err := json.Unmarshal(data, &c); err != nil {
		return "", fmt.Errorf("parse credentials %s: %w", f.Path, err)
	}
	return c.Token, nil
}

func (f *FileStore) Save(_ context.Context, token string) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := json.MarshalIndent(fileContents{Token: token}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}
	if err := os.WriteFile(f.Path, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

func (f *FileStore) Clear(_ context.Context) error {
	if err := os.Remove(f.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}

// MemoryStore keeps the credential in process memory.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStore returns a MemoryStore preloaded with token ("" for none).
func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

func (m *MemoryStore) Load(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryStore) Save(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

// Expiry returns the exp claim of a JWT bearer token. The signature is not
// verified; the API remains the authority on validity. Opaque tokens and
// tokens without exp yield the zero time.
func Expiry(token string) time.Time {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
