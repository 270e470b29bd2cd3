package store

import (
	"context"
	"time"
)

// Credential is a bearer token held on behalf of one browser. The browser
// only ever sees ID.
type Credential struct {
	ID        string
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired reports whether the credential is past its expiry.
func (c *Credential) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}

// Store defines the persistence layer for web credentials.
type Store interface {
	CreateCredential(ctx context.Context, c *Credential) error
	// GetCredential returns nil, nil when no row has id.
	GetCredential(ctx context.Context, id string) (*Credential, error)
	DeleteCredential(ctx context.Context, id string) error
	DeleteExpiredCredentials(ctx context.Context) (int64, error)

	// Lifecycle
	Close() error
	Migrate(ctx context.Context) error
}
