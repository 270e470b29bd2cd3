package credential

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", FileName)
	fs := NewFileStore(path)

	tok, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok, "missing file means no credential")

	require.NoError(t, fs.Save(ctx, "tok123"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	tok, err = fs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok123", tok)

	require.NoError(t, fs.Clear(ctx))
	tok, err = fs.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)

	// Clearing twice is fine.
	require.NoError(t, fs.Clear(ctx))
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path).Load(context.Background())
	assert.Error(t, err)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore("initial")

	tok, _ := m.Load(ctx)
	assert.Equal(t, "initial", tok)

	require.NoError(t, m.Save(ctx, "next"))
	tok, _ = m.Load(ctx)
	assert.Equal(t, "next", tok)

	require.NoError(t, m.Clear(ctx))
	tok, _ = m.Load(ctx)
	assert.Empty(t, tok)
}

func TestExpiry(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("any-key"))
	require.NoError(t, err)

	assert.True(t, Expiry(signed).Equal(exp))
}

func TestExpiry_NoClaim(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": 1}).SignedString([]byte("k"))
	require.NoError(t, err)

	assert.True(t, Expiry(signed).IsZero())
}

func TestExpiry_OpaqueToken(t *testing.T) {
	assert.True(t, Expiry("tok123").IsZero())
	assert.True(t, Expiry("").IsZero())
}
