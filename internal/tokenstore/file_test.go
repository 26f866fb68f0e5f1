package tokenstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "token")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	token, err := store.Read(ctx)
	require.NoError(t, err, "missing file reads as no token")
	assert.Empty(t, token)

	require.NoError(t, store.Write(ctx, "tok123"))

	token, err = store.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	require.NoError(t, store.Write(ctx, "tok456"))
	token, err = store.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok456", token, "write overwrites")
}

func TestFileStore_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx), "delete before any write")
	require.NoError(t, store.Write(ctx, "tok123"))
	require.NoError(t, store.Delete(ctx))
	require.NoError(t, store.Delete(ctx))

	token, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestFileStore_RejectsInsecurePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("tok123\n"), 0644))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = store.Read(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insecure permissions")
}

func TestFileStore_RejectsEmptyToken(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)

	assert.Error(t, store.Write(context.Background(), "  "))
}

func TestFileStore_CancelledContext(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Read(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Write(ctx, "tok"), context.Canceled)
	assert.ErrorIs(t, store.Delete(ctx), context.Canceled)
}

func TestNewFileStore_EmptyPath(t *testing.T) {
	_, err := NewFileStore("")
	assert.Error(t, err)
}
