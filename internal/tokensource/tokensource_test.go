package tokensource

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigshift/gigshift/internal/tokenstore"
)

type failingStore struct{ tokenstore.TokenStore }

func (failingStore) Read(context.Context) (string, error) {
	return "", errors.New("keyring locked")
}

func TestSource_ReadsStoreOnEveryCall(t *testing.T) {
	ctx := context.Background()
	store, err := tokenstore.NewFileStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)

	src, err := New(store)
	require.NoError(t, err)

	_, err = src.TokenContext(ctx)
	assert.ErrorIs(t, err, ErrNoToken)

	require.NoError(t, store.Write(ctx, "first"))
	tok, err := src.TokenContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first", tok.AccessToken)

	require.NoError(t, store.Write(ctx, "second"))
	tok, err = src.Token()
	require.NoError(t, err)
	assert.Equal(t, "second", tok.AccessToken, "no caching across calls")

	req, err := http.NewRequest(http.MethodGet, "http://example.test", nil)
	require.NoError(t, err)
	tok.SetAuthHeader(req)
	assert.Equal(t, "Bearer second", req.Header.Get("Authorization"))

	require.NoError(t, store.Delete(ctx))
	_, err = src.TokenContext(ctx)
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestSource_PropagatesStoreErrors(t *testing.T) {
	src, err := New(failingStore{})
	require.NoError(t, err)

	_, err = src.TokenContext(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoToken)
	assert.Contains(t, err.Error(), "keyring locked")
}

func TestNew_NilStore(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}
