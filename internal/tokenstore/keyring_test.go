package tokenstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestKeyringStore_RoundTrip(t *testing.T) {
	keyring.MockInit()
	ctx := context.Background()

	store, err := NewKeyringStore("gigshift-test", "alice")
	require.NoError(t, err)

	token, err := store.Read(ctx)
	require.NoError(t, err, "absent entry is not an error")
	assert.Empty(t, token)

	require.NoError(t, store.Write(ctx, "tok123"))
	token, err = store.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok123", token)

	require.NoError(t, store.Delete(ctx))
	token, err = store.Read(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	assert.NoError(t, store.Delete(ctx), "deleting an absent entry")
}

func TestNewKeyringStore_Validation(t *testing.T) {
	_, err := NewKeyringStore("", "alice")
	assert.Error(t, err)

	_, err = NewKeyringStore("gigshift", "")
	assert.Error(t, err)
}
