package tokensource

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"

	"github.com/gigshift/gigshift/internal/tokenstore"
)

// ErrNoToken is returned when the store holds no session token.
var ErrNoToken = errors.New("no session token stored")

// Source provides bearer tokens read from a token store.
type Source struct {
	store tokenstore.TokenStore
}

// Compile-time check to ensure Source implements oauth2.TokenSource
var _ oauth2.TokenSource = (*Source)(nil)

// New creates a Source backed by the given store.
func New(store tokenstore.TokenStore) (*Source, error) {
	if store == nil {
		return nil, fmt.Errorf("missing token store")
	}
	return &Source{store: store}, nil
}

// Token implements oauth2.TokenSource.
func (s *Source) Token() (*oauth2.Token, error) {
	// oauth2.TokenSource.Token() has no context parameter (legacy interface limitation)
	return s.TokenContext(context.Background())
}

// TokenContext reads the current token from the store. Returns ErrNoToken if
// none is stored.
func (s *Source) TokenContext(ctx context.Context) (*oauth2.Token, error) {
	raw, err := s.store.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading token: %w", err)
	}
	if raw == "" {
		return nil, ErrNoToken
	}

	return &oauth2.Token{
		AccessToken: raw,
		TokenType:   "Bearer",
	}, nil
}

// Store returns the underlying token store, used by login and logout to
// persist or destroy the session.
func (s *Source) Store() tokenstore.TokenStore {
	return s.store
}
