package tokenstore

import "context"

// TokenStore reads, writes and deletes the session token in persistent storage.
//
// At most one token exists per store. Login and registration write it, logout
// deletes it, and every authenticated API call reads it.
type TokenStore interface {
	// Read returns the stored token. An absent token yields "" and a nil error;
	// errors are reserved for backend faults.
	Read(ctx context.Context) (string, error)

	// Write persists the token, overwriting any prior value. Returns error if
	// the backend is read-only (e.g., environment variables) or the write fails.
	Write(ctx context.Context, token string) error

	// Delete removes the token. Deleting an absent token is not an error.
	Delete(ctx context.Context) error
}
