// Package tokenstore provides persistent storage for the gigshift session token.
//
// Supports three storage backends with different security and deployment tradeoffs:
//   - Keyring: OS-native credential storage (macOS Keychain, Windows Credential Manager,
//     Linux Secret Service). Encrypted at rest and the default.
//   - File: Local filesystem storage with atomic writes and 0600 permissions
//   - Env: Read-only environment variable access (requires external secret management)
//
// Only keyring and file storage can hold a token issued by login or registration.
package tokenstore
