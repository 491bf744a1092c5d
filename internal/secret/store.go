// Package secret resolves the database password from the process
// environment or the macOS Keychain.
package secret

import "fmt"

// Store looks up sensitive values such as database passwords.
type Store interface {
	// Get retrieves the secret value for the given key.
	// Returns "" and nil error if the key does not exist.
	Get(key string) (string, error)
}

// New returns the Store named by source: "env" (or "") or "keychain".
func New(source string) (Store, error) {
	switch source {
	case "", "env":
		return NewEnvStore(), nil
	case "keychain":
		return NewKeychainStore(), nil
	default:
		return nil, fmt.Errorf("unsupported password source: %s", source)
	}
}
