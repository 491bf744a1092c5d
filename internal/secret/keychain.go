package secret

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const keychainService = "students-api"

// KeychainStore implements Store using the macOS Keychain
// via the `security` CLI tool.
type KeychainStore struct {
	run func(name string, args ...string) ([]byte, error)
}

// NewKeychainStore creates a new KeychainStore.
func NewKeychainStore() *KeychainStore {
	return &KeychainStore{run: func(name string, args ...string) ([]byte, error) {
		return exec.Command(name, args...).Output()
	}}
}

// Get retrieves a secret from the macOS Keychain.
func (k *KeychainStore) Get(key string) (string, error) {
	out, err := k.run("security", "find-generic-password",
		"-a", key,
		"-s", keychainService,
		"-w", // output only the password
	)
	if err != nil {
		// "security" returns exit code 44 when item not found
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 44 {
			return "", nil
		}
		return "", fmt.Errorf("keychain get %s: %w", key, err)
	}
	return strings.TrimSpace(string(out)), nil
}
