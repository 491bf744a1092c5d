package secret

import "os"

// EnvStore reads secrets from environment variables; the key is the
// variable name.
type EnvStore struct {
	lookup func(string) (string, bool)
}

// NewEnvStore creates an EnvStore over the process environment.
func NewEnvStore() *EnvStore {
	return &EnvStore{lookup: os.LookupEnv}
}

func (s *EnvStore) Get(key string) (string, error) {
	v, _ := s.lookup(key)
	return v, nil
}
