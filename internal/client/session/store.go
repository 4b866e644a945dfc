package session

import (
	"os"
	"path/filepath"
	"time"

	"assethub/internal/errors"

	"gopkg.in/yaml.v3"
)

// State is what survives between CLI invocations.
type State struct {
	User      User      `yaml:"user"`
	IDToken   string    `yaml:"idToken"`
	Token     string    `yaml:"token"`
	ExpiresAt time.Time `yaml:"expiresAt"`
}

// Store keeps the session in a YAML file readable only by its owner.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns nil without error when nothing is stored.
func (s *Store) Load() (*State, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read session file")
	}

	var state State
	if err := yaml.Unmarshal(raw, &state); err != nil {
		return nil, errors.Wrap(err, "parse session file")
	}

	return &state, nil
}

// Save replaces the stored session atomically.
func (s *Store) Save(state *State) error {
	raw, err := yaml.Marshal(state)
	if err != nil {
		return errors.Wrap(err, "encode session")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrap(err, "create session dir")
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return errors.Wrap(err, "create session file")
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()

		return errors.Wrap(err, "chmod session file")
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()

		return errors.Wrap(err, "write session file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close session file")
	}

	return errors.Wrap(os.Rename(tmp.Name(), s.path), "replace session file")
}

// Clear removes the stored session; a missing file is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "remove session file")
	}

	return nil
}
