package client

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rajfnu/itt-ai/internal/types"
)

// Credentials is the signed-in state persisted between runs. Absence of the
// file means signed out.
type Credentials struct {
	User  *types.User `json:"user"`
	Token string      `json:"token"`
}

// CredentialsStore persists a single user's session on disk.
type CredentialsStore struct {
	path string
}

func NewCredentialsStore(path string) *CredentialsStore {
	return &CredentialsStore{path: path}
}

func (s *CredentialsStore) Read() (*Credentials, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var c Credentials
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	if c.Token == "" {
		return nil, nil
	}
	return &c, nil
}

func (s *CredentialsStore) Write(c *Credentials) error {
	if c == nil || c.Token == "" {
		return errors.New("invalid credentials")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	// Restrictive permissions for the session file
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *CredentialsStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
