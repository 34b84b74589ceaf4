package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	accessTokenFile  = "access_token"
	refreshTokenFile = "refresh_token"
)

// credentialStore persists the two token strings as files under a directory.
// It is the only durable state the client owns.
type credentialStore struct {
	dir string
}

func newCredentialStore(dir string) *credentialStore {
	if !filepath.IsAbs(dir) {
		cwd, _ := os.Getwd()
		dir = filepath.Join(cwd, dir)
	}
	return &credentialStore{dir: dir}
}

func (s *credentialStore) abs(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *credentialStore) put(name, value string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("session: mkdir %s: %w", s.dir, err)
	}
	if err := os.WriteFile(s.abs(name), []byte(value), 0o600); err != nil {
		return fmt.Errorf("session: write %s: %w", name, err)
	}
	return nil
}

// get returns the stored value, or "" when the file is absent.
func (s *credentialStore) get(name string) string {
	data, err := os.ReadFile(s.abs(name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (s *credentialStore) delete(name string) error {
	err := os.Remove(s.abs(name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("session: delete %s: %w", name, err)
	}
	return nil
}

func (s *credentialStore) clear() error {
	if err := s.delete(accessTokenFile); err != nil {
		return err
	}
	return s.delete(refreshTokenFile)
}
