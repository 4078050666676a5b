package credential

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Get returns a copy of the current record.
func (s *Store) Get() Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec := s.record
	if rec.GitHubUser != nil {
		u := *rec.GitHubUser
		rec.GitHubUser = &u
	}
	return rec
}

// Token returns the stored token or ErrNotLoggedIn.
func (s *Store) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.record.GitHubToken == "" {
		return "", ErrNotLoggedIn
	}
	return s.record.GitHubToken, nil
}

// Save replaces the credential and persists it.
func (s *Store) Save(ctx context.Context, token string, user *User) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := Record{
		GitHubToken: token,
		TokenSetAt:  time.Now().UTC(),
		GitHubUser:  user,
	}
	if err := writeFile(s.path, rec); err != nil {
		s.l.Errorf(ctx, "%s: %v", LogPrefixSave, err)
		return err
	}
	s.record = rec
	return nil
}

// Clear forgets the credential and removes it from disk.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeFile(s.path, Record{}); err != nil {
		s.l.Errorf(ctx, "%s: %v", LogPrefixClear, err)
		return err
	}
	s.record = Record{}
	return nil
}

// Seed stores token only when the store is empty. It reports whether it did.
func (s *Store) Seed(ctx context.Context, token string) (bool, error) {
	if strings.TrimSpace(token) == "" {
		return false, nil
	}
	if s.Get().LoggedIn() {
		return false, nil
	}
	if err := s.Save(ctx, token, nil); err != nil {
		return false, err
	}
	return true, nil
}

func readFile(path string) (Record, error) {
	var rec Record
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return rec, nil
	}
	if err != nil {
		return rec, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return rec, nil
}

// writeFile replaces path atomically through a temp file in the same directory.
func writeFile(path string, rec Record) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal credential: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("create credential dir: %w", err)
	}

	f, err := os.CreateTemp(dir, ".credential-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Chmod(fileMode); err != nil {
		f.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename credential file: %w", err)
	}
	return nil
}
