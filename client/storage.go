// Package client is the Go API client for the storefront. It carries the
// session semantics the browser app relies on: persisted credentials,
// rehydrate-then-revalidate on startup, and a global fall-back to the
// logged-out state whenever any call is rejected as unauthorized.
package client

import (
	"encoding/json"
	"errors"
	"os"
	"sync"

	"github.com/pushkarbw/sample-e-com-sub003/models"
)

// StoredCredentials is what survives between client restarts: the token
// plus the user cached alongside it.
type StoredCredentials struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// CredentialStore persists credentials across client lifetimes. Load
// returns (nil, nil) when nothing is stored.
type CredentialStore interface {
	Load() (*StoredCredentials, error)
	Save(creds *StoredCredentials) error
	Clear() error
}

// MemoryCredentialStore keeps credentials in process memory only.
type MemoryCredentialStore struct {
	mu    sync.Mutex
	creds *StoredCredentials
}

// NewMemoryCredentialStore returns an empty in-memory store.
func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{}
}

func (s *MemoryCredentialStore) Load() (*StoredCredentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds == nil {
		return nil, nil
	}
	copied := *s.creds
	return &copied, nil
}

func (s *MemoryCredentialStore) Save(creds *StoredCredentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *creds
	s.creds = &copied
	return nil
}

func (s *MemoryCredentialStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = nil
	return nil
}

// FileCredentialStore persists credentials as JSON on disk, standing in
// for the browser's local storage.
type FileCredentialStore struct {
	mu   sync.Mutex
	path string
}

// NewFileCredentialStore builds a store writing to path.
func NewFileCredentialStore(path string) *FileCredentialStore {
	return &FileCredentialStore{path: path}
}

func (s *FileCredentialStore) Load() (*StoredCredentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var creds StoredCredentials
	if err := json.Unmarshal(data, &creds); err != nil {
		// A corrupt file is treated the same as no stored session.
		return nil, nil
	}
	return &creds, nil
}

func (s *FileCredentialStore) Save(creds *StoredCredentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileCredentialStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
