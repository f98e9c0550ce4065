// Package session owns the persisted session triple (token, user profile,
// expiry) and the in-memory authenticated state derived from it.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adminsuite/tenantconsole/internal/client/models"
)

// Store persists the session between process runs. An expired record is
// treated as absent: Token clears everything and returns "" once the stored
// expiry has passed, regardless of what the file still holds.
type Store interface {
	Token() string
	User() (*models.Profile, bool)
	Expiry() (time.Time, bool)
	SetToken(token string, expiresAt time.Time) error
	SetUser(p *models.Profile) error
	ClearAuth()
}

// record is the on-disk shape: the process analogue of the three browser
// storage keys.
type record struct {
	Token     string          `json:"token"`
	User      *models.Profile `json:"user,omitempty"`
	ExpiresAt string          `json:"expires_at,omitempty"`
}

// FileStore is a Store over a single JSON file. Writes are synchronous
// (write-through); one instance is constructed at process start and passed
// by reference to consumers.
type FileStore struct {
	path string
	mu   sync.Mutex
	rec  record

	// now is a test seam for expiry checks.
	now func() time.Time
}

// NewFileStore loads any previously persisted session from path. A missing
// or unreadable file yields an empty store, not an error.
func NewFileStore(path string) *FileStore {
	s := &FileStore{path: path, now: time.Now}
	if data, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(data, &s.rec)
	}
	return s
}

// Token returns the stored token if present and unexpired; otherwise it
// clears all session keys and returns "".
func (s *FileStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rec.Token == "" {
		return ""
	}
	expiresAt, err := time.Parse(time.RFC3339, s.rec.ExpiresAt)
	if err != nil || !expiresAt.After(s.now()) {
		s.clearLocked()
		return ""
	}
	return s.rec.Token
}

func (s *FileStore) User() (*models.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rec.User == nil {
		return nil, false
	}
	return s.rec.User, true
}

func (s *FileStore) Expiry() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiresAt, err := time.Parse(time.RFC3339, s.rec.ExpiresAt)
	if err != nil {
		return time.Time{}, false
	}
	return expiresAt, true
}

func (s *FileStore) SetToken(token string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec.Token = token
	s.rec.ExpiresAt = expiresAt.UTC().Format(time.RFC3339)
	return s.persistLocked()
}

func (s *FileStore) SetUser(p *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec.User = p
	return s.persistLocked()
}

// ClearAuth removes all three keys. Removal is best-effort: a missing file
// is already the desired state.
func (s *FileStore) ClearAuth() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

// UserID satisfies the gateway's CredentialSource: the tenant header value.
func (s *FileStore) UserID() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rec.User == nil {
		return 0, false
	}
	return s.rec.User.ID, true
}

func (s *FileStore) clearLocked() {
	s.rec = record{}
	_ = os.Remove(s.path)
}

func (s *FileStore) persistLocked() error {
	data, err := json.MarshalIndent(s.rec, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o600)
}
