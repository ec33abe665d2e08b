package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/DamirBesirovic/tradeflow/internal/model"
)

// Entry TTL matches the 7-day cookie expiry of the web client.
const TTL = 7 * 24 * time.Hour

// Entry keys, kept identical to the web client's cookie names so the file is
// self-describing to anyone who has seen the browser storage.
const (
	keyToken    = "authToken"
	keyUserID   = "userId"
	keyUserRole = "userRole"
)

type entry struct {
	Value     string    `json:"value"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// FileStore is a file-backed model.CredentialStore. Each entry carries its
// own expiry stamped at write time; the three entries are written
// independently, not as one transaction.
type FileStore struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

var _ model.CredentialStore = (*FileStore)(nil)

// NewFileStore creates a credential store persisted at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

// DefaultPath returns the credential file location under the user config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "tradeflow", "credentials.json"), nil
}

// Token returns the stored bearer token, if present and unexpired.
func (s *FileStore) Token() (string, bool) {
	return s.get(keyToken)
}

// SetToken stores the bearer token with a fresh TTL.
func (s *FileStore) SetToken(token string) error {
	return s.set(keyToken, token)
}

// UserID returns the stored user id, if present and unexpired.
func (s *FileStore) UserID() (string, bool) {
	return s.get(keyUserID)
}

// SetUserID stores the user id with a fresh TTL.
func (s *FileStore) SetUserID(id string) error {
	return s.set(keyUserID, id)
}

// Roles returns the stored role list. An absent or expired entry reads as
// an empty list.
func (s *FileStore) Roles() []model.Role {
	raw, ok := s.get(keyUserRole)
	if !ok || raw == "" {
		return nil
	}

	var roles []model.Role
	for _, name := range strings.Split(raw, ",") {
		if name != "" {
			roles = append(roles, model.Role(name))
		}
	}
	return roles
}

// SetRoles stores the role list as a comma-joined string with a fresh TTL.
func (s *FileStore) SetRoles(roles []model.Role) error {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, string(r))
	}
	return s.set(keyUserRole, strings.Join(names, ","))
}

// Clear removes all entries. Clearing an already empty store is a no-op.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove credential file: %w", err)
	}
	return nil
}

func (s *FileStore) get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return "", false
	}

	e, ok := entries[key]
	if !ok || !s.now().Before(e.ExpiresAt) {
		return "", false
	}
	return e.Value, true
}

func (s *FileStore) set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}

	entries[key] = entry{Value: value, ExpiresAt: s.now().Add(TTL)}
	return s.save(entries)
}

func (s *FileStore) load() (map[string]entry, error) {
	blob, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read credential file: %w", err)
	}

	entries := map[string]entry{}
	if err := json.Unmarshal(blob, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode credential file: %w", err)
	}
	return entries, nil
}

// save rewrites the whole file through a temp file and rename so a crash
// mid-write cannot leave a torn file behind.
func (s *FileStore) save(entries map[string]entry) error {
	blob, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode credential file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create credential dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o600); err != nil {
		return fmt.Errorf("failed to write credential file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace credential file: %w", err)
	}
	return nil
}
