package testutil

import (
	"sync"

	"github.com/DamirBesirovic/tradeflow/internal/model"
)

// MemCredentials is an in-memory model.CredentialStore for tests.
type MemCredentials struct {
	mu     sync.Mutex
	token  *string
	userID *string
	roles  []model.Role

	// ClearCalls counts Clear invocations.
	ClearCalls int
	// FailSet makes every setter return this error when non-nil.
	FailSet error
}

var _ model.CredentialStore = (*MemCredentials)(nil)

func (m *MemCredentials) Token() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == nil {
		return "", false
	}
	return *m.token, true
}

func (m *MemCredentials) SetToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSet != nil {
		return m.FailSet
	}
	m.token = &token
	return nil
}

func (m *MemCredentials) UserID() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.userID == nil {
		return "", false
	}
	return *m.userID, true
}

func (m *MemCredentials) SetUserID(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSet != nil {
		return m.FailSet
	}
	m.userID = &id
	return nil
}

func (m *MemCredentials) Roles() []model.Role {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.roles
}

func (m *MemCredentials) SetRoles(roles []model.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSet != nil {
		return m.FailSet
	}
	m.roles = roles
	return nil
}

func (m *MemCredentials) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	m.token = nil
	m.userID = nil
	m.roles = nil
	return nil
}

// Empty reports whether no entry is stored.
func (m *MemCredentials) Empty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token == nil && m.userID == nil && m.roles == nil
}
