package session

import (
	"context"
	"sync"

	"github.com/DamirBesirovic/tradeflow/internal/logger"
	"github.com/DamirBesirovic/tradeflow/internal/model"
)

// State is a snapshot of the process-wide authentication state.
//
// IsAuthenticated derives from User alone: a stored token without a hydrated
// profile never counts as authenticated. SetToken is informational and does
// not touch the flag.
type State struct {
	User            *model.User
	Token           string
	IsLoading       bool
	IsAuthenticated bool
}

// ProfileFetcher loads the full profile of the currently authenticated user
// from the backend.
type ProfileFetcher interface {
	Profile(ctx context.Context) (model.User, error)
}

// Manager is the single source of truth for "who is logged in and with what
// permissions". State mutates only through the five named transitions, all
// of which are safe for concurrent use.
type Manager struct {
	mu    sync.Mutex
	state State

	creds    model.CredentialStore
	profiles ProfileFetcher
	logger   *logger.Logger

	bootstrapOnce sync.Once
}

// NewManager creates a Manager in the initial state: nobody logged in,
// IsLoading set until Bootstrap completes.
func NewManager(creds model.CredentialStore, profiles ProfileFetcher, logger *logger.Logger) *Manager {
	return &Manager{
		state:    State{IsLoading: true},
		creds:    creds,
		profiles: profiles,
		logger:   logger,
	}
}

// State returns a snapshot of the current state. Callers must not mutate the
// User it points at.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// SetLoading sets the bootstrap loading flag and nothing else.
func (m *Manager) SetLoading(loading bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.IsLoading = loading
}

// SetUser replaces the hydrated profile and rederives IsAuthenticated.
func (m *Manager) SetUser(user *model.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.User = user
	m.state.IsAuthenticated = user != nil
}

// SetToken records the bearer token. The token alone does not authenticate
// the session; only a hydrated profile does.
func (m *Manager) SetToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Token = token
}

// LoginSuccess applies the result of a completed credential exchange as one
// atomic update.
func (m *Manager) LoginSuccess(user model.User, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = State{
		User:            &user,
		Token:           token,
		IsAuthenticated: true,
		IsLoading:       false,
	}
}

// Logout clears the persisted credentials and resets the state. Safe to call
// repeatedly.
func (m *Manager) Logout() {
	if err := m.creds.Clear(); err != nil {
		m.logger.Error("failed to clear credentials on logout", "error", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = State{}
}

// HasRole reports whether the current user carries the given role. Before
// profile hydration completes the stored role list answers instead, so
// role-gated UI can render during the bootstrap window. That fallback is a
// rendering compromise, not an authorization channel: the backend still
// rejects unauthorized calls.
func (m *Manager) HasRole(role model.Role) bool {
	m.mu.Lock()
	user := m.state.User
	m.mu.Unlock()

	if user != nil {
		return user.HasRole(role)
	}

	for _, r := range m.creds.Roles() {
		if r == role {
			return true
		}
	}
	return false
}

// RefreshUser re-fetches the profile and applies SetUser. Failures are
// logged and swallowed, leaving the state untouched.
func (m *Manager) RefreshUser(ctx context.Context) {
	user, err := m.profiles.Profile(ctx)
	if err != nil {
		m.logger.Error("failed to refresh user profile", "error", err)
		return
	}
	m.SetUser(&user)
}
