package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DamirBesirovic/tradeflow/internal/model"
	"github.com/DamirBesirovic/tradeflow/internal/testutil"
)

type fakeProfiles struct {
	user  model.User
	err   error
	calls int
}

func (f *fakeProfiles) Profile(ctx context.Context) (model.User, error) {
	f.calls++
	return f.user, f.err
}

func newTestManager(creds *testutil.MemCredentials, profiles *fakeProfiles) *Manager {
	return NewManager(creds, profiles, testutil.MakeNoopLogger())
}

func TestManager_InitialState(t *testing.T) {
	m := newTestManager(&testutil.MemCredentials{}, &fakeProfiles{})

	state := m.State()
	assert.Nil(t, state.User)
	assert.Empty(t, state.Token)
	assert.True(t, state.IsLoading)
	assert.False(t, state.IsAuthenticated)
}

func TestManager_SetUser_DerivesAuthenticated(t *testing.T) {
	m := newTestManager(&testutil.MemCredentials{}, &fakeProfiles{})

	m.SetUser(&model.User{ID: "u1"})
	assert.True(t, m.State().IsAuthenticated)

	m.SetUser(nil)
	assert.False(t, m.State().IsAuthenticated)

	m.SetUser(&model.User{ID: "u2"})
	assert.True(t, m.State().IsAuthenticated)
}

func TestManager_SetToken_DoesNotAuthenticate(t *testing.T) {
	m := newTestManager(&testutil.MemCredentials{}, &fakeProfiles{})

	m.SetToken("tok")

	state := m.State()
	assert.Equal(t, "tok", state.Token)
	assert.False(t, state.IsAuthenticated, "a token without a hydrated profile must not authenticate")
}

func TestManager_LoginSuccess(t *testing.T) {
	m := newTestManager(&testutil.MemCredentials{}, &fakeProfiles{})

	m.LoginSuccess(model.User{ID: "u1", Roles: []model.Role{model.RoleSeller}}, "tok")

	state := m.State()
	require.NotNil(t, state.User)
	assert.Equal(t, "u1", state.User.ID)
	assert.Equal(t, "tok", state.Token)
	assert.True(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)
}

func TestManager_Logout_ClearsStoreAndState(t *testing.T) {
	creds := &testutil.MemCredentials{}
	require.NoError(t, creds.SetToken("tok"))
	require.NoError(t, creds.SetUserID("u1"))
	require.NoError(t, creds.SetRoles([]model.Role{model.RoleUser}))

	m := newTestManager(creds, &fakeProfiles{})
	m.LoginSuccess(model.User{ID: "u1"}, "tok")

	m.Logout()

	state := m.State()
	assert.Nil(t, state.User)
	assert.Empty(t, state.Token)
	assert.False(t, state.IsAuthenticated)
	assert.True(t, creds.Empty())
}

func TestManager_Logout_Idempotent(t *testing.T) {
	creds := &testutil.MemCredentials{}
	m := newTestManager(creds, &fakeProfiles{})
	m.LoginSuccess(model.User{ID: "u1"}, "tok")

	m.Logout()
	first := m.State()
	m.Logout()
	second := m.State()

	assert.Equal(t, first, second)
	assert.True(t, creds.Empty())
}

func TestManager_HasRole_FromUser(t *testing.T) {
	m := newTestManager(&testutil.MemCredentials{}, &fakeProfiles{})
	m.SetUser(&model.User{Roles: []model.Role{model.RoleSeller}})

	assert.True(t, m.HasRole(model.RoleSeller))
	assert.False(t, m.HasRole(model.RoleAdmin))
}

func TestManager_HasRole_FallsBackToStore(t *testing.T) {
	creds := &testutil.MemCredentials{}
	require.NoError(t, creds.SetRoles([]model.Role{model.RoleAdmin}))

	m := newTestManager(creds, &fakeProfiles{})

	assert.True(t, m.HasRole(model.RoleAdmin))
	assert.False(t, m.HasRole(model.RoleSeller))
}

func TestManager_HasRole_UserOverridesStore(t *testing.T) {
	creds := &testutil.MemCredentials{}
	require.NoError(t, creds.SetRoles([]model.Role{model.RoleAdmin}))

	m := newTestManager(creds, &fakeProfiles{})
	m.SetUser(&model.User{Roles: []model.Role{model.RoleUser}})

	// Once a profile is hydrated the stored role list no longer answers.
	assert.False(t, m.HasRole(model.RoleAdmin))
	assert.True(t, m.HasRole(model.RoleUser))
}

func TestManager_RefreshUser_AppliesProfile(t *testing.T) {
	profiles := &fakeProfiles{user: model.User{ID: "u1", Ime: "Pera"}}
	m := newTestManager(&testutil.MemCredentials{}, profiles)

	m.RefreshUser(context.Background())

	state := m.State()
	require.NotNil(t, state.User)
	assert.Equal(t, "Pera", state.User.Ime)
	assert.True(t, state.IsAuthenticated)
}

func TestManager_RefreshUser_SwallowsFailure(t *testing.T) {
	profiles := &fakeProfiles{err: errors.New("backend down")}
	m := newTestManager(&testutil.MemCredentials{}, profiles)
	m.SetUser(&model.User{ID: "u1"})

	m.RefreshUser(context.Background())

	state := m.State()
	require.NotNil(t, state.User)
	assert.Equal(t, "u1", state.User.ID, "state must stay unchanged on refresh failure")
	assert.True(t, state.IsAuthenticated)
}
