package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DamirBesirovic/tradeflow/internal/gateway"
	"github.com/DamirBesirovic/tradeflow/internal/model"
	"github.com/DamirBesirovic/tradeflow/internal/testutil"
)

type silentNotifier struct{}

func (silentNotifier) Error(string)   {}
func (silentNotifier) Success(string) {}

func newTestAuth(t *testing.T, handler http.Handler) (*Auth, *testutil.MemCredentials) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	creds := &testutil.MemCredentials{}
	gw := gateway.New(srv.URL, 5*time.Second, creds, silentNotifier{}, testutil.MakeNoopLogger())
	return NewAuth(gw, creds, testutil.MakeNoopLogger()), creds
}

func sellerToken(t *testing.T, userID string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"nameid": userID,
		"role":   "Seller",
	}).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return signed
}

func TestAuth_Login_StoresCredentials(t *testing.T) {
	tok := sellerToken(t, "u1")
	auth, creds := newTestAuth(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/Auth/Login", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var req model.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@b.com", req.Username)
		assert.Equal(t, "secret", req.Password)

		json.NewEncoder(w).Encode(model.LoginResponse{JwtToken: tok})
	}))

	resp, err := auth.Login(context.Background(), model.LoginRequest{Username: "a@b.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, tok, resp.JwtToken)

	stored, ok := creds.Token()
	require.True(t, ok)
	assert.Equal(t, tok, stored)

	id, ok := creds.UserID()
	require.True(t, ok)
	assert.Equal(t, "u1", id)

	assert.Equal(t, []model.Role{model.RoleSeller}, creds.Roles())
}

func TestAuth_Login_BadCredentials(t *testing.T) {
	auth, creds := newTestAuth(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))

	_, err := auth.Login(context.Background(), model.LoginRequest{Username: "a@b.com", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, creds.Empty())
}

func TestAuth_Login_UndecodableTokenClearsStore(t *testing.T) {
	auth, creds := newTestAuth(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(model.LoginResponse{JwtToken: "garbage"})
	}))

	_, err := auth.Login(context.Background(), model.LoginRequest{Username: "a@b.com", Password: "secret"})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
	assert.True(t, creds.Empty(), "a token that cannot be decoded must not stay stored")
}

func TestAuth_Profile(t *testing.T) {
	auth, creds := newTestAuth(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/User/profile", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(model.User{ID: "u1", Ime: "Pera", Roles: []model.Role{model.RoleUser}})
	}))
	require.NoError(t, creds.SetToken("tok"))

	user, err := auth.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Pera", user.Ime)
}

func TestAuth_DeleteAccount_ClearsCredentials(t *testing.T) {
	auth, creds := newTestAuth(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/User/delete-account", r.URL.Path)
		require.Equal(t, http.MethodDelete, r.Method)
	}))
	require.NoError(t, creds.SetToken("tok"))

	require.NoError(t, auth.DeleteAccount(context.Background()))
	assert.True(t, creds.Empty(), "a deleted account must not stay logged in")
}

func TestAuth_SignUpSeller_FullFlow(t *testing.T) {
	tok := sellerToken(t, "u1")
	var calls []string
	auth, _ := newTestAuth(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.URL.Path)
		if r.URL.Path == "/api/Auth/Login" {
			json.NewEncoder(w).Encode(model.LoginResponse{JwtToken: tok})
		}
	}))

	result, err := auth.SignUpSeller(context.Background(),
		model.RegisterRequest{Username: "a@b.com", Password: "secret", Ime: "Pera", Prezime: "Perić"},
		model.RegisterSellerRequest{ImeFirme: "Gradnja doo", Bio: "bio"},
	)
	require.NoError(t, err)
	assert.True(t, result.AccountCreated)
	assert.True(t, result.SellerCreated)
	assert.Equal(t, []string{"/api/Auth/Register", "/api/Auth/Login", "/api/Auth/RegisterSeller"}, calls)
}

func TestAuth_SignUpSeller_RegistrationFails(t *testing.T) {
	auth, _ := newTestAuth(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))

	result, err := auth.SignUpSeller(context.Background(), model.RegisterRequest{}, model.RegisterSellerRequest{})
	require.Error(t, err)
	assert.False(t, result.AccountCreated)
	assert.False(t, result.SellerCreated)
}

func TestAuth_SignUpSeller_SecondPhaseFails(t *testing.T) {
	auth, _ := newTestAuth(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/Auth/Login" {
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))

	result, err := auth.SignUpSeller(context.Background(), model.RegisterRequest{Username: "a@b.com"}, model.RegisterSellerRequest{})
	require.Error(t, err)
	assert.True(t, result.AccountCreated, "phase one's account survives phase two's failure")
	assert.False(t, result.SellerCreated)
}
