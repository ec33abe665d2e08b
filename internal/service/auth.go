package service

import (
	"context"
	"fmt"

	"github.com/DamirBesirovic/tradeflow/internal/gateway"
	"github.com/DamirBesirovic/tradeflow/internal/logger"
	"github.com/DamirBesirovic/tradeflow/internal/model"
	"github.com/DamirBesirovic/tradeflow/internal/token"
)

const (
	loginPath          = "/api/Auth/Login"
	registerPath       = "/api/Auth/Register"
	registerSellerPath = "/api/Auth/RegisterSeller"

	userProfilePath         = "/api/User/profile"
	updateProfilePath       = "/api/User/update-profile"
	updateSellerProfilePath = "/api/User/update-seller-profile"
	allUsersPath            = "/api/User/get-all-users"
	deleteAccountPath       = "/api/User/delete-account"
	changePasswordPath      = "/api/User/change-password"
)

// Auth handles credential exchange and account operations against the
// backend.
type Auth struct {
	gw     *gateway.Gateway
	creds  model.CredentialStore
	logger *logger.Logger
}

// NewAuth creates the auth service.
func NewAuth(gw *gateway.Gateway, creds model.CredentialStore, logger *logger.Logger) *Auth {
	return &Auth{
		gw:     gw,
		creds:  creds,
		logger: logger,
	}
}

// Login exchanges credentials for a bearer token and persists the token,
// the user id and the role list read out of the token payload. A token that
// cannot be decoded is fatal: the store is cleared and the error propagates
// so the caller stays on the login form.
func (a *Auth) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	a.logger.Debug("Auth service: logging in", "username", req.Username)

	var resp model.LoginResponse
	if err := a.gw.Post(ctx, loginPath, req, &resp); err != nil {
		return model.LoginResponse{}, fmt.Errorf("login request failed: %w", err)
	}

	if err := a.creds.SetToken(resp.JwtToken); err != nil {
		return model.LoginResponse{}, fmt.Errorf("failed to store token: %w", err)
	}

	claims, err := token.Decode(resp.JwtToken)
	if err != nil {
		a.logger.Error("Auth service: failed to decode token",
			"username", req.Username,
			"error", err.Error())
		if clearErr := a.creds.Clear(); clearErr != nil {
			a.logger.Error("Auth service: failed to clear credentials", "error", clearErr.Error())
		}
		return model.LoginResponse{}, err
	}

	if claims.UserID != "" {
		if err := a.creds.SetUserID(claims.UserID); err != nil {
			return model.LoginResponse{}, fmt.Errorf("failed to store user id: %w", err)
		}
	}
	if len(claims.Roles) > 0 {
		if err := a.creds.SetRoles(claims.Roles); err != nil {
			return model.LoginResponse{}, fmt.Errorf("failed to store roles: %w", err)
		}
	}

	a.logger.Info("Auth service: login succeeded",
		"username", req.Username,
		"user_id", claims.UserID)

	return resp, nil
}

// Register creates a base user account.
func (a *Auth) Register(ctx context.Context, req model.RegisterRequest) error {
	if err := a.gw.Post(ctx, registerPath, req, nil); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	return nil
}

// RegisterSeller attaches a seller profile to the authenticated account.
func (a *Auth) RegisterSeller(ctx context.Context, req model.RegisterSellerRequest) error {
	if err := a.gw.Post(ctx, registerSellerPath, req, nil); err != nil {
		return fmt.Errorf("seller registration failed: %w", err)
	}
	return nil
}

// Profile fetches the full profile of the authenticated user. Implements
// session.ProfileFetcher.
func (a *Auth) Profile(ctx context.Context) (model.User, error) {
	var user model.User
	if err := a.gw.Get(ctx, userProfilePath, nil, &user); err != nil {
		return model.User{}, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return user, nil
}

// UpdateProfile updates the base profile fields.
func (a *Auth) UpdateProfile(ctx context.Context, user model.User) error {
	if err := a.gw.Put(ctx, updateProfilePath, user, nil); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// UpdateSellerProfile updates the seller-specific profile fields.
func (a *Auth) UpdateSellerProfile(ctx context.Context, req model.RegisterSellerRequest) error {
	if err := a.gw.Put(ctx, updateSellerProfilePath, req, nil); err != nil {
		return fmt.Errorf("failed to update seller profile: %w", err)
	}
	return nil
}

// ChangePassword rotates the account password.
func (a *Auth) ChangePassword(ctx context.Context, req model.ChangePasswordRequest) error {
	if err := a.gw.Post(ctx, changePasswordPath, req, nil); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}
	return nil
}

// DeleteAccount removes the account and clears stored credentials so the
// deleted account does not stay logged in locally.
func (a *Auth) DeleteAccount(ctx context.Context) error {
	if err := a.gw.Delete(ctx, deleteAccountPath, nil); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if err := a.creds.Clear(); err != nil {
		a.logger.Error("Auth service: failed to clear credentials after account deletion", "error", err.Error())
	}
	return nil
}

// AllUsers lists every account. Admin only; the backend enforces it.
func (a *Auth) AllUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := a.gw.Get(ctx, allUsersPath, nil, &users); err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}
