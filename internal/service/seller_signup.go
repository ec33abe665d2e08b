package service

import (
	"context"
	"fmt"

	"github.com/DamirBesirovic/tradeflow/internal/model"
)

// SellerSignupResult records how far a two-phase seller registration got.
// The two phases are not a transaction: phase one can leave a plain account
// behind when phase two fails, and the result says so explicitly so the
// caller can tell the user to log in and finish the upgrade manually.
type SellerSignupResult struct {
	AccountCreated bool
	SellerCreated  bool
}

// SignUpSeller runs the full seller registration workflow: create the base
// account, log in with the fresh credentials to obtain a token, then create
// the seller profile. The returned result is valid even when err is non-nil.
func (a *Auth) SignUpSeller(ctx context.Context, account model.RegisterRequest, seller model.RegisterSellerRequest) (SellerSignupResult, error) {
	result := SellerSignupResult{}

	if err := a.Register(ctx, account); err != nil {
		return result, fmt.Errorf("account creation failed: %w", err)
	}
	result.AccountCreated = true

	if _, err := a.Login(ctx, model.LoginRequest{Username: account.Username, Password: account.Password}); err != nil {
		return result, fmt.Errorf("account created but login failed, log in manually to finish seller registration: %w", err)
	}

	if err := a.RegisterSeller(ctx, seller); err != nil {
		return result, fmt.Errorf("account created but seller profile was not: %w", err)
	}
	result.SellerCreated = true

	return result, nil
}
