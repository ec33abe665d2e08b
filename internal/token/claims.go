package token

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/DamirBesirovic/tradeflow/internal/model"
)

// Claims holds the identity information the client reads out of a bearer
// token. The token is decoded, never validated: signature checking is the
// backend's job, the client only needs the id and role claims.
type Claims struct {
	UserID string
	Roles  []model.Role
}

// Claim names tried in order. The backend is ASP.NET Identity, which emits
// either the short names or the full WS-* claim URIs depending on
// configuration, so both are kept in the chain.
var (
	userIDClaimNames = []string{
		"nameid",
		"sub",
		"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier",
	}
	roleClaimNames = []string{
		"role",
		"http://schemas.microsoft.com/ws/2008/06/identity/claims/role",
		"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/role",
	}
)

// Decode extracts identity claims from a bearer token without verifying its
// signature. Returns model.ErrInvalidToken wrapped with detail when the
// token cannot be parsed.
func Decode(tokenString string) (Claims, error) {
	payload := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, payload); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", model.ErrInvalidToken, err)
	}

	claims := Claims{}

	for _, name := range userIDClaimNames {
		if v, ok := payload[name].(string); ok && v != "" {
			claims.UserID = v
			break
		}
	}

	for _, name := range roleClaimNames {
		roles, ok := rolesFromClaim(payload[name])
		if ok {
			claims.Roles = roles
			break
		}
	}

	return claims, nil
}

// rolesFromClaim normalizes a role claim value: a single string becomes a
// one-element list, an array keeps its order.
func rolesFromClaim(value any) ([]model.Role, bool) {
	switch v := value.(type) {
	case string:
		if v == "" {
			return nil, false
		}
		return []model.Role{model.Role(v)}, true
	case []any:
		roles := make([]model.Role, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				roles = append(roles, model.Role(s))
			}
		}
		if len(roles) == 0 {
			return nil, false
		}
		return roles, true
	default:
		return nil, false
	}
}
