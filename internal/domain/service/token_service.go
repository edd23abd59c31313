package service

import (
	"pharmastore/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims embedded in a bearer token: the account
// identity and its role. The token is the only capability artifact — there is
// no session store and no per-token revocation.
type Claims struct {
	UserID uuid.UUID   `json:"uid"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token signing from the use cases.
type TokenService interface {
	// Generate creates a signed token embedding the account's identity and
	// role, valid for the configured window (30 days by default).
	Generate(userID uuid.UUID, role entity.Role) (string, error)

	// Validate checks a token's signature and expiry. Any failure yields an
	// error — never partial trust.
	Validate(tokenString string) (*Claims, error)
}
