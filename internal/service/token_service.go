package service

import (
	"errors"
	"fmt"

	"wallet-ledger/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTTokenValidator implements ports.TokenValidator for HS256 tokens issued
// by the identity service. The subject claim carries the user ID.
type JWTTokenValidator struct {
	secret []byte
	issuer string
}

// NewJWTTokenValidator creates a validator. An empty issuer skips the iss check.
func NewJWTTokenValidator(secret, issuer string) *JWTTokenValidator {
	return &JWTTokenValidator{secret: []byte(secret), issuer: issuer}
}

// Validate parses and validates a JWT token, returning the claims.
func (v *JWTTokenValidator) Validate(tokenString string) (*ports.TokenClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID in token: %w", err)
	}

	return &ports.TokenClaims{
		UserID:    userID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
