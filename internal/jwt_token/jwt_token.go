// Package jwttoken issues and validates the HMAC-signed caller tokens used
// by banks and the administrator. The token subject is the participant
// identity the registry authorizes against.
package jwttoken

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	dErrors "kycnet/pkg/domain-errors"
)

const issuer = "kycnet"

// Claims carries the participant identity in the standard subject claim.
type Claims struct {
	jwt.RegisteredClaims
}

// Service signs and validates participant tokens.
type Service struct {
	signingKey []byte
	tokenTTL   time.Duration
}

// NewService builds a token service from the shared signing key.
func NewService(signingKey string, tokenTTL time.Duration) *Service {
	return &Service{
		signingKey: []byte(signingKey),
		tokenTTL:   tokenTTL,
	}
}

// Issue signs a token whose subject is the participant identity.
func (s *Service) Issue(identity string) (string, error) {
	if identity == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "identity is required")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity,
			Issuer:    issuer,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a token and returns the participant identity.
func (s *Service) Validate(tokenString string) (string, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims,
		func(*jwt.Token) (any, error) { return s.signingKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", dErrors.New(dErrors.CodeUnauthorized, "token expired")
		}
		return "", dErrors.Wrap(err, dErrors.CodeUnauthorized, "invalid token")
	}
	if claims.Subject == "" {
		return "", dErrors.New(dErrors.CodeUnauthorized, "token has no subject")
	}
	return claims.Subject, nil
}

// ExtractBearer pulls the raw token out of an Authorization header.
func ExtractBearer(authHeader string) (string, error) {
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) || len(authHeader) == len(bearerPrefix) {
		return "", dErrors.New(dErrors.CodeUnauthorized, "invalid authorization header")
	}
	return authHeader[len(bearerPrefix):], nil
}
