// Package identity integrates with the external identity provider: it
// verifies provider-signed session tokens and drives the provider's
// invitation API.
package identity

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	sharedConfig "helpdesk/internal/shared/config"
	apperrors "helpdesk/internal/shared/errors"
)

// ExternalIdentity is the subset of token claims the application needs to
// resolve an internal user.
type ExternalIdentity struct {
	ExternalID string
	Email      string
	Name       string
}

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

type TokenVerifier struct {
	secret []byte
	issuer string
}

func NewTokenVerifier(cfg sharedConfig.IdentityConfig) *TokenVerifier {
	return &TokenVerifier{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.Issuer,
	}
}

// VerifyToken validates the HMAC signature and standard claims of a
// provider session token and extracts the identity.
func (v *TokenVerifier) VerifyToken(tokenString string) (*ExternalIdentity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError(fmt.Sprintf("invalid token: %v", err))
	}
	if !token.Valid || claims.Subject == "" {
		return nil, apperrors.NewUnauthorizedError("invalid token: missing subject")
	}

	return &ExternalIdentity{
		ExternalID: claims.Subject,
		Email:      claims.Email,
		Name:       claims.Name,
	}, nil
}
