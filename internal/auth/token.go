// Package auth issues the signed session tokens handed out on registration
// and login.
package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenValidity is the fixed lifetime of an issued session token.
const TokenValidity = 5 * 24 * time.Hour

// TokenIssuer signs session tokens binding an account identifier and email
// with a symmetric key.
type TokenIssuer struct {
	secret   []byte
	issuer   string
	audience string
}

// NewTokenIssuer returns a TokenIssuer signing with the given secret.
func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{
		secret:   []byte(secret),
		issuer:   "ripple-api",
		audience: "ripple-client",
	}
}

// Issue creates an HS256-signed token for the given account. The token
// carries the account identifier as subject and the email as a claim, and
// expires after TokenValidity.
func (t *TokenIssuer) Issue(userID uint, email string) (string, error) {
	if len(t.secret) == 0 {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatUint(uint64(userID), 10),
		"email": email,
		"iss":   t.issuer,
		"aud":   t.audience,
		"exp":   now.Add(TokenValidity).Unix(),
		"iat":   now.Unix(),
		"nbf":   now.Unix(),
		"jti":   t.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// generateJTI creates a unique token ID to prevent replay attacks
func (t *TokenIssuer) generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
