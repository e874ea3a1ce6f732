// Package auth implements the two cryptographic primitives of the session
// subsystem: signed session tokens (JWT, HS256) and one-way password
// hashing (bcrypt).
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/webauth/internal/common"
)

// Claims embeds the registered claim set and adds the owning account ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// GenerateToken signs a session token binding the given account ID with
// secretKey. A validity of 0 produces a token with no exp claim, valid
// until explicitly revoked; the transport cookie then carries the only
// expiry. Every token gets a fresh jti, so repeated logins for the same
// account yield distinct token strings.
func GenerateToken(userID string, secretKey []byte, validity time.Duration) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	}
	if validity > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(validity))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken validates the signature of tokenString against
// secretKey and returns the embedded account ID. Malformed, tampered and
// expired tokens all yield common.ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
