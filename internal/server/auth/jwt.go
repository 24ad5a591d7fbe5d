// Package auth implements the two identity primitives of the server:
// stateless signed session tokens and salted password hashing.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jkalnins/daybook/internal/common"
	"github.com/jkalnins/daybook/internal/server/models"
)

// Claims carries the standard JWT claims plus the authenticated user identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// GenerateToken mints an HS256-signed session token embedding userID with the
// given validity window. Issuance is stateless; nothing is persisted.
func GenerateToken(userID models.UserID, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: string(userID),
	})

	return token.SignedString(secretKey)
}

// GetUserIDFromToken verifies the signature and expiry of tokenString and
// returns the embedded identity. Expired tokens yield common.ErrTokenExpired;
// anything else wrong with the token yields common.ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (models.UserID, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrInvalidToken
	}

	return models.UserID(claims.UserID), nil
}
