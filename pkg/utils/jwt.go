package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Read per call so the secret loaded from .env after startup is picked up.
func jwtKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// Claims carries the resolved identity on every protected request.
// PrimaryUserID is set only for family (observer) accounts and points at
// the elderly account they are linked to.
type Claims struct {
	UserID        string `json:"user_id"`
	Role          string `json:"role"`
	PrimaryUserID string `json:"primary_user_id,omitempty"`
	jwt.RegisteredClaims
}

func CreateToken(accountID uuid.UUID, role string, primaryUserID *uuid.UUID) (string, error) {
	claims := &Claims{
		UserID: accountID.String(),
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	if primaryUserID != nil {
		claims.PrimaryUserID = primaryUserID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}
