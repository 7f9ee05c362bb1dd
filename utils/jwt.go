package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session tokens live for 24 hours from issue.
const TokenTTL = 24 * time.Hour

var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenInvalid   = errors.New("token signature invalid")
	ErrTokenExpired   = errors.New("token expired")
)

// GenerateToken issues an HS256 session token embedding the user id.
func GenerateToken(userID uint, secret string) (string, error) {
	return generateTokenAt(userID, secret, time.Now())
}

// generateTokenAt exists so expiry behaviour is testable with a fixed clock.
func generateTokenAt(userID uint, secret string, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"iat":    now.Unix(),
		"exp":    now.Add(TokenTTL).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// VerifyToken validates signature and expiry and returns the embedded user id.
func VerifyToken(tokenString, secret string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, ErrTokenInvalid
		default:
			return 0, ErrTokenMalformed
		}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, ErrTokenMalformed
	}

	// JSON numbers decode as float64
	id, ok := claims["userId"].(float64)
	if !ok || id <= 0 {
		return 0, ErrTokenMalformed
	}
	return uint(id), nil
}
