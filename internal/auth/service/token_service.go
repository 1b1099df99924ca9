package service

//go:generate mockgen -destination=../../mocks/mock_token_manager.go -package=mocks github.com/Rendyseptch/Login-app/internal/auth/service TokenManager

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/Rendyseptch/Login-app/internal/errors"
)

type TokenManager interface {
	Issue(userID int64) (string, error)
	Verify(tokenString string) (int64, error)
	Expiry() time.Duration
}

type TokenService struct {
	secret []byte
	expiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

func NewTokenService(secret string, expiryHours int) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		expiry: time.Duration(expiryHours) * time.Hour,
	}
}

func (ts *TokenService) Issue(userID int64) (string, error) {
	now := time.Now()

	claims := JWTCustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
}

// Verify parses and validates a session token, returning the embedded user
// ID. Expiry and tampering are reported as distinct errors so the caller can
// phrase "session expired" differently from "invalid token".
func (ts *TokenService) Verify(tokenString string) (int64, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, apperrors.ErrTokenExpired
		}
		return 0, apperrors.ErrTokenInvalid
	}

	if !token.Valid {
		return 0, apperrors.ErrTokenInvalid
	}

	return claims.UserID, nil
}

func (ts *TokenService) Expiry() time.Duration {
	return ts.expiry
}
