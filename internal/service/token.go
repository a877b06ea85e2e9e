package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// minSecretLength is the minimum HMAC secret size accepted at construction.
const minSecretLength = 32

// Claims represents session token claims.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService defines session token operations. Tokens are not persisted
// server-side; an issued token stays valid until its expiry.
type TokenService interface {
	Generate(userID int64) (string, error)
	Validate(tokenString string) (*Claims, error)
	Expiry() time.Duration
}

type tokenService struct {
	secret string
	expiry time.Duration
}

// NewTokenService creates a new TokenService instance. Returns nil if the
// secret is shorter than 32 bytes.
func NewTokenService(secret string, expiry time.Duration) TokenService {
	if len(secret) < minSecretLength {
		return nil
	}
	return &tokenService{
		secret: secret,
		expiry: expiry,
	}
}

func (s *tokenService) Expiry() time.Duration {
	return s.expiry
}

func (s *tokenService) Generate(userID int64) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

func (s *tokenService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
