package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	testSecret = "test-secret-key-at-least-32-chars-long"
	testExpiry = 168 * time.Hour
)

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNewTokenService(t *testing.T) {
	tokens := NewTokenService(testSecret, testExpiry)
	if tokens == nil {
		t.Fatal("NewTokenService returned nil")
	}

	if got := tokens.Expiry(); got != testExpiry {
		t.Errorf("Expiry() = %v, want %v", got, testExpiry)
	}
}

func TestNewTokenService_EmptySecret(t *testing.T) {
	if tokens := NewTokenService("", testExpiry); tokens != nil {
		t.Error("NewTokenService() should return nil for empty secret")
	}
}

func TestNewTokenService_ShortSecret(t *testing.T) {
	if tokens := NewTokenService("short", testExpiry); tokens != nil {
		t.Error("NewTokenService() should return nil for secret less than 32 bytes")
	}
}

// =============================================================================
// Generate Tests
// =============================================================================

func TestGenerate(t *testing.T) {
	tokens := NewTokenService(testSecret, testExpiry)

	tests := []struct {
		name   string
		userID int64
	}{
		{name: "typical user", userID: 1},
		{name: "large user ID", userID: 9223372036854775807},
		{name: "zero user ID", userID: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tokens.Generate(tt.userID)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if token == "" {
				t.Fatal("Generate() returned empty token")
			}

			claims, err := tokens.Validate(token)
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if claims.UserID != tt.userID {
				t.Errorf("Claims.UserID = %v, want %v", claims.UserID, tt.userID)
			}
		})
	}
}

func TestGenerate_SetsExpiry(t *testing.T) {
	tokens := NewTokenService(testSecret, testExpiry)

	token, err := tokens.Generate(1)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	claims, err := tokens.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	want := time.Now().Add(testExpiry)
	got := claims.ExpiresAt.Time
	if got.Before(want.Add(-time.Minute)) || got.After(want.Add(time.Minute)) {
		t.Errorf("ExpiresAt = %v, want about %v", got, want)
	}
}

// =============================================================================
// Validate Tests
// =============================================================================

func TestValidate_InvalidTokens(t *testing.T) {
	tokens := NewTokenService(testSecret, testExpiry)

	valid, err := tokens.Generate(1)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	otherService := NewTokenService("another-secret-that-is-32-bytes-long!!", testExpiry)
	foreign, err := otherService.Generate(1)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "garbage token", token: "not.a.token"},
		{name: "truncated token", token: valid[:len(valid)-10]},
		{name: "tampered payload", token: tamper(valid)},
		{name: "wrong secret", token: foreign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tokens.Validate(tt.token); err == nil {
				t.Error("Validate() should reject the token")
			}
		})
	}
}

func TestValidate_ExpiredToken(t *testing.T) {
	tokens := NewTokenService(testSecret, -time.Hour)

	token, err := tokens.Generate(1)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := tokens.Validate(token); err == nil {
		t.Error("Validate() should reject an expired token")
	}
}

func TestValidate_RejectsNoneAlgorithm(t *testing.T) {
	tokens := NewTokenService(testSecret, testExpiry)

	claims := Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	if _, err := tokens.Validate(token); err == nil {
		t.Error("Validate() should reject alg=none tokens")
	}
}

// tamper flips the payload segment of a JWT while keeping it decodable.
func tamper(token string) string {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return token
	}
	payload := []rune(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	return parts[0] + "." + string(payload) + "." + parts[2]
}
