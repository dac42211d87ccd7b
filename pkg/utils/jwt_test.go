package utils

import (
	"testing"
	"time"
)

func TestJWTManager_roundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", "z-blog")

	pair, err := m.GenerateTokenPair("user-1", "admin", time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	claims, err := m.ParseToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != "user-1" || claims.Role != "admin" || claims.Type != "access" {
		t.Errorf("unexpected claims: %+v", claims)
	}

	refresh, err := m.ParseToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("ParseToken(refresh): %v", err)
	}
	if refresh.Type != "refresh" {
		t.Errorf("refresh token type = %q", refresh.Type)
	}
}

func TestJWTManager_expired(t *testing.T) {
	m := NewJWTManager("test-secret", "z-blog")

	token, err := m.GenerateToken("user-1", "user", "access", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := m.ParseToken(token); err != ErrExpiredToken {
		t.Errorf("ParseToken expired = %v, want ErrExpiredToken", err)
	}
}

func TestJWTManager_wrongSecret(t *testing.T) {
	m := NewJWTManager("secret-a", "z-blog")
	other := NewJWTManager("secret-b", "z-blog")

	token, err := m.GenerateToken("user-1", "user", "access", time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := other.ParseToken(token); err != ErrInvalidToken {
		t.Errorf("ParseToken wrong secret = %v, want ErrInvalidToken", err)
	}
}
