package auth

import (
	"testing"
	"time"
)

func TestGenerateToken_RoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken("u-1", secret, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	userID, err := GetUserIDFromToken(token, secret)
	if err != nil {
		t.Fatalf("GetUserIDFromToken error: %v", err)
	}
	if userID != "u-1" {
		t.Fatalf("want u-1, got %q", userID)
	}
}

func TestGetUserIDFromToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("u-1", []byte("right"), time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := GetUserIDFromToken(token, []byte("wrong")); err == nil {
		t.Fatalf("expected error for wrong secret")
	}
}

func TestGetUserIDFromToken_Expired(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateToken("u-1", secret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := GetUserIDFromToken(token, secret); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestGetUserIDFromToken_Garbage(t *testing.T) {
	if _, err := GetUserIDFromToken("not-a-jwt", []byte("k")); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}
