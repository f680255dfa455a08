package auth

import (
	"testing"
	"time"
)

func TestTokenRoundtrip(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), "staffhive", time.Hour)

	token, err := svc.GenerateAccessToken("user-1", RoleRecruiter)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q", claims.UserID)
	}
	if claims.Role != RoleRecruiter {
		t.Errorf("Role = %q", claims.Role)
	}
}

func TestTokenWrongSecretRejected(t *testing.T) {
	issuer := NewTokenService([]byte("secret-a"), "staffhive", time.Hour)
	verifier := NewTokenService([]byte("secret-b"), "staffhive", time.Hour)

	token, err := issuer.GenerateAccessToken("user-1", RoleStaff)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := verifier.ValidateAccessToken(token); err == nil {
		t.Fatal("token signed with a different secret was accepted")
	}
}

func TestTokenWrongIssuerRejected(t *testing.T) {
	issuer := NewTokenService([]byte("test-secret"), "someone-else", time.Hour)
	verifier := NewTokenService([]byte("test-secret"), "staffhive", time.Hour)

	token, err := issuer.GenerateAccessToken("user-1", RoleStaff)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := verifier.ValidateAccessToken(token); err == nil {
		t.Fatal("token from a different issuer was accepted")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), "staffhive", -time.Minute)

	token, err := svc.GenerateAccessToken("user-1", RoleInstitute)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := svc.ValidateAccessToken(token); err == nil {
		t.Fatal("expired token was accepted")
	}
}
