package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"hmate/internal/model"
)

func TestAdminLoginAndValidate(t *testing.T) {
	svc := NewAuthService("admin", "rahasia", "test-secret")

	resp, err := svc.Login("admin", "rahasia")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	claims, err := svc.ValidateAdminToken(resp.Token)
	if err != nil {
		t.Fatalf("ValidateAdminToken: %v", err)
	}
	if claims.AdminID != resp.AdminID {
		t.Errorf("admin id = %q, want %q", claims.AdminID, resp.AdminID)
	}
	if ttl := time.Until(claims.ExpiresAt.Time); ttl < 11*time.Hour || ttl > 12*time.Hour {
		t.Errorf("token ttl = %s", ttl)
	}
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService("admin", "rahasia", "test-secret")
	if _, err := svc.Login("admin", "salah"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}

	disabled := NewAuthService("admin", "", "test-secret")
	if _, err := disabled.Login("admin", ""); !errors.Is(err, ErrAdminDisabled) {
		t.Errorf("expected ErrAdminDisabled, got %v", err)
	}
}

func TestValidateAdminTokenRejects(t *testing.T) {
	svc := NewAuthService("admin", "rahasia", "test-secret")
	other := NewAuthService("admin", "rahasia", "other-secret")

	foreign, err := other.Login("admin", "rahasia")
	if err != nil {
		t.Fatal(err)
	}

	expiredClaims := &model.AdminClaims{
		AdminID: "admin_old",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expiredClaims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}

	for name, token := range map[string]string{
		"garbage":      "not-a-token",
		"wrong secret": foreign.Token,
		"expired":      expired,
	} {
		if _, err := svc.ValidateAdminToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("%s: expected ErrInvalidToken, got %v", name, err)
		}
	}
}
