package auth

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"drivehub/internal/domain"
	"drivehub/internal/domain/models"
)

func newTestService(t *testing.T, secret string) *HMACTokenService {
	t.Helper()
	svc, err := NewTokenService(secret, slog.Default())
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	return svc
}

func TestMintAndVerifyRoundTrip(t *testing.T) {
	svc := newTestService(t, "test-secret")

	user := &models.UserInfo{
		ID:      "user-123",
		Email:   "a@example.com",
		Name:    "A User",
		Picture: "https://example.com/a.png",
	}

	token, err := svc.Mint(user, time.Hour)
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if claims.GetUserID() != "user-123" {
		t.Errorf("user ID = %q, want user-123", claims.GetUserID())
	}
	if claims.Email != user.Email || claims.Name != user.Name || claims.Picture != user.Picture {
		t.Errorf("claims = %+v, want identity fields preserved", claims)
	}
}

func TestVerifyRejections(t *testing.T) {
	svc := newTestService(t, "test-secret")
	other := newTestService(t, "other-secret")
	user := &models.UserInfo{ID: "user-123", Email: "a@example.com"}

	expired, err := svc.Mint(user, -time.Minute)
	if err != nil {
		t.Fatalf("Mint expired: %v", err)
	}
	foreign, err := other.Mint(user, time.Hour)
	if err != nil {
		t.Fatalf("Mint foreign: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage token", "not.a.token"},
		{"empty token", ""},
		{"expired token", expired},
		{"wrong secret", foreign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Verify(tt.token); !errors.Is(err, domain.ErrUnauthorized) {
				t.Errorf("Verify(%s) error = %v, want ErrUnauthorized", tt.name, err)
			}
		})
	}
}

func TestNewTokenServiceRequiresSecret(t *testing.T) {
	if _, err := NewTokenService("", slog.Default()); err == nil {
		t.Error("expected error for empty secret")
	}
}
