package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coversync/coversync/internal/models"
	"github.com/coversync/coversync/internal/storage/localstore"
	"github.com/coversync/coversync/internal/storage/slot"
)

func newUserStore(t *testing.T) *localstore.Store {
	t.Helper()
	return localstore.New(slot.NewMemory(), localstore.WithSeed(localstore.Seed{}))
}

func TestJWTRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret-key-for-unit-tests", time.Hour)
	user := &models.User{ID: 7, Email: "agent@coversync.local", Role: models.RoleAgent}

	token, err := manager.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("expected user id 7, got %d", claims.UserID)
	}
	if claims.Email != "agent@coversync.local" {
		t.Errorf("unexpected email %q", claims.Email)
	}
	if claims.Role != models.RoleAgent {
		t.Errorf("unexpected role %q", claims.Role)
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	signer := NewJWTManager("secret-one-secret-one-secret", time.Hour)
	verifier := NewJWTManager("secret-two-secret-two-secret", time.Hour)

	token, err := signer.Generate(&models.User{ID: 1, Email: "a@b.c", Role: models.RoleViewer})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := verifier.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	manager := NewJWTManager("test-secret-key-for-unit-tests", -time.Minute)

	token, err := manager.Generate(&models.User{ID: 1, Email: "a@b.c", Role: models.RoleViewer})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := manager.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTRejectsGarbage(t *testing.T) {
	manager := NewJWTManager("test-secret-key-for-unit-tests", time.Hour)
	if _, err := manager.Validate("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	store := newUserStore(t)
	defer store.Close()
	authenticator := NewPasswordAuthenticator(store)

	user, err := authenticator.Register(ctx, "thandi@coversync.local", "Thandi Mokoena", models.RoleAgent, "correct-horse")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected registered user to have an id")
	}
	if user.PasswordHash == "correct-horse" {
		t.Error("password stored in plaintext")
	}

	got, err := authenticator.Authenticate(ctx, "thandi@coversync.local", "correct-horse")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("expected user %d, got %d", user.ID, got.ID)
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	store := newUserStore(t)
	defer store.Close()
	authenticator := NewPasswordAuthenticator(store)

	if _, err := authenticator.Register(ctx, "thandi@coversync.local", "Thandi Mokoena", models.RoleAgent, "correct-horse"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	t.Run("wrong password", func(t *testing.T) {
		_, err := authenticator.Authenticate(ctx, "thandi@coversync.local", "wrong-horse")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := authenticator.Authenticate(ctx, "nobody@coversync.local", "correct-horse")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	store := newUserStore(t)
	defer store.Close()
	authenticator := NewPasswordAuthenticator(store)

	t.Run("weak password", func(t *testing.T) {
		_, err := authenticator.Register(ctx, "x@coversync.local", "X", models.RoleViewer, "short")
		if !errors.Is(err, ErrWeakPassword) {
			t.Errorf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := authenticator.Register(ctx, "x@coversync.local", "X", "superuser", "long-enough")
		if !errors.Is(err, ErrUnknownRole) {
			t.Errorf("expected ErrUnknownRole, got %v", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		if _, err := authenticator.Register(ctx, "dup@coversync.local", "First", models.RoleViewer, "long-enough"); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		_, err := authenticator.Register(ctx, "dup@coversync.local", "Second", models.RoleViewer, "long-enough")
		if !errors.Is(err, ErrEmailExists) {
			t.Errorf("expected ErrEmailExists, got %v", err)
		}
	})
}
