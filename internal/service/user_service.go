package service

import (
	"context"
	"log/slog"

	"github.com/coversync/coversync/internal/auth"
	"github.com/coversync/coversync/internal/models"
	"github.com/coversync/coversync/internal/storage"
)

// UserService exposes staff account management. Registration and login go
// through the authenticator so password hashing stays in one place.
type UserService struct {
	store         storage.Store
	authenticator *auth.PasswordAuthenticator
	jwtManager    *auth.JWTManager
}

// NewUserService creates a UserService.
func NewUserService(store storage.Store, authenticator *auth.PasswordAuthenticator, jwtManager *auth.JWTManager) *UserService {
	return &UserService{
		store:         store,
		authenticator: authenticator,
		jwtManager:    jwtManager,
	}
}

// List returns all staff accounts.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.store.ListUsers(ctx)
}

// Get returns one staff account by id.
func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.store.GetUser(ctx, id)
}

// Register creates a staff account and records the mutation.
func (s *UserService) Register(ctx context.Context, email, displayName, role, password string) (*models.User, error) {
	user, err := s.authenticator.Register(ctx, email, displayName, role, password)
	if err != nil {
		slog.Error("Register failed", "email", email, "error", err)
		return nil, err
	}
	slog.Info("User registered", "user_id", user.ID, "email", user.Email, "role", user.Role)
	recordAudit(ctx, s.store, models.AuditActionCreate, "user", user.ID, user.Email)
	return user, nil
}

// Login verifies credentials and returns a signed session token with the
// user it belongs to.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		slog.Warn("Login rejected", "email", email)
		return "", nil, err
	}
	token, err := s.jwtManager.Generate(user)
	if err != nil {
		slog.Error("Token generation failed", "user_id", user.ID, "error", err)
		return "", nil, err
	}
	slog.Info("User logged in", "user_id", user.ID, "email", user.Email)
	return token, user, nil
}

// Update patches a staff account and records the mutation.
func (s *UserService) Update(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	user, err := s.store.UpdateUser(ctx, id, patch)
	if err != nil {
		slog.Error("UpdateUser failed", "user_id", id, "error", err)
		return nil, err
	}
	slog.Info("User updated", "user_id", id)
	recordAudit(ctx, s.store, models.AuditActionUpdate, "user", id, user.Email)
	return user, nil
}

// Delete removes a staff account and records the mutation.
func (s *UserService) Delete(ctx context.Context, id int64) (bool, error) {
	removed, err := s.store.DeleteUser(ctx, id)
	if err != nil {
		slog.Error("DeleteUser failed", "user_id", id, "error", err)
		return false, err
	}
	if removed {
		slog.Info("User deleted", "user_id", id)
		recordAudit(ctx, s.store, models.AuditActionDelete, "user", id, "")
	}
	return removed, nil
}

// AuditTrail returns the audit log newest-first.
func (s *UserService) AuditTrail(ctx context.Context) ([]models.AuditEntry, error) {
	return s.store.ListAuditEntries(ctx)
}
