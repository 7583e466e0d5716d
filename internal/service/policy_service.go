package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/coversync/coversync/internal/models"
	"github.com/coversync/coversync/internal/storage"
)

// PolicyService exposes policy CRUD to the API layer.
type PolicyService struct {
	store storage.Store
}

// NewPolicyService creates a PolicyService with the given storage backend.
func NewPolicyService(store storage.Store) *PolicyService {
	return &PolicyService{store: store}
}

// List returns all policies.
func (s *PolicyService) List(ctx context.Context) ([]models.Policy, error) {
	return s.store.ListPolicies(ctx)
}

// Get returns one policy by id.
func (s *PolicyService) Get(ctx context.Context, id int64) (*models.Policy, error) {
	return s.store.GetPolicy(ctx, id)
}

// Create stores a new policy and records the mutation. A blank
// PolicyNumber is filled in from the assigned id, like "POL-2024-0007".
func (s *PolicyService) Create(ctx context.Context, policy *models.Policy) error {
	if err := s.store.CreatePolicy(ctx, policy); err != nil {
		slog.Error("CreatePolicy failed", "error", err)
		return err
	}

	if policy.PolicyNumber == "" {
		number := fmt.Sprintf("POL-%d-%04d", time.Now().Year(), policy.ID)
		updated, err := s.store.UpdatePolicy(ctx, policy.ID, models.PolicyPatch{PolicyNumber: &number})
		if err != nil {
			slog.Error("Policy number assignment failed", "policy_id", policy.ID, "error", err)
			return err
		}
		*policy = *updated
	}

	slog.Info("Policy created", "policy_id", policy.ID, "policy_number", policy.PolicyNumber)
	recordAudit(ctx, s.store, models.AuditActionCreate, "policy", policy.ID, policy.PolicyNumber)
	return nil
}

// Update patches an existing policy and records the mutation.
func (s *PolicyService) Update(ctx context.Context, id int64, patch models.PolicyPatch) (*models.Policy, error) {
	policy, err := s.store.UpdatePolicy(ctx, id, patch)
	if err != nil {
		slog.Error("UpdatePolicy failed", "policy_id", id, "error", err)
		return nil, err
	}
	slog.Info("Policy updated", "policy_id", id)
	recordAudit(ctx, s.store, models.AuditActionUpdate, "policy", id, policy.PolicyNumber)
	return policy, nil
}

// Delete removes a policy and records the mutation.
func (s *PolicyService) Delete(ctx context.Context, id int64) (bool, error) {
	removed, err := s.store.DeletePolicy(ctx, id)
	if err != nil {
		slog.Error("DeletePolicy failed", "policy_id", id, "error", err)
		return false, err
	}
	if removed {
		slog.Info("Policy deleted", "policy_id", id)
		recordAudit(ctx, s.store, models.AuditActionDelete, "policy", id, "")
	}
	return removed, nil
}

// ListTypes returns the cover product catalog.
func (s *PolicyService) ListTypes(ctx context.Context) ([]models.PolicyType, error) {
	return s.store.ListPolicyTypes(ctx)
}

// GetType returns one catalog entry by id.
func (s *PolicyService) GetType(ctx context.Context, id int64) (*models.PolicyType, error) {
	return s.store.GetPolicyType(ctx, id)
}
