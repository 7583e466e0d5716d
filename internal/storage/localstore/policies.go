package localstore

import (
	"context"
	"fmt"

	"github.com/coversync/coversync/internal/models"
	"github.com/coversync/coversync/internal/storage"
)

// ListPolicies returns the full policy collection in storage order.
func (s *Store) ListPolicies(ctx context.Context) ([]models.Policy, error) {
	defer s.lock(colPolicies)()
	return load(ctx, s, colPolicies, s.seed.Policies)
}

// GetPolicy retrieves a policy by id.
func (s *Store) GetPolicy(ctx context.Context, id int64) (*models.Policy, error) {
	defer s.lock(colPolicies)()
	policies, err := load(ctx, s, colPolicies, s.seed.Policies)
	if err != nil {
		return nil, err
	}
	for i := range policies {
		if policies[i].ID == id {
			policy := policies[i]
			return &policy, nil
		}
	}
	return nil, fmt.Errorf("%w: policy %d", storage.ErrNotFound, id)
}

// CreatePolicy appends a new policy, assigning its id and timestamps in
// place. ClientName is stored as given: it is a snapshot, not a join.
func (s *Store) CreatePolicy(ctx context.Context, policy *models.Policy) error {
	defer s.lock(colPolicies)()
	policies, err := load(ctx, s, colPolicies, s.seed.Policies)
	if err != nil {
		return err
	}

	policy.ID = nextID(policies, func(p models.Policy) int64 { return p.ID })
	now := s.now().Unix()
	policy.CreatedAt = now
	policy.UpdatedAt = now

	policies = append(policies, *policy)
	return save(ctx, s, colPolicies, policies)
}

// UpdatePolicy applies the patch to the policy with the given id and
// refreshes UpdatedAt. Returns ErrNotFound without side effects when the id
// is absent.
func (s *Store) UpdatePolicy(ctx context.Context, id int64, patch models.PolicyPatch) (*models.Policy, error) {
	defer s.lock(colPolicies)()
	policies, err := load(ctx, s, colPolicies, s.seed.Policies)
	if err != nil {
		return nil, err
	}

	for i := range policies {
		if policies[i].ID != id {
			continue
		}
		applyPolicyPatch(&policies[i], patch)
		policies[i].UpdatedAt = s.now().Unix()
		if err := save(ctx, s, colPolicies, policies); err != nil {
			return nil, err
		}
		updated := policies[i]
		return &updated, nil
	}
	return nil, fmt.Errorf("%w: policy %d", storage.ErrNotFound, id)
}

// DeletePolicy removes the policy with the given id, reporting whether a
// removal occurred.
func (s *Store) DeletePolicy(ctx context.Context, id int64) (bool, error) {
	defer s.lock(colPolicies)()
	policies, err := load(ctx, s, colPolicies, s.seed.Policies)
	if err != nil {
		return false, err
	}

	for i := range policies {
		if policies[i].ID == id {
			policies = append(policies[:i], policies[i+1:]...)
			if err := save(ctx, s, colPolicies, policies); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// applyPolicyPatch copies the patch's non-nil fields onto the policy.
func applyPolicyPatch(pol *models.Policy, p models.PolicyPatch) {
	if p.PolicyNumber != nil {
		pol.PolicyNumber = *p.PolicyNumber
	}
	if p.ClientID != nil {
		pol.ClientID = *p.ClientID
	}
	if p.ClientName != nil {
		pol.ClientName = *p.ClientName
	}
	if p.PolicyType != nil {
		pol.PolicyType = *p.PolicyType
	}
	if p.Premium != nil {
		pol.Premium = *p.Premium
	}
	if p.Status != nil {
		pol.Status = *p.Status
	}
	if p.StartDate != nil {
		pol.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		pol.EndDate = *p.EndDate
	}
	if p.PaymentFrequency != nil {
		pol.PaymentFrequency = *p.PaymentFrequency
	}
	if p.CoverageAmount != nil {
		pol.CoverageAmount = *p.CoverageAmount
	}
	if p.Agent != nil {
		pol.Agent = *p.Agent
	}
	if p.Notes != nil {
		pol.Notes = *p.Notes
	}
}
