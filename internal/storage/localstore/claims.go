package localstore

import (
	"context"
	"fmt"

	"github.com/coversync/coversync/internal/models"
	"github.com/coversync/coversync/internal/storage"
)

// ListClaims returns the full claim collection in storage order.
func (s *Store) ListClaims(ctx context.Context) ([]models.Claim, error) {
	defer s.lock(colClaims)()
	return load(ctx, s, colClaims, s.seed.Claims)
}

// GetClaim retrieves a claim by id.
func (s *Store) GetClaim(ctx context.Context, id int64) (*models.Claim, error) {
	defer s.lock(colClaims)()
	claims, err := load(ctx, s, colClaims, s.seed.Claims)
	if err != nil {
		return nil, err
	}
	for i := range claims {
		if claims[i].ID == id {
			claim := claims[i]
			return &claim, nil
		}
	}
	return nil, fmt.Errorf("%w: claim %d", storage.ErrNotFound, id)
}

// CreateClaim appends a new claim, assigning its id in place. Claims carry
// no store-stamped timestamps: SubmittedAt is persisted exactly as given.
func (s *Store) CreateClaim(ctx context.Context, claim *models.Claim) error {
	defer s.lock(colClaims)()
	claims, err := load(ctx, s, colClaims, s.seed.Claims)
	if err != nil {
		return err
	}

	claim.ID = nextID(claims, func(c models.Claim) int64 { return c.ID })

	claims = append(claims, *claim)
	return save(ctx, s, colClaims, claims)
}

// UpdateClaim applies the patch to the claim with the given id. No
// timestamp is refreshed. Returns ErrNotFound without side effects when the
// id is absent.
func (s *Store) UpdateClaim(ctx context.Context, id int64, patch models.ClaimPatch) (*models.Claim, error) {
	defer s.lock(colClaims)()
	claims, err := load(ctx, s, colClaims, s.seed.Claims)
	if err != nil {
		return nil, err
	}

	for i := range claims {
		if claims[i].ID != id {
			continue
		}
		applyClaimPatch(&claims[i], patch)
		if err := save(ctx, s, colClaims, claims); err != nil {
			return nil, err
		}
		updated := claims[i]
		return &updated, nil
	}
	return nil, fmt.Errorf("%w: claim %d", storage.ErrNotFound, id)
}

// DeleteClaim removes the claim with the given id, reporting whether a
// removal occurred.
func (s *Store) DeleteClaim(ctx context.Context, id int64) (bool, error) {
	defer s.lock(colClaims)()
	claims, err := load(ctx, s, colClaims, s.seed.Claims)
	if err != nil {
		return false, err
	}

	for i := range claims {
		if claims[i].ID == id {
			claims = append(claims[:i], claims[i+1:]...)
			if err := save(ctx, s, colClaims, claims); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// applyClaimPatch copies the patch's non-nil fields onto the claim.
func applyClaimPatch(c *models.Claim, p models.ClaimPatch) {
	if p.ClaimNumber != nil {
		c.ClaimNumber = *p.ClaimNumber
	}
	if p.PolicyID != nil {
		c.PolicyID = *p.PolicyID
	}
	if p.ClientID != nil {
		c.ClientID = *p.ClientID
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Amount != nil {
		c.Amount = *p.Amount
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.SubmittedAt != nil {
		c.SubmittedAt = *p.SubmittedAt
	}
	if p.ProcessedAt != nil {
		c.ProcessedAt = *p.ProcessedAt
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
}
