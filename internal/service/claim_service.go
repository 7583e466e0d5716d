package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/coversync/coversync/internal/models"
	"github.com/coversync/coversync/internal/storage"
)

// ClaimService exposes claim CRUD to the API layer.
type ClaimService struct {
	store storage.Store
}

// NewClaimService creates a ClaimService with the given storage backend.
func NewClaimService(store storage.Store) *ClaimService {
	return &ClaimService{store: store}
}

// List returns all claims.
func (s *ClaimService) List(ctx context.Context) ([]models.Claim, error) {
	return s.store.ListClaims(ctx)
}

// Get returns one claim by id.
func (s *ClaimService) Get(ctx context.Context, id int64) (*models.Claim, error) {
	return s.store.GetClaim(ctx, id)
}

// Create stores a new claim and records the mutation. A blank ClaimNumber
// is filled in from the assigned id; a blank status starts as Pending.
func (s *ClaimService) Create(ctx context.Context, claim *models.Claim) error {
	if claim.Status == "" {
		claim.Status = models.ClaimStatusPending
	}
	if err := s.store.CreateClaim(ctx, claim); err != nil {
		slog.Error("CreateClaim failed", "error", err)
		return err
	}

	if claim.ClaimNumber == "" {
		number := fmt.Sprintf("CLM-%d-%04d", time.Now().Year(), claim.ID)
		updated, err := s.store.UpdateClaim(ctx, claim.ID, models.ClaimPatch{ClaimNumber: &number})
		if err != nil {
			slog.Error("Claim number assignment failed", "claim_id", claim.ID, "error", err)
			return err
		}
		*claim = *updated
	}

	slog.Info("Claim created", "claim_id", claim.ID, "claim_number", claim.ClaimNumber)
	recordAudit(ctx, s.store, models.AuditActionCreate, "claim", claim.ID, claim.ClaimNumber)
	return nil
}

// Update patches an existing claim and records the mutation.
func (s *ClaimService) Update(ctx context.Context, id int64, patch models.ClaimPatch) (*models.Claim, error) {
	claim, err := s.store.UpdateClaim(ctx, id, patch)
	if err != nil {
		slog.Error("UpdateClaim failed", "claim_id", id, "error", err)
		return nil, err
	}
	slog.Info("Claim updated", "claim_id", id)
	recordAudit(ctx, s.store, models.AuditActionUpdate, "claim", id, claim.ClaimNumber)
	return claim, nil
}

// Delete removes a claim and records the mutation.
func (s *ClaimService) Delete(ctx context.Context, id int64) (bool, error) {
	removed, err := s.store.DeleteClaim(ctx, id)
	if err != nil {
		slog.Error("DeleteClaim failed", "claim_id", id, "error", err)
		return false, err
	}
	if removed {
		slog.Info("Claim deleted", "claim_id", id)
		recordAudit(ctx, s.store, models.AuditActionDelete, "claim", id, "")
	}
	return removed, nil
}
