package service

import (
	"context"
	"log/slog"

	"github.com/coversync/coversync/internal/models"
	"github.com/coversync/coversync/internal/storage"
)

// PartnerService exposes the API partner console operations.
type PartnerService struct {
	store storage.Store
}

// NewPartnerService creates a PartnerService with the given storage
// backend.
func NewPartnerService(store storage.Store) *PartnerService {
	return &PartnerService{store: store}
}

// List returns all partners.
func (s *PartnerService) List(ctx context.Context) ([]models.Partner, error) {
	return s.store.ListPartners(ctx)
}

// Get returns one partner by id.
func (s *PartnerService) Get(ctx context.Context, id int64) (*models.Partner, error) {
	return s.store.GetPartner(ctx, id)
}

// Create stores a new partner (the store generates its API key) and
// records the mutation.
func (s *PartnerService) Create(ctx context.Context, partner *models.Partner) error {
	if err := s.store.CreatePartner(ctx, partner); err != nil {
		slog.Error("CreatePartner failed", "error", err)
		return err
	}
	slog.Info("Partner created", "partner_id", partner.ID, "name", partner.Name)
	recordAudit(ctx, s.store, models.AuditActionCreate, "partner", partner.ID, partner.Name)
	return nil
}

// Update patches an existing partner and records the mutation.
func (s *PartnerService) Update(ctx context.Context, id int64, patch models.PartnerPatch) (*models.Partner, error) {
	partner, err := s.store.UpdatePartner(ctx, id, patch)
	if err != nil {
		slog.Error("UpdatePartner failed", "partner_id", id, "error", err)
		return nil, err
	}
	slog.Info("Partner updated", "partner_id", id)
	recordAudit(ctx, s.store, models.AuditActionUpdate, "partner", id, partner.Name)
	return partner, nil
}

// Delete removes a partner and records the mutation. Its API key stops
// working immediately.
func (s *PartnerService) Delete(ctx context.Context, id int64) (bool, error) {
	removed, err := s.store.DeletePartner(ctx, id)
	if err != nil {
		slog.Error("DeletePartner failed", "partner_id", id, "error", err)
		return false, err
	}
	if removed {
		slog.Info("Partner deleted", "partner_id", id)
		recordAudit(ctx, s.store, models.AuditActionDelete, "partner", id, "")
	}
	return removed, nil
}

// RotateKey replaces a partner's API key and records the mutation.
func (s *PartnerService) RotateKey(ctx context.Context, id int64) (*models.Partner, error) {
	partner, err := s.store.RotatePartnerKey(ctx, id)
	if err != nil {
		slog.Error("RotatePartnerKey failed", "partner_id", id, "error", err)
		return nil, err
	}
	slog.Info("Partner key rotated", "partner_id", id)
	recordAudit(ctx, s.store, models.AuditActionRotate, "partner", id, partner.Name)
	return partner, nil
}
