package localstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/coversync/coversync/internal/models"
	"github.com/coversync/coversync/internal/storage"
)

// ListPartners returns the full partner collection in storage order.
func (s *Store) ListPartners(ctx context.Context) ([]models.Partner, error) {
	defer s.lock(colPartners)()
	return load(ctx, s, colPartners, s.seed.Partners)
}

// GetPartner retrieves a partner by id.
func (s *Store) GetPartner(ctx context.Context, id int64) (*models.Partner, error) {
	defer s.lock(colPartners)()
	partners, err := load(ctx, s, colPartners, s.seed.Partners)
	if err != nil {
		return nil, err
	}
	for i := range partners {
		if partners[i].ID == id {
			partner := partners[i]
			return &partner, nil
		}
	}
	return nil, fmt.Errorf("%w: partner %d", storage.ErrNotFound, id)
}

// GetPartnerByAPIKey retrieves a partner by its current API key.
func (s *Store) GetPartnerByAPIKey(ctx context.Context, key string) (*models.Partner, error) {
	defer s.lock(colPartners)()
	partners, err := load(ctx, s, colPartners, s.seed.Partners)
	if err != nil {
		return nil, err
	}
	for i := range partners {
		if partners[i].APIKey == key {
			partner := partners[i]
			return &partner, nil
		}
	}
	return nil, fmt.Errorf("%w: partner key", storage.ErrNotFound)
}

// CreatePartner appends a new partner, assigning its id, API key and
// timestamps in place.
func (s *Store) CreatePartner(ctx context.Context, partner *models.Partner) error {
	defer s.lock(colPartners)()
	partners, err := load(ctx, s, colPartners, s.seed.Partners)
	if err != nil {
		return err
	}

	partner.ID = nextID(partners, func(p models.Partner) int64 { return p.ID })
	partner.APIKey = uuid.New().String()
	if partner.Status == "" {
		partner.Status = models.PartnerStatusActive
	}
	now := s.now().Unix()
	partner.CreatedAt = now
	partner.UpdatedAt = now

	partners = append(partners, *partner)
	return save(ctx, s, colPartners, partners)
}

// UpdatePartner applies the patch to the partner with the given id and
// refreshes UpdatedAt. The API key is untouched; use RotatePartnerKey.
// Returns ErrNotFound without side effects when the id is absent.
func (s *Store) UpdatePartner(ctx context.Context, id int64, patch models.PartnerPatch) (*models.Partner, error) {
	defer s.lock(colPartners)()
	partners, err := load(ctx, s, colPartners, s.seed.Partners)
	if err != nil {
		return nil, err
	}

	for i := range partners {
		if partners[i].ID != id {
			continue
		}
		if patch.Name != nil {
			partners[i].Name = *patch.Name
		}
		if patch.ContactEmail != nil {
			partners[i].ContactEmail = *patch.ContactEmail
		}
		if patch.Status != nil {
			partners[i].Status = *patch.Status
		}
		partners[i].UpdatedAt = s.now().Unix()
		if err := save(ctx, s, colPartners, partners); err != nil {
			return nil, err
		}
		updated := partners[i]
		return &updated, nil
	}
	return nil, fmt.Errorf("%w: partner %d", storage.ErrNotFound, id)
}

// DeletePartner removes the partner with the given id, reporting whether a
// removal occurred.
func (s *Store) DeletePartner(ctx context.Context, id int64) (bool, error) {
	defer s.lock(colPartners)()
	partners, err := load(ctx, s, colPartners, s.seed.Partners)
	if err != nil {
		return false, err
	}

	for i := range partners {
		if partners[i].ID == id {
			partners = append(partners[:i], partners[i+1:]...)
			if err := save(ctx, s, colPartners, partners); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// RotatePartnerKey replaces the partner's API key with a fresh one. The
// previous key stops matching immediately.
func (s *Store) RotatePartnerKey(ctx context.Context, id int64) (*models.Partner, error) {
	defer s.lock(colPartners)()
	partners, err := load(ctx, s, colPartners, s.seed.Partners)
	if err != nil {
		return nil, err
	}

	for i := range partners {
		if partners[i].ID != id {
			continue
		}
		partners[i].APIKey = uuid.New().String()
		partners[i].UpdatedAt = s.now().Unix()
		if err := save(ctx, s, colPartners, partners); err != nil {
			return nil, err
		}
		updated := partners[i]
		return &updated, nil
	}
	return nil, fmt.Errorf("%w: partner %d", storage.ErrNotFound, id)
}
