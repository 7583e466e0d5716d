package localstore

import (
	"context"
	"fmt"

	"github.com/coversync/coversync/internal/models"
	"github.com/coversync/coversync/internal/storage"
)

// ListPolicyTypes returns the cover product catalog. The catalog is
// read-only: it is seeded on first access and no mutation is exposed.
func (s *Store) ListPolicyTypes(ctx context.Context) ([]models.PolicyType, error) {
	defer s.lock(colPolicyTypes)()
	return load(ctx, s, colPolicyTypes, s.seed.PolicyTypes)
}

// GetPolicyType retrieves a catalog entry by id.
func (s *Store) GetPolicyType(ctx context.Context, id int64) (*models.PolicyType, error) {
	defer s.lock(colPolicyTypes)()
	types, err := load(ctx, s, colPolicyTypes, s.seed.PolicyTypes)
	if err != nil {
		return nil, err
	}
	for i := range types {
		if types[i].ID == id {
			pt := types[i]
			return &pt, nil
		}
	}
	return nil, fmt.Errorf("%w: policy type %d", storage.ErrNotFound, id)
}
