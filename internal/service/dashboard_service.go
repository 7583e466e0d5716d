package service

import (
	"context"

	"github.com/coversync/coversync/internal/models"
	"github.com/coversync/coversync/internal/storage"
)

// DashboardService exposes the derived dashboard queries.
type DashboardService struct {
	store storage.Store
}

// NewDashboardService creates a DashboardService with the given storage
// backend.
func NewDashboardService(store storage.Store) *DashboardService {
	return &DashboardService{store: store}
}

// Stats computes the landing-page aggregates.
func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	return s.store.GetDashboardStats(ctx)
}

// RecentPolicies returns the ten most recently created policies.
func (s *DashboardService) RecentPolicies(ctx context.Context) ([]models.Policy, error) {
	return s.store.GetRecentPolicies(ctx)
}

// RenewalPolicies returns the policies ending within the next 30 days.
func (s *DashboardService) RenewalPolicies(ctx context.Context) ([]models.Policy, error) {
	return s.store.GetRenewalPolicies(ctx)
}
