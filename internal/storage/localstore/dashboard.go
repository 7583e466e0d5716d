package localstore

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/coversync/coversync/internal/models"
)

const (
	// annualizationFactor converts a premium to yearly revenue. It is
	// applied to every active policy regardless of PaymentFrequency; see
	// models.DashboardStats.TotalRevenue.
	annualizationFactor = 12

	// renewalWindowDays is the lookahead for pending renewals. A policy
	// counts when its end date falls in [today, today+30d], both bounds
	// inclusive.
	renewalWindowDays = 30

	// recentPoliciesLimit caps GetRecentPolicies.
	recentPoliciesLimit = 10

	dateLayout = "2006-01-02"
)

// GetDashboardStats computes the landing-page aggregates from the policy
// and claim collections.
func (s *Store) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	policies, err := s.ListPolicies(ctx)
	if err != nil {
		return nil, err
	}
	claims, err := s.ListClaims(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.DashboardStats{
		TotalPolicies: len(policies),
		TotalClaims:   len(claims),
	}

	from, to := s.renewalWindow()
	for _, p := range policies {
		if p.Status == models.PolicyStatusActive {
			stats.ActivePolicies++
			stats.TotalRevenue += p.Premium * annualizationFactor
		}
		if endDateInWindow(p.EndDate, from, to) {
			stats.PendingRenewals++
		}
	}
	for _, c := range claims {
		if c.Status == models.ClaimStatusPending {
			stats.PendingClaims++
		}
	}

	return stats, nil
}

// GetRecentPolicies returns the ten most recently created policies,
// newest first.
func (s *Store) GetRecentPolicies(ctx context.Context) ([]models.Policy, error) {
	policies, err := s.ListPolicies(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(policies, func(a, b models.Policy) int {
		return cmp.Compare(b.CreatedAt, a.CreatedAt)
	})
	if len(policies) > recentPoliciesLimit {
		policies = policies[:recentPoliciesLimit]
	}
	return policies, nil
}

// GetRenewalPolicies returns every policy whose end date falls within the
// next 30 days, in storage order, with no cap.
func (s *Store) GetRenewalPolicies(ctx context.Context) ([]models.Policy, error) {
	policies, err := s.ListPolicies(ctx)
	if err != nil {
		return nil, err
	}

	from, to := s.renewalWindow()
	renewals := make([]models.Policy, 0)
	for _, p := range policies {
		if endDateInWindow(p.EndDate, from, to) {
			renewals = append(renewals, p)
		}
	}
	return renewals, nil
}

// renewalWindow returns [today, today+30d] in UTC, midnight-aligned so the
// time of day never excludes a policy ending today.
func (s *Store) renewalWindow() (time.Time, time.Time) {
	now := s.now().UTC()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 0, renewalWindowDays)
}

// endDateInWindow reports whether the YYYY-MM-DD end date falls in
// [from, to], both bounds inclusive. Unparsable dates never match.
func endDateInWindow(endDate string, from, to time.Time) bool {
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return false
	}
	return !end.Before(from) && !end.After(to)
}
