package localstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/coversync/coversync/internal/models"
)

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store, _ := newEmptyStore(WithNow(fixedClock(now)))

	policies := []models.Policy{
		{Premium: 100, Status: models.PolicyStatusActive, EndDate: "2026-01-01"},
		{Premium: 50, Status: models.PolicyStatusCancelled, EndDate: "2026-01-01"},
	}
	for i := range policies {
		if err := store.CreatePolicy(ctx, &policies[i]); err != nil {
			t.Fatalf("CreatePolicy failed: %v", err)
		}
	}
	claims := []models.Claim{
		{Status: models.ClaimStatusPending, PolicyID: 1},
		{Status: models.ClaimStatusApproved, PolicyID: 1},
	}
	for i := range claims {
		if err := store.CreateClaim(ctx, &claims[i]); err != nil {
			t.Fatalf("CreateClaim failed: %v", err)
		}
	}

	stats, err := store.GetDashboardStats(ctx)
	if err != nil {
		t.Fatalf("GetDashboardStats failed: %v", err)
	}

	if stats.TotalPolicies != 2 {
		t.Errorf("totalPolicies: expected 2, got %d", stats.TotalPolicies)
	}
	if stats.ActivePolicies != 1 {
		t.Errorf("activePolicies: expected 1, got %d", stats.ActivePolicies)
	}
	// Revenue annualizes the active policy's premium with the fixed x12
	// multiplier: 100 * 12. The cancelled policy contributes nothing.
	if stats.TotalRevenue != 1200 {
		t.Errorf("totalRevenue: expected 1200, got %v", stats.TotalRevenue)
	}
	if stats.PendingClaims != 1 {
		t.Errorf("pendingClaims: expected 1, got %d", stats.PendingClaims)
	}
	if stats.TotalClaims != 2 {
		t.Errorf("totalClaims: expected 2, got %d", stats.TotalClaims)
	}
}

func TestRenewalWindow(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store, _ := newEmptyStore(WithNow(fixedClock(now)))

	cases := []struct {
		endDate string
		want    bool
	}{
		{"2024-01-15", true},  // inside the window
		{"2024-01-01", true},  // lower bound inclusive
		{"2024-01-31", true},  // upper bound inclusive
		{"2024-02-15", false}, // beyond 30 days
		{"2023-12-31", false}, // already past
		{"not-a-date", false}, // unparsable dates never renew
	}
	for _, c := range cases {
		policy := models.Policy{Status: models.PolicyStatusActive, EndDate: c.endDate}
		if err := store.CreatePolicy(ctx, &policy); err != nil {
			t.Fatalf("CreatePolicy failed: %v", err)
		}
	}

	renewals, err := store.GetRenewalPolicies(ctx)
	if err != nil {
		t.Fatalf("GetRenewalPolicies failed: %v", err)
	}

	got := make(map[string]bool)
	for _, p := range renewals {
		got[p.EndDate] = true
	}
	for _, c := range cases {
		if got[c.endDate] != c.want {
			t.Errorf("endDate %q: in window = %v, want %v", c.endDate, got[c.endDate], c.want)
		}
	}

	stats, err := store.GetDashboardStats(ctx)
	if err != nil {
		t.Fatalf("GetDashboardStats failed: %v", err)
	}
	if stats.PendingRenewals != 3 {
		t.Errorf("pendingRenewals: expected 3, got %d", stats.PendingRenewals)
	}
}

func TestRecentPoliciesOrderingAndCap(t *testing.T) {
	ctx := context.Background()

	// Advance the clock one hour per create so CreatedAt values are
	// distinct and increasing.
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tick := 0
	store, _ := newEmptyStore(WithNow(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Hour)
	}))

	for i := 1; i <= 12; i++ {
		policy := models.Policy{PolicyNumber: fmt.Sprintf("POL-%04d", i), Status: models.PolicyStatusActive}
		if err := store.CreatePolicy(ctx, &policy); err != nil {
			t.Fatalf("CreatePolicy failed: %v", err)
		}
	}

	recent, err := store.GetRecentPolicies(ctx)
	if err != nil {
		t.Fatalf("GetRecentPolicies failed: %v", err)
	}
	if len(recent) != 10 {
		t.Fatalf("expected 10 policies, got %d", len(recent))
	}
	for i := 0; i < len(recent)-1; i++ {
		if recent[i].CreatedAt < recent[i+1].CreatedAt {
			t.Errorf("not newest-first at index %d: %d then %d", i, recent[i].CreatedAt, recent[i+1].CreatedAt)
		}
	}
	if recent[0].PolicyNumber != "POL-0012" {
		t.Errorf("expected newest policy first, got %q", recent[0].PolicyNumber)
	}
}
