package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coversync/coversync/internal/auth"
	"github.com/coversync/coversync/internal/models"
	"github.com/coversync/coversync/internal/storage/localstore"
	"github.com/coversync/coversync/internal/storage/slot"
)

// testEnv spins up the full REST surface over an in-memory store with one
// staff account per role.
type testEnv struct {
	server *httptest.Server
	store  *localstore.Store

	adminToken  string
	agentToken  string
	viewerToken string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	store := localstore.New(slot.NewMemory())
	jwtManager := auth.NewJWTManager("api-test-secret-key", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store)

	env := &testEnv{store: store}
	for _, acc := range []struct {
		email string
		role  string
		token *string
	}{
		{"admin@coversync.local", models.RoleAdmin, &env.adminToken},
		{"agent@coversync.local", models.RoleAgent, &env.agentToken},
		{"viewer@coversync.local", models.RoleViewer, &env.viewerToken},
	} {
		user, err := authenticator.Register(ctx, acc.email, acc.email, acc.role, "test-password")
		if err != nil {
			t.Fatalf("Register %s failed: %v", acc.email, err)
		}
		token, err := jwtManager.Generate(user)
		if err != nil {
			t.Fatalf("Generate token for %s failed: %v", acc.email, err)
		}
		*acc.token = token
	}

	env.server = httptest.NewServer(New(store, jwtManager).Routes())
	t.Cleanup(func() {
		env.server.Close()
		store.Close()
	})
	return env
}

// do issues a request against the test server. body is JSON-encoded when
// non-nil; token, when set, goes in the Authorization header.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.server.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return resp.StatusCode, payload
}

func decodeInto[T any](t *testing.T, payload []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(payload, &v); err != nil {
		t.Fatalf("decode response %q: %v", payload, err)
	}
	return v
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t)
	status, _ := env.do(t, http.MethodGet, "/healthz", "", nil)
	if status != http.StatusOK {
		t.Errorf("expected 200, got %d", status)
	}
}

func TestAuthRequired(t *testing.T) {
	env := newTestEnv(t)

	t.Run("no token", func(t *testing.T) {
		status, _ := env.do(t, http.MethodGet, "/api/clients", "", nil)
		if status != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", status)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		status, _ := env.do(t, http.MethodGet, "/api/clients", "not.a.token", nil)
		if status != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", status)
		}
	})
}

func TestLoginFlow(t *testing.T) {
	env := newTestEnv(t)

	status, payload := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "agent@coversync.local",
		"password": "test-password",
	})
	if status != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", status, payload)
	}
	login := decodeInto[loginResponse](t, payload)
	if login.Token == "" {
		t.Fatal("expected a token")
	}
	if login.User.Role != models.RoleAgent {
		t.Errorf("expected agent role, got %q", login.User.Role)
	}

	status, payload = env.do(t, http.MethodGet, "/api/clients", login.Token, nil)
	if status != http.StatusOK {
		t.Fatalf("authenticated list: expected 200, got %d", status)
	}
	clients := decodeInto[[]models.Client](t, payload)
	if len(clients) != 3 {
		t.Errorf("expected 3 seeded clients, got %d", len(clients))
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	env := newTestEnv(t)
	status, _ := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "agent@coversync.local",
		"password": "wrong-password",
	})
	if status != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", status)
	}
}

func TestRoleEnforcement(t *testing.T) {
	env := newTestEnv(t)

	t.Run("viewer can read", func(t *testing.T) {
		status, _ := env.do(t, http.MethodGet, "/api/policies", env.viewerToken, nil)
		if status != http.StatusOK {
			t.Errorf("expected 200, got %d", status)
		}
	})

	t.Run("viewer cannot write", func(t *testing.T) {
		status, _ := env.do(t, http.MethodPost, "/api/clients", env.viewerToken, map[string]any{"name": "X"})
		if status != http.StatusForbidden {
			t.Errorf("expected 403, got %d", status)
		}
	})

	t.Run("agent cannot manage partners", func(t *testing.T) {
		status, _ := env.do(t, http.MethodGet, "/api/partners", env.agentToken, nil)
		if status != http.StatusForbidden {
			t.Errorf("expected 403, got %d", status)
		}
	})

	t.Run("admin passes write checks", func(t *testing.T) {
		status, _ := env.do(t, http.MethodPost, "/api/clients", env.adminToken, map[string]any{"name": "Admin Made"})
		if status != http.StatusCreated {
			t.Errorf("expected 201, got %d", status)
		}
	})
}

func TestClientCRUDOverHTTP(t *testing.T) {
	env := newTestEnv(t)

	status, payload := env.do(t, http.MethodPost, "/api/clients", env.agentToken, map[string]any{
		"name":  "Lindiwe Khumalo",
		"email": "lindiwe@example.com",
		"phone": "+27 82 000 0000",
	})
	if status != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", status, payload)
	}
	created := decodeInto[models.Client](t, payload)
	if created.ID != 4 {
		t.Errorf("expected id 4 after the 3 seeded clients, got %d", created.ID)
	}

	path := fmt.Sprintf("/api/clients/%d", created.ID)

	status, payload = env.do(t, http.MethodGet, path, env.viewerToken, nil)
	if status != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", status)
	}
	got := decodeInto[models.Client](t, payload)
	if got.Name != "Lindiwe Khumalo" {
		t.Errorf("unexpected name %q", got.Name)
	}

	status, payload = env.do(t, http.MethodPut, path, env.agentToken, map[string]any{
		"phone": "+27 82 111 1111",
	})
	if status != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", status, payload)
	}
	updated := decodeInto[models.Client](t, payload)
	if updated.Phone != "+27 82 111 1111" {
		t.Errorf("patch did not apply: %q", updated.Phone)
	}
	if updated.Email != "lindiwe@example.com" {
		t.Errorf("patch clobbered email: %q", updated.Email)
	}

	status, _ = env.do(t, http.MethodDelete, path, env.agentToken, nil)
	if status != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", status)
	}

	status, _ = env.do(t, http.MethodGet, path, env.agentToken, nil)
	if status != http.StatusNotFound {
		t.Errorf("get after delete: expected 404, got %d", status)
	}

	status, _ = env.do(t, http.MethodDelete, path, env.agentToken, nil)
	if status != http.StatusNotFound {
		t.Errorf("repeat delete: expected 404, got %d", status)
	}
}

func TestCreateClientRejectsUnknownFields(t *testing.T) {
	env := newTestEnv(t)
	status, _ := env.do(t, http.MethodPost, "/api/clients", env.agentToken, map[string]any{
		"name":   "Typo Victim",
		"phonee": "+27 82 000 0000",
	})
	if status != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", status)
	}
}

func TestPolicyCreateAssignsNumber(t *testing.T) {
	env := newTestEnv(t)

	status, payload := env.do(t, http.MethodPost, "/api/policies", env.agentToken, map[string]any{
		"clientId":  1,
		"premium":   150.0,
		"status":    models.PolicyStatusActive,
		"startDate": "2024-01-01",
		"endDate":   "2025-01-01",
	})
	if status != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", status, payload)
	}
	policy := decodeInto[models.Policy](t, payload)
	if !strings.HasPrefix(policy.PolicyNumber, "POL-") {
		t.Errorf("expected generated policy number, got %q", policy.PolicyNumber)
	}
}

func TestPolicyTypesAreReadOnly(t *testing.T) {
	env := newTestEnv(t)

	status, payload := env.do(t, http.MethodGet, "/api/policy-types", env.viewerToken, nil)
	if status != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", status)
	}
	types := decodeInto[[]models.PolicyType](t, payload)
	if len(types) != 4 {
		t.Errorf("expected 4 seeded policy types, got %d", len(types))
	}

	// No mutation route is registered for the catalog.
	status, _ = env.do(t, http.MethodPost, "/api/policy-types", env.adminToken, map[string]any{"name": "X"})
	if status == http.StatusCreated {
		t.Error("catalog should not accept creates")
	}
}

func TestDashboardEndpoints(t *testing.T) {
	env := newTestEnv(t)

	status, payload := env.do(t, http.MethodGet, "/api/dashboard/stats", env.viewerToken, nil)
	if status != http.StatusOK {
		t.Fatalf("stats: expected 200, got %d", status)
	}
	stats := decodeInto[models.DashboardStats](t, payload)
	if stats.TotalPolicies == 0 {
		t.Error("expected seeded policies in stats")
	}

	status, payload = env.do(t, http.MethodGet, "/api/dashboard/recent", env.viewerToken, nil)
	if status != http.StatusOK {
		t.Fatalf("recent: expected 200, got %d", status)
	}
	recent := decodeInto[[]models.Policy](t, payload)
	if len(recent) > 10 {
		t.Errorf("recent list over cap: %d", len(recent))
	}
}

func TestPartnerSurface(t *testing.T) {
	env := newTestEnv(t)

	status, payload := env.do(t, http.MethodPost, "/api/partners", env.adminToken, map[string]any{
		"name":         "Burial Society Gateway",
		"contactEmail": "tech@society.example",
	})
	if status != http.StatusCreated {
		t.Fatalf("create partner: expected 201, got %d: %s", status, payload)
	}
	partner := decodeInto[models.Partner](t, payload)
	if partner.APIKey == "" {
		t.Fatal("expected a generated API key")
	}

	keyed := func(method, path, key string, body any) (int, []byte) {
		var reader io.Reader
		if body != nil {
			encoded, _ := json.Marshal(body)
			reader = bytes.NewReader(encoded)
		}
		req, err := http.NewRequest(method, env.server.URL+path, reader)
		if err != nil {
			t.Fatalf("build request: %v", err)
		}
		if key != "" {
			req.Header.Set("X-API-Key", key)
		}
		resp, err := env.server.Client().Do(req)
		if err != nil {
			t.Fatalf("%s %s failed: %v", method, path, err)
		}
		defer resp.Body.Close()
		out, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, out
	}

	t.Run("valid key reads catalog", func(t *testing.T) {
		status, payload := keyed(http.MethodGet, "/partner/api/policy-types", partner.APIKey, nil)
		if status != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", status, payload)
		}
		types := decodeInto[[]models.PolicyType](t, payload)
		if len(types) != 4 {
			t.Errorf("expected 4 policy types, got %d", len(types))
		}
	})

	t.Run("valid key lodges claim", func(t *testing.T) {
		status, payload := keyed(http.MethodPost, "/partner/api/claims", partner.APIKey, map[string]any{
			"policyId":    1,
			"clientId":    1,
			"amount":      25000.0,
			"description": "Funeral claim via partner channel",
			"submittedAt": "2024-03-01",
		})
		if status != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", status, payload)
		}
		claim := decodeInto[models.Claim](t, payload)
		if claim.Status != models.ClaimStatusPending {
			t.Errorf("expected Pending default status, got %q", claim.Status)
		}
		if !strings.HasPrefix(claim.ClaimNumber, "CLM-") {
			t.Errorf("expected generated claim number, got %q", claim.ClaimNumber)
		}
	})

	t.Run("missing key rejected", func(t *testing.T) {
		status, _ := keyed(http.MethodGet, "/partner/api/policy-types", "", nil)
		if status != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", status)
		}
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		status, _ := keyed(http.MethodGet, "/partner/api/policy-types", "bogus-key", nil)
		if status != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", status)
		}
	})

	t.Run("rotation invalidates old key", func(t *testing.T) {
		status, payload := env.do(t, http.MethodPost, fmt.Sprintf("/api/partners/%d/rotate-key", partner.ID), env.adminToken, nil)
		if status != http.StatusOK {
			t.Fatalf("rotate: expected 200, got %d: %s", status, payload)
		}
		rotated := decodeInto[models.Partner](t, payload)
		if rotated.APIKey == partner.APIKey {
			t.Fatal("expected a new key after rotation")
		}

		if status, _ := keyed(http.MethodGet, "/partner/api/policy-types", partner.APIKey, nil); status != http.StatusUnauthorized {
			t.Errorf("old key should be rejected, got %d", status)
		}
		if status, _ := keyed(http.MethodGet, "/partner/api/policy-types", rotated.APIKey, nil); status != http.StatusOK {
			t.Errorf("new key should work, got %d", status)
		}

		partner = rotated
	})

	t.Run("suspended partner rejected", func(t *testing.T) {
		suspended := models.PartnerStatusSuspended
		status, payload := env.do(t, http.MethodPut, fmt.Sprintf("/api/partners/%d", partner.ID), env.adminToken, models.PartnerPatch{Status: &suspended})
		if status != http.StatusOK {
			t.Fatalf("suspend: expected 200, got %d: %s", status, payload)
		}
		if status, _ := keyed(http.MethodGet, "/partner/api/policy-types", partner.APIKey, nil); status != http.StatusForbidden {
			t.Errorf("expected 403 for suspended partner, got %d", status)
		}
	})
}

func TestAuditTrailRecordsMutations(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.do(t, http.MethodPost, "/api/clients", env.agentToken, map[string]any{"name": "Audited Client"})
	if status != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", status)
	}

	status, payload := env.do(t, http.MethodGet, "/api/audit", env.adminToken, nil)
	if status != http.StatusOK {
		t.Fatalf("audit: expected 200, got %d", status)
	}
	entries := decodeInto[[]models.AuditEntry](t, payload)
	if len(entries) == 0 {
		t.Fatal("expected at least one audit entry")
	}
	latest := entries[0]
	if latest.Actor != "agent@coversync.local" {
		t.Errorf("expected actor from the JWT, got %q", latest.Actor)
	}
	if latest.Entity != "client" || latest.Action != models.AuditActionCreate {
		t.Errorf("unexpected entry %+v", latest)
	}
}

func TestUserEndpointsHidePasswordHash(t *testing.T) {
	env := newTestEnv(t)

	status, payload := env.do(t, http.MethodGet, "/api/users", env.adminToken, nil)
	if status != http.StatusOK {
		t.Fatalf("list users: expected 200, got %d", status)
	}
	if bytes.Contains(payload, []byte("passwordHash")) || bytes.Contains(payload, []byte("$2a$")) {
		t.Error("user listing leaks password material")
	}

	var views []userView
	if err := json.Unmarshal(payload, &views); err != nil {
		t.Fatalf("decode users: %v", err)
	}
	if len(views) != 3 {
		t.Errorf("expected 3 users, got %d", len(views))
	}
}
