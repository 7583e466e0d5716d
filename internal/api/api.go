// Package api exposes the back-office REST surface: JSON CRUD per resource
// under /api, and a small key-authenticated partner surface under
// /partner/api.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/coversync/coversync/internal/auth"
	"github.com/coversync/coversync/internal/middleware"
	"github.com/coversync/coversync/internal/models"
	"github.com/coversync/coversync/internal/service"
	"github.com/coversync/coversync/internal/storage"
)

// Handler holds the services behind the REST surface.
type Handler struct {
	clients    *service.ClientService
	policies   *service.PolicyService
	claims     *service.ClaimService
	dashboard  *service.DashboardService
	templates  *service.TemplateService
	partners   *service.PartnerService
	users      *service.UserService
	jwtManager *auth.JWTManager
	store      storage.Store
}

// New wires a Handler over the given store and token manager.
func New(store storage.Store, jwtManager *auth.JWTManager) *Handler {
	authenticator := auth.NewPasswordAuthenticator(store)
	return &Handler{
		clients:    service.NewClientService(store),
		policies:   service.NewPolicyService(store),
		claims:     service.NewClaimService(store),
		dashboard:  service.NewDashboardService(store),
		templates:  service.NewTemplateService(store),
		partners:   service.NewPartnerService(store),
		users:      service.NewUserService(store, authenticator, jwtManager),
		jwtManager: jwtManager,
		store:      store,
	}
}

// Routes builds the route table. Reads need any authenticated staff role;
// mutations need agent (or admin); user and partner management is
// admin-only. The partner surface authenticates with X-API-Key instead.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	requireAuth := middleware.RequireAuth(h.jwtManager)
	read := func(fn http.HandlerFunc) http.Handler {
		return requireAuth(middleware.RequireRole(models.RoleAgent, models.RoleViewer)(fn))
	}
	write := func(fn http.HandlerFunc) http.Handler {
		return requireAuth(middleware.RequireRole(models.RoleAgent)(fn))
	}
	admin := func(fn http.HandlerFunc) http.Handler {
		return requireAuth(middleware.RequireRole()(fn))
	}

	// Session endpoints.
	mux.HandleFunc("POST /api/auth/login", h.login)
	mux.Handle("POST /api/auth/register", admin(h.register))

	// Clients.
	mux.Handle("GET /api/clients", read(h.listClients))
	mux.Handle("POST /api/clients", write(h.createClient))
	mux.Handle("GET /api/clients/{id}", read(h.getClient))
	mux.Handle("PUT /api/clients/{id}", write(h.updateClient))
	mux.Handle("DELETE /api/clients/{id}", write(h.deleteClient))

	// Policies.
	mux.Handle("GET /api/policies", read(h.listPolicies))
	mux.Handle("POST /api/policies", write(h.createPolicy))
	mux.Handle("GET /api/policies/{id}", read(h.getPolicy))
	mux.Handle("PUT /api/policies/{id}", write(h.updatePolicy))
	mux.Handle("DELETE /api/policies/{id}", write(h.deletePolicy))

	// Claims.
	mux.Handle("GET /api/claims", read(h.listClaims))
	mux.Handle("POST /api/claims", write(h.createClaim))
	mux.Handle("GET /api/claims/{id}", read(h.getClaim))
	mux.Handle("PUT /api/claims/{id}", write(h.updateClaim))
	mux.Handle("DELETE /api/claims/{id}", write(h.deleteClaim))

	// Cover product catalog (read-only).
	mux.Handle("GET /api/policy-types", read(h.listPolicyTypes))
	mux.Handle("GET /api/policy-types/{id}", read(h.getPolicyType))

	// Dashboard.
	mux.Handle("GET /api/dashboard/stats", read(h.dashboardStats))
	mux.Handle("GET /api/dashboard/recent", read(h.recentPolicies))
	mux.Handle("GET /api/dashboard/renewals", read(h.renewalPolicies))

	// SMS templates.
	mux.Handle("GET /api/sms-templates", read(h.listTemplates))
	mux.Handle("POST /api/sms-templates", write(h.createTemplate))
	mux.Handle("GET /api/sms-templates/{id}", read(h.getTemplate))
	mux.Handle("PUT /api/sms-templates/{id}", write(h.updateTemplate))
	mux.Handle("DELETE /api/sms-templates/{id}", write(h.deleteTemplate))

	// Partner console (admin) and audit trail.
	mux.Handle("GET /api/partners", admin(h.listPartners))
	mux.Handle("POST /api/partners", admin(h.createPartner))
	mux.Handle("GET /api/partners/{id}", admin(h.getPartner))
	mux.Handle("PUT /api/partners/{id}", admin(h.updatePartner))
	mux.Handle("DELETE /api/partners/{id}", admin(h.deletePartner))
	mux.Handle("POST /api/partners/{id}/rotate-key", admin(h.rotatePartnerKey))
	mux.Handle("GET /api/audit", admin(h.listAudit))

	// Users (admin).
	mux.Handle("GET /api/users", admin(h.listUsers))
	mux.Handle("GET /api/users/{id}", admin(h.getUser))
	mux.Handle("PUT /api/users/{id}", admin(h.updateUser))
	mux.Handle("DELETE /api/users/{id}", admin(h.deleteUser))

	// Partner integration surface, authenticated by API key.
	requireKey := middleware.RequireAPIKey(h.store)
	mux.Handle("GET /partner/api/policy-types", requireKey(http.HandlerFunc(h.listPolicyTypes)))
	mux.Handle("POST /partner/api/claims", requireKey(http.HandlerFunc(h.createClaim)))

	mux.HandleFunc("GET /healthz", h.healthz)

	return mux
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// respondJSON writes v as the JSON response body.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encoding failed", "error", err)
	}
}

// respondError maps service errors onto HTTP statuses with a JSON body.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, storage.ErrStorageUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		status = http.StatusUnauthorized
	case errors.Is(err, auth.ErrWeakPassword),
		errors.Is(err, auth.ErrUnknownRole),
		errors.Is(err, auth.ErrEmailExists):
		status = http.StatusBadRequest
	}
	respondJSON(w, status, map[string]string{"error": err.Error()})
}

// badRequest writes a 400 with the given message.
func badRequest(w http.ResponseWriter, msg string) {
	respondJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// decodeBody decodes the request body into v, rejecting unknown fields so
// typos in patch bodies fail loudly instead of silently doing nothing.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
