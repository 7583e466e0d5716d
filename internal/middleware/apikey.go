package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/coversync/coversync/internal/models"
	"github.com/coversync/coversync/internal/storage"
)

// PartnerLookup resolves an API key to a partner record.
type PartnerLookup interface {
	GetPartnerByAPIKey(ctx context.Context, key string) (*models.Partner, error)
}

// RequireAPIKey returns middleware that validates the X-API-Key header
// against the partner collection. Suspended partners are rejected. The
// partner's name is added to the request context.
func RequireAPIKey(partners PartnerLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-API-Key")
			if key == "" {
				unauthorized(w, http.StatusUnauthorized, "API key required")
				return
			}

			partner, err := partners.GetPartnerByAPIKey(r.Context(), key)
			if errors.Is(err, storage.ErrNotFound) {
				unauthorized(w, http.StatusUnauthorized, "unknown API key")
				return
			}
			if err != nil {
				unauthorized(w, http.StatusInternalServerError, "storage error")
				return
			}
			if partner.Status != models.PartnerStatusActive {
				unauthorized(w, http.StatusForbidden, "partner suspended")
				return
			}

			ctx := context.WithValue(r.Context(), partnerKey, partner.Name)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
