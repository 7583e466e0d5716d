package api

import (
	"net/http"

	"github.com/coversync/coversync/internal/models"
)

func (h *Handler) listClaims(w http.ResponseWriter, r *http.Request) {
	claims, err := h.claims.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, claims)
}

func (h *Handler) getClaim(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid claim id")
		return
	}
	claim, err := h.claims.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, claim)
}

func (h *Handler) createClaim(w http.ResponseWriter, r *http.Request) {
	var claim models.Claim
	if err := decodeBody(r, &claim); err != nil {
		badRequest(w, "invalid claim body: "+err.Error())
		return
	}
	if claim.PolicyID == 0 {
		badRequest(w, "policyId is required")
		return
	}
	if err := h.claims.Create(r.Context(), &claim); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, claim)
}

func (h *Handler) updateClaim(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid claim id")
		return
	}
	var patch models.ClaimPatch
	if err := decodeBody(r, &patch); err != nil {
		badRequest(w, "invalid claim patch: "+err.Error())
		return
	}
	claim, err := h.claims.Update(r.Context(), id, patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, claim)
}

func (h *Handler) deleteClaim(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid claim id")
		return
	}
	removed, err := h.claims.Delete(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	if !removed {
		respondJSON(w, http.StatusNotFound, map[string]string{"error": "claim not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
