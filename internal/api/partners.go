package api

import (
	"net/http"

	"github.com/coversync/coversync/internal/models"
)

func (h *Handler) listPartners(w http.ResponseWriter, r *http.Request) {
	partners, err := h.partners.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, partners)
}

func (h *Handler) getPartner(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid partner id")
		return
	}
	partner, err := h.partners.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, partner)
}

func (h *Handler) createPartner(w http.ResponseWriter, r *http.Request) {
	var partner models.Partner
	if err := decodeBody(r, &partner); err != nil {
		badRequest(w, "invalid partner body: "+err.Error())
		return
	}
	if partner.Name == "" {
		badRequest(w, "name is required")
		return
	}
	if err := h.partners.Create(r.Context(), &partner); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, partner)
}

func (h *Handler) updatePartner(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid partner id")
		return
	}
	var patch models.PartnerPatch
	if err := decodeBody(r, &patch); err != nil {
		badRequest(w, "invalid partner patch: "+err.Error())
		return
	}
	partner, err := h.partners.Update(r.Context(), id, patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, partner)
}

func (h *Handler) deletePartner(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid partner id")
		return
	}
	removed, err := h.partners.Delete(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	if !removed {
		respondJSON(w, http.StatusNotFound, map[string]string{"error": "partner not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) rotatePartnerKey(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid partner id")
		return
	}
	partner, err := h.partners.RotateKey(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, partner)
}

func (h *Handler) listAudit(w http.ResponseWriter, r *http.Request) {
	entries, err := h.users.AuditTrail(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}
