package api

import (
	"net/http"

	"github.com/coversync/coversync/internal/models"
)

func (h *Handler) listPolicies(w http.ResponseWriter, r *http.Request) {
	policies, err := h.policies.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, policies)
}

func (h *Handler) getPolicy(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid policy id")
		return
	}
	policy, err := h.policies.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, policy)
}

func (h *Handler) createPolicy(w http.ResponseWriter, r *http.Request) {
	var policy models.Policy
	if err := decodeBody(r, &policy); err != nil {
		badRequest(w, "invalid policy body: "+err.Error())
		return
	}
	if policy.ClientID == 0 {
		badRequest(w, "clientId is required")
		return
	}
	if err := h.policies.Create(r.Context(), &policy); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, policy)
}

func (h *Handler) updatePolicy(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid policy id")
		return
	}
	var patch models.PolicyPatch
	if err := decodeBody(r, &patch); err != nil {
		badRequest(w, "invalid policy patch: "+err.Error())
		return
	}
	policy, err := h.policies.Update(r.Context(), id, patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, policy)
}

func (h *Handler) deletePolicy(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid policy id")
		return
	}
	removed, err := h.policies.Delete(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	if !removed {
		respondJSON(w, http.StatusNotFound, map[string]string{"error": "policy not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listPolicyTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.policies.ListTypes(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, types)
}

func (h *Handler) getPolicyType(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid policy type id")
		return
	}
	pt, err := h.policies.GetType(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, pt)
}
