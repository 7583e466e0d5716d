package api

import "net/http"

func (h *Handler) dashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.Stats(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (h *Handler) recentPolicies(w http.ResponseWriter, r *http.Request) {
	policies, err := h.dashboard.RecentPolicies(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, policies)
}

func (h *Handler) renewalPolicies(w http.ResponseWriter, r *http.Request) {
	policies, err := h.dashboard.RenewalPolicies(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, policies)
}
