package api

import (
	"net/http"

	"github.com/coversync/coversync/internal/models"
)

func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clients.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, clients)
}

func (h *Handler) getClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid client id")
		return
	}
	client, err := h.clients.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, client)
}

func (h *Handler) createClient(w http.ResponseWriter, r *http.Request) {
	var client models.Client
	if err := decodeBody(r, &client); err != nil {
		badRequest(w, "invalid client body: "+err.Error())
		return
	}
	if client.Name == "" {
		badRequest(w, "name is required")
		return
	}
	if err := h.clients.Create(r.Context(), &client); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, client)
}

func (h *Handler) updateClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid client id")
		return
	}
	var patch models.ClientPatch
	if err := decodeBody(r, &patch); err != nil {
		badRequest(w, "invalid client patch: "+err.Error())
		return
	}
	client, err := h.clients.Update(r.Context(), id, patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, client)
}

func (h *Handler) deleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid client id")
		return
	}
	removed, err := h.clients.Delete(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	if !removed {
		respondJSON(w, http.StatusNotFound, map[string]string{"error": "client not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
