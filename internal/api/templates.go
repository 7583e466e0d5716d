package api

import (
	"net/http"

	"github.com/coversync/coversync/internal/models"
)

func (h *Handler) listTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.templates.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, templates)
}

func (h *Handler) getTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid template id")
		return
	}
	tmpl, err := h.templates.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tmpl)
}

func (h *Handler) createTemplate(w http.ResponseWriter, r *http.Request) {
	var tmpl models.SmsTemplate
	if err := decodeBody(r, &tmpl); err != nil {
		badRequest(w, "invalid template body: "+err.Error())
		return
	}
	if tmpl.Name == "" || tmpl.Body == "" {
		badRequest(w, "name and body are required")
		return
	}
	if err := h.templates.Create(r.Context(), &tmpl); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, tmpl)
}

func (h *Handler) updateTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid template id")
		return
	}
	var patch models.SmsTemplatePatch
	if err := decodeBody(r, &patch); err != nil {
		badRequest(w, "invalid template patch: "+err.Error())
		return
	}
	tmpl, err := h.templates.Update(r.Context(), id, patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tmpl)
}

func (h *Handler) deleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid template id")
		return
	}
	removed, err := h.templates.Delete(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	if !removed {
		respondJSON(w, http.StatusNotFound, map[string]string{"error": "template not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
