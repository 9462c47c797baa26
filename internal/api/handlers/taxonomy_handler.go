package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/accessihire/backend/internal/api/types"
	"github.com/accessihire/backend/internal/taxonomy"
)

// TaxonomyHandler proxies the public skills and jobs taxonomy endpoints.
// Responses come back verbatim inside the usual envelope.
type TaxonomyHandler struct {
	client *taxonomy.Client
	env    string
}

func NewTaxonomyHandler(client *taxonomy.Client, env string) *TaxonomyHandler {
	return &TaxonomyHandler{client: client, env: env}
}

func (h *TaxonomyHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, "/skills")
}

func (h *TaxonomyHandler) AutocompleteSkills(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, "/skills/autocomplete")
}

func (h *TaxonomyHandler) GetSkill(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, "/skills/"+chi.URLParam(r, "id"))
}

func (h *TaxonomyHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, "/jobs")
}

func (h *TaxonomyHandler) AutocompleteJobs(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, "/jobs/autocomplete")
}

func (h *TaxonomyHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, "/jobs/"+chi.URLParam(r, "id"))
}

func (h *TaxonomyHandler) forward(w http.ResponseWriter, r *http.Request, path string) {
	payload, err := h.client.Forward(r.Context(), path, r.URL.Query())
	if err != nil {
		writeError(w, err, h.env)
		return
	}
	writeJSON(w, http.StatusOK, types.Envelope{Status: types.StatusSuccess, Data: payload})
}
