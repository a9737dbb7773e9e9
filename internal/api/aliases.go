package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/neexbeast/fishcast/internal/storage"
)

type aliasRequest struct {
	Query string `json:"query"`
}

// ListAliases handles GET /api/v1/aliases.
func (h *Handlers) ListAliases(w http.ResponseWriter, r *http.Request) {
	aliases, err := h.aliases.ListAliases(r.Context())
	if err != nil {
		h.log.Error("list aliases failed", "err", err)
		writeError(w, err)
		return
	}
	if aliases == nil {
		aliases = []storage.Alias{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"aliases": aliases})
}

// PutAlias handles PUT /api/v1/aliases/{alias} with a {"query": "..."} body.
// The alias takes effect on the next lookup; cached reports are left to expire.
func (h *Handlers) PutAlias(w http.ResponseWriter, r *http.Request) {
	alias := strings.TrimSpace(chi.URLParam(r, "alias"))
	if alias == "" {
		writeError(w, badRequest("alias is required"))
		return
	}

	var req aliasRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, badRequest("invalid alias body: %v", err))
		return
	}
	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		writeError(w, badRequest("query is required"))
		return
	}

	if err := h.aliases.UpsertAlias(r.Context(), alias, req.Query); err != nil {
		h.log.Error("upsert alias failed", "alias", alias, "err", err)
		writeError(w, err)
		return
	}

	h.log.Info("alias saved", "alias", alias, "query", req.Query)
	writeJSON(w, http.StatusOK, storage.Alias{Alias: strings.ToLower(alias), Query: req.Query})
}
