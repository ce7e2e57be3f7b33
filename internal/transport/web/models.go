package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type modelsResponse struct {
	Models []string `json:"models"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Models handles GET /models: the model ids usable for summaries.
func (h *Handler) Models(w http.ResponseWriter, r *http.Request) {
	models, err := h.models.ListModels(r.Context())
	if err != nil {
		h.log.WarnContext(r.Context(), "list models failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}
	if models == nil {
		models = []string{}
	}
	writeJSON(w, http.StatusOK, modelsResponse{Models: models})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
