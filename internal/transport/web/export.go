package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

// ExportPDF handles GET /export_pdf. The document is rendered in full
// before the first byte is written.
func (h *Handler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	doc, err := h.export.ExportPDF(r.Context())
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError, err)
		return
	}

	h.obs.ObserveExport(doc.Pages)

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Data); err != nil {
		h.log.WarnContext(r.Context(), "pdf write interrupted", slog.String("error", err.Error()))
	}
}
