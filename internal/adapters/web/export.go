package web

import (
	"bytes"
	"net/http"

	"eventify/internal/application"
	"eventify/internal/metrics"
)

// HandleExport serves every registration as a CSV attachment.
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.exportUseCase.ExportCSV(r.Context(), &buf); err != nil {
		h.fail(w, r, err)
		return
	}
	metrics.CSVExports.Inc()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+application.ExportFilename)
	_, _ = buf.WriteTo(w)
}
