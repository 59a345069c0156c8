package export

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the export download endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/export", func(r chi.Router) {
		r.Get("/csv", h.exportCSV)
		r.Get("/pdf", h.exportPDF)
	})
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.CSV(r.Context())
	if err != nil {
		log.Printf("export: %v", err)
		http.Error(w, "Failed to generate CSV export", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="inventory.csv"`)
	w.Write(data)
}

func (h *Handler) exportPDF(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.PDF(r.Context())
	if err != nil {
		log.Printf("export: %v", err)
		http.Error(w, "Failed to generate PDF export", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="inventory.pdf"`)
	w.Write(data)
}
