package http

import (
	"errors"
	"log"
	"net/http"

	catalog "uniconv/internal/catalog/domain"
	"uniconv/internal/export"
)

// ReferenceHandler serves the downloadable unit-reference sheets.
type ReferenceHandler struct {
	catalog *catalog.Catalog
	logger  *log.Logger
}

// NewReferenceHandler constructs a handler.
func NewReferenceHandler(c *catalog.Catalog, logger *log.Logger) (*ReferenceHandler, error) {
	if c == nil {
		return nil, errors.New("reference handler: nil catalog")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &ReferenceHandler{catalog: c, logger: logger}, nil
}

// ServeHTTP handles GET /api/v1/reference.xlsx and /api/v1/reference.pdf.
func (h *ReferenceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/api/v1/reference.xlsx":
		h.handleWorkbook(w)
	case "/api/v1/reference.pdf":
		h.handleChart(w)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *ReferenceHandler) handleWorkbook(w http.ResponseWriter) {
	f, err := export.Workbook(h.catalog)
	if err != nil {
		h.logger.Printf("reference workbook: %v", err)
		http.Error(w, "export error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="uniconv-reference.xlsx"`)
	if err := f.Write(w); err != nil {
		h.logger.Printf("reference workbook: write: %v", err)
	}
}

func (h *ReferenceHandler) handleChart(w http.ResponseWriter) {
	pdf, err := export.Chart(h.catalog)
	if err != nil {
		h.logger.Printf("reference chart: %v", err)
		http.Error(w, "export error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="uniconv-reference.pdf"`)
	if err := pdf.Output(w); err != nil {
		h.logger.Printf("reference chart: write: %v", err)
	}
}
