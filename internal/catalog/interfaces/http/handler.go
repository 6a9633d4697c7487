package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"uniconv/internal/catalog/application"
	catalog "uniconv/internal/catalog/domain"
)

// ConversionHandler handles catalog and conversion APIs.
type ConversionHandler struct {
	service *application.ConversionService
}

// NewConversionHandler constructs a handler.
func NewConversionHandler(service *application.ConversionService) (*ConversionHandler, error) {
	if service == nil {
		return nil, errors.New("conversion handler: nil service")
	}
	return &ConversionHandler{service: service}, nil
}

// ServeHTTP handles routes under /api/v1/categories and /api/v1/convert.
func (h *ConversionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/v1/categories" && r.Method == http.MethodGet:
		h.handleCategories(w, r)
	case r.URL.Path == "/api/v1/convert" && r.Method == http.MethodPost:
		h.handleConvert(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

type unitView struct {
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	Factor float64 `json:"factor,omitempty"`
}

type categoryView struct {
	Name        string     `json:"name"`
	Units       []unitView `json:"units"`
	DefaultFrom string     `json:"default_from"`
	DefaultTo   string     `json:"default_to"`
}

func (h *ConversionHandler) handleCategories(w http.ResponseWriter, r *http.Request) {
	_ = r
	cats := h.service.Categories()
	views := make([]categoryView, 0, len(cats))
	for _, c := range cats {
		units := make([]unitView, 0, len(c.Units))
		for _, u := range c.Units {
			units = append(units, unitView{Name: u.Name, Symbol: u.Symbol, Factor: u.Factor})
		}
		from, to := c.DefaultPair()
		views = append(views, categoryView{
			Name:        c.Name,
			Units:       units,
			DefaultFrom: from.Symbol,
			DefaultTo:   to.Symbol,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"categories": views})
}

func (h *ConversionHandler) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Category string  `json:"category"`
		From     string  `json:"from"`
		To       string  `json:"to"`
		Value    float64 `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	result, err := h.service.Convert(req.Category, req.From, req.To, req.Value)
	if err != nil {
		respondConvertError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"category": req.Category,
		"from":     req.From,
		"to":       req.To,
		"value":    req.Value,
		"result":   result,
	})
}

func respondConvertError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrCategoryNotFound), errors.Is(err, catalog.ErrUnitNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, application.ErrNotFinite), errors.Is(err, catalog.ErrKindMismatch):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
