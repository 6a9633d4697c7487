package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"uniconv/internal/calc"
)

const dateLayout = "2006-01-02"

// CalcHandler handles the calculator APIs under /api/v1/calc.
type CalcHandler struct{}

// NewCalcHandler constructs a handler.
func NewCalcHandler() *CalcHandler {
	return &CalcHandler{}
}

// ServeHTTP routes calculator requests.
func (h *CalcHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/api/v1/calc/bearing":
		h.handleBearing(w, r)
	case "/api/v1/calc/area/rectangle":
		h.handleRectangle(w, r)
	case "/api/v1/calc/area/circle":
		h.handleCircle(w, r)
	case "/api/v1/calc/datediff":
		h.handleDateDiff(w, r)
	case "/api/v1/calc/fraction":
		h.handleFraction(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *CalcHandler) handleBearing(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ObserverLat float64 `json:"observer_lat"`
		ObserverLon float64 `json:"observer_lon"`
		TargetLat   float64 `json:"target_lat"`
		TargetLon   float64 `json:"target_lon"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	bearing := calc.Bearing(req.ObserverLat, req.ObserverLon, req.TargetLat, req.TargetLon)
	respondJSON(w, map[string]any{"bearing": bearing})
}

func (h *CalcHandler) handleRectangle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Length float64 `json:"length"`
		Width  float64 `json:"width"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	respondJSON(w, map[string]any{"area": calc.RectangleArea(req.Length, req.Width)})
}

func (h *CalcHandler) handleCircle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Radius float64 `json:"radius"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	respondJSON(w, map[string]any{"area": calc.CircleArea(req.Radius)})
}

func (h *CalcHandler) handleDateDiff(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date1 string `json:"date1"`
		Date2 string `json:"date2"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	d1, err := time.Parse(dateLayout, req.Date1)
	if err != nil {
		http.Error(w, "invalid date1", http.StatusBadRequest)
		return
	}
	d2, err := time.Parse(dateLayout, req.Date2)
	if err != nil {
		http.Error(w, "invalid date2", http.StatusBadRequest)
		return
	}
	respondJSON(w, map[string]any{"days": calc.DateDifferenceInDays(d1, d2)})
}

func (h *CalcHandler) handleFraction(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Decimal string `json:"decimal"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	frac, err := calc.DecimalToFraction(req.Decimal)
	if err != nil {
		if errors.Is(err, calc.ErrNotANumber) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, map[string]any{
		"numerator":   frac.Numerator,
		"denominator": frac.Denominator,
	})
}

func respondJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}
