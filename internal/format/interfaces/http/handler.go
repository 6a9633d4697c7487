package http

import (
	"encoding/json"
	"net/http"

	"uniconv/internal/format"
)

// FormatHandler handles the stopwatch and color tool APIs.
type FormatHandler struct{}

// NewFormatHandler constructs a handler.
func NewFormatHandler() *FormatHandler {
	return &FormatHandler{}
}

// ServeHTTP routes formatting requests.
func (h *FormatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/api/v1/format/elapsed":
		h.handleElapsed(w, r)
	case "/api/v1/color/hex":
		h.handleToHex(w, r)
	case "/api/v1/color/rgb":
		h.handleToRGB(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *FormatHandler) handleElapsed(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Milliseconds int64 `json:"milliseconds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	respondJSON(w, map[string]any{"elapsed": format.Elapsed(req.Milliseconds)})
}

func (h *FormatHandler) handleToHex(w http.ResponseWriter, r *http.Request) {
	var req struct {
		R int `json:"r"`
		G int `json:"g"`
		B int `json:"b"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	hex, err := format.RGBToHex(req.R, req.G, req.B)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respondJSON(w, map[string]any{"hex": hex})
}

func (h *FormatHandler) handleToRGB(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Hex string `json:"hex"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	r8, g8, b8, err := format.HexToRGB(req.Hex)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respondJSON(w, map[string]any{"r": r8, "g": g8, "b": b8})
}

func respondJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}
