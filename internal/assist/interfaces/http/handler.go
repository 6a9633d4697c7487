package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"uniconv/internal/assist"
	"uniconv/internal/catalog/application"
	"uniconv/internal/observability/metrics"
)

// AssistHandler handles the generative-assist APIs. The client may be nil
// when no API key is configured; requests then return 503.
type AssistHandler struct {
	client  *assist.Client
	service *application.ConversionService
	logger  *log.Logger
}

// NewAssistHandler constructs a handler.
func NewAssistHandler(client *assist.Client, service *application.ConversionService, logger *log.Logger) (*AssistHandler, error) {
	if service == nil {
		return nil, errors.New("assist handler: nil conversion service")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &AssistHandler{client: client, service: service, logger: logger}, nil
}

// ServeHTTP routes assist requests.
func (h *AssistHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if h.client == nil {
		http.Error(w, "assist not configured", http.StatusServiceUnavailable)
		return
	}
	switch r.URL.Path {
	case "/api/v1/assist/convert":
		h.handleConvert(w, r)
	case "/api/v1/assist/image":
		h.handleImage(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *AssistHandler) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	conv, err := h.client.Convert(r.Context(), req.Query)
	if err != nil {
		h.logger.Printf("assist convert: %v", err)
		metrics.IncAssistRequest(metrics.AssistKindConvert, metrics.AssistResultError)
		http.Error(w, "assist upstream error", http.StatusBadGateway)
		return
	}
	// When the model's units resolve in the local catalog, recompute
	// the result locally and prefer it over the model's arithmetic.
	verified := false
	if local, err := h.service.Convert(conv.Category, conv.From, conv.To, conv.Value); err == nil {
		conv.Result = local
		verified = true
	}
	metrics.IncAssistRequest(metrics.AssistKindConvert, metrics.AssistResultSuccess)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"category": conv.Category,
		"from":     conv.From,
		"to":       conv.To,
		"value":    conv.Value,
		"result":   conv.Result,
		"verified": verified,
	})
}

func (h *AssistHandler) handleImage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	image, err := h.client.GenerateImage(r.Context(), req.Prompt)
	if err != nil {
		h.logger.Printf("assist image: %v", err)
		metrics.IncAssistRequest(metrics.AssistKindImage, metrics.AssistResultError)
		http.Error(w, "assist upstream error", http.StatusBadGateway)
		return
	}
	metrics.IncAssistRequest(metrics.AssistKindImage, metrics.AssistResultSuccess)
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(image)
}
