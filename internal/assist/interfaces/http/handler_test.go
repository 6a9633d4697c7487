package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"uniconv/internal/assist"
	assisthttp "uniconv/internal/assist/interfaces/http"
	"uniconv/internal/catalog/application"
	catalog "uniconv/internal/catalog/domain"
)

func newService(t *testing.T) *application.ConversionService {
	t.Helper()
	svc, err := application.NewConversionService(catalog.DefaultCatalog())
	if err != nil {
		t.Fatalf("new conversion service: %v", err)
	}
	return svc
}

func TestAssistConvertPrefersLocalResult(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The model's own arithmetic is off; the handler recomputes.
		_, _ = w.Write([]byte(`{"category":"Length","from":"km","to":"m","value":2,"result":1999}`))
	}))
	defer upstream.Close()

	client, err := assist.NewClient(upstream.URL, "test-key")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	h, err := assisthttp.NewAssistHandler(client, newService(t), nil)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/assist/convert",
		strings.NewReader(`{"query":"2 km in meters"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Result   float64 `json:"result"`
		Verified bool    `json:"verified"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Verified {
		t.Fatal("expected locally verified result")
	}
	if resp.Result != 2000 {
		t.Fatalf("result = %v, want 2000", resp.Result)
	}
}

func TestAssistConvertKeepsModelResultWhenUnresolvable(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"category":"Currency","from":"USD","to":"EUR","value":5,"result":4.6}`))
	}))
	defer upstream.Close()

	client, err := assist.NewClient(upstream.URL, "test-key")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	h, err := assisthttp.NewAssistHandler(client, newService(t), nil)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/assist/convert",
		strings.NewReader(`{"query":"5 dollars in euros"}`)))
	var resp struct {
		Result   float64 `json:"result"`
		Verified bool    `json:"verified"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Verified {
		t.Fatal("currency must not verify against the unit catalog")
	}
	if resp.Result != 4.6 {
		t.Fatalf("result = %v, want the model's 4.6", resp.Result)
	}
}

func TestAssistUnconfigured(t *testing.T) {
	h, err := assisthttp.NewAssistHandler(nil, newService(t), nil)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/assist/convert",
		strings.NewReader(`{"query":"anything"}`)))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestAssistUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	client, err := assist.NewClient(upstream.URL, "test-key")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	h, err := assisthttp.NewAssistHandler(client, newService(t), nil)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/assist/image",
		strings.NewReader(`{"prompt":"a ruler"}`)))
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}
