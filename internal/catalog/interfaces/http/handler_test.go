package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"uniconv/internal/catalog/application"
	catalog "uniconv/internal/catalog/domain"
	cataloghttp "uniconv/internal/catalog/interfaces/http"
)

func newHandler(t *testing.T) *cataloghttp.ConversionHandler {
	t.Helper()
	svc, err := application.NewConversionService(catalog.DefaultCatalog())
	if err != nil {
		t.Fatalf("new conversion service: %v", err)
	}
	h, err := cataloghttp.NewConversionHandler(svc)
	if err != nil {
		t.Fatalf("new conversion handler: %v", err)
	}
	return h
}

func TestHandleCategories(t *testing.T) {
	h := newHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Categories []struct {
			Name        string `json:"name"`
			DefaultFrom string `json:"default_from"`
			DefaultTo   string `json:"default_to"`
			Units       []struct {
				Symbol string `json:"symbol"`
			} `json:"units"`
		} `json:"categories"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Categories) != 10 {
		t.Fatalf("categories = %d, want 10", len(resp.Categories))
	}
	if resp.Categories[0].Name != "Length" {
		t.Fatalf("first category = %q, want Length", resp.Categories[0].Name)
	}
	if resp.Categories[0].DefaultFrom != "m" || resp.Categories[0].DefaultTo != "km" {
		t.Fatalf("Length default pair = %s/%s, want m/km",
			resp.Categories[0].DefaultFrom, resp.Categories[0].DefaultTo)
	}
}

func TestHandleConvert(t *testing.T) {
	h := newHandler(t)

	body := `{"category":"Temperature","from":"C","to":"F","value":100}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/convert", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Result float64 `json:"result"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Result != 212 {
		t.Fatalf("result = %v, want 212", resp.Result)
	}
}

func TestHandleConvertErrors(t *testing.T) {
	h := newHandler(t)

	cases := []struct {
		name string
		body string
		want int
	}{
		{"invalid json", `{`, http.StatusBadRequest},
		{"unknown unit", `{"category":"Length","from":"m","to":"cubit","value":1}`, http.StatusNotFound},
		{"unknown category", `{"category":"Sound","from":"dB","to":"dB","value":1}`, http.StatusNotFound},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/convert", strings.NewReader(tc.body)))
		if rec.Code != tc.want {
			t.Fatalf("%s: status = %d, want %d", tc.name, rec.Code, tc.want)
		}
	}
}

func TestUnknownRoute(t *testing.T) {
	h := newHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/convert", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
