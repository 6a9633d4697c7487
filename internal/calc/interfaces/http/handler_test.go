package http_test

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	calchttp "uniconv/internal/calc/interfaces/http"
)

func post(t *testing.T, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	calchttp.NewCalcHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))
	return rec
}

func TestCalcBearing(t *testing.T) {
	rec := post(t, "/api/v1/calc/bearing",
		`{"observer_lat":0,"observer_lon":0,"target_lat":0,"target_lon":10}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Bearing float64 `json:"bearing"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if math.Abs(resp.Bearing-90) > 1e-9 {
		t.Fatalf("bearing = %v, want 90", resp.Bearing)
	}
}

func TestCalcAreas(t *testing.T) {
	rec := post(t, "/api/v1/calc/area/rectangle", `{"length":10,"width":5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("rectangle status = %d, want 200", rec.Code)
	}
	var rect struct {
		Area float64 `json:"area"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &rect); err != nil {
		t.Fatalf("decode rectangle: %v", err)
	}
	if rect.Area != 50 {
		t.Fatalf("rectangle area = %v, want 50", rect.Area)
	}

	rec = post(t, "/api/v1/calc/area/circle", `{"radius":5}`)
	var circ struct {
		Area float64 `json:"area"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &circ); err != nil {
		t.Fatalf("decode circle: %v", err)
	}
	if math.Abs(circ.Area-math.Pi*25) > 1e-9 {
		t.Fatalf("circle area = %v, want %v", circ.Area, math.Pi*25)
	}
}

func TestCalcDateDiff(t *testing.T) {
	rec := post(t, "/api/v1/calc/datediff", `{"date1":"2024-02-01","date2":"2024-03-01"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Days int `json:"days"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Days != 29 {
		t.Fatalf("days = %d, want 29", resp.Days)
	}

	rec = post(t, "/api/v1/calc/datediff", `{"date1":"yesterday","date2":"2024-03-01"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed date status = %d, want 400", rec.Code)
	}
}

func TestCalcFraction(t *testing.T) {
	rec := post(t, "/api/v1/calc/fraction", `{"decimal":"0.75"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Numerator   int64 `json:"numerator"`
		Denominator int64 `json:"denominator"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Numerator != 3 || resp.Denominator != 4 {
		t.Fatalf("fraction = %d/%d, want 3/4", resp.Numerator, resp.Denominator)
	}

	rec = post(t, "/api/v1/calc/fraction", `{"decimal":"abc"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric status = %d, want 400", rec.Code)
	}
}

func TestCalcMethodAndRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	calchttp.NewCalcHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calc/bearing", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET status = %d, want 405", rec.Code)
	}

	rec = post(t, "/api/v1/calc/unknown", `{}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown route status = %d, want 404", rec.Code)
	}
}
