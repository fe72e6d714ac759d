// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/burner-lookup/models"
	"github.com/danielhkuo/burner-lookup/store"
	"github.com/danielhkuo/burner-lookup/testutil"
)

func newTestRouter(t *testing.T) (http.Handler, *store.SQLStore) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	s := store.NewSQLStore(db, cfg.DatabaseType)

	testutil.CreateTestJob(t, db, "C13676")
	testutil.AddTestJobComponent(t, db, "C13676", "S1", "A")
	testutil.AddTestElectricalItem(t, db, "C13676", "S1", "X")
	testutil.CreateTestBurner(t, db, "SN-1001", "RG-50")

	return NewRouter(s, cfg), s
}

func TestHealthEndpoint(t *testing.T) {
	mux, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "burner-lookup API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux, _ := newTestRouter(t)

	testCases := []struct {
		method         string
		path           string
		expectedStatus int
	}{
		{"GET", "/health", http.StatusOK},
		{"GET", "/debug", http.StatusOK},
		{"GET", "/metrics", http.StatusOK},
		{"GET", "/search-job?jobNumber=C13676", http.StatusOK},
		{"GET", "/search-job-basic?jobNumber=C13676", http.StatusOK},
		{"GET", "/search-burner?serialNumber=SN-1001", http.StatusOK},
		{"GET", "/.netlify/functions/search-job?jobNumber=C13676", http.StatusOK},
		{"GET", "/.netlify/functions/search-burner?serialNumber=SN-1001", http.StatusOK},
		{"GET", "/search-job", http.StatusBadRequest},
		{"GET", "/search-burner?serialNumber=nope", http.StatusNotFound},
		{"GET", "/unknown", http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected %d for %s %s, got %d. Body: %s", tc.expectedStatus, tc.method, tc.path, w.Code, w.Body.String())
			}
		})
	}
}

func TestPOSTLookup(t *testing.T) {
	mux, _ := newTestRouter(t)

	req := testutil.MakeRequest("POST", "/search-job", models.LookupRequest{JobNumber: "C13676"}, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp struct {
		Sheets               map[string][]map[string]any `json:"sheets"`
		TotalElectricalItems int                         `json:"totalElectricalItems"`
	}
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Sheets["S1"]) != 2 || resp.Sheets["S1"][1]["type"] != "electrical" {
		t.Errorf("Unexpected S1 rows: %v", resp.Sheets["S1"])
	}
	if resp.TotalElectricalItems != 1 {
		t.Errorf("Expected 1 electrical item, got %d", resp.TotalElectricalItems)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux, _ := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"DELETE", "/search-job"},
		{"PUT", "/search-burner"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestPreflightSkipsHandlers(t *testing.T) {
	mux, s := newTestRouter(t)

	// a closed database would fail any lookup that reached the store
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{"/search-job", "/search-burner", "/.netlify/functions/search-job"} {
		req := httptest.NewRequest("OPTIONS", path, nil)
		req.Header.Set("Origin", "https://www.example-burners.com")
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200 for preflight %s, got %d", path, w.Code)
		}
		var resp models.MessageResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode preflight response: %v", err)
		}
		if resp.Message != "Preflight request successful" {
			t.Errorf("Unexpected preflight message '%s'", resp.Message)
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Errorf("Expected wildcard origin, got '%s'", w.Header().Get("Access-Control-Allow-Origin"))
		}
	}
}

func TestCORSHeadersOnLookup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	cfg.AllowedOrigins = []string{"https://www.example-burners.com"}
	mux := NewRouter(store.NewSQLStore(db, cfg.DatabaseType), cfg)

	req := httptest.NewRequest("GET", "/search-job", nil)
	req.Header.Set("Origin", "https://www.example-burners.com")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "https://www.example-burners.com" {
		t.Errorf("Expected listed origin to be echoed, got '%s'", w.Header().Get("Access-Control-Allow-Origin"))
	}
	if !strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), "POST") {
		t.Error("Expected POST in allowed methods")
	}
}

func TestRequestIDHeader(t *testing.T) {
	mux, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/search-job?jobNumber=C13676", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") != "req-123" {
		t.Errorf("Expected request ID to be echoed, got '%s'", w.Header().Get("X-Request-ID"))
	}
}
