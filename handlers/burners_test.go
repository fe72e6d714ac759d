// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/burner-lookup/models"
	"github.com/danielhkuo/burner-lookup/store"
	"github.com/danielhkuo/burner-lookup/testutil"
)

func seedBurner(f *fakeStore) {
	model := "RG-50"
	f.burners["SN-1001"] = models.Burner{ID: 5, SerialNumber: "SN-1001", Model: &model}
	f.components[5] = []models.Component{
		{ID: 1, BurnerID: 5, PartCode: "A-100", PartDescription: "Nozzle", Quantity: 1},
		{ID: 2, BurnerID: 5, PartCode: "B-200", PartDescription: "Igniter", Quantity: 2},
	}
}

func TestBurnerSearch(t *testing.T) {
	cfg := testutil.GetTestConfig()

	tests := []struct {
		name           string
		method         string
		path           string
		body           interface{}
		setup          func(f *fakeStore)
		expectedStatus int
		expectedError  string
		checkResponse  func(t *testing.T, resp *models.BurnerResponse)
	}{
		{
			name:           "GET found",
			method:         "GET",
			path:           "/search-burner?serialNumber=SN-1001",
			setup:          seedBurner,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.BurnerResponse) {
				if resp.Burner.SerialNumber != "SN-1001" {
					t.Errorf("Expected serial SN-1001, got %s", resp.Burner.SerialNumber)
				}
				if len(resp.Components) != 2 || resp.Components[0].PartCode != "A-100" {
					t.Errorf("Unexpected components: %+v", resp.Components)
				}
			},
		},
		{
			name:           "POST found",
			method:         "POST",
			path:           "/search-burner",
			body:           models.LookupRequest{SerialNumber: "SN-1001"},
			setup:          seedBurner,
			expectedStatus: http.StatusOK,
		},
		{
			name:   "POST numeric serial number",
			method: "POST",
			path:   "/search-burner",
			body:   map[string]any{"serialNumber": 12345},
			setup: func(f *fakeStore) {
				f.burners["12345"] = models.Burner{ID: 12, SerialNumber: "12345"}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.BurnerResponse) {
				if resp.Burner.SerialNumber != "12345" {
					t.Errorf("Expected serial 12345, got %s", resp.Burner.SerialNumber)
				}
			},
		},
		{
			name:           "POST object serial number",
			method:         "POST",
			path:           "/search-burner",
			body:           map[string]any{"serialNumber": map[string]any{"n": 1}},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid JSON body",
		},
		{
			name:   "burner without components returns empty list",
			method: "GET",
			path:   "/search-burner?serialNumber=SN-2",
			setup: func(f *fakeStore) {
				f.burners["SN-2"] = models.Burner{ID: 8, SerialNumber: "SN-2"}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp *models.BurnerResponse) {
				if resp.Components == nil || len(resp.Components) != 0 {
					t.Errorf("Expected empty component list, got %v", resp.Components)
				}
			},
		},
		{
			name:           "missing serial number",
			method:         "GET",
			path:           "/search-burner",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Serial number is required",
		},
		{
			name:           "unknown serial number",
			method:         "GET",
			path:           "/search-burner?serialNumber=SN-404",
			setup:          seedBurner,
			expectedStatus: http.StatusNotFound,
			expectedError:  "No burner found with serial number: SN-404",
		},
		{
			name:   "burner query fails",
			method: "GET",
			path:   "/search-burner?serialNumber=SN-1001",
			setup: func(f *fakeStore) {
				f.burnerErr = &store.Error{Op: "find burner", Err: errors.New("connection reset")}
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Error fetching burner data: find burner: connection reset",
		},
		{
			name:   "component query fails",
			method: "GET",
			path:   "/search-burner?serialNumber=SN-1001",
			setup: func(f *fakeStore) {
				seedBurner(f)
				f.componentsErr = &store.Error{Op: "list components", Err: errors.New("timeout")}
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Error fetching component data: list components: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newFakeStore()
			if tt.setup != nil {
				tt.setup(fs)
			}
			handler := NewBurnerHandler(fs, cfg)

			req := testutil.MakeRequest(tt.method, tt.path, tt.body, nil)
			w := httptest.NewRecorder()
			handler.Search(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedError != "" {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Error != tt.expectedError {
					t.Errorf("Expected error '%s', got '%s'", tt.expectedError, resp.Error)
				}
			}

			if tt.checkResponse != nil && w.Code == tt.expectedStatus {
				var resp models.BurnerResponse
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}
}

func TestBurnerSearch_InvalidJSON(t *testing.T) {
	fs := newFakeStore()
	handler := NewBurnerHandler(fs, testutil.GetTestConfig())

	req := httptest.NewRequest("POST", "/search-burner", strings.NewReader(`{"serialNumber":`))
	w := httptest.NewRecorder()
	handler.Search(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
	if fs.calls != 0 {
		t.Errorf("Expected no store calls, got %d", fs.calls)
	}
}
