// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/burner-lookup/cliparse"
	"github.com/danielhkuo/burner-lookup/db"
)

// SetupTestDB creates a fresh sqlite database with the full schema.
// The database lives in the test's temp dir and is closed on cleanup.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "lookup.db")
	conn, err := db.Open(context.Background(), db.TypeSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// now returns the current time in a layout both sqlite and postgres parse
func now() string {
	return time.Now().UTC().Format("2006-01-02 15:04:05")
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8888,
		DatabaseURL:  "file:test.db",
		DatabaseType: db.TypeSQLite,
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// CreateTestBurner inserts a burner and returns its ID
func CreateTestBurner(t *testing.T, conn *sql.DB, serial, model string) int64 {
	t.Helper()

	res, err := conn.Exec(`
		INSERT INTO burners (serial_number, model, customer_name, created_at)
		VALUES (?, ?, 'Acme Foundry', ?)
	`, serial, model, now())
	if err != nil {
		t.Fatalf("Failed to create test burner: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read burner id: %v", err)
	}
	return id
}

// AddTestComponent adds a component to a burner. tags may be nil.
func AddTestComponent(t *testing.T, conn *sql.DB, burnerID int64, partCode string, quantity float64, tags *string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO components (burner_id, part_code, part_description, quantity, tags)
		VALUES (?, ?, ?, ?, ?)
	`, burnerID, partCode, "Part "+partCode, quantity, tags)
	if err != nil {
		t.Fatalf("Failed to create test component: %v", err)
	}
}

// CreateTestJob inserts a job record
func CreateTestJob(t *testing.T, conn *sql.DB, jobNumber string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO jobs (job_number, customer_name, filename, created_at, burner_type)
		VALUES (?, 'Acme Foundry', ?, ?, 'Gas')
	`, jobNumber, jobNumber+".xlsx", now())
	if err != nil {
		t.Fatalf("Failed to create test job: %v", err)
	}
}

// AddTestJobComponent adds a component row on a job sheet
func AddTestJobComponent(t *testing.T, conn *sql.DB, jobNumber, sheet, partCode string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO job_components (job_number, sheet_name, part_code, part_description, quantity)
		VALUES (?, ?, ?, ?, 1)
	`, jobNumber, sheet, partCode, "Part "+partCode)
	if err != nil {
		t.Fatalf("Failed to create test job component: %v", err)
	}
}

// AddTestElectricalItem adds an electrical item on a job sheet
func AddTestElectricalItem(t *testing.T, conn *sql.DB, jobNumber, sheet, itemCode string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO job_electrical_items (job_number, sheet_name, item_code, description, quantity, notes)
		VALUES (?, ?, ?, ?, 1, 'panel')
	`, jobNumber, sheet, itemCode, "Item "+itemCode)
	if err != nil {
		t.Fatalf("Failed to create test electrical item: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
