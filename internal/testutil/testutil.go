// Package testutil provisions a real in-memory database per test so service
// behavior (cascades, constraints, id assignment) is exercised end to end.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/abinsights/analytics-service/internal/db"
	"github.com/abinsights/analytics-service/pkg/database"
)

// SetupTestDB opens a fresh in-memory sqlite database with the full schema.
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := database.New(&database.Config{URL: ":memory:"})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return conn
}

// Logger returns a no-op logger for wiring usecases under test.
func Logger() *zap.Logger {
	return zap.NewNop()
}

// DoRequest runs one request through the handler and records the response.
func DoRequest(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// DecodeJSON unmarshals a recorded response body into v.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
}
