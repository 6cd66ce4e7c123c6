package server

import (
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abinsights/analytics-service/internal/model"
	"github.com/abinsights/analytics-service/internal/testutil"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewRouter(db, testutil.Logger(), nil)
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w := testutil.DoRequest(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListOnEmptyTableReturnsEmptyArray(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/customers/", "/products/", "/landing-pages/", "/ab-tests/", "/results/"} {
		w := testutil.DoRequest(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, "[]", w.Body.String(), path)
	}
}

func TestCustomerLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := testutil.DoRequest(t, r, http.MethodPost, "/customers/", map[string]interface{}{
		"name":  "Alice Smith",
		"email": "alice@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created model.Customer
	testutil.DecodeJSON(t, w, &created)
	assert.Equal(t, int64(1), created.CustomerID)

	// Round-trip.
	w = testutil.DoRequest(t, r, http.MethodGet, "/customers/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched model.Customer
	testutil.DecodeJSON(t, w, &fetched)
	assert.Equal(t, created, fetched)

	// Empty partial update leaves the stored record byte-identical.
	before := testutil.DoRequest(t, r, http.MethodGet, "/customers/1", nil).Body.String()
	w = testutil.DoRequest(t, r, http.MethodPut, "/customers/1", map[string]interface{}{})
	require.Equal(t, http.StatusOK, w.Code)
	after := testutil.DoRequest(t, r, http.MethodGet, "/customers/1", nil).Body.String()
	assert.Equal(t, before, after)

	// Partial update touches only the supplied field.
	w = testutil.DoRequest(t, r, http.MethodPut, "/customers/1", map[string]interface{}{
		"name": "Alice B. Smith",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var updated model.Customer
	testutil.DecodeJSON(t, w, &updated)
	assert.Equal(t, "Alice B. Smith", updated.Name)
	assert.Equal(t, "alice@example.com", updated.Email)

	// Delete, then every further access 404s.
	w = testutil.DoRequest(t, r, http.MethodDelete, "/customers/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Customer deleted successfully")

	assert.Equal(t, http.StatusNotFound, testutil.DoRequest(t, r, http.MethodGet, "/customers/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, testutil.DoRequest(t, r, http.MethodDelete, "/customers/1", nil).Code)
}

func TestCreateCustomerMissingFieldIs422(t *testing.T) {
	r := newTestRouter(t)

	w := testutil.DoRequest(t, r, http.MethodPost, "/customers/", map[string]interface{}{
		"name": "No Email",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateCustomerUnknownFieldIs422(t *testing.T) {
	r := newTestRouter(t)

	w := testutil.DoRequest(t, r, http.MethodPost, "/customers/", map[string]interface{}{
		"name":     "Alice",
		"email":    "alice@example.com",
		"nickname": "Al",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateCustomerMistypedFieldIs422(t *testing.T) {
	r := newTestRouter(t)

	w := testutil.DoRequest(t, r, http.MethodPost, "/customers/", map[string]interface{}{
		"name":  12345,
		"email": "alice@example.com",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDuplicateEmailIs409(t *testing.T) {
	r := newTestRouter(t)

	body := map[string]interface{}{"name": "Alice", "email": "alice@example.com"}
	require.Equal(t, http.StatusOK, testutil.DoRequest(t, r, http.MethodPost, "/customers/", body).Code)

	w := testutil.DoRequest(t, r, http.MethodPost, "/customers/", map[string]interface{}{
		"name":  "Other Alice",
		"email": "alice@example.com",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDanglingForeignKeyIs409(t *testing.T) {
	r := newTestRouter(t)

	w := testutil.DoRequest(t, r, http.MethodPost, "/landing-pages/", map[string]interface{}{
		"variant_type": "A",
		"page_url":     "http://x/a",
		"product_id":   99,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

// The scenario from the data-model contract: product 1 owns landing page 1;
// deleting the product cascades to the page.
func TestProductCascadeScenario(t *testing.T) {
	r := newTestRouter(t)

	w := testutil.DoRequest(t, r, http.MethodPost, "/products/", map[string]interface{}{
		"product_name": "Widget",
		"category":     "Tools",
		"release_date": "2024-01-01",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var p model.Product
	testutil.DecodeJSON(t, w, &p)
	require.Equal(t, int64(1), p.ProductID)

	w = testutil.DoRequest(t, r, http.MethodPost, "/landing-pages/", map[string]interface{}{
		"variant_type": "A",
		"page_url":     "http://x/a",
		"product_id":   1,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var lp model.LandingPage
	testutil.DecodeJSON(t, w, &lp)
	require.Equal(t, int64(1), lp.LandingPageID)

	w = testutil.DoRequest(t, r, http.MethodDelete, "/products/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, http.StatusNotFound, testutil.DoRequest(t, r, http.MethodGet, "/landing-pages/1", nil).Code)
}

func TestListPagination(t *testing.T) {
	r := newTestRouter(t)

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		w := testutil.DoRequest(t, r, http.MethodPost, "/customers/", map[string]interface{}{
			"name":  "Customer",
			"email": email,
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := testutil.DoRequest(t, r, http.MethodGet, "/customers/?skip=1&limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page []model.Customer
	testutil.DecodeJSON(t, w, &page)
	require.Len(t, page, 1)
	assert.Equal(t, int64(2), page[0].CustomerID)

	// Out-of-range skip returns an empty page, not an error.
	w = testutil.DoRequest(t, r, http.MethodGet, "/customers/?skip=50", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestUpdateAbsentIDIs404(t *testing.T) {
	r := newTestRouter(t)

	w := testutil.DoRequest(t, r, http.MethodPut, "/products/12", map[string]interface{}{
		"category": "Tools",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
