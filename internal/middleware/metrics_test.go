package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"tailor-backend/internal/metrics"
)

func TestMetricsMiddlewareLabelsRouteTemplate(t *testing.T) {
	router := mux.NewRouter()
	router.Use(MetricsMiddleware)
	router.HandleFunc("/api/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	counter := metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/orders/{id}", "200")
	before := testutil.ToFloat64(counter)

	for _, path := range []string{"/api/orders/1", "/api/orders/2", "/api/orders/31337"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	// Distinct ids all land on the one template label
	assert.Equal(t, before+3, testutil.ToFloat64(counter))
}

func TestMetricsMiddlewareCapturesStatus(t *testing.T) {
	router := mux.NewRouter()
	router.Use(MetricsMiddleware)
	router.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}).Methods("POST")

	counter := metrics.HTTPRequestsTotal.WithLabelValues("POST", "/api/orders", "201")
	before := testutil.ToFloat64(counter)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
