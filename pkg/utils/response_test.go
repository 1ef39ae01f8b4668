package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"tailor-backend/internal/apperrors"
)

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	JSON(rec, http.StatusCreated, map[string]int{"id": 7})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id": 7}`, rec.Body.String())
}

func TestMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	Message(rec, http.StatusOK, "Order removed")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "Order removed"}`, rec.Body.String())
}

func TestErrorNotFound(t *testing.T) {
	rec := httptest.NewRecorder()

	Error(rec, apperrors.NotFound("Customer"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message": "Customer not found"}`, rec.Body.String())
}

func TestErrorConflict(t *testing.T) {
	rec := httptest.NewRecorder()

	Error(rec, apperrors.Conflict("Invalid credentials"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message": "Invalid credentials"}`, rec.Body.String())
}

func TestErrorUnexpected(t *testing.T) {
	rec := httptest.NewRecorder()

	Error(rec, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message": "Server error"}`, rec.Body.String())
}
