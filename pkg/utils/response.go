package utils

import (
	"encoding/json"
	"log"
	"net/http"

	"tailor-backend/internal/apperrors"
)

// JSON writes data as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[HTTP] Failed to encode response: %v", err)
	}
}

// Message writes a `{"message": ...}` body with the given status code.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"message": message})
}

// Error maps a service error onto the API's three error kinds:
// 404 for missing records, 400 for business-rule violations, and a
// generic 500 for everything else (the original error is only logged).
func Error(w http.ResponseWriter, err error) {
	switch {
	case apperrors.IsNotFound(err):
		Message(w, http.StatusNotFound, err.Error())
	case apperrors.IsConflict(err):
		Message(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("[HTTP] Unexpected error: %v", err)
		Message(w, http.StatusInternalServerError, "Server error")
	}
}
