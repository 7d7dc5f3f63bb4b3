package auth

import (
	"encoding/json"
	"net/http"
)

// UnauthorizedDetail is the only message API clients see for a rejected credential
const UnauthorizedDetail = "Could not validate credentials"

// WriteUnauthorized writes the 401 response shared by the guard and the gatekeeper.
func WriteUnauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": UnauthorizedDetail})
}
