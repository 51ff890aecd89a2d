package controller

import (
	"encoding/json"
	"log"
	"net/http"

	"consogab-me/models"
	"consogab-me/service"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("❌ writeJSON: error encoding response: %v", err)
	}
}

// errorResponse is the JSON shape of error replies
type errorResponse struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors,omitempty"`
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeErrors writes a JSON error response carrying a full error list,
// used for validation failures that report all failing checks together
func writeErrors(w http.ResponseWriter, status int, message string, errs []string) {
	writeJSON(w, status, errorResponse{Error: message, Errors: errs})
}

// resolveUser resolves the caller or replies 401
func resolveUser(auth service.AuthProviderInterface, w http.ResponseWriter, r *http.Request) (*models.UserContext, bool) {
	user, err := auth.CurrentUser(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Authentification requise")
		return nil, false
	}
	return user, true
}

// requireVendor resolves the caller and checks the vendor role
func requireVendor(auth service.AuthProviderInterface, w http.ResponseWriter, r *http.Request) (*models.UserContext, bool) {
	user, ok := resolveUser(auth, w, r)
	if !ok {
		return nil, false
	}
	if !user.IsVendor() {
		writeError(w, http.StatusForbidden, "Action réservée aux vendeurs")
		return nil, false
	}
	return user, true
}
