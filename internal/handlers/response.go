package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// Response messages shared by the handlers.
const (
	msgMissingFields   = "Please provide all required fields"
	msgInvalidBody     = "Invalid request body"
	msgInternalError   = "Internal server error"
	msgUserExists      = "User with this email already exists"
	msgUserRegistered  = "User registered successfully"
	msgInvalidCreds    = "Invalid credentials"
	msgProductCreated  = "Product created successfully"
	msgProductNotFound = "Product not found"
	msgProductUpdated  = "Product updated successfully"
	msgProductDeleted  = "Product deleted successfully"
)

// MessageResponse is the body of every non-data response
// swagger:model MessageResponse
type MessageResponse struct {
	// Human readable outcome
	// default: Internal server error
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, MessageResponse{Message: message})
}

// decodeBody decodes a JSON request body into v. An empty body leaves v
// zero-valued so it fails field validation instead of parsing.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
