package utils

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pushkarbw/sample-e-com-sub003/errs"
)

// Response is the JSON envelope every endpoint returns.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Pagination describes one page of a listing.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// WriteJSON writes a success envelope with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Success: true, Data: data})
}

// WriteError translates a domain error into its status code and a
// `{success:false, error}` body. Unrecognized errors become a fixed 500
// message so internals never leak.
func WriteError(w http.ResponseWriter, err error) {
	status := errs.HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("internal error", "error", err)
		message = "internal server error"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{Success: false, Error: message})
}
