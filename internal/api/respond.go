package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andriispivakelectrodosg/memory-bank-dashboard/internal/bank"
)

// errorResponse is the body for every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error body with the given status.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// documentResponse is the response for every single-file read endpoint.
type documentResponse struct {
	Filename string  `json:"filename"`
	Content  string  `json:"content"`
	Modified float64 `json:"modified"`
}

// serveDocument reads name under dir and writes it, mapping the access
// errors to their HTTP statuses: traversal is 403 before existence is
// even considered, absence is 404, anything else is a 500.
func serveDocument(w http.ResponseWriter, dir, name string) {
	doc, err := bank.Read(dir, name)
	if err != nil {
		switch {
		case errors.Is(err, bank.ErrForbidden):
			writeError(w, http.StatusForbidden, "access denied")
		case errors.Is(err, bank.ErrNotFound):
			writeError(w, http.StatusNotFound, "file not found")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, documentResponse{
		Filename: doc.Filename,
		Content:  doc.Content,
		Modified: doc.Modified,
	})
}
