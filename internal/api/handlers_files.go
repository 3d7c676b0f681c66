package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andriispivakelectrodosg/memory-bank-dashboard/internal/bank"
)

// FileHandler serves the fixed core files of the memory bank.
type FileHandler struct {
	bankDir string
}

// NewFileHandler creates a new FileHandler rooted at bankDir.
func NewFileHandler(bankDir string) *FileHandler {
	return &FileHandler{bankDir: bankDir}
}

// coreFileItem is a single entry in the GET /api/files response.
// Modified is null when the file does not exist.
type coreFileItem struct {
	ID       string   `json:"id"`
	Filename string   `json:"filename"`
	Label    string   `json:"label"`
	Exists   bool     `json:"exists"`
	Modified *float64 `json:"modified"`
}

// coreFilesResponse is the response for GET /api/files.
type coreFilesResponse struct {
	Files []coreFileItem `json:"files"`
}

// List handles GET /api/files
func (h *FileHandler) List(w http.ResponseWriter, r *http.Request) {
	items := make([]coreFileItem, len(bank.CoreFiles))
	for i, cf := range bank.CoreFiles {
		item := coreFileItem{ID: cf.ID, Filename: cf.Filename, Label: cf.Label}
		if mod, ok := bank.StatModified(h.bankDir, cf.Filename); ok {
			item.Exists = true
			item.Modified = &mod
		}
		items[i] = item
	}
	writeJSON(w, http.StatusOK, coreFilesResponse{Files: items})
}

// Read handles GET /api/file/*
//
// The wildcard keeps nested names like tasks/task-001.md addressable;
// containment is enforced by the accessor, not the route.
func (h *FileHandler) Read(w http.ResponseWriter, r *http.Request) {
	serveDocument(w, h.bankDir, chi.URLParam(r, "*"))
}
