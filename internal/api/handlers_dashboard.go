package api

import (
	"net/http"

	"github.com/andriispivakelectrodosg/memory-bank-dashboard/internal/dashboard"
)

// DashboardHandler serves the aggregate summary.
type DashboardHandler struct {
	roots dashboard.Roots
}

// NewDashboardHandler creates a new DashboardHandler over roots.
func NewDashboardHandler(roots dashboard.Roots) *DashboardHandler {
	return &DashboardHandler{roots: roots}
}

// Summary handles GET /api/dashboard
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := dashboard.Summarize(h.roots)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s)
}
