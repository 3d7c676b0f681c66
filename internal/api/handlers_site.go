package api

import (
	_ "embed"
	"html/template"
	"net/http"
)

//go:embed index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

// SiteHandler serves the HTML shell and the health probe.
type SiteHandler struct {
	version string
}

// NewSiteHandler creates a new SiteHandler.
func NewSiteHandler(version string) *SiteHandler {
	return &SiteHandler{version: version}
}

// Index handles GET /
func (h *SiteHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = indexTmpl.Execute(w, struct{ Version string }{Version: h.version})
}

// healthResponse is the response for GET /health.
type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Health handles GET /health
func (h *SiteHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: h.version})
}
