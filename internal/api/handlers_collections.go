package api

import (
	"net/http"
	"path"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/andriispivakelectrodosg/memory-bank-dashboard/internal/bank"
)

// entryJSON is one document reference in a listing response.
type entryJSON struct {
	Filename string  `json:"filename"`
	Label    string  `json:"label"`
	Modified float64 `json:"modified"`
}

func toEntryJSON(entries []bank.Entry) []entryJSON {
	items := make([]entryJSON, len(entries))
	for i, e := range entries {
		items[i] = entryJSON{Filename: e.Filename, Label: e.Label, Modified: e.Modified}
	}
	return items
}

// TaskHandler serves the task collection inside the memory bank.
type TaskHandler struct {
	dir string
}

// NewTaskHandler creates a new TaskHandler rooted at the tasks subdirectory.
func NewTaskHandler(dir string) *TaskHandler {
	return &TaskHandler{dir: dir}
}

// tasksResponse is the response for GET /api/tasks.
type tasksResponse struct {
	Tasks []entryJSON `json:"tasks"`
}

// List handles GET /api/tasks
//
// Task filenames carry the tasks/ prefix so they can be fed straight
// back to /api/file/.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := bank.ListMarkdown(h.dir, bank.IndexFile)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	items := make([]entryJSON, len(entries))
	for i, e := range entries {
		items[i] = entryJSON{
			Filename: path.Join("tasks", e.Filename),
			Label:    e.Label,
			Modified: e.Modified,
		}
	}
	writeJSON(w, http.StatusOK, tasksResponse{Tasks: items})
}

// LessonHandler serves the lessons-learned collection.
type LessonHandler struct {
	dir string
}

// NewLessonHandler creates a new LessonHandler rooted at dir.
func NewLessonHandler(dir string) *LessonHandler {
	return &LessonHandler{dir: dir}
}

// lessonsResponse is the response for GET /api/lessons.
type lessonsResponse struct {
	Lessons  []entryJSON `json:"lessons"`
	HasIndex bool        `json:"has_index"`
}

// List handles GET /api/lessons
func (h *LessonHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := bank.ListMarkdown(h.dir, bank.IndexFile)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, lessonsResponse{
		Lessons:  toEntryJSON(entries),
		HasIndex: bank.HasIndex(h.dir),
	})
}

// Read handles GET /api/lesson/{name}
func (h *LessonHandler) Read(w http.ResponseWriter, r *http.Request) {
	serveDocument(w, h.dir, chi.URLParam(r, "name"))
}

// ADRHandler serves the architecture-decision-record collection.
type ADRHandler struct {
	dir string
}

// NewADRHandler creates a new ADRHandler rooted at dir.
func NewADRHandler(dir string) *ADRHandler {
	return &ADRHandler{dir: dir}
}

// adrsResponse is the response for GET /api/adrs.
type adrsResponse struct {
	ADRs     []entryJSON `json:"adrs"`
	HasIndex bool        `json:"has_index"`
}

// List handles GET /api/adrs
func (h *ADRHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := bank.ListMarkdown(h.dir, bank.IndexFile)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, adrsResponse{
		ADRs:     toEntryJSON(entries),
		HasIndex: bank.HasIndex(h.dir),
	})
}

// Read handles GET /api/adr/{name}
func (h *ADRHandler) Read(w http.ResponseWriter, r *http.Request) {
	serveDocument(w, h.dir, chi.URLParam(r, "name"))
}

// FeatureHandler serves the feature-document collection.
type FeatureHandler struct {
	dir string
}

// NewFeatureHandler creates a new FeatureHandler rooted at dir.
func NewFeatureHandler(dir string) *FeatureHandler {
	return &FeatureHandler{dir: dir}
}

// featuresResponse is the response for GET /api/features.
type featuresResponse struct {
	Features []entryJSON `json:"features"`
}

// List handles GET /api/features
func (h *FeatureHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := bank.ListMarkdown(h.dir, bank.IndexFile)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, featuresResponse{Features: toEntryJSON(entries)})
}

// Read handles GET /api/feature/{name}
func (h *FeatureHandler) Read(w http.ResponseWriter, r *http.Request) {
	serveDocument(w, h.dir, chi.URLParam(r, "name"))
}

// NoteHandler serves the notes collection.
type NoteHandler struct {
	dir string
}

// NewNoteHandler creates a new NoteHandler rooted at dir.
func NewNoteHandler(dir string) *NoteHandler {
	return &NoteHandler{dir: dir}
}

// notesResponse is the response for GET /api/notes.
type notesResponse struct {
	Notes []entryJSON `json:"notes"`
}

// List handles GET /api/notes
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := bank.ListMarkdown(h.dir, bank.IndexFile)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, notesResponse{Notes: toEntryJSON(entries)})
}

// Read handles GET /api/note/{name}
func (h *NoteHandler) Read(w http.ResponseWriter, r *http.Request) {
	serveDocument(w, h.dir, chi.URLParam(r, "name"))
}

// recentCounts are the accepted values for the count query parameter.
var recentCounts = map[int]bool{1: true, 3: true, 5: true, 10: true}

// recentNoteItem includes full content alongside the reference.
type recentNoteItem struct {
	Filename string  `json:"filename"`
	Label    string  `json:"label"`
	Content  string  `json:"content"`
	Modified float64 `json:"modified"`
}

// recentNotesResponse is the response for GET /api/notes/recent.
// Total counts the whole collection, not the page.
type recentNotesResponse struct {
	Notes []recentNoteItem `json:"notes"`
	Total int              `json:"total"`
}

// Recent handles GET /api/notes/recent?count=N
//
// count must be one of 1, 3, 5, 10; anything else falls back to 5.
func (h *NoteHandler) Recent(w http.ResponseWriter, r *http.Request) {
	count := 5
	if v := r.URL.Query().Get("count"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && recentCounts[n] {
			count = n
		}
	}

	entries, err := bank.ListMarkdown(h.dir, bank.IndexFile)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	total := len(entries)

	// Newest first; the stable sort keeps the lister's filename order
	// for equal timestamps.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Modified > entries[j].Modified
	})
	if len(entries) > count {
		entries = entries[:count]
	}

	items := make([]recentNoteItem, 0, len(entries))
	for _, e := range entries {
		doc, err := bank.Read(h.dir, e.Filename)
		if err != nil {
			// The file vanished between list and read; drop it rather
			// than fail the whole page.
			continue
		}
		items = append(items, recentNoteItem{
			Filename: e.Filename,
			Label:    e.Label,
			Content:  doc.Content,
			Modified: doc.Modified,
		})
	}
	writeJSON(w, http.StatusOK, recentNotesResponse{Notes: items, Total: total})
}
