// Package dashboard aggregates the memory-bank documents into the single
// summary object backing the dashboard view.
package dashboard

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/andriispivakelectrodosg/memory-bank-dashboard/internal/bank"
	"github.com/andriispivakelectrodosg/memory-bank-dashboard/internal/markdown"
)

// recentLimit caps the merged recency list.
const recentLimit = 8

// Roots bundles every directory the aggregator reads.
type Roots struct {
	MemoryBank string
	Lessons    string
	ADRs       string
	Features   string
	Notes      string
}

// TasksDir is the task collection, which lives inside the memory bank
// rather than beside it.
func (r Roots) TasksDir() string {
	return filepath.Join(r.MemoryBank, "tasks")
}

// ProgressSummary carries the counters derived from progress.md.
type ProgressSummary struct {
	CurrentStatus   string `json:"current_status"`
	WorksCount      int    `json:"works_count"`
	PendingCount    int    `json:"pending_count"`
	MilestonesDone  int    `json:"milestones_done"`
	MilestonesTotal int    `json:"milestones_total"`
	KnownIssues     int    `json:"known_issues"`
}

// TaskSummary carries the four task lists from the task index.
type TaskSummary struct {
	InProgress []string `json:"in_progress"`
	Pending    []string `json:"pending"`
	Completed  []string `json:"completed"`
	Abandoned  []string `json:"abandoned"`
}

// ContextSummary carries the fields derived from activeContext.md.
type ContextSummary struct {
	CurrentFocus string   `json:"current_focus"`
	NextSteps    []string `json:"next_steps"`
	Blockers     []string `json:"blockers"`
}

// Counts holds the per-collection document counts.
type Counts struct {
	CoreFiles int `json:"core_files"`
	Tasks     int `json:"tasks"`
	Lessons   int `json:"lessons"`
	ADRs      int `json:"adrs"`
	Features  int `json:"features"`
	Notes     int `json:"notes"`
}

// RecentItem is one entry in the cross-collection recency list.
type RecentItem struct {
	Collection string  `json:"collection"`
	Filename   string  `json:"filename"`
	Label      string  `json:"label"`
	Modified   float64 `json:"modified"`
}

// Summary is the aggregate dashboard object.
type Summary struct {
	Progress      ProgressSummary `json:"progress"`
	Tasks         TaskSummary     `json:"tasks"`
	ActiveContext ContextSummary  `json:"active_context"`
	Counts        Counts          `json:"counts"`
	Recent        []RecentItem    `json:"recent"`
}

// Summarize builds the dashboard summary from the live filesystem state.
// Missing documents and directories degrade to zero values; only an
// unreadable collection directory surfaces as an error.
func Summarize(roots Roots) (*Summary, error) {
	s := &Summary{
		Progress:      summarizeProgress(readOptional(roots.MemoryBank, "progress.md")),
		Tasks:         summarizeTasks(readOptional(roots.TasksDir(), bank.IndexFile)),
		ActiveContext: summarizeContext(readOptional(roots.MemoryBank, "activeContext.md")),
		Recent:        []RecentItem{},
	}

	tasks, err := bank.ListMarkdown(roots.TasksDir(), bank.IndexFile)
	if err != nil {
		return nil, err
	}
	lessons, err := bank.ListMarkdown(roots.Lessons, bank.IndexFile)
	if err != nil {
		return nil, err
	}
	adrs, err := bank.ListMarkdown(roots.ADRs, bank.IndexFile)
	if err != nil {
		return nil, err
	}
	features, err := bank.ListMarkdown(roots.Features, bank.IndexFile)
	if err != nil {
		return nil, err
	}
	notes, err := bank.ListMarkdown(roots.Notes, bank.IndexFile)
	if err != nil {
		return nil, err
	}

	var recent []RecentItem
	coreCount := 0
	for _, cf := range bank.CoreFiles {
		mod, ok := bank.StatModified(roots.MemoryBank, cf.Filename)
		if !ok {
			continue
		}
		coreCount++
		recent = append(recent, RecentItem{
			Collection: "core",
			Filename:   cf.Filename,
			Label:      cf.Label,
			Modified:   mod,
		})
	}
	for _, e := range tasks {
		recent = append(recent, RecentItem{
			Collection: "tasks",
			Filename:   path.Join("tasks", e.Filename),
			Label:      e.Label,
			Modified:   e.Modified,
		})
	}
	recent = appendEntries(recent, "lessons", lessons)
	recent = appendEntries(recent, "adrs", adrs)
	recent = appendEntries(recent, "features", features)
	recent = appendEntries(recent, "notes", notes)

	// Most recent first. A zero timestamp means the stat was unusable,
	// so those sink to the end; the stable sort keeps collection order
	// among ties.
	sort.SliceStable(recent, func(i, j int) bool {
		a, b := recent[i].Modified, recent[j].Modified
		if a == 0 {
			return false
		}
		if b == 0 {
			return true
		}
		return a > b
	})
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	s.Recent = append(s.Recent, recent...)

	s.Counts = Counts{
		CoreFiles: coreCount,
		Tasks:     len(tasks),
		Lessons:   len(lessons),
		ADRs:      len(adrs),
		Features:  len(features),
		Notes:     len(notes),
	}
	return s, nil
}

func summarizeProgress(doc string) ProgressSummary {
	p := ProgressSummary{
		CurrentStatus: firstLine(markdown.ExtractSection(doc, "Current Status")),
	}
	for _, line := range strings.Split(markdown.ExtractSection(doc, "What Works"), "\n") {
		if strings.Contains(line, "✅") || strings.Contains(strings.ToLower(line), "[x]") {
			p.WorksCount++
		}
	}
	for _, line := range strings.Split(markdown.ExtractSection(doc, "What's Left"), "\n") {
		if strings.Contains(line, "[ ]") {
			p.PendingCount++
		}
	}
	milestones := markdown.ExtractSection(doc, "Milestones")
	p.MilestonesDone = markdown.CountPattern(milestones, markdown.CheckedBox)
	p.MilestonesTotal = markdown.CountPattern(milestones, markdown.AnyCheckbox)
	p.KnownIssues = markdown.CountTableRows(markdown.ExtractSection(doc, "Known Issues"))
	return p
}

func summarizeTasks(index string) TaskSummary {
	return TaskSummary{
		InProgress: orEmpty(markdown.BulletItems(markdown.ExtractSection(index, "In Progress"))),
		Pending:    orEmpty(markdown.BulletItems(markdown.ExtractSection(index, "Pending"))),
		Completed:  orEmpty(markdown.BulletItems(markdown.ExtractSection(index, "Completed"))),
		Abandoned:  orEmpty(markdown.BulletItems(markdown.ExtractSection(index, "Abandoned"))),
	}
}

func summarizeContext(doc string) ContextSummary {
	blockers := []string{}
	for _, item := range markdown.BulletItems(markdown.ExtractSection(doc, "Blockers")) {
		if strings.Contains(strings.ToLower(item), "none") {
			continue
		}
		blockers = append(blockers, item)
	}
	return ContextSummary{
		CurrentFocus: firstLine(markdown.ExtractSection(doc, "Current Focus")),
		NextSteps:    orEmpty(markdown.NumberedSteps(markdown.ExtractSection(doc, "Next Steps"))),
		Blockers:     blockers,
	}
}

func appendEntries(recent []RecentItem, collection string, entries []bank.Entry) []RecentItem {
	for _, e := range entries {
		recent = append(recent, RecentItem{
			Collection: collection,
			Filename:   e.Filename,
			Label:      e.Label,
			Modified:   e.Modified,
		})
	}
	return recent
}

// readOptional loads a document that may legitimately be absent. Any
// failure reads as an empty document.
func readOptional(dir, name string) string {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return ""
	}
	return string(data)
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return strings.TrimSpace(text[:i])
	}
	return text
}

func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
