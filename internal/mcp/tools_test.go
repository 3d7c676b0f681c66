package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/andriispivakelectrodosg/memory-bank-dashboard/internal/dashboard"
)

func setupBank(t *testing.T) dashboard.Roots {
	t.Helper()
	base := t.TempDir()
	roots := dashboard.Roots{
		MemoryBank: filepath.Join(base, "memory-bank"),
		Lessons:    filepath.Join(base, "lessons-learned"),
		ADRs:       filepath.Join(base, "adr"),
		Features:   filepath.Join(base, "features"),
		Notes:      filepath.Join(base, "notes"),
	}
	os.MkdirAll(roots.TasksDir(), 0o755)
	os.MkdirAll(roots.Lessons, 0o755)
	os.MkdirAll(roots.Notes, 0o755)

	os.WriteFile(filepath.Join(roots.MemoryBank, "progress.md"),
		[]byte("## Milestones\n- [x] alpha\n- [ ] beta\n"), 0o644)
	os.WriteFile(filepath.Join(roots.TasksDir(), "task-001.md"), []byte("# T1\n"), 0o644)
	os.WriteFile(filepath.Join(roots.Lessons, "lesson-io.md"), []byte("# IO lesson\n"), 0o644)
	os.WriteFile(filepath.Join(roots.Notes, "scratch.md"), []byte("# Scratch\n"), 0o644)
	return roots
}

func isErrorResult(result *mcp.CallToolResult) bool {
	return result != nil && result.IsError
}

// getResultText extracts the text content from a CallToolResult.
func getResultText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestHandleReadFile_Core(t *testing.T) {
	tools := NewTools(setupBank(t))

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]interface{}{
		"name": "progress.md",
	}

	result, err := tools.HandleReadFile(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleReadFile failed: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("expected success, got error: %s", getResultText(result))
	}
	if !strings.Contains(getResultText(result), "## Milestones") {
		t.Error("result should contain the document body")
	}
}

func TestHandleReadFile_NestedTaskThroughCore(t *testing.T) {
	tools := NewTools(setupBank(t))

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]interface{}{
		"name": "tasks/task-001.md",
	}

	result, err := tools.HandleReadFile(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleReadFile failed: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("expected success, got error: %s", getResultText(result))
	}
}

func TestHandleReadFile_CollectionParam(t *testing.T) {
	tools := NewTools(setupBank(t))

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]interface{}{
		"name":       "lesson-io.md",
		"collection": "lessons",
	}

	result, err := tools.HandleReadFile(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleReadFile failed: %v", err)
	}
	if !strings.Contains(getResultText(result), "IO lesson") {
		t.Errorf("unexpected content: %s", getResultText(result))
	}
}

func TestHandleReadFile_TraversalRejected(t *testing.T) {
	tools := NewTools(setupBank(t))

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]interface{}{
		"name": "../../etc/passwd",
	}

	result, err := tools.HandleReadFile(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleReadFile failed: %v", err)
	}
	if !isErrorResult(result) {
		t.Fatal("traversal must produce an error result")
	}
	if !strings.Contains(getResultText(result), "access denied") {
		t.Errorf("unexpected error text: %s", getResultText(result))
	}
}

func TestHandleReadFile_NameRequired(t *testing.T) {
	tools := NewTools(setupBank(t))

	result, err := tools.HandleReadFile(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("HandleReadFile failed: %v", err)
	}
	if !isErrorResult(result) {
		t.Fatal("missing name must produce an error result")
	}
}

func TestHandleListFiles_All(t *testing.T) {
	tools := NewTools(setupBank(t))

	result, err := tools.HandleListFiles(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("HandleListFiles failed: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("expected success, got error: %s", getResultText(result))
	}

	var listing map[string][]struct {
		Filename string `json:"filename"`
		Exists   *bool  `json:"exists"`
	}
	if err := json.Unmarshal([]byte(getResultText(result)), &listing); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if len(listing["core"]) != 6 {
		t.Errorf("core listing has %d entries, want 6", len(listing["core"]))
	}
	if len(listing["tasks"]) != 1 || listing["tasks"][0].Filename != "task-001.md" {
		t.Errorf("tasks listing = %+v", listing["tasks"])
	}
	if len(listing["adrs"]) != 0 {
		t.Errorf("adrs should be empty, got %+v", listing["adrs"])
	}
}

func TestHandleListFiles_SingleCollection(t *testing.T) {
	tools := NewTools(setupBank(t))

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]interface{}{
		"collection": "notes",
	}

	result, err := tools.HandleListFiles(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleListFiles failed: %v", err)
	}

	var listing map[string][]struct {
		Filename string `json:"filename"`
	}
	if err := json.Unmarshal([]byte(getResultText(result)), &listing); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if len(listing) != 1 {
		t.Errorf("want only the notes collection, got keys %v", keys(listing))
	}
	if len(listing["notes"]) != 1 || listing["notes"][0].Filename != "scratch.md" {
		t.Errorf("notes listing = %+v", listing["notes"])
	}
}

func TestHandleDashboard(t *testing.T) {
	tools := NewTools(setupBank(t))

	result, err := tools.HandleDashboard(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("HandleDashboard failed: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("expected success, got error: %s", getResultText(result))
	}

	var summary struct {
		Progress struct {
			MilestonesDone  int `json:"milestones_done"`
			MilestonesTotal int `json:"milestones_total"`
		} `json:"progress"`
	}
	if err := json.Unmarshal([]byte(getResultText(result)), &summary); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if summary.Progress.MilestonesDone != 1 || summary.Progress.MilestonesTotal != 2 {
		t.Errorf("milestones = %d/%d, want 1/2",
			summary.Progress.MilestonesDone, summary.Progress.MilestonesTotal)
	}
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
