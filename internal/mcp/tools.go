package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/andriispivakelectrodosg/memory-bank-dashboard/internal/bank"
	"github.com/andriispivakelectrodosg/memory-bank-dashboard/internal/dashboard"
)

// Tools serves the read-only memory-bank tool calls.
type Tools struct {
	roots dashboard.Roots
}

// NewTools creates the tool set over roots.
func NewTools(roots dashboard.Roots) *Tools {
	return &Tools{roots: roots}
}

// collectionDir maps a collection name to the directory it lives in.
// The core collection is the memory-bank root itself, so nested names
// like tasks/task-001.md stay reachable through it.
func (t *Tools) collectionDir(collection string) (string, error) {
	switch collection {
	case "", "core":
		return t.roots.MemoryBank, nil
	case "tasks":
		return t.roots.TasksDir(), nil
	case "lessons":
		return t.roots.Lessons, nil
	case "adrs":
		return t.roots.ADRs, nil
	case "features":
		return t.roots.Features, nil
	case "notes":
		return t.roots.Notes, nil
	}
	return "", fmt.Errorf("unknown collection %q", collection)
}

// ListFilesDefinition describes the bank_list_files tool.
func (t *Tools) ListFilesDefinition() mcp.Tool {
	return mcp.NewTool("bank_list_files",
		mcp.WithDescription(
			"List the markdown documents in the memory bank: the fixed core files "+
				"(with existence flags) and the files of each collection. "+
				"Pass a collection name to list just that collection.",
		),
		mcp.WithString("collection",
			mcp.Description("Collection to list. Empty lists everything."),
			mcp.Enum("core", "tasks", "lessons", "adrs", "features", "notes"),
		),
	)
}

// listedFile is one document reference in a bank_list_files result.
type listedFile struct {
	Filename string  `json:"filename"`
	Label    string  `json:"label"`
	Modified float64 `json:"modified,omitempty"`
	Exists   *bool   `json:"exists,omitempty"`
}

// HandleListFiles processes a bank_list_files call.
func (t *Tools) HandleListFiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	collection := req.GetString("collection", "")
	if collection != "" {
		if _, err := t.collectionDir(collection); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	result := map[string][]listedFile{}

	if collection == "" || collection == "core" {
		core := make([]listedFile, 0, len(bank.CoreFiles))
		for _, cf := range bank.CoreFiles {
			f := listedFile{Filename: cf.Filename, Label: cf.Label}
			mod, ok := bank.StatModified(t.roots.MemoryBank, cf.Filename)
			f.Exists = &ok
			f.Modified = mod
			core = append(core, f)
		}
		result["core"] = core
	}

	for name, dir := range map[string]string{
		"tasks":    t.roots.TasksDir(),
		"lessons":  t.roots.Lessons,
		"adrs":     t.roots.ADRs,
		"features": t.roots.Features,
		"notes":    t.roots.Notes,
	} {
		if collection != "" && collection != name {
			continue
		}
		entries, err := bank.ListMarkdown(dir, bank.IndexFile)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		files := make([]listedFile, 0, len(entries))
		for _, e := range entries {
			files = append(files, listedFile{Filename: e.Filename, Label: e.Label, Modified: e.Modified})
		}
		result[name] = files
	}

	return jsonResult(result)
}

// ReadFileDefinition describes the bank_read_file tool.
func (t *Tools) ReadFileDefinition() mcp.Tool {
	return mcp.NewTool("bank_read_file",
		mcp.WithDescription(
			"Read one markdown document from the memory bank. "+
				"Names resolve inside the chosen collection; paths that escape it are rejected.",
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Filename to read, e.g. progress.md or tasks/task-001.md for the core collection."),
		),
		mcp.WithString("collection",
			mcp.Description("Collection holding the file. Defaults to core."),
			mcp.Enum("core", "tasks", "lessons", "adrs", "features", "notes"),
		),
	)
}

// HandleReadFile processes a bank_read_file call.
func (t *Tools) HandleReadFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}

	dir, err := t.collectionDir(req.GetString("collection", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc, err := bank.Read(dir, name)
	if err != nil {
		switch {
		case errors.Is(err, bank.ErrForbidden):
			return mcp.NewToolResultError("access denied: path escapes the memory bank"), nil
		case errors.Is(err, bank.ErrNotFound):
			return mcp.NewToolResultError(fmt.Sprintf("file not found: %s", name)), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(doc.Content), nil
}

// DashboardDefinition describes the bank_dashboard tool.
func (t *Tools) DashboardDefinition() mcp.Tool {
	return mcp.NewTool("bank_dashboard",
		mcp.WithDescription(
			"Get the aggregate project summary: progress counters, task lists, "+
				"active context, per-collection counts, and the most recently modified documents.",
		),
	)
}

// HandleDashboard processes a bank_dashboard call.
func (t *Tools) HandleDashboard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s, err := dashboard.Summarize(t.roots)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(s)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
