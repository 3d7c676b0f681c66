package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/andriispivakelectrodosg/memory-bank-dashboard/internal/config"
	"github.com/andriispivakelectrodosg/memory-bank-dashboard/internal/dashboard"
	"github.com/andriispivakelectrodosg/memory-bank-dashboard/internal/mcp"
	"github.com/andriispivakelectrodosg/memory-bank-dashboard/internal/version"
)

// Stdout carries the MCP protocol, so every diagnostic goes to stderr.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %s\n", err)
		os.Exit(1)
	}

	roots := dashboard.Roots{
		MemoryBank: cfg.MemoryBankDir,
		Lessons:    cfg.LessonsDir,
		ADRs:       cfg.ADRDir,
		Features:   cfg.FeaturesDir,
		Notes:      cfg.NotesDir,
	}
	ver := version.Resolve(cfg.Version, config.InstallRoot())

	s := mcp.NewServer(roots, ver)
	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "mcp server error: %s\n", err)
		os.Exit(1)
	}
}
