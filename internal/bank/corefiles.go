package bank

// IndexFile is the conventional index document inside a collection
// directory. It is skipped in listings that would otherwise double-count
// it next to the files it indexes.
const IndexFile = "_index.md"

// CoreFile identifies one of the fixed top-level memory-bank documents.
type CoreFile struct {
	ID       string
	Filename string
	Label    string
}

// CoreFiles is the fixed set of memory-bank documents every project
// carries, in display order.
var CoreFiles = []CoreFile{
	{ID: "projectbrief", Filename: "projectbrief.md", Label: "Project Brief"},
	{ID: "productContext", Filename: "productContext.md", Label: "Product Context"},
	{ID: "systemPatterns", Filename: "systemPatterns.md", Label: "System Patterns"},
	{ID: "techContext", Filename: "techContext.md", Label: "Tech Context"},
	{ID: "activeContext", Filename: "activeContext.md", Label: "Active Context"},
	{ID: "progress", Filename: "progress.md", Label: "Progress"},
}
