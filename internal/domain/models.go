package domain

import "strings"

// TreeHeader is the first line of every document
const TreeHeader = "File Tree:"

// Separator divides the tree listing from the file blocks
var Separator = strings.Repeat("-", 40)

// FileEntry is a file discovered inside the workspace
type FileEntry struct {
	Path    string // absolute location
	RelPath string // path relative to the workspace root
}

// Document is the result of one extraction, held in memory only
type Document struct {
	RepoURL string
	Tree    string
	Blocks  []string
}

// Segments returns the ordered parts of the document
func (d *Document) Segments() []string {
	parts := make([]string, 0, len(d.Blocks)+3)
	parts = append(parts, TreeHeader, d.Tree, Separator)
	return append(parts, d.Blocks...)
}

// String joins all segments with newlines
func (d *Document) String() string {
	return strings.Join(d.Segments(), "\n")
}

// FileCount returns the number of formatted file blocks
func (d *Document) FileCount() int {
	return len(d.Blocks)
}
