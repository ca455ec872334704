package extract

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Tree connectors
const (
	branch     = "├── "
	lastBranch = "└── "
	pipe       = "│   "
	space      = "    "
)

// BuildTree renders dir as an indented ASCII tree, one entry per line, each
// line starting with prefix. Entries are sorted byte-wise at every level and
// directories are expanded depth-first. Symlinked directories are listed but
// not expanded. An unreadable directory renders as an empty string.
func BuildTree(dir, prefix string) string {
	var b strings.Builder
	writeTree(&b, dir, prefix)
	return b.String()
}

func writeTree(b *strings.Builder, dir, prefix string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	names := make([]string, 0, len(entries))
	dirs := make(map[string]bool, len(entries))
	for _, e := range entries {
		if hiddenFromTree(e.Name()) {
			continue
		}
		names = append(names, e.Name())
		dirs[e.Name()] = e.IsDir()
	}
	sort.Strings(names)

	for i, name := range names {
		last := i == len(names)-1

		connector, extension := branch, pipe
		if last {
			connector, extension = lastBranch, space
		}

		b.WriteString(prefix)
		b.WriteString(connector)
		b.WriteString(name)
		b.WriteString("\n")

		if dirs[name] {
			writeTree(b, filepath.Join(dir, name), prefix+extension)
		}
	}
}
