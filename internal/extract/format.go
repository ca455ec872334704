package extract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/quantmind-br/repoextract/internal/domain"
)

// errInvalidUTF8 is reported inline for files that are not UTF-8 text
var errInvalidUTF8 = errors.New("content is not valid UTF-8 text")

// newlines folds CRLF and lone CR into LF, as a text-mode read does
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// NewFileEntry describes path as found under root
func NewFileEntry(path, root string) domain.FileEntry {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	return domain.FileEntry{Path: path, RelPath: rel}
}

// FormatFile reads path and wraps its text in a block tagged with the path
// relative to root:
//
//	<relative/path>
//	content
//	</relative/path>
//
// A read or decode failure is not fatal; the message becomes the content.
func FormatFile(path, root string) string {
	return FormatEntry(NewFileEntry(path, root))
}

// FormatEntry formats an already resolved entry, see FormatFile
func FormatEntry(entry domain.FileEntry) string {
	content, err := ReadText(entry.Path)
	if err != nil {
		content = fmt.Sprintf("Error reading file: %v", err)
	}
	return fmt.Sprintf("<%s>\n%s\n</%s>", entry.RelPath, content, entry.RelPath)
}

// ReadText reads path as UTF-8 text with normalised newlines
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errInvalidUTF8
	}
	return newlines.Replace(string(data)), nil
}
