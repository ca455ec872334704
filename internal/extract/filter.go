package extract

import "strings"

const (
	// MetadataDir is the version-control directory that is never listed or walked
	MetadataDir = ".git"
	// EnvFile is never listed or read
	EnvFile = ".env"
)

// excludedPrefixes are matched case-insensitively against file names.
// A prefix match is intended: "readme.md.bak" is excluded as well.
var excludedPrefixes = []string{
	"readme.md",
	"requirements.txt",
	".",
}

// SkipFile reports whether the enumerator drops a file with this base name
func SkipFile(name string) bool {
	if name == EnvFile {
		return true
	}
	lower := strings.ToLower(name)
	if lower == EnvFile {
		return true
	}
	for _, prefix := range excludedPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// SkipDir reports whether the enumerator refuses to descend into a directory
func SkipDir(name string) bool {
	return name == MetadataDir
}

// hiddenFromTree reports whether the tree renderer leaves an entry out
func hiddenFromTree(name string) bool {
	return name == MetadataDir || name == EnvFile
}
