// Package extract turns a cloned repository into a single prompt-ready document.
//
// Pipeline:
//   - BuildTree: ASCII tree of the workspace
//   - ListFiles: every file that passes the fixed exclusion rules
//   - FormatFile: each file wrapped in <relative/path> ... </relative/path>
//   - Extractor: clone, tree, files, format, always removing the workspace
//
// Usage:
//
//	ex, err := extract.New(extract.Options{Cloner: cloner})
//	doc, err := ex.Extract(ctx, "https://github.com/user/repo.git", nil)
//	fmt.Println(doc.String())
package extract
