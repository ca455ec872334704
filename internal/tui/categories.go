package tui

import (
	"fmt"
	"strings"
)

// Category is one section of the configuration editor menu
type Category struct {
	ID          string
	Name        string
	Description string
	// Summary renders the current values of the section for the menu
	Summary func(*ConfigValues) string
}

var Categories = []Category{
	{
		ID:          "git",
		Name:        "Git",
		Description: "Clone backend, binary, depth and timeout",
		Summary: func(v *ConfigValues) string {
			depth := "depth " + orDash(v.GitDepth)
			if strings.TrimSpace(v.GitDepth) == "0" {
				depth = "full history"
			}
			return fmt.Sprintf("%s, %s, timeout %s", orDash(v.GitBackend), depth, orDash(v.GitTimeout))
		},
	},
	{
		ID:          "workspace",
		Name:        "Workspace",
		Description: "Where temporary clones are created",
		Summary: func(v *ConfigValues) string {
			if strings.TrimSpace(v.WorkspaceBaseDir) == "" {
				return "system temp directory"
			}
			return v.WorkspaceBaseDir
		},
	},
	{
		ID:          "logging",
		Name:        "Logging",
		Description: "Log level, format and file",
		Summary: func(v *ConfigValues) string {
			return fmt.Sprintf("%s/%s to %s", orDash(v.LogLevel), orDash(v.LogFormat), orDash(v.LogFile))
		},
	},
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
