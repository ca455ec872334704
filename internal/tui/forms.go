package tui

import (
	"github.com/charmbracelet/huh"

	"github.com/quantmind-br/repoextract/internal/config"
)

func CreateGitForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("backend").
				Title("Clone Backend").
				Description("How repositories are cloned").
				Options(
					huh.NewOption("git binary", config.BackendExec),
					huh.NewOption("go-git (in-process)", config.BackendGoGit),
					huh.NewOption("Auto (binary when on PATH)", config.BackendAuto),
				).
				Value(&values.GitBackend),

			huh.NewInput().
				Key("binary").
				Title("Git Binary").
				Description("Path or name of the git executable").
				Value(&values.GitBinary).
				Placeholder(config.DefaultGitBinary),

			huh.NewInput().
				Key("depth").
				Title("Clone Depth").
				Description("History depth for shallow clones (0 for full history)").
				Value(&values.GitDepth).
				Placeholder("1").
				Validate(ValidateNonNegativeInt),

			huh.NewInput().
				Key("timeout").
				Title("Clone Timeout").
				Description("Maximum time for a clone (e.g., 30s, 10m)").
				Value(&values.GitTimeout).
				Placeholder("10m").
				Validate(ValidateDuration),
		),
	).WithTheme(GetTheme())
}

func CreateWorkspaceForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("base_dir").
				Title("Workspace Directory").
				Description("Parent directory for temporary clones (leave empty for system temp)").
				Value(&values.WorkspaceBaseDir).
				Placeholder("/tmp"),
		),
	).WithTheme(GetTheme())
}

func CreateLoggingForm(values *ConfigValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("level").
				Title("Log Level").
				Description("Minimum log level to record").
				Options(
					huh.NewOption("Trace", "trace"),
					huh.NewOption("Debug", "debug"),
					huh.NewOption("Info", "info"),
					huh.NewOption("Warn", "warn"),
					huh.NewOption("Error", "error"),
				).
				Validate(ValidateLogLevel).
				Value(&values.LogLevel),

			huh.NewSelect[string]().
				Key("format").
				Title("Log Format").
				Description("Output format for logs").
				Options(
					huh.NewOption("Pretty (human-readable)", "pretty"),
					huh.NewOption("JSON (structured)", "json"),
				).
				Validate(ValidateLogFormat).
				Value(&values.LogFormat),

			huh.NewInput().
				Key("file").
				Title("Log File").
				Description("Where the interactive UI writes its log").
				Value(&values.LogFile).
				Placeholder("~/.repoextract/repoextract.log"),
		),
	).WithTheme(GetTheme())
}

func GetFormForCategory(category string, values *ConfigValues) *huh.Form {
	switch category {
	case "git":
		return CreateGitForm(values)
	case "workspace":
		return CreateWorkspaceForm(values)
	case "logging":
		return CreateLoggingForm(values)
	default:
		return nil
	}
}
