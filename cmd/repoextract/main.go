package main

import (
	"fmt"
	"io"
	"os"

	"github.com/quantmind-br/repoextract/internal/app"
	"github.com/quantmind-br/repoextract/internal/config"
	"github.com/quantmind-br/repoextract/internal/tui"
	"github.com/quantmind-br/repoextract/internal/utils"
	"github.com/quantmind-br/repoextract/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool

	// Dependencies for testing
	runTUI          = tui.Run
	runConfigEditor = tui.RunConfig
	clonerFactory   app.ClonerFactory
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "repoextract [url]",
	Short: "Flatten a git repository into one prompt-ready text",
	Long: `repoextract clones a repository into a temporary directory, renders its
file tree and concatenates the contents of every file into a single text
that can be pasted into an LLM prompt.

Without a subcommand it opens the interactive extractor; the optional URL
pre-fills the input.`,
	Version:       version.Short(),
	Args:          cobra.MaximumNArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.repoextract/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().String("git-backend", config.DefaultGitBackend, "Clone backend: exec, go-git or auto")
	rootCmd.PersistentFlags().Int("depth", config.DefaultCloneDepth, "Clone depth (0 for full history)")
	rootCmd.PersistentFlags().Duration("timeout", config.DefaultCloneTimeout, "Clone timeout")
	rootCmd.PersistentFlags().String("workspace", "", "Parent directory for temporary clones")

	// Bind flags to viper
	_ = viper.BindPFlag("git.backend", rootCmd.PersistentFlags().Lookup("git-backend"))
	_ = viper.BindPFlag("git.depth", rootCmd.PersistentFlags().Lookup("depth"))
	_ = viper.BindPFlag("git.timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("workspace.base_dir", rootCmd.PersistentFlags().Lookup("workspace"))

	versionCmd.Flags().Bool("json", false, "Print version information as JSON")

	// Add subcommands
	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

// loadConfig loads the configuration, wrapping errors for the user
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func newOrchestrator(cfg *config.Config, logOutput io.Writer) (*app.Orchestrator, error) {
	orchestrator, err := app.NewOrchestrator(app.OrchestratorOptions{
		Config:        cfg,
		Verbose:       verbose,
		LogOutput:     logOutput,
		ClonerFactory: clonerFactory,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create orchestrator: %w", err)
	}
	return orchestrator, nil
}

// run opens the interactive extractor. Logs go to the log file so they do
// not draw over the UI.
func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var logOutput io.Writer = io.Discard
	if cfg.Logging.File != "" {
		f, err := utils.OpenLogFile(cfg.Logging.File)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: logging disabled: %v\n", err)
		} else {
			defer f.Close()
			logOutput = f
		}
	}

	orchestrator, err := newOrchestrator(cfg, logOutput)
	if err != nil {
		return err
	}

	var initialURL string
	if len(args) > 0 {
		initialURL = args[0]
	}

	return runTUI(tui.Options{
		Runner:     orchestrator,
		Logger:     orchestrator.Logger(),
		InitialURL: initialURL,
	})
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			data, err := version.Get().JSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		return nil
	},
}
