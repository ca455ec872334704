package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/quantmind-br/repoextract/internal/config"
	"github.com/quantmind-br/repoextract/internal/tui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit the configuration interactively",
	Long:  "Opens a form-based editor for the git, workspace and logging settings and saves them as YAML.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		path := configPath()
		accessible, _ := cmd.Flags().GetBool("accessible")

		return runConfigEditor(tui.ConfigOptions{
			Config:     cfg,
			Path:       path,
			Accessible: accessible,
			SaveFunc: func(c *config.Config) error {
				return config.Save(c, path)
			},
		})
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", configPath(), data)
		return nil
	},
}

func init() {
	configCmd.Flags().Bool("accessible", false, "Use accessible forms for screen readers")
	configCmd.AddCommand(configShowCmd)
}

// configPath returns the file the editor writes to
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.ConfigFilePath()
}
