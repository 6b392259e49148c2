package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chunkah/relcut/internal/config"
)

// NewInitCmd returns a new cobra command that scaffolds the config file.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   InitCmdName,
		Short: "Write a default " + config.ConfigFile + " to the working directory",
		Long: `
Write a commented ` + config.ConfigFile + ` with the default release configuration to
the working directory. The file is optional; relcut falls back to the same
defaults when it is absent.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := os.Stat(config.ConfigFile); err == nil {
				return fmt.Errorf("%s already exists", config.ConfigFile)
			}
			if err := os.WriteFile(config.ConfigFile, []byte(config.DefaultConfigContent), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", config.ConfigFile, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", config.ConfigFile)
			return nil
		},
	}

	return cmd
}
