package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jenian/cfgscan/internal/config"
	"github.com/spf13/cobra"
)

func newInitConfigCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Create a " + config.FileName + " file",
		Long:  "Creates a " + config.FileName + " file with the default detection rules in the target directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := filepath.Join(dir, config.FileName)

			if _, err := os.Stat(configPath); err == nil {
				return fmt.Errorf("%s already exists in %s", config.FileName, dir)
			}

			content, err := config.DefaultYAML()
			if err != nil {
				return err
			}

			if err := os.WriteFile(configPath, content, 0644); err != nil {
				return fmt.Errorf("failed to create %s: %w", config.FileName, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to write the config file to")
	return cmd
}
