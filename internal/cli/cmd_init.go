package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mfield/agenda/internal/config"
	agendaerrors "github.com/mfield/agenda/internal/errors"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the agenda data directory",
		Long: `Create the agenda data directory and write a default config file.

Example:
  agenda init
  agenda init --data-dir /path/to/dir`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, dir, err := loadConfig()
			if err != nil {
				return err
			}

			cfgPath := filepath.Join(dir, config.ConfigFileName)
			if _, err := os.Stat(cfgPath); err == nil && !force {
				return agendaerrors.ErrAlreadyInitialized(dir)
			}

			if err := config.Default().Save(dir); err != nil {
				return fmt.Errorf("write default config: %w", err)
			}

			if !quiet {
				fmt.Printf("Initialized agenda in %s\n", dir)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config")
	return cmd
}
