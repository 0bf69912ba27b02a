package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newExportCmd creates the export command
func newExportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the task collection",
		Long: `Write the full task collection to stdout for backup or inspection.

Example:
  agenda export > tasks.json
  agenda export --format yaml > tasks.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			tasks := store.GetAllTasks()

			switch format {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(tasks)
			case "yaml":
				// Round through JSON so the opaque payload fields are
				// included the same way they are persisted.
				data, err := json.Marshal(tasks)
				if err != nil {
					return fmt.Errorf("serialize tasks: %w", err)
				}
				var generic []map[string]any
				if err := json.Unmarshal(data, &generic); err != nil {
					return fmt.Errorf("reshape tasks: %w", err)
				}
				return yaml.NewEncoder(os.Stdout).Encode(generic)
			default:
				return fmt.Errorf("unknown format %q (valid: json, yaml)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format (json or yaml)")
	return cmd
}
