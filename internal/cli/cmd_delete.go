package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newDeleteCmd creates the delete command
func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Long: `Delete a task. Deletion is irreversible.

The ID may be abbreviated to any unique prefix.

Example:
  agenda delete 3f1a`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			t, err := resolveTask(store.GetAllTasks(), args[0])
			if err != nil {
				return err
			}

			if err := store.DeleteTask(t.ID); err != nil {
				return fmt.Errorf("delete task: %w", err)
			}

			if !quiet {
				fmt.Printf("Deleted %s  %s\n", shortID(t.ID), t.Title())
			}
			return nil
		},
	}
}
