package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// newShowCmd creates the show command
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a task in detail",
		Long: `Show all fields of a task. The ID may be abbreviated to any
unique prefix.

Example:
  agenda show 3f1a`,
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

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(t)
			}

			fmt.Printf("ID:       %s\n", t.ID)
			fmt.Printf("Title:    %s\n", t.Title())
			fmt.Printf("Date:     %s\n", t.Date)
			fmt.Printf("Time:     %s-%s\n", t.StartTime, t.EndTime)
			fmt.Printf("Status:   %s %s\n", statusIcon(t.Status), t.Status)
			fmt.Printf("Subtasks: %d\n", len(t.Subtasks))
			fmt.Printf("Created:  %s\n", time.UnixMilli(t.CreatedAt).Format(time.RFC3339))
			fmt.Printf("Updated:  %s\n", time.UnixMilli(t.UpdatedAt).Format(time.RFC3339))
			for key, raw := range t.Extra {
				if key == "title" {
					continue
				}
				fmt.Printf("%s: %s\n", key, raw)
			}
			return nil
		},
	}
}
