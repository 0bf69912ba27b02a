package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mfield/agenda/internal/date"
	agendaerrors "github.com/mfield/agenda/internal/errors"
	"github.com/mfield/agenda/internal/task"
)

// newEditCmd creates the edit command
func newEditCmd() *cobra.Command {
	var (
		titleFlag  string
		dateFlag   string
		startFlag  string
		endFlag    string
		statusFlag string
		noteFlag   string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Long: `Update fields of an existing task. Only the supplied flags change;
everything else is preserved. The ID may be abbreviated to any unique prefix.

Example:
  agenda edit 3f1a --title "Write Q3 report"
  agenda edit 3f1a --date 2026-09-01 --start 11:00
  agenda edit 3f1a --status IN_PROGRESS`,
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

			if titleFlag != "" {
				t.SetTitle(titleFlag)
			}
			if dateFlag != "" {
				d, err := date.ParseDay(dateFlag)
				if err != nil {
					return agendaerrors.ErrInvalidDate(dateFlag).WithCause(err)
				}
				t.Date = d
			}
			if startFlag != "" {
				start, err := date.ParseTimeOfDay(startFlag)
				if err != nil {
					return fmt.Errorf("invalid start time: %w", err)
				}
				t.StartTime = start
			}
			if endFlag != "" {
				end, err := date.ParseTimeOfDay(endFlag)
				if err != nil {
					return fmt.Errorf("invalid end time: %w", err)
				}
				t.EndTime = end
			}
			if statusFlag != "" {
				status := task.Status(statusFlag)
				if !task.IsValidStatus(status) {
					return agendaerrors.ErrInvalidStatus(statusFlag)
				}
				t.Status = status
			}
			if noteFlag != "" {
				t.SetExtraString("notes", noteFlag)
			}

			updated, err := store.UpdateTask(t)
			if err != nil {
				return err
			}

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(updated)
			}
			if !quiet {
				fmt.Printf("Updated %s\n", shortID(updated.ID))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&titleFlag, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "new calendar day (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&startFlag, "start", "s", "", "new start time (HH:MM)")
	cmd.Flags().StringVarP(&endFlag, "end", "e", "", "new end time (HH:MM)")
	cmd.Flags().StringVar(&statusFlag, "status", "", "new status")
	cmd.Flags().StringVarP(&noteFlag, "note", "n", "", "new note")
	return cmd
}
