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

// newAddCmd creates the add command
func newAddCmd() *cobra.Command {
	var (
		dateFlag   string
		startFlag  string
		endFlag    string
		statusFlag string
		noteFlag   string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a new task",
		Long: `Create a new task scheduled on a calendar day.

The date defaults to today. When no end time is given it defaults to one
hour after the start time; when no start time is given either, the end
time falls back to 10:00.

Example:
  agenda add "Write report"
  agenda add "Dentist" --date 2026-09-02 --start 14:30 --end 15:00
  agenda add "Standup" --start 09:15 --status IN_PROGRESS`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			input := task.Task{Date: date.Today()}
			input.SetTitle(args[0])

			if dateFlag != "" {
				d, err := date.ParseDay(dateFlag)
				if err != nil {
					return agendaerrors.ErrInvalidDate(dateFlag).WithCause(err)
				}
				input.Date = d
			}
			if startFlag != "" {
				start, err := date.ParseTimeOfDay(startFlag)
				if err != nil {
					return fmt.Errorf("invalid start time: %w", err)
				}
				input.StartTime = start
			}
			if endFlag != "" {
				end, err := date.ParseTimeOfDay(endFlag)
				if err != nil {
					return fmt.Errorf("invalid end time: %w", err)
				}
				input.EndTime = end
			}
			if statusFlag != "" {
				status := task.Status(statusFlag)
				if !task.IsValidStatus(status) {
					return agendaerrors.ErrInvalidStatus(statusFlag)
				}
				input.Status = status
			}
			if noteFlag != "" {
				input.SetExtraString("notes", noteFlag)
			}

			created, err := store.CreateTask(input)
			if err != nil {
				return err
			}

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(created)
			}
			if !quiet {
				fmt.Printf("Created %s  %s %s-%s  %s\n",
					shortID(created.ID), created.Date, created.StartTime, created.EndTime, created.Title())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "calendar day (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&startFlag, "start", "s", "", "start time (HH:MM)")
	cmd.Flags().StringVarP(&endFlag, "end", "e", "", "end time (HH:MM)")
	cmd.Flags().StringVar(&statusFlag, "status", "", "initial status (NOT_STARTED, IN_PROGRESS, COMPLETED)")
	cmd.Flags().StringVarP(&noteFlag, "note", "n", "", "free-form note")
	return cmd
}
