package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mfield/agenda/internal/date"
	agendaerrors "github.com/mfield/agenda/internal/errors"
	"github.com/mfield/agenda/internal/task"
)

// newListCmd creates the list command
func newListCmd() *cobra.Command {
	var (
		dateFlag   string
		statusFlag string
		overdue    bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long: `List tasks in the collection.

Example:
  agenda list
  agenda list --date 2026-08-30
  agenda list --status IN_PROGRESS
  agenda list --overdue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			tasks := store.GetAllTasks()

			if dateFlag != "" {
				d, err := date.ParseDay(dateFlag)
				if err != nil {
					return agendaerrors.ErrInvalidDate(dateFlag).WithCause(err)
				}
				tasks = filterTasks(tasks, func(t task.Task) bool { return t.Date.Equal(d) })
			}
			if statusFlag != "" {
				status := task.Status(statusFlag)
				if !task.IsValidStatus(status) {
					return agendaerrors.ErrInvalidStatus(statusFlag)
				}
				tasks = filterTasks(tasks, func(t task.Task) bool { return t.Status == status })
			}
			if overdue {
				today := date.Today()
				tasks = filterTasks(tasks, func(t task.Task) bool {
					return t.Date.Before(today) && t.Status != task.StatusCompleted
				})
			}

			sort.Slice(tasks, func(i, j int) bool {
				if !tasks[i].Date.Equal(tasks[j].Date) {
					return tasks[i].Date.Before(tasks[j].Date)
				}
				return tasks[i].StartTime.String() < tasks[j].StartTime.String()
			})

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(tasks)
			}

			if len(tasks) == 0 {
				fmt.Println("No tasks found. Create one with: agenda add \"Your task\"")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\t \tDATE\tTIME\tTITLE")
			for _, t := range tasks {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s-%s\t%s\n",
					shortID(t.ID), statusIcon(t.Status), t.Date,
					t.StartTime, t.EndTime, truncate(t.Title(), 40))
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "only tasks on this day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&statusFlag, "status", "", "only tasks with this status")
	cmd.Flags().BoolVar(&overdue, "overdue", false, "only overdue tasks")
	return cmd
}

func filterTasks(tasks []task.Task, keep func(task.Task) bool) []task.Task {
	var out []task.Task
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
