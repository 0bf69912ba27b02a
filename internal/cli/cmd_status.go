package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfield/agenda/internal/task"
)

// newStartCmd creates the start command
func newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <id>",
		Short: "Mark a task in progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setStatus(args[0], task.StatusInProgress)
		},
	}
}

// newDoneCmd creates the done command
func newDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setStatus(args[0], task.StatusCompleted)
		},
	}
}

func setStatus(arg string, status task.Status) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	t, err := resolveTask(store.GetAllTasks(), arg)
	if err != nil {
		return err
	}

	t.Status = status
	updated, err := store.UpdateTask(t)
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Printf("%s %s  %s\n", statusIcon(updated.Status), shortID(updated.ID), updated.Title())
	}
	return nil
}
