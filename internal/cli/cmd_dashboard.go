package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfield/agenda/internal/metrics"
)

// dashboardResult is the JSON shape of the dashboard output.
type dashboardResult struct {
	KPIs         metrics.KPIs         `json:"kpis"`
	Distribution []metrics.Slice      `json:"distribution"`
	Trend        []metrics.TrendPoint `json:"trend"`
}

// newDashboardCmd creates the dashboard command
func newDashboardCmd() *cobra.Command {
	var windowDays int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show productivity metrics",
		Long: `Show dashboard KPIs, the status distribution, and the created/completed
trend for the trailing window.

Example:
  agenda dashboard
  agenda dashboard --window 30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}
			if windowDays == 0 {
				windowDays = cfg.TrendWindowDays
			}

			store, err := openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			tasks := store.GetAllTasks()
			now := time.Now()

			result := dashboardResult{
				KPIs:         metrics.Summarize(tasks, now),
				Distribution: metrics.Distribution(tasks),
				Trend:        metrics.Trend(tasks, now, windowDays),
			}

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(result)
			}

			k := result.KPIs
			fmt.Printf("Tasks: %d total  |  %d today  |  %d this week  |  %d overdue\n\n",
				k.Total, k.Today, k.ThisWeek, k.Overdue)

			if len(result.Distribution) == 0 {
				fmt.Println("No data yet. Create a task with: agenda add \"Your task\"")
				return nil
			}

			for _, s := range result.Distribution {
				fmt.Printf("  %s %-12s %3d  (%.0f%%)\n",
					statusIcon(s.Status), s.Status, s.Count, s.Fraction*100)
			}
			fmt.Println()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DAY\tCREATED\tCOMPLETED\t")
			for _, p := range result.Trend {
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\n",
					p.Day, p.Created, p.Completed, sparkbar(p.Created, p.Completed))
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().IntVar(&windowDays, "window", 0, "trend window in days (default from config)")
	return cmd
}

// sparkbar renders a small inline bar for the trend table.
func sparkbar(created, completed int) string {
	return strings.Repeat("+", created) + strings.Repeat("#", completed)
}
