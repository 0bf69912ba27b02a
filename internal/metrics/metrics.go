// Package metrics derives dashboard statistics from a task collection.
//
// All functions are pure: they take the collection and a reference time and
// never mutate their input. The caller composes them with the task store.
package metrics

import (
	"time"

	"github.com/mfield/agenda/internal/date"
	"github.com/mfield/agenda/internal/task"
)

// DefaultTrendWindowDays is the trailing window used when none is given.
const DefaultTrendWindowDays = 14

// KPIs holds the dashboard summary counts.
type KPIs struct {
	// Total is the count of all tasks, including ones with out-of-range
	// status values.
	Total int

	// ByStatus counts tasks per valid status. Tasks with a status outside
	// the enumeration are a data-integrity anomaly and are not counted here.
	ByStatus map[task.Status]int

	// Overdue counts tasks scheduled before today that are not completed.
	Overdue int

	// Today counts tasks scheduled on today's calendar date.
	Today int

	// ThisWeek counts tasks scheduled in the current Sunday-to-Saturday
	// week, both ends inclusive, relative to the reference time.
	ThisWeek int
}

// Summarize computes the dashboard KPIs for the collection at the given
// reference time.
func Summarize(tasks []task.Task, now time.Time) KPIs {
	today := date.DayOfTime(now)
	weekStart := today.AddDays(-int(today.Weekday()))
	weekEnd := weekStart.AddDays(6)

	k := KPIs{ByStatus: make(map[task.Status]int, len(task.ValidStatuses()))}
	for _, s := range task.ValidStatuses() {
		k.ByStatus[s] = 0
	}

	for _, t := range tasks {
		k.Total++
		if task.IsValidStatus(t.Status) {
			k.ByStatus[t.Status]++
		}
		if t.Date.Before(today) && t.Status != task.StatusCompleted {
			k.Overdue++
		}
		if t.Date.Equal(today) {
			k.Today++
		}
		if !t.Date.Before(weekStart) && !t.Date.After(weekEnd) {
			k.ThisWeek++
		}
	}
	return k
}

// Slice is one status segment of the distribution.
type Slice struct {
	Status   task.Status
	Count    int
	Fraction float64
}

// Distribution returns the per-status share of the collection. Statuses with
// zero count are omitted, and fractions are computed over the total of
// counted tasks only. An empty result is the explicit "no data" signal; the
// caller renders it as such instead of dividing by zero.
func Distribution(tasks []task.Task) []Slice {
	counts := make(map[task.Status]int)
	total := 0
	for _, t := range tasks {
		if !task.IsValidStatus(t.Status) {
			continue
		}
		counts[t.Status]++
		total++
	}
	if total == 0 {
		return nil
	}

	var slices []Slice
	for _, s := range task.ValidStatuses() {
		if counts[s] == 0 {
			continue
		}
		slices = append(slices, Slice{
			Status:   s,
			Count:    counts[s],
			Fraction: float64(counts[s]) / float64(total),
		})
	}
	return slices
}

// TrendPoint is one day of the created/completed time series.
type TrendPoint struct {
	Day       date.Day
	Created   int
	Completed int
}

// Trend computes the trailing created/completed series for the window ending
// on now's calendar date, oldest day first. windowDays values <= 0 fall back
// to DefaultTrendWindowDays.
//
// Completed counts tasks scheduled on the day that are currently completed.
// There is no separate completion timestamp, so "scheduled for D and now
// completed" stands in for "completed on D".
func Trend(tasks []task.Task, now time.Time, windowDays int) []TrendPoint {
	if windowDays <= 0 {
		windowDays = DefaultTrendWindowDays
	}

	today := date.DayOfTime(now)
	points := make([]TrendPoint, 0, windowDays)
	for offset := windowDays - 1; offset >= 0; offset-- {
		day := today.AddDays(-offset)
		p := TrendPoint{Day: day}
		for _, t := range tasks {
			if date.DayOfTime(time.UnixMilli(t.CreatedAt)).Equal(day) {
				p.Created++
			}
			if t.Date.Equal(day) && t.Status == task.StatusCompleted {
				p.Completed++
			}
		}
		points = append(points, p)
	}
	return points
}
