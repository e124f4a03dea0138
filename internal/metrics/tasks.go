package metrics

import (
	"github.com/jonathan/status-page/internal/types"
)

// TaskStats partitions tasks by status and classifies pending tasks
// relative to the build date. Due-soon means due within the next three
// days (inclusive); overdue means due strictly before today.
type TaskStats struct {
	PendingCount   int
	CompletedCount int
	DueSoonCount   int
	OverdueCount   int
	Pending        []types.Task
	Completed      []types.Task
}

// ComputeTasks classifies the task list.
func ComputeTasks(tasks types.TasksData, clock Clock) TaskStats {
	var stats TaskStats
	today := clock.Today()
	soon := clock.DaysAhead(3)

	for _, t := range tasks.Tasks {
		switch t.Status {
		case types.TaskPending:
			stats.Pending = append(stats.Pending, t)
			if t.Due != "" && t.Due <= soon {
				stats.DueSoonCount++
			}
			if t.Due != "" && t.Due < today {
				stats.OverdueCount++
			}
		case types.TaskCompleted:
			stats.Completed = append(stats.Completed, t)
		}
	}
	stats.PendingCount = len(stats.Pending)
	stats.CompletedCount = len(stats.Completed)
	return stats
}
