package metrics

import (
	"github.com/jonathan/status-page/internal/stage"
	"github.com/jonathan/status-page/internal/types"
)

// Current is the snapshot view over active roles only. Pipeline holds
// exact per-stage counts: a role counts toward its current stage and no
// other. Roles with an unrecognized stage are excluded from Pipeline
// (validation reports them separately).
type Current struct {
	ActiveCount       int
	AppliedCount      int
	InterviewingCount int
	UpdatedThisWeek   int
	Pipeline          map[string]int
}

// ComputeCurrent aggregates the active roles into snapshot statistics.
func ComputeCurrent(model *stage.Model, tracker types.TrackerData, clock Clock) Current {
	cur := Current{
		ActiveCount: len(tracker.Active),
		Pipeline:    make(map[string]int, len(model.Stages)),
	}
	for _, s := range model.Stages {
		cur.Pipeline[s] = 0
	}

	weekAgo := clock.DaysAgo(7)
	for _, r := range tracker.Active {
		if model.Valid(r.Stage) {
			cur.Pipeline[r.Stage]++
		}
		if model.AtOrAfter(r.Stage, stage.Applied) {
			cur.AppliedCount++
		}
		if model.AtOrAfter(r.Stage, stage.PhoneScreen) {
			cur.InterviewingCount++
		}
		if r.Updated != "" && r.Updated >= weekAgo {
			cur.UpdatedThisWeek++
		}
	}
	return cur
}
