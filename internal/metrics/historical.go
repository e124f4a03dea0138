package metrics

import (
	"math"

	"github.com/jonathan/status-page/internal/stage"
	"github.com/jonathan/status-page/internal/types"
)

// Historical is the all-time view over active and closed roles.
// Pipeline is cumulative: a role that reached stage S contributes to
// every stage at or before S, so earlier stages always have counts at
// least as large as later ones.
type Historical struct {
	TotalRoles        int
	DaysActive        int
	Pipeline          map[string]int
	ConversionRates   map[string]int // stage -> % advanced from the previous stage
	Outcomes          map[string]int // outcome -> closed-role count
	AvgDaysToResponse int
	ClosedCount       int
	SkippedCount      int
}

// ComputeHistorical aggregates active and closed roles into all-time
// statistics. Closed roles with no recorded stage are assumed to have
// reached Sourced and Applied only; this mirrors how such records were
// tracked before stages were recorded at close time and is a heuristic,
// not a measurement.
func ComputeHistorical(model *stage.Model, tracker types.TrackerData, clock Clock) Historical {
	hist := Historical{
		TotalRoles:      len(tracker.Active) + len(tracker.Closed),
		Pipeline:        make(map[string]int, len(model.Stages)),
		ConversionRates: make(map[string]int, len(model.Stages)),
		Outcomes:        make(map[string]int, len(model.Outcomes)),
		ClosedCount:     len(tracker.Closed),
		SkippedCount:    len(tracker.Skipped),
	}
	for _, s := range model.Stages {
		hist.Pipeline[s] = 0
	}
	for _, o := range model.Outcomes {
		hist.Outcomes[o] = 0
	}

	reached := func(s string) {
		if idx := model.Index(s); idx >= 0 {
			for i := 0; i <= idx; i++ {
				hist.Pipeline[model.Stages[i]]++
			}
		}
	}
	for _, r := range tracker.Active {
		reached(r.Stage)
	}
	for _, r := range tracker.Closed {
		if r.Stage != "" {
			reached(r.Stage)
		} else {
			hist.Pipeline[model.Stages[0]]++
			hist.Pipeline[model.Stages[1]]++
		}
		if _, ok := hist.Outcomes[r.Outcome]; ok {
			hist.Outcomes[r.Outcome]++
		}
	}

	for i := 1; i < len(model.Stages); i++ {
		prev := hist.Pipeline[model.Stages[i-1]]
		curr := hist.Pipeline[model.Stages[i]]
		if prev > 0 {
			hist.ConversionRates[model.Stages[i]] = int(math.Round(float64(curr) / float64(prev) * 100))
		} else {
			hist.ConversionRates[model.Stages[i]] = 0
		}
	}

	hist.DaysActive = daysActive(tracker, clock)
	hist.AvgDaysToResponse = avgDaysToResponse(model, tracker)
	return hist
}

// daysActive counts whole days from the earliest added date across all
// three collections to today. Zero when nothing has a date yet.
func daysActive(tracker types.TrackerData, clock Clock) int {
	earliest := ""
	scan := func(roles []types.Role) {
		for _, r := range roles {
			if r.Added != "" && (earliest == "" || r.Added < earliest) {
				earliest = r.Added
			}
		}
	}
	scan(tracker.Active)
	scan(tracker.Closed)
	scan(tracker.Skipped)
	if earliest == "" {
		return 0
	}
	days, ok := daysBetween(earliest, clock.Today())
	if !ok || days < 0 {
		return 0
	}
	return days
}

// avgDaysToResponse averages updated-added (whole days) over roles that
// progressed past the first stage and carry both dates. Non-positive
// deltas are excluded. Zero when no role qualifies.
func avgDaysToResponse(model *stage.Model, tracker types.TrackerData) int {
	sum, n := 0, 0
	sample := func(roles []types.Role) {
		for _, r := range roles {
			if model.Index(r.Stage) <= 0 || r.Added == "" || r.Updated == "" {
				continue
			}
			if days, ok := daysBetween(r.Added, r.Updated); ok && days > 0 {
				sum += days
				n++
			}
		}
	}
	sample(tracker.Active)
	sample(tracker.Closed)
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}
