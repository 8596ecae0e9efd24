// Package report computes the monthly aggregation views. Everything here
// is pure and synchronous: callers pass full record lists and get read-only
// view data back, recomputed from scratch on every filter change.
package report

import (
	"sort"
	"strings"

	"sitelog/models"
)

// SiteSummary is one (worker, site) line of the monthly work report.
type SiteSummary struct {
	SiteName   string
	WorkDays   int
	TotalHours float64
}

// WorkerSummary groups one worker's month across the sites they worked.
type WorkerSummary struct {
	WorkerName string
	TeamName   string
	Sites      []SiteSummary
}

// EquipmentSummary is the team-wide monthly total for one equipment type.
// Per-site equipment breakdown was dropped; quantities are summed across
// the whole team.
type EquipmentSummary struct {
	EquipmentType string
	TotalQuantity int
}

// inMonth reports whether the record date falls inside month (YYYY-MM).
// Grouping and filtering work on exact strings, no normalization.
func inMonth(workDate, month string) bool {
	return workDate != "" && strings.HasPrefix(workDate, month)
}

// AggregateWork groups the month's work records by worker, then by site,
// counting contributing records as work days and summing hours. Workers
// appear in first-seen order of the input; sites likewise within a worker.
func AggregateWork(records []models.WorkRecord, month, teamName string) []WorkerSummary {
	var order []string
	byWorker := make(map[string]*WorkerSummary)

	for _, r := range records {
		if !inMonth(r.WorkDate, month) {
			continue
		}
		w, ok := byWorker[r.WorkerName]
		if !ok {
			w = &WorkerSummary{WorkerName: r.WorkerName, TeamName: teamName}
			byWorker[r.WorkerName] = w
			order = append(order, r.WorkerName)
		}

		found := false
		for i := range w.Sites {
			if w.Sites[i].SiteName == r.SiteName {
				w.Sites[i].WorkDays++
				w.Sites[i].TotalHours += r.WorkHours
				found = true
				break
			}
		}
		if !found {
			w.Sites = append(w.Sites, SiteSummary{
				SiteName:   r.SiteName,
				WorkDays:   1,
				TotalHours: r.WorkHours,
			})
		}
	}

	out := make([]WorkerSummary, 0, len(order))
	for _, name := range order {
		out = append(out, *byWorker[name])
	}
	return out
}

// AggregateEquipment sums the month's quantities per equipment type.
// Known types come out in display order; anything outside the fixed set
// (older data) follows alphabetically.
func AggregateEquipment(records []models.EquipmentRecord, month string) []EquipmentSummary {
	totals := make(map[string]int)
	for _, r := range records {
		if !inMonth(r.WorkDate, month) {
			continue
		}
		totals[r.EquipmentType] += r.Quantity
	}

	out := make([]EquipmentSummary, 0, len(totals))
	for _, t := range models.EquipmentTypes {
		if qty, ok := totals[t]; ok {
			out = append(out, EquipmentSummary{EquipmentType: t, TotalQuantity: qty})
			delete(totals, t)
		}
	}

	var rest []string
	for t := range totals {
		rest = append(rest, t)
	}
	sort.Strings(rest)
	for _, t := range rest {
		out = append(out, EquipmentSummary{EquipmentType: t, TotalQuantity: totals[t]})
	}
	return out
}
