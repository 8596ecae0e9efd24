// Package forms owns the screen-side state of the editing surfaces: it
// parses posted multi-row tables, validates them before any API call is
// made, and seeds new forms from the previous day's records.
package forms

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"sitelog/models"
)

// ErrNoValidRows rejects a submission in which no row survived cleaning;
// the caller must not issue any API call in that case.
var ErrNoValidRows = errors.New("enter at least one worker with a site and positive hours")

// WorkRow is one line of the work-entry table. RowID exists only for
// in-form list management and is never sent to the backend.
type WorkRow struct {
	RowID      string
	WorkerID   string
	WorkerName string
	SiteName   string
	WorkHours  float64
}

// WorkEntry is the full state of the combined work/equipment entry form:
// the dated row table, the per-type equipment quantities and the shared
// notes field.
type WorkEntry struct {
	WorkDate   string
	Notes      string
	Rows       []WorkRow
	Quantities map[string]int
}

// NewWorkEntry returns an empty form for date with the minimum single row.
func NewWorkEntry(date string) WorkEntry {
	return WorkEntry{
		WorkDate:   date,
		Rows:       []WorkRow{{RowID: uuid.NewString(), WorkHours: 1}},
		Quantities: emptyQuantities(),
	}
}

func emptyQuantities() map[string]int {
	q := make(map[string]int, len(models.EquipmentTypes))
	for _, t := range models.EquipmentTypes {
		q[t] = 0
	}
	return q
}

// ParseWorkEntry reads the posted entry form. Row fields arrive as
// parallel repeated values; equipment quantities arrive as qty_<i> indexed
// by display position. A malformed quantity fails the whole parse so the
// form re-renders with a message instead of silently dropping input.
func ParseWorkEntry(args *fasthttp.Args) (WorkEntry, error) {
	entry := WorkEntry{
		WorkDate:   strings.TrimSpace(string(args.Peek("work_date"))),
		Notes:      strings.TrimSpace(string(args.Peek("notes"))),
		Quantities: emptyQuantities(),
	}

	workerIDs := args.PeekMulti("worker_id")
	siteNames := args.PeekMulti("site_name")
	workHours := args.PeekMulti("work_hours")

	for i := range workerIDs {
		row := WorkRow{
			RowID:    uuid.NewString(),
			WorkerID: strings.TrimSpace(string(workerIDs[i])),
		}
		if i < len(siteNames) {
			row.SiteName = strings.TrimSpace(string(siteNames[i]))
		}
		if i < len(workHours) {
			if h, err := strconv.ParseFloat(strings.TrimSpace(string(workHours[i])), 64); err == nil {
				row.WorkHours = h
			}
		}
		entry.Rows = append(entry.Rows, row)
	}

	for i, t := range models.EquipmentTypes {
		raw := string(args.Peek("qty_" + strconv.Itoa(i)))
		qty, ok := NormalizeQuantity(raw)
		if !ok {
			return entry, errors.New("equipment quantity for " + t + " must be a whole number")
		}
		entry.Quantities[t] = qty
	}

	return entry, nil
}

// ResolveWorkers fills each row's worker name from the team roster. Rows
// pointing at an unknown worker keep an empty name and get dropped by
// CleanRows.
func (e *WorkEntry) ResolveWorkers(workers []models.Worker) {
	byID := make(map[string]string, len(workers))
	for _, w := range workers {
		byID[w.ID] = w.Name
	}
	for i := range e.Rows {
		e.Rows[i].WorkerName = byID[e.Rows[i].WorkerID]
	}
}

// CleanRows drops rows missing a worker or site, or with hours that are
// not a positive half-day increment. ErrNoValidRows means nothing usable
// was entered.
func (e *WorkEntry) CleanRows() error {
	valid := e.Rows[:0]
	for _, row := range e.Rows {
		if row.WorkerID == "" || row.WorkerName == "" || row.SiteName == "" {
			continue
		}
		if !models.ValidWorkHours(row.WorkHours) {
			continue
		}
		valid = append(valid, row)
	}
	e.Rows = valid
	if len(e.Rows) == 0 {
		return ErrNoValidRows
	}
	return nil
}

// WorkRecords materializes the cleaned rows as create payloads. The shared
// notes text is attached to every record of the batch.
func (e *WorkEntry) WorkRecords(teamID, createdBy string) []models.WorkRecord {
	out := make([]models.WorkRecord, 0, len(e.Rows))
	for _, row := range e.Rows {
		out = append(out, models.WorkRecord{
			WorkerID:   row.WorkerID,
			WorkerName: row.WorkerName,
			SiteName:   row.SiteName,
			WorkDate:   e.WorkDate,
			WorkHours:  row.WorkHours,
			Notes:      e.Notes,
			TeamID:     teamID,
			CreatedBy:  createdBy,
		})
	}
	return out
}

// EquipmentRecords materializes the quantity grid: only types with a
// positive quantity produce a record. Quantities are team-wide; the
// backend accumulates same-date same-type inserts.
func (e *WorkEntry) EquipmentRecords(teamID, createdBy string) []models.EquipmentRecord {
	var out []models.EquipmentRecord
	for _, t := range models.EquipmentTypes {
		qty := e.Quantities[t]
		if qty <= 0 {
			continue
		}
		out = append(out, models.EquipmentRecord{
			WorkDate:      e.WorkDate,
			EquipmentType: t,
			Quantity:      qty,
			TeamID:        teamID,
			CreatedBy:     createdBy,
		})
	}
	return out
}
