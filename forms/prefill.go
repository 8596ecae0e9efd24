package forms

import (
	"github.com/google/uuid"

	"sitelog/models"
)

// SeedFromLast pre-fills a new entry form for date from the most recent
// day's records: recurring crews and equipment rarely change between days,
// so the prior day's rows, quantities and notes become the starting point.
// With no history it falls back to the empty single-row form.
func SeedFromLast(date string, works []models.WorkRecord, equips []models.EquipmentRecord) WorkEntry {
	if len(works) == 0 && len(equips) == 0 {
		return NewWorkEntry(date)
	}

	entry := WorkEntry{
		WorkDate:   date,
		Quantities: emptyQuantities(),
	}

	for _, r := range works {
		entry.Rows = append(entry.Rows, WorkRow{
			RowID:      uuid.NewString(),
			WorkerID:   r.WorkerID,
			WorkerName: r.WorkerName,
			SiteName:   r.SiteName,
			WorkHours:  r.WorkHours,
		})
		if entry.Notes == "" {
			entry.Notes = r.Notes
		}
	}
	if len(entry.Rows) == 0 {
		entry.Rows = []WorkRow{{RowID: uuid.NewString(), WorkHours: 1}}
	}

	for _, r := range equips {
		if _, known := entry.Quantities[r.EquipmentType]; known {
			entry.Quantities[r.EquipmentType] += r.Quantity
		}
	}

	return entry
}
