package models

// WorkRecord is one worker's labor contribution to one site on one date.
// IDs are assigned by the backend; the client never invents an ID for a
// persisted record.
type WorkRecord struct {
	ID         string  `json:"id"`
	WorkerID   string  `json:"workerId"`
	WorkerName string  `json:"workerName"`
	SiteName   string  `json:"siteName"`
	WorkDate   string  `json:"workDate"` // ISO date, YYYY-MM-DD
	WorkHours  float64 `json:"workHours"`
	Notes      string  `json:"notes,omitempty"`
	TeamID     string  `json:"teamId"`
	CreatedBy  string  `json:"createdBy"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// EquipmentRecord counts one equipment type in use on a date for a team.
// SiteName survives only for records created before per-site equipment
// tracking was dropped; new records carry team-wide totals and the backend
// accumulates same-date same-type quantities on insert.
type EquipmentRecord struct {
	ID            string `json:"id"`
	WorkDate      string `json:"workDate"`
	SiteName      string `json:"siteName,omitempty"`
	EquipmentType string `json:"equipmentType"`
	Quantity      int    `json:"quantity"`
	TeamID        string `json:"teamId"`
	CreatedBy     string `json:"createdBy"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// Equipment type wire values. The strings are fixed by the backend's data;
// they must not be translated or normalized.
const (
	EquipSixWheel   = "6w"
	EquipThreeWheel = "3w"
	EquipExcavator  = "035"
	EquipDumpTruck  = "덤프"
	EquipOneTon     = "1t"
	EquipThreeTon   = "3.5t"
	EquipWaterSpray = "살수차"
	EquipModel      = "모범수"
)

// EquipmentTypes lists every equipment type in display order. The set is
// closed; grids and selects iterate this slice so the column order stays
// stable.
var EquipmentTypes = []string{
	EquipSixWheel,
	EquipThreeWheel,
	EquipExcavator,
	EquipDumpTruck,
	EquipOneTon,
	EquipThreeTon,
	EquipWaterSpray,
	EquipModel,
}

// ValidEquipmentType reports whether t belongs to the fixed enumeration.
func ValidEquipmentType(t string) bool {
	for _, known := range EquipmentTypes {
		if known == t {
			return true
		}
	}
	return false
}

// ValidWorkHours reports whether h is positive and on a half-day increment.
func ValidWorkHours(h float64) bool {
	if h <= 0 {
		return false
	}
	doubled := h * 2
	return doubled == float64(int64(doubled))
}
