package client

import "sitelog/models"

// Wire shapes mirror the backend's snake_case JSON. Conversion to and from
// the camelCase domain structs lives here and nowhere else; every endpoint
// goes through these tables so field mapping is declared exactly once.

type userWire struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	TeamID   string `json:"team_id,omitempty"`
	TeamName string `json:"team_name,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string   `json:"access_token"`
	User        userWire `json:"user"`
}

type teamWire struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ManagerID string `json:"manager_id"`
}

type workerWire struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	TeamID string `json:"team_id"`
}

type workerCreateWire struct {
	Name   string `json:"name"`
	TeamID string `json:"team_id"`
}

type workRecordWire struct {
	ID         string  `json:"id"`
	WorkerID   string  `json:"worker_id"`
	WorkerName string  `json:"worker_name"`
	SiteName   string  `json:"site_name"`
	WorkDate   string  `json:"work_date"`
	WorkHours  float64 `json:"work_hours"`
	Notes      string  `json:"notes,omitempty"`
	TeamID     string  `json:"team_id"`
	CreatedBy  string  `json:"created_by"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type workRecordCreateWire struct {
	WorkerID   string  `json:"worker_id"`
	WorkerName string  `json:"worker_name"`
	SiteName   string  `json:"site_name"`
	WorkDate   string  `json:"work_date"`
	WorkHours  float64 `json:"work_hours"`
	Notes      *string `json:"notes"`
	TeamID     string  `json:"team_id"`
	CreatedBy  string  `json:"created_by"`
}

type equipmentRecordWire struct {
	ID            string `json:"id"`
	WorkDate      string `json:"work_date"`
	SiteName      string `json:"site_name,omitempty"`
	EquipmentType string `json:"equipment_type"`
	Quantity      int    `json:"quantity"`
	TeamID        string `json:"team_id"`
	CreatedBy     string `json:"created_by"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type equipmentRecordCreateWire struct {
	WorkDate      string `json:"work_date"`
	SiteName      string `json:"site_name,omitempty"`
	EquipmentType string `json:"equipment_type"`
	Quantity      int    `json:"quantity"`
	TeamID        string `json:"team_id"`
	CreatedBy     string `json:"created_by"`
}

func decodeUser(w userWire) models.User {
	return models.User{
		ID:       w.ID,
		Email:    w.Email,
		Role:     w.Role,
		TeamID:   w.TeamID,
		TeamName: w.TeamName,
	}
}

func decodeTeam(w teamWire) models.Team {
	return models.Team{
		ID:        w.ID,
		Name:      w.Name,
		ManagerID: w.ManagerID,
	}
}

func decodeWorker(w workerWire) models.Worker {
	return models.Worker{
		ID:     w.ID,
		Name:   w.Name,
		TeamID: w.TeamID,
	}
}

func decodeWorkRecord(w workRecordWire) models.WorkRecord {
	return models.WorkRecord{
		ID:         w.ID,
		WorkerID:   w.WorkerID,
		WorkerName: w.WorkerName,
		SiteName:   w.SiteName,
		WorkDate:   w.WorkDate,
		WorkHours:  w.WorkHours,
		Notes:      w.Notes,
		TeamID:     w.TeamID,
		CreatedBy:  w.CreatedBy,
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	}
}

func decodeWorkRecords(ws []workRecordWire) []models.WorkRecord {
	out := make([]models.WorkRecord, 0, len(ws))
	for _, w := range ws {
		out = append(out, decodeWorkRecord(w))
	}
	return out
}

func decodeEquipmentRecord(w equipmentRecordWire) models.EquipmentRecord {
	return models.EquipmentRecord{
		ID:            w.ID,
		WorkDate:      w.WorkDate,
		SiteName:      w.SiteName,
		EquipmentType: w.EquipmentType,
		Quantity:      w.Quantity,
		TeamID:        w.TeamID,
		CreatedBy:     w.CreatedBy,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}

func decodeEquipmentRecords(ws []equipmentRecordWire) []models.EquipmentRecord {
	out := make([]models.EquipmentRecord, 0, len(ws))
	for _, w := range ws {
		out = append(out, decodeEquipmentRecord(w))
	}
	return out
}

func encodeNewWorkRecord(r models.WorkRecord) workRecordCreateWire {
	w := workRecordCreateWire{
		WorkerID:   r.WorkerID,
		WorkerName: r.WorkerName,
		SiteName:   r.SiteName,
		WorkDate:   r.WorkDate,
		WorkHours:  r.WorkHours,
		TeamID:     r.TeamID,
		CreatedBy:  r.CreatedBy,
	}
	if r.Notes != "" {
		w.Notes = &r.Notes
	}
	return w
}

func encodeNewEquipmentRecord(r models.EquipmentRecord) equipmentRecordCreateWire {
	return equipmentRecordCreateWire{
		WorkDate:      r.WorkDate,
		SiteName:      r.SiteName,
		EquipmentType: r.EquipmentType,
		Quantity:      r.Quantity,
		TeamID:        r.TeamID,
		CreatedBy:     r.CreatedBy,
	}
}

// WorkRecordUpdate is a partial update: only set fields reach the wire.
type WorkRecordUpdate struct {
	WorkerID   *string
	WorkerName *string
	SiteName   *string
	WorkDate   *string
	WorkHours  *float64
	Notes      *string
}

// WorkRecordUpdateFrom builds a full update payload carrying every editable
// field of an existing record unchanged.
func WorkRecordUpdateFrom(r models.WorkRecord) WorkRecordUpdate {
	return WorkRecordUpdate{
		WorkerID:   &r.WorkerID,
		WorkerName: &r.WorkerName,
		SiteName:   &r.SiteName,
		WorkDate:   &r.WorkDate,
		WorkHours:  &r.WorkHours,
		Notes:      &r.Notes,
	}
}

func (u WorkRecordUpdate) payload() map[string]interface{} {
	p := map[string]interface{}{}
	if u.WorkerID != nil {
		p["worker_id"] = *u.WorkerID
	}
	if u.WorkerName != nil {
		p["worker_name"] = *u.WorkerName
	}
	if u.SiteName != nil {
		p["site_name"] = *u.SiteName
	}
	if u.WorkDate != nil {
		p["work_date"] = *u.WorkDate
	}
	if u.WorkHours != nil {
		p["work_hours"] = *u.WorkHours
	}
	if u.Notes != nil {
		if *u.Notes == "" {
			p["notes"] = nil
		} else {
			p["notes"] = *u.Notes
		}
	}
	return p
}

// EquipmentRecordUpdate is the equipment counterpart of WorkRecordUpdate.
type EquipmentRecordUpdate struct {
	WorkDate      *string
	SiteName      *string
	EquipmentType *string
	Quantity      *int
}

// EquipmentRecordUpdateFrom builds a full update payload from an existing
// record.
func EquipmentRecordUpdateFrom(r models.EquipmentRecord) EquipmentRecordUpdate {
	return EquipmentRecordUpdate{
		WorkDate:      &r.WorkDate,
		SiteName:      &r.SiteName,
		EquipmentType: &r.EquipmentType,
		Quantity:      &r.Quantity,
	}
}

func (u EquipmentRecordUpdate) payload() map[string]interface{} {
	p := map[string]interface{}{}
	if u.WorkDate != nil {
		p["work_date"] = *u.WorkDate
	}
	if u.SiteName != nil {
		p["site_name"] = *u.SiteName
	}
	if u.EquipmentType != nil {
		p["equipment_type"] = *u.EquipmentType
	}
	if u.Quantity != nil {
		p["quantity"] = *u.Quantity
	}
	return p
}
