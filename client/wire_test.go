package client

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitelog/models"
)

func TestWireDecode(t *testing.T) {
	t.Run("work record keeps every field across the boundary", func(t *testing.T) {
		raw := []byte(`{"id":"r1","worker_id":"w1","worker_name":"Kim","site_name":"Site A","work_date":"2024-05-02","work_hours":1.5,"notes":"rain","team_id":"t1","created_by":"u1","created_at":"2024-05-02T08:00:00Z","updated_at":"2024-05-02T09:00:00Z"}`)

		var w workRecordWire
		require.NoError(t, json.Unmarshal(raw, &w))
		r := decodeWorkRecord(w)

		assert.Equal(t, "r1", r.ID)
		assert.Equal(t, "w1", r.WorkerID)
		assert.Equal(t, "Kim", r.WorkerName)
		assert.Equal(t, "Site A", r.SiteName)
		assert.Equal(t, "2024-05-02", r.WorkDate)
		assert.Equal(t, 1.5, r.WorkHours)
		assert.Equal(t, "rain", r.Notes)
		assert.Equal(t, "t1", r.TeamID)
		assert.Equal(t, "u1", r.CreatedBy)
	})

	t.Run("equipment record keeps the non-ascii type value", func(t *testing.T) {
		raw := []byte(`{"id":"e1","work_date":"2024-05-02","equipment_type":"덤프","quantity":3,"team_id":"t1"}`)

		var w equipmentRecordWire
		require.NoError(t, json.Unmarshal(raw, &w))
		r := decodeEquipmentRecord(w)

		assert.Equal(t, models.EquipDumpTruck, r.EquipmentType)
		assert.Equal(t, 3, r.Quantity)
	})
}

func TestUpdatePayloads(t *testing.T) {
	t.Run("only set fields reach the wire", func(t *testing.T) {
		site := "Site B"
		p := WorkRecordUpdate{SiteName: &site}.payload()

		assert.Equal(t, map[string]interface{}{"site_name": "Site B"}, p)
	})

	t.Run("full update carries every editable field", func(t *testing.T) {
		r := models.WorkRecord{
			WorkerID:   "w1",
			WorkerName: "Kim",
			SiteName:   "Site A",
			WorkDate:   "2024-05-02",
			WorkHours:  1,
			Notes:      "rain",
		}
		p := WorkRecordUpdateFrom(r).payload()

		assert.Len(t, p, 6)
		assert.Equal(t, "rain", p["notes"])
	})

	t.Run("emptied notes become an explicit null", func(t *testing.T) {
		p := WorkRecordUpdateFrom(models.WorkRecord{WorkDate: "2024-05-02"}).payload()

		v, present := p["notes"]
		require.True(t, present)
		assert.Nil(t, v)

		body, err := json.Marshal(p)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"notes":null`)
	})

	t.Run("equipment update from an existing record", func(t *testing.T) {
		r := models.EquipmentRecord{
			WorkDate:      "2024-05-02",
			SiteName:      "Site A",
			EquipmentType: models.EquipOneTon,
			Quantity:      2,
		}
		p := EquipmentRecordUpdateFrom(r).payload()

		assert.Equal(t, "1t", p["equipment_type"])
		assert.Equal(t, 2, p["quantity"])
		assert.Len(t, p, 4)
	})
}
