package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitelog/models"
)

func TestAggregateWork(t *testing.T) {
	t.Run("groups one worker's month by site", func(t *testing.T) {
		records := []models.WorkRecord{
			{WorkerName: "Kim", SiteName: "Site A", WorkDate: "2024-05-02", WorkHours: 1},
			{WorkerName: "Kim", SiteName: "Site A", WorkDate: "2024-05-03", WorkHours: 0.5},
			{WorkerName: "Kim", SiteName: "Site A", WorkDate: "2024-05-07", WorkHours: 1},
		}

		summaries := AggregateWork(records, "2024-05", "Team One")

		require.Len(t, summaries, 1)
		assert.Equal(t, "Kim", summaries[0].WorkerName)
		assert.Equal(t, "Team One", summaries[0].TeamName)
		require.Len(t, summaries[0].Sites, 1)
		assert.Equal(t, "Site A", summaries[0].Sites[0].SiteName)
		assert.Equal(t, 3, summaries[0].Sites[0].WorkDays)
		assert.Equal(t, 2.5, summaries[0].Sites[0].TotalHours)
	})

	t.Run("splits a worker across sites", func(t *testing.T) {
		records := []models.WorkRecord{
			{WorkerName: "Kim", SiteName: "Site A", WorkDate: "2024-05-02", WorkHours: 1},
			{WorkerName: "Kim", SiteName: "Site B", WorkDate: "2024-05-03", WorkHours: 0.5},
			{WorkerName: "Kim", SiteName: "Site A", WorkDate: "2024-05-04", WorkHours: 1},
		}

		summaries := AggregateWork(records, "2024-05", "")

		require.Len(t, summaries, 1)
		require.Len(t, summaries[0].Sites, 2)
		assert.Equal(t, "Site A", summaries[0].Sites[0].SiteName)
		assert.Equal(t, 2, summaries[0].Sites[0].WorkDays)
		assert.Equal(t, 2.0, summaries[0].Sites[0].TotalHours)
		assert.Equal(t, "Site B", summaries[0].Sites[1].SiteName)
		assert.Equal(t, 1, summaries[0].Sites[1].WorkDays)
		assert.Equal(t, 0.5, summaries[0].Sites[1].TotalHours)
	})

	t.Run("excludes records outside the month", func(t *testing.T) {
		records := []models.WorkRecord{
			{WorkerName: "Kim", SiteName: "Site A", WorkDate: "2024-04-30", WorkHours: 1},
			{WorkerName: "Kim", SiteName: "Site A", WorkDate: "2024-05-01", WorkHours: 1},
			{WorkerName: "Kim", SiteName: "Site A", WorkDate: "2024-06-01", WorkHours: 1},
			{WorkerName: "Lee", SiteName: "Site B", WorkDate: "2024-06-02", WorkHours: 1},
		}

		summaries := AggregateWork(records, "2024-05", "")

		require.Len(t, summaries, 1)
		assert.Equal(t, "Kim", summaries[0].WorkerName)
		assert.Equal(t, 1, summaries[0].Sites[0].WorkDays)
	})

	t.Run("workers keep first seen order", func(t *testing.T) {
		records := []models.WorkRecord{
			{WorkerName: "Park", SiteName: "Site A", WorkDate: "2024-05-01", WorkHours: 1},
			{WorkerName: "Kim", SiteName: "Site A", WorkDate: "2024-05-01", WorkHours: 1},
			{WorkerName: "Park", SiteName: "Site B", WorkDate: "2024-05-02", WorkHours: 1},
		}

		summaries := AggregateWork(records, "2024-05", "")

		require.Len(t, summaries, 2)
		assert.Equal(t, "Park", summaries[0].WorkerName)
		assert.Equal(t, "Kim", summaries[1].WorkerName)
	})

	t.Run("empty input yields no summaries", func(t *testing.T) {
		assert.Empty(t, AggregateWork(nil, "2024-05", ""))
	})
}

func TestAggregateEquipment(t *testing.T) {
	t.Run("sums quantities per type", func(t *testing.T) {
		records := []models.EquipmentRecord{
			{EquipmentType: models.EquipDumpTruck, WorkDate: "2024-05-01", Quantity: 2},
			{EquipmentType: models.EquipDumpTruck, WorkDate: "2024-05-02", Quantity: 3},
			{EquipmentType: models.EquipOneTon, WorkDate: "2024-05-02", Quantity: 1},
		}

		summaries := AggregateEquipment(records, "2024-05")

		require.Len(t, summaries, 2)
		assert.Equal(t, models.EquipDumpTruck, summaries[0].EquipmentType)
		assert.Equal(t, 5, summaries[0].TotalQuantity)
		assert.Equal(t, models.EquipOneTon, summaries[1].EquipmentType)
		assert.Equal(t, 1, summaries[1].TotalQuantity)
	})

	t.Run("known types come out in display order", func(t *testing.T) {
		records := []models.EquipmentRecord{
			{EquipmentType: models.EquipWaterSpray, WorkDate: "2024-05-01", Quantity: 1},
			{EquipmentType: models.EquipSixWheel, WorkDate: "2024-05-01", Quantity: 1},
			{EquipmentType: models.EquipExcavator, WorkDate: "2024-05-01", Quantity: 1},
		}

		summaries := AggregateEquipment(records, "2024-05")

		require.Len(t, summaries, 3)
		assert.Equal(t, models.EquipSixWheel, summaries[0].EquipmentType)
		assert.Equal(t, models.EquipExcavator, summaries[1].EquipmentType)
		assert.Equal(t, models.EquipWaterSpray, summaries[2].EquipmentType)
	})

	t.Run("ignores other months", func(t *testing.T) {
		records := []models.EquipmentRecord{
			{EquipmentType: models.EquipDumpTruck, WorkDate: "2024-04-30", Quantity: 4},
			{EquipmentType: models.EquipDumpTruck, WorkDate: "2024-05-01", Quantity: 1},
		}

		summaries := AggregateEquipment(records, "2024-05")

		require.Len(t, summaries, 1)
		assert.Equal(t, 1, summaries[0].TotalQuantity)
	})
}
