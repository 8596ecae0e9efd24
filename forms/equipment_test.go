package forms

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"sitelog/models"
)

func TestNormalizeQuantity(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int
		ok   bool
	}{
		{"plain number", "12", 12, true},
		{"zero", "0", 0, true},
		{"empty means zero", "", 0, true},
		{"whitespace means zero", "  ", 0, true},
		{"letters rejected", "abc", 0, false},
		{"mixed rejected", "1a", 0, false},
		{"negative rejected", "-1", 0, false},
		{"decimal rejected", "1.5", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NormalizeQuantity(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseEquipmentEdit(t *testing.T) {
	t.Run("accepts a complete edit", func(t *testing.T) {
		args := &fasthttp.Args{}
		args.Add("work_date", "2024-05-02")
		args.Add("site_name", "Site A")
		args.Add("equipment_type", models.EquipDumpTruck)
		args.Add("quantity", "4")

		edit, err := ParseEquipmentEdit(args)

		require.NoError(t, err)
		assert.Equal(t, "2024-05-02", edit.WorkDate)
		assert.Equal(t, "Site A", edit.SiteName)
		assert.Equal(t, models.EquipDumpTruck, edit.EquipmentType)
		assert.Equal(t, 4, edit.Quantity)
	})

	t.Run("blank quantity becomes zero", func(t *testing.T) {
		args := &fasthttp.Args{}
		args.Add("work_date", "2024-05-02")
		args.Add("equipment_type", models.EquipOneTon)

		edit, err := ParseEquipmentEdit(args)

		require.NoError(t, err)
		assert.Zero(t, edit.Quantity)
	})

	t.Run("rejects a non numeric quantity", func(t *testing.T) {
		args := &fasthttp.Args{}
		args.Add("work_date", "2024-05-02")
		args.Add("equipment_type", models.EquipOneTon)
		args.Add("quantity", "lots")

		_, err := ParseEquipmentEdit(args)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects an unknown equipment type", func(t *testing.T) {
		args := &fasthttp.Args{}
		args.Add("work_date", "2024-05-02")
		args.Add("equipment_type", "crane")
		args.Add("quantity", "1")

		_, err := ParseEquipmentEdit(args)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(ErrNoValidRows))
	assert.True(t, IsValidationError(errQuantityNotNumeric))
	assert.False(t, IsValidationError(errors.New("backend down")))
	assert.False(t, IsValidationError(nil))
}
