package forms

import (
	"errors"
	"strings"

	"github.com/valyala/fasthttp"

	"sitelog/models"
)

// NormalizeQuantity converts a posted quantity to a non-negative integer.
// Only digit strings are accepted; an empty field counts as zero, matching
// the blur-resets-to-zero behavior of the entry grid. ok is false for
// anything containing a non-digit.
func NormalizeQuantity(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

// EquipmentEdit is the single-record equipment edit dialog: date, optional
// site, type and quantity are all editable in place.
type EquipmentEdit struct {
	WorkDate      string `validate:"required,datetime=2006-01-02"`
	SiteName      string
	EquipmentType string `validate:"required"`
	QuantityRaw   string
	Quantity      int
}

// ParseEquipmentEdit reads the posted edit dialog.
func ParseEquipmentEdit(args *fasthttp.Args) (EquipmentEdit, error) {
	e := EquipmentEdit{
		WorkDate:      strings.TrimSpace(string(args.Peek("work_date"))),
		SiteName:      strings.TrimSpace(string(args.Peek("site_name"))),
		EquipmentType: strings.TrimSpace(string(args.Peek("equipment_type"))),
		QuantityRaw:   string(args.Peek("quantity")),
	}

	qty, ok := NormalizeQuantity(e.QuantityRaw)
	if !ok {
		return e, errQuantityNotNumeric
	}
	e.Quantity = qty

	if !models.ValidEquipmentType(e.EquipmentType) {
		return e, errUnknownEquipmentType
	}
	return e, nil
}

var (
	errQuantityNotNumeric   = validationError("quantity must be a whole number")
	errUnknownEquipmentType = validationError("unknown equipment type")
)

// validationError marks client-detected input problems; these block the
// submission and never reach the API client.
type validationError string

func (v validationError) Error() string { return string(v) }

// IsValidationError reports whether err was raised by form validation
// rather than an API failure.
func IsValidationError(err error) bool {
	var v validationError
	if errors.As(err, &v) {
		return true
	}
	return errors.Is(err, ErrNoValidRows)
}
