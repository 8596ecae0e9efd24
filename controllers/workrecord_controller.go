package controllers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"sitelog/client"
	"sitelog/forms"
	"sitelog/middleware"
	"sitelog/models"
	"sitelog/session"
	"sitelog/utils"
)

type WorkRecordController struct {
	api    *client.Client
	store  session.Store
	logger *log.Logger
}

func NewWorkRecordController(api *client.Client, store session.Store, logger *log.Logger) *WorkRecordController {
	return &WorkRecordController{api: api, store: store, logger: logger}
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// requestScope resolves the date and team every record screen is scoped
// to. Managers are pinned to their own team no matter what the request
// carries; admins use the selected team and may have none yet.
func (wc *WorkRecordController) requestScope(c *fiber.Ctx, pick func(string) string) (date, teamID string) {
	user := middleware.CurrentUser(c)
	date = pick("date")
	if !validDate(date) {
		date = today()
	}
	teamID = user.ScopedTeamID(pick("team_id"))
	return date, teamID
}

// Page lists both record types for one date and team.
func (wc *WorkRecordController) Page(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	auth := authOf(c, wc.store)
	date, teamID := wc.requestScope(c, queryOf(c))

	teams, err := wc.api.GetTeams(c.Context(), auth)
	if err != nil {
		return failFlash(c, err, "/")
	}

	var works []models.WorkRecord
	var equips []models.EquipmentRecord
	if teamID != "" {
		// A fetch failure degrades to an empty listing with a notice; the
		// screen stays usable for date/team changes.
		works, err = wc.api.GetWorkRecordsByDate(c.Context(), auth, date, teamID)
		if err != nil {
			return failFlash(c, err, "/")
		}
		equips, err = wc.api.GetEquipmentRecordsByDate(c.Context(), auth, date, teamID)
		if err != nil {
			return failFlash(c, err, "/")
		}
	}

	return c.Render("work_records", viewData(c, fiber.Map{
		"Title":            "Work records",
		"Date":             date,
		"TeamID":           teamID,
		"Teams":            teams,
		"IsAdmin":          user.IsAdmin(),
		"WorkRecords":      works,
		"EquipmentRecords": equips,
	}))
}

// NewForm opens the batch entry form. Without an explicit record to edit
// the form is seeded from the team's most recent day so recurring crews
// don't have to be re-typed.
func (wc *WorkRecordController) NewForm(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	auth := authOf(c, wc.store)
	date, teamID := wc.requestScope(c, queryOf(c))

	if teamID == "" {
		utils.FlashError(c, "select a team first")
		return c.Redirect("/work-records", fiber.StatusSeeOther)
	}

	workers, err := wc.api.GetWorkers(c.Context(), auth, teamID)
	if err != nil {
		return failFlash(c, err, "/work-records?date="+date)
	}

	entry := forms.NewWorkEntry(date)
	lastWorks, err := wc.api.GetLastWorkRecords(c.Context(), auth, teamID)
	if err == nil {
		lastEquips, eqErr := wc.api.GetLastEquipmentRecords(c.Context(), auth, teamID)
		if eqErr != nil {
			lastEquips = nil
		}
		entry = forms.SeedFromLast(date, lastWorks, lastEquips)
	} else {
		// Prefill is a convenience; an empty form is fine when history is
		// unreachable.
		logrus.WithError(err).Debug("last-record prefill unavailable")
	}

	return c.Render("work_record_form", viewData(c, fiber.Map{
		"Title":          "Add work records",
		"Date":           date,
		"TeamID":         teamID,
		"Workers":        workers,
		"Entry":          entry,
		"Spare":          make([]struct{}, 3),
		"EquipmentTypes": models.EquipmentTypes,
		"IsAdmin":        user.IsAdmin(),
	}))
}

// Create turns the submitted entry into one create call per valid work row
// and per non-zero equipment quantity, issued and awaited one at a time in
// declared order. A failure partway through leaves the earlier records
// persisted; the notice says how far the batch got.
func (wc *WorkRecordController) Create(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	auth := authOf(c, wc.store)
	_, teamID := wc.requestScope(c, formOf(c))

	backTo := "/work-records"
	if teamID == "" {
		utils.FlashError(c, "select a team first")
		return c.Redirect(backTo, fiber.StatusSeeOther)
	}

	entry, err := forms.ParseWorkEntry(c.Request().PostArgs())
	if err != nil {
		utils.FlashError(c, err.Error())
		return c.Redirect(backTo, fiber.StatusSeeOther)
	}
	if !validDate(entry.WorkDate) {
		utils.FlashError(c, "work date must be a valid date")
		return c.Redirect(backTo, fiber.StatusSeeOther)
	}
	backTo = "/work-records?date=" + entry.WorkDate + "&team_id=" + teamID

	workers, err := wc.api.GetWorkers(c.Context(), auth, teamID)
	if err != nil {
		return failFlash(c, err, backTo)
	}
	entry.ResolveWorkers(workers)

	if err := entry.CleanRows(); err != nil {
		return failFlash(c, err, backTo)
	}

	records := entry.WorkRecords(teamID, user.Email)
	equips := entry.EquipmentRecords(teamID, user.Email)

	created := 0
	for _, record := range records {
		if _, err := wc.api.AddWorkRecord(c.Context(), auth, record); err != nil {
			wc.logger.Printf("work record batch stopped after %d/%d: %v", created, len(records), err)
			utils.FlashError(c, fmt.Sprintf("saved %d of %d work records before an error: %s", created, len(records), err.Error()))
			return c.Redirect(backTo, fiber.StatusSeeOther)
		}
		created++
	}

	equipCreated := 0
	for _, record := range equips {
		if _, err := wc.api.AddEquipmentRecord(c.Context(), auth, record); err != nil {
			wc.logger.Printf("equipment batch stopped after %d/%d: %v", equipCreated, len(equips), err)
			utils.FlashError(c, fmt.Sprintf("saved all work records but only %d of %d equipment records: %s", equipCreated, len(equips), err.Error()))
			return c.Redirect(backTo, fiber.StatusSeeOther)
		}
		equipCreated++
	}

	utils.FlashSuccess(c, fmt.Sprintf("added work records for %d workers", created))
	return c.Redirect(backTo, fiber.StatusSeeOther)
}

// EditForm opens the single-record edit form. The record is located in its
// day's listing; edit links always carry the date.
func (wc *WorkRecordController) EditForm(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	auth := authOf(c, wc.store)
	date, teamID := wc.requestScope(c, queryOf(c))
	id := c.Params("id")

	backTo := "/work-records?date=" + date + "&team_id=" + teamID
	records, err := wc.api.GetWorkRecordsByDate(c.Context(), auth, date, teamID)
	if err != nil {
		return failFlash(c, err, backTo)
	}

	var record *models.WorkRecord
	for i := range records {
		if records[i].ID == id {
			record = &records[i]
			break
		}
	}
	if record == nil {
		utils.FlashError(c, "work record not found")
		return c.Redirect(backTo, fiber.StatusSeeOther)
	}

	workers, err := wc.api.GetWorkers(c.Context(), auth, teamID)
	if err != nil {
		return failFlash(c, err, backTo)
	}

	return c.Render("work_record_edit", viewData(c, fiber.Map{
		"Title":   "Edit work record",
		"Record":  record,
		"Workers": workers,
		"TeamID":  teamID,
		"Date":    date,
		"IsAdmin": user.IsAdmin(),
	}))
}

// Update applies the edit form: exactly one update call carrying every
// editable field, notes included.
func (wc *WorkRecordController) Update(c *fiber.Ctx) error {
	auth := authOf(c, wc.store)
	_, teamID := wc.requestScope(c, formOf(c))
	id := c.Params("id")

	entry, err := forms.ParseWorkEntry(c.Request().PostArgs())
	if err != nil {
		utils.FlashError(c, err.Error())
		return c.Redirect("/work-records", fiber.StatusSeeOther)
	}
	backTo := "/work-records?date=" + entry.WorkDate + "&team_id=" + teamID
	if !validDate(entry.WorkDate) {
		utils.FlashError(c, "work date must be a valid date")
		return c.Redirect("/work-records", fiber.StatusSeeOther)
	}

	workers, err := wc.api.GetWorkers(c.Context(), auth, teamID)
	if err != nil {
		return failFlash(c, err, backTo)
	}
	entry.ResolveWorkers(workers)
	if err := entry.CleanRows(); err != nil {
		return failFlash(c, err, backTo)
	}

	// Edit mode only ever has one row.
	row := entry.Rows[0]
	update := client.WorkRecordUpdate{
		WorkerID:   &row.WorkerID,
		WorkerName: &row.WorkerName,
		SiteName:   &row.SiteName,
		WorkDate:   &entry.WorkDate,
		WorkHours:  &row.WorkHours,
		Notes:      &entry.Notes,
	}
	if _, err := wc.api.UpdateWorkRecord(c.Context(), auth, id, update); err != nil {
		return failFlash(c, err, backTo)
	}

	utils.FlashSuccess(c, "work record updated")
	return c.Redirect(backTo, fiber.StatusSeeOther)
}

// Delete removes one work record. The confirmation lives in the listing
// template; by the time this runs the user already agreed.
func (wc *WorkRecordController) Delete(c *fiber.Ctx) error {
	auth := authOf(c, wc.store)
	date, teamID := wc.requestScope(c, formOf(c))
	backTo := "/work-records?date=" + date + "&team_id=" + teamID

	if err := wc.api.DeleteWorkRecord(c.Context(), auth, c.Params("id")); err != nil {
		return failFlash(c, err, backTo)
	}
	utils.FlashSuccess(c, "work record deleted")
	return c.Redirect(backTo, fiber.StatusSeeOther)
}

// EquipmentEditForm opens the equipment edit dialog for one record.
func (wc *WorkRecordController) EquipmentEditForm(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	auth := authOf(c, wc.store)
	date, teamID := wc.requestScope(c, queryOf(c))
	id := c.Params("id")

	backTo := "/work-records?date=" + date + "&team_id=" + teamID
	records, err := wc.api.GetEquipmentRecordsByDate(c.Context(), auth, date, teamID)
	if err != nil {
		return failFlash(c, err, backTo)
	}

	var record *models.EquipmentRecord
	for i := range records {
		if records[i].ID == id {
			record = &records[i]
			break
		}
	}
	if record == nil {
		utils.FlashError(c, "equipment record not found")
		return c.Redirect(backTo, fiber.StatusSeeOther)
	}

	return c.Render("equipment_edit", viewData(c, fiber.Map{
		"Title":          "Edit equipment record",
		"Record":         record,
		"TeamID":         teamID,
		"Date":           date,
		"EquipmentTypes": models.EquipmentTypes,
		"IsAdmin":        user.IsAdmin(),
	}))
}

// EquipmentUpdate applies the equipment edit dialog.
func (wc *WorkRecordController) EquipmentUpdate(c *fiber.Ctx) error {
	auth := authOf(c, wc.store)
	_, teamID := wc.requestScope(c, formOf(c))
	id := c.Params("id")

	edit, err := forms.ParseEquipmentEdit(c.Request().PostArgs())
	backTo := "/work-records?date=" + edit.WorkDate + "&team_id=" + teamID
	if err != nil {
		return failFlash(c, err, backTo)
	}
	if err := utils.ValidateStruct(edit); err != nil {
		utils.FlashError(c, err.Error())
		return c.Redirect(backTo, fiber.StatusSeeOther)
	}

	update := client.EquipmentRecordUpdate{
		WorkDate:      &edit.WorkDate,
		SiteName:      &edit.SiteName,
		EquipmentType: &edit.EquipmentType,
		Quantity:      &edit.Quantity,
	}
	if _, err := wc.api.UpdateEquipmentRecord(c.Context(), auth, id, update); err != nil {
		return failFlash(c, err, backTo)
	}

	utils.FlashSuccess(c, "equipment record updated")
	return c.Redirect(backTo, fiber.StatusSeeOther)
}

// EquipmentDelete removes one equipment record.
func (wc *WorkRecordController) EquipmentDelete(c *fiber.Ctx) error {
	auth := authOf(c, wc.store)
	date, teamID := wc.requestScope(c, formOf(c))
	backTo := "/work-records?date=" + date + "&team_id=" + teamID

	if err := wc.api.DeleteEquipmentRecord(c.Context(), auth, c.Params("id")); err != nil {
		return failFlash(c, err, backTo)
	}
	utils.FlashSuccess(c, "equipment record deleted")
	return c.Redirect(backTo, fiber.StatusSeeOther)
}
