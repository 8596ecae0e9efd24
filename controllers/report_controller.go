package controllers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"sitelog/client"
	"sitelog/middleware"
	"sitelog/report"
	"sitelog/session"
)

type ReportController struct {
	api    *client.Client
	store  session.Store
	logger *log.Logger
}

func NewReportController(api *client.Client, store session.Store, logger *log.Logger) *ReportController {
	return &ReportController{api: api, store: store, logger: logger}
}

func validMonth(s string) bool {
	_, err := time.Parse("2006-01", s)
	return err == nil
}

// Monthly renders the aggregated month view. The whole team history is
// fetched and reduced client-side on every filter change; with no team
// resolved (admin before selecting) the report is simply empty.
func (rc *ReportController) Monthly(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	auth := authOf(c, rc.store)

	month := c.Query("month")
	if !validMonth(month) {
		month = time.Now().Format("2006-01")
	}
	teamID := user.ScopedTeamID(c.Query("team_id"))

	teams, err := rc.api.GetTeams(c.Context(), auth)
	if err != nil {
		return failFlash(c, err, "/")
	}

	teamName := ""
	for _, t := range teams {
		if t.ID == teamID {
			teamName = t.Name
			break
		}
	}

	var workers []report.WorkerSummary
	var equipment []report.EquipmentSummary
	if teamID != "" {
		works, err := rc.api.GetWorkRecords(c.Context(), auth, teamID)
		if err != nil {
			return failFlash(c, err, "/")
		}
		equips, err := rc.api.GetEquipmentRecords(c.Context(), auth, teamID)
		if err != nil {
			return failFlash(c, err, "/")
		}
		workers = report.AggregateWork(works, month, teamName)
		equipment = report.AggregateEquipment(equips, month)
	}

	return c.Render("monthly_report", viewData(c, fiber.Map{
		"Title":     "Monthly report",
		"Month":     month,
		"TeamID":    teamID,
		"Teams":     teams,
		"IsAdmin":   user.IsAdmin(),
		"Workers":   workers,
		"Equipment": equipment,
	}))
}
