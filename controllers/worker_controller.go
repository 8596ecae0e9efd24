package controllers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"sitelog/client"
	"sitelog/middleware"
	"sitelog/models"
	"sitelog/session"
	"sitelog/utils"
)

type AddWorkerRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	TeamID string `json:"team_id" validate:"required"`
}

type WorkerController struct {
	api    *client.Client
	store  session.Store
	logger *log.Logger
}

func NewWorkerController(api *client.Client, store session.Store, logger *log.Logger) *WorkerController {
	return &WorkerController{api: api, store: store, logger: logger}
}

// Page lists the roster for the resolved team.
func (w *WorkerController) Page(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	auth := authOf(c, w.store)
	teamID := user.ScopedTeamID(c.Query("team_id"))

	teams, err := w.api.GetTeams(c.Context(), auth)
	if err != nil {
		return failFlash(c, err, "/")
	}

	var workers []models.Worker
	if teamID != "" {
		workers, err = w.api.GetWorkers(c.Context(), auth, teamID)
		if err != nil {
			return failFlash(c, err, "/")
		}
	}

	return c.Render("workers", viewData(c, fiber.Map{
		"Title":   "Worker management",
		"TeamID":  teamID,
		"Teams":   teams,
		"IsAdmin": user.IsAdmin(),
		"Workers": workers,
	}))
}

// Create adds one worker to the roster.
func (w *WorkerController) Create(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	auth := authOf(c, w.store)

	req := AddWorkerRequest{
		Name:   strings.TrimSpace(c.FormValue("name")),
		TeamID: user.ScopedTeamID(c.FormValue("team_id")),
	}
	backTo := "/workers?team_id=" + req.TeamID

	if err := utils.ValidateStruct(req); err != nil {
		utils.FlashError(c, err.Error())
		return c.Redirect(backTo, fiber.StatusSeeOther)
	}

	worker, err := w.api.AddWorker(c.Context(), auth, models.Worker{Name: req.Name, TeamID: req.TeamID})
	if err != nil {
		return failFlash(c, err, backTo)
	}

	w.logger.Printf("worker %s added to team %s", worker.Name, worker.TeamID)
	utils.FlashSuccess(c, "worker added")
	return c.Redirect(backTo, fiber.StatusSeeOther)
}

// Delete removes one worker from the roster. Existing work records keep
// the worker's name; only the roster entry goes away.
func (w *WorkerController) Delete(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	auth := authOf(c, w.store)
	backTo := "/workers?team_id=" + user.ScopedTeamID(c.FormValue("team_id"))

	if err := w.api.DeleteWorker(c.Context(), auth, c.Params("id")); err != nil {
		return failFlash(c, err, backTo)
	}
	utils.FlashSuccess(c, "worker deleted")
	return c.Redirect(backTo, fiber.StatusSeeOther)
}
