package controllers

import (
	"github.com/gofiber/fiber/v2"

	"sitelog/middleware"
)

type menuItem struct {
	Title       string
	Description string
	Path        string
}

var dashboardMenu = []menuItem{
	{Title: "Work records", Description: "Log the day's labor per worker and site", Path: "/work-records"},
	{Title: "Worker management", Description: "Add and remove workers on the roster", Path: "/workers"},
	{Title: "Monthly report", Description: "Review monthly totals per worker and equipment", Path: "/monthly-report"},
}

// Dashboard renders the role-aware landing screen: the menu plus the
// admin-wide or team-scoped subtitle.
func Dashboard(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	subtitle := user.Email
	if user.IsAdmin() {
		subtitle = "Administrator - " + user.Email
	} else if user.TeamName != "" {
		subtitle = user.TeamName + " - " + user.Email
	}

	return c.Render("dashboard", viewData(c, fiber.Map{
		"Title":    "Dashboard",
		"Subtitle": subtitle,
		"Menu":     dashboardMenu,
		"IsAdmin":  user.IsAdmin(),
	}))
}
