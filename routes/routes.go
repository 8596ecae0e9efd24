package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/proxy"

	"sitelog/client"
	"sitelog/config"
	controller "sitelog/controllers"
	"sitelog/middleware"
	"sitelog/session"
)

func SetupRoutes(app *fiber.App, api *client.Client, store session.Store) {
	authLogger := log.New(os.Stdout, "AUTH: ", log.Ldate|log.Ltime|log.Lshortfile)
	recordLogger := log.New(os.Stdout, "RECORD: ", log.LstdFlags)
	workerLogger := log.New(os.Stdout, "WORKER: ", log.LstdFlags)
	reportLogger := log.New(os.Stdout, "REPORT: ", log.LstdFlags)

	authController := controller.NewAuthController(api, store, authLogger)
	recordController := controller.NewWorkRecordController(api, store, recordLogger)
	workerController := controller.NewWorkerController(api, store, workerLogger)
	reportController := controller.NewReportController(api, store, reportLogger)

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Same-origin passthrough to the REST backend. The browser-side PWA
	// shell talks to /api so a single tunnel origin serves both the pages
	// and the data without CORS.
	app.All("/api/*", func(c *fiber.Ctx) error {
		target := config.AppConfig.APIBaseURL + "/" + c.Params("*")
		if qs := c.Request().URI().QueryString(); len(qs) > 0 {
			target += "?" + string(qs)
		}
		return proxy.Do(c, target)
	})

	// Installable app shell manifest, referenced by every page head.
	app.Get("/manifest.webmanifest", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, "application/manifest+json")
		return c.SendString(webManifest)
	})

	// Public routes
	login := app.Group("/login", middleware.RedirectAuthenticated(store))
	login.Get("/", authController.ShowLogin)
	login.Post("/", authController.Login)

	// Protected routes (require a live session)
	protected := app.Group("", middleware.Protected(store))
	protected.Post("/logout", authController.Logout)
	protected.Get("/", controller.Dashboard)

	records := protected.Group("/work-records")
	records.Get("/", recordController.Page)
	records.Get("/new", recordController.NewForm)
	records.Post("/", recordController.Create)
	records.Get("/:id/edit", recordController.EditForm)
	records.Post("/:id", recordController.Update)
	records.Post("/:id/delete", recordController.Delete)

	equipment := protected.Group("/equipment-records")
	equipment.Get("/:id/edit", recordController.EquipmentEditForm)
	equipment.Post("/:id", recordController.EquipmentUpdate)
	equipment.Post("/:id/delete", recordController.EquipmentDelete)

	workers := protected.Group("/workers")
	workers.Get("/", workerController.Page)
	workers.Post("/", workerController.Create)
	workers.Post("/:id/delete", workerController.Delete)

	protected.Get("/monthly-report", reportController.Monthly)

	authLogger.Println("Routes initialized successfully")
}

const webManifest = `{
  "name": "sitelog",
  "short_name": "sitelog",
  "start_url": "/",
  "display": "standalone",
  "background_color": "#ffffff",
  "theme_color": "#1a73e8"
}`
