package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	database "devcamper_backend/internals/databases"
)

func BaseRoutes(app *fiber.App, deps Deps) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("DevCamper API is running 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if err := database.Ping(c.UserContext(), deps.DB); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    deps.Config.Env,
		})
	})

	// local uploads only; S3 objects are served by the bucket
	if deps.Config.S3Bucket == "" {
		app.Static("/uploads", deps.Config.FileUploadPath)
	}
}
