package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"devcamper_backend/internals/configs"
	"devcamper_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the app-wide chain. Order matters: the request
// id must exist before the logger and the recovery handler run.
func SetupMiddlewares(app *fiber.App, cfg configs.Config) {
	app.Use(RequestContext(cfg.RequestTimeout))
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware(cfg.CorsOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
}
