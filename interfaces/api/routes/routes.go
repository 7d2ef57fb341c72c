package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/samiullah014/stan-task/interfaces/api/handlers"
	"github.com/samiullah014/stan-task/interfaces/api/middleware"
)

// Options carries the app-level switches taken from config.
type Options struct {
	AppName           string
	CORSOrigins       string
	RejectEmptyUpdate bool
}

// NewApp builds the Fiber app with the error handler, middleware and all
// routes mounted.
func NewApp(h *handlers.Handlers, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          middleware.ErrorHandler(),
		AppName:               opts.AppName,
		BodyLimit:             1 * 1024 * 1024,
		DisableStartupMessage: true,
	})

	// Setup middleware (order matters!)
	app.Use(middleware.RequestIDMiddleware()) // ต้องมาก่อน logger
	app.Use(middleware.LoggerMiddleware())
	app.Use(recover.New())
	app.Use(middleware.CorsMiddleware(opts.CORSOrigins))

	SetupRoutes(app, h, opts)
	return app
}

func SetupRoutes(app *fiber.App, h *handlers.Handlers, opts Options) {
	// Setup health and root routes
	SetupHealthRoutes(app, h)

	api := app.Group("/api")
	SetupTaskRoutes(api, h, opts)

	// Live task events (needs app, not api group)
	if h.TaskFeedHandler != nil {
		SetupTaskFeedRoutes(app, h)
	}
}
