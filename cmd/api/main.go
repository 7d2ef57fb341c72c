package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/samiullah014/stan-task/interfaces/api/handlers"
	"github.com/samiullah014/stan-task/interfaces/api/routes"
	"github.com/samiullah014/stan-task/pkg/di"
	"github.com/samiullah014/stan-task/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	container := di.NewContainer()

	if err := container.Initialize(); err != nil {
		// ใช้ log พื้นฐานก่อน logger init
		panic("Failed to initialize container: " + err.Error())
	}

	h := handlers.NewHandlers(container.GetHandlerServices())
	app := routes.NewApp(h, container.GetRouteOptions())

	setupGracefulShutdown(app)

	port := container.GetConfig().App.Port
	logger.Info("Server starting",
		"port", port,
		"env", container.GetConfig().App.Env,
		"store", container.GetConfig().Store.Driver,
	)
	logger.Info("Endpoints available",
		"health", "http://localhost:"+port+"/health",
		"api", "http://localhost:"+port+"/api/tasks",
	)

	listenErr := app.Listen(":" + port)

	if err := container.Cleanup(); err != nil {
		logger.Error("Error during cleanup", "error", err)
	}

	if listenErr != nil {
		logger.Error("Server failed", "error", listenErr)
		os.Exit(1)
	}
}

// setupGracefulShutdown stops accepting requests on SIGINT/SIGTERM and lets
// in-flight ones finish; main then runs cleanup once Listen returns.
func setupGracefulShutdown(app *fiber.App) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Gracefully shutting down...")

		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			logger.Error("Server shutdown failed", "error", err)
		}
	}()
}
