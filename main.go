package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"museum-booking/config"
	"museum-booking/database"
	"museum-booking/logger"
	"museum-booking/repository"
	"museum-booking/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", err)
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		BodyLimit:    1 * 1024 * 1024, // bookings are small JSON documents
	})

	deps := routes.Dependencies{
		Driver:         cfg.StorageDriver,
		Clock:          cfg.Now,
		AdminJWTSecret: cfg.AdminJWTSecret,
	}

	var cleanup []func()
	switch cfg.StorageDriver {
	case config.DriverMongo:
		client, db, err := database.InitMongo(context.Background(), cfg)
		if err != nil {
			logger.Error("Failed to connect to the database", err)
			os.Exit(1)
		}
		deps.Bookings = repository.NewMongoBookingRepository(db, cfg.Now)
		cleanup = append(cleanup, func() {
			if err := client.Disconnect(context.Background()); err != nil {
				logger.Error("Failed to disconnect from MongoDB", err)
			}
		})
	default:
		db, err := database.InitDB(cfg)
		if err != nil {
			logger.Error("Failed to connect to the database", err)
			os.Exit(1)
		}
		deps.Bookings = repository.NewGormBookingRepository(db)
		cleanup = append(cleanup, func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		})

		// Cleanups run in reverse, so queued logs are flushed before the pool closes
		if cfg.RequestLogEnabled {
			asyncLogger := logger.NewAsyncLogger(db)
			go asyncLogger.ProcessLog()
			deps.RequestLogs = asyncLogger
			cleanup = append(cleanup, asyncLogger.Close)
		}
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.FrontendURL,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	routes.SetupRoutes(app, deps)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	if err := serve(app, cfg.Addr(), stop); err != nil {
		logger.Error("Server stopped", err)
		exitCode = 1
	}
	for i := len(cleanup) - 1; i >= 0; i-- {
		cleanup[i]()
	}
	os.Exit(exitCode)
}

// serve listens on addr until a signal arrives on stop, then shuts the app
// down gracefully. A listener that fails to start is returned as an error.
func serve(app *fiber.App, addr string, stop <-chan os.Signal) error {
	listenErr := make(chan error, 1)
	go func() {
		logger.Success("Server is running on " + addr)
		listenErr <- app.Listen(addr)
	}()

	select {
	case err := <-listenErr:
		return err
	case <-stop:
	}

	logger.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("Graceful shutdown failed", err)
	}
	return nil
}
