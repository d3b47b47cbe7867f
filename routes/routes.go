package routes

import (
	"time"

	"museum-booking/constants"
	"museum-booking/controllers/booking"
	"museum-booking/controllers/health"
	"museum-booking/middleware"
	"museum-booking/repository"

	"github.com/gofiber/fiber/v2"
)

// Dependencies are the collaborators the routes are wired to.
type Dependencies struct {
	Bookings       repository.BookingRepository
	Driver         string
	Clock          func() time.Time
	AdminJWTSecret string
	// RequestLogs receives request/response pairs; nil disables persistence.
	RequestLogs middleware.LogSink
}

func SetupRoutes(app *fiber.App, deps Dependencies) {
	auth := middleware.NewAuth(deps.AdminJWTSecret)
	bookingController := booking.NewBookingController(deps.Bookings, deps.Clock)
	healthController := health.NewHealthController(deps.Bookings, deps.Driver)

	app.Use(middleware.RequestLog(deps.RequestLogs))

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Get("/health", healthController.Check)

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	bookingGroup := api.Group("/bookings")
	bookingGroup.Post("/", bookingController.Store)
	bookingGroup.Get("/", bookingController.Index)
	bookingGroup.Get("/:id", bookingController.Show)

	/*=============================================================================
	| Admin Routes
	===============================================================================*/
	admin := api.Group("/admin")
	admin.Get("/bookings/stats", auth.RequirePermissions(
		constants.DashboardPermissions...,
	), bookingController.Stats)
}
