package booking

import (
	"errors"
	"fmt"
	"time"

	"museum-booking/logger"
	"museum-booking/repository"
	"museum-booking/services/booking_stats"
	"museum-booking/types"
	bookingTypes "museum-booking/types/booking"
	"museum-booking/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	msgMissingFields = "Please fill in all required fields"
	msgServerError   = "Server error. Please try again later."
	msgCreated       = "Booking created successfully!"
	msgNotFound      = "Booking not found"
	msgInvalidID     = "Invalid booking id"
)

// BookingController handles booking-related HTTP requests
type BookingController struct {
	Repo  repository.BookingRepository
	Clock func() time.Time
}

// NewBookingController creates a new booking controller. clock supplies the
// moment of submission in the museum's time zone.
func NewBookingController(repo repository.BookingRepository, clock func() time.Time) *BookingController {
	if clock == nil {
		clock = time.Now
	}
	return &BookingController{
		Repo:  repo,
		Clock: clock,
	}
}

// Store validates and creates a new booking
func (bc *BookingController) Store(c *fiber.Ctx) error {
	var req bookingTypes.BookingCreateRequest
	if len(c.Body()) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.Fail(msgMissingFields))
	}
	if err := c.BodyParser(&req); err != nil {
		logger.Warning("Failed to parse booking request body: " + err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(types.Fail(msgMissingFields))
	}
	if req.IsEmpty() {
		return c.Status(fiber.StatusBadRequest).JSON(types.Fail(msgMissingFields))
	}

	valid, violations := validation.ValidateBooking(req.ToInput(), bc.Clock())
	if len(violations) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(types.Fail(violations.Error()))
	}

	created, err := bc.Repo.Create(c.UserContext(), valid)
	if err != nil {
		logger.Error("Failed to create booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.Fail(msgServerError))
	}

	logger.Success(fmt.Sprintf("Booking created successfully with ID: %s", created.ID))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Success: true,
		Message: msgCreated,
		Data:    created,
	})
}

// Index lists bookings, newest first
func (bc *BookingController) Index(c *fiber.Ctx) error {
	var query bookingTypes.BookingListQuery
	if err := c.QueryParser(&query); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.Fail("Invalid query parameters"))
	}
	filter, err := query.Filter()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.Fail(err.Error()))
	}

	bookings, err := bc.Repo.List(c.UserContext(), filter)
	if err != nil {
		logger.Error("Error fetching bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.Fail("Server error"))
	}

	return c.Status(fiber.StatusOK).JSON(types.Collection(bookings, len(bookings)))
}

// Show returns a single booking by id
func (bc *BookingController) Show(c *fiber.Ctx) error {
	b, err := bc.Repo.GetByID(c.UserContext(), c.Params("id"))
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(types.Fail(msgInvalidID))
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(types.Fail(msgNotFound))
	case err != nil:
		logger.Error("Error fetching booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.Fail("Server error"))
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Success: true,
		Data:    b,
	})
}

// Stats returns the dashboard summary of all bookings
func (bc *BookingController) Stats(c *fiber.Ctx) error {
	bookings, err := bc.Repo.List(c.UserContext(), repository.ListFilter{})
	if err != nil {
		logger.Error("Error fetching bookings for stats", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.Fail("Server error"))
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Success: true,
		Data:    booking_stats.Summarize(bookings, bc.Clock()),
	})
}
