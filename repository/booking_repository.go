package repository

import (
	"context"
	"errors"
	"fmt"

	bookingModel "museum-booking/models/booking"
	"museum-booking/types"
	"museum-booking/validation"
)

var (
	// ErrNotFound is returned when a well-formed id matches no booking.
	ErrNotFound = errors.New("booking not found")
	// ErrInvalidID is returned when an id is not in the store's id format.
	ErrInvalidID = errors.New("invalid booking id")
)

// PersistenceError means the store was unreachable or rejected an operation.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("booking %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

// ListFilter narrows a booking listing. Zero values match everything.
type ListFilter struct {
	TourType  string
	VisitDate *types.Date
}

type BookingRepository interface {
	// Create assigns id and createdAt and stores the booking.
	Create(ctx context.Context, b validation.Booking) (*bookingModel.Booking, error)
	// List returns bookings newest first.
	List(ctx context.Context, filter ListFilter) ([]bookingModel.Booking, error)
	// GetByID returns ErrInvalidID or ErrNotFound when nothing can be returned.
	GetByID(ctx context.Context, id string) (*bookingModel.Booking, error)
	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}
