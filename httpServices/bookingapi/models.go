package httpServices

import (
	"museum-booking/types"
)

// BookingForm is what the visit form submits.
type BookingForm struct {
	VisitorName      string `json:"visitorName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	VisitDate        string `json:"visitDate"`
	NumberOfVisitors int    `json:"numberOfVisitors"`
	TourType         string `json:"tourType"`
	SpecialRequests  string `json:"specialRequests,omitempty"`
}

// Booking is a booking as returned by the API.
type Booking struct {
	ID               string     `json:"id"`
	VisitorName      string     `json:"visitorName"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	VisitDate        types.Date `json:"visitDate"`
	NumberOfVisitors int        `json:"numberOfVisitors"`
	TourType         string     `json:"tourType"`
	SpecialRequests  string     `json:"specialRequests"`
	CreatedAt        string     `json:"createdAt"`
}

type bookingResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *Booking `json:"data"`
}

type bookingListResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Count   int       `json:"count"`
	Data    []Booking `json:"data"`
}

// Health is the API health report.
type Health struct {
	Success  bool   `json:"success"`
	Status   string `json:"status"`
	Database string `json:"database"`
}
