package booking

import (
	"fmt"
	"strings"

	"museum-booking/constants"
	"museum-booking/repository"
	"museum-booking/types"
	"museum-booking/validation"
)

// BookingCreateRequest is the body of POST /api/bookings. numberOfVisitors
// may arrive as a number or a numeric string; text fields also take numbers.
type BookingCreateRequest struct {
	VisitorName      types.LooseString `json:"visitorName"`
	Email            types.LooseString `json:"email"`
	Phone            types.LooseString `json:"phone"`
	VisitDate        types.LooseString `json:"visitDate"`
	NumberOfVisitors interface{}       `json:"numberOfVisitors"`
	TourType         types.LooseString `json:"tourType"`
	SpecialRequests  types.LooseString `json:"specialRequests"`
}

// IsEmpty reports whether no field was submitted at all.
func (r BookingCreateRequest) IsEmpty() bool {
	return strings.TrimSpace(r.VisitorName.String()) == "" &&
		strings.TrimSpace(r.Email.String()) == "" &&
		strings.TrimSpace(r.Phone.String()) == "" &&
		strings.TrimSpace(r.VisitDate.String()) == "" &&
		r.NumberOfVisitors == nil &&
		strings.TrimSpace(r.TourType.String()) == "" &&
		strings.TrimSpace(r.SpecialRequests.String()) == ""
}

func (r BookingCreateRequest) ToInput() validation.Input {
	return validation.Input{
		VisitorName:      r.VisitorName.String(),
		Email:            r.Email.String(),
		Phone:            r.Phone.String(),
		VisitDate:        r.VisitDate.String(),
		NumberOfVisitors: r.NumberOfVisitors,
		TourType:         r.TourType.String(),
		SpecialRequests:  r.SpecialRequests.String(),
	}
}

// BookingListQuery holds the optional filters of GET /api/bookings.
type BookingListQuery struct {
	TourType  string `query:"tourType"`
	VisitDate string `query:"visitDate"`
}

// Filter converts the query into a repository filter. "all" matches every
// tour type, as the dashboard's filter select sends it.
func (q BookingListQuery) Filter() (repository.ListFilter, error) {
	var filter repository.ListFilter

	tourType := strings.TrimSpace(q.TourType)
	if tourType != "" && tourType != "all" {
		if !constants.IsTourType(tourType) {
			return filter, fmt.Errorf("Tour type must be one of: %s", strings.Join(constants.TourTypes(), ", "))
		}
		filter.TourType = tourType
	}

	if visitDate := strings.TrimSpace(q.VisitDate); visitDate != "" {
		d, err := types.ParseDate(visitDate)
		if err != nil {
			return filter, fmt.Errorf("Please enter a valid visit date")
		}
		filter.VisitDate = &d
	}

	return filter, nil
}
