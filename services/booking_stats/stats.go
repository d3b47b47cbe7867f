package booking_stats

import (
	"time"

	"museum-booking/constants"
	bookingModel "museum-booking/models/booking"
	"museum-booking/types"
)

// Stats is the dashboard summary of a set of bookings.
type Stats struct {
	TotalBookings int            `json:"totalBookings"`
	TodayBookings int            `json:"todayBookings"`
	TotalVisitors int            `json:"totalVisitors"`
	ByTourType    map[string]int `json:"byTourType"`
}

// Summarize counts bookings, visitors and tour types. A booking counts
// towards TodayBookings when it was created on the calendar day of clock,
// in clock's location.
func Summarize(bookings []bookingModel.Booking, clock time.Time) Stats {
	stats := Stats{ByTourType: make(map[string]int, len(constants.TourTypes()))}
	for _, tourType := range constants.TourTypes() {
		stats.ByTourType[tourType] = 0
	}

	today := types.DateOf(clock)
	for _, b := range bookings {
		stats.TotalBookings++
		stats.TotalVisitors += b.NumberOfVisitors
		stats.ByTourType[b.TourType]++
		if types.DateOf(b.CreatedAt.In(clock.Location())).Equal(today) {
			stats.TodayBookings++
		}
	}
	return stats
}
