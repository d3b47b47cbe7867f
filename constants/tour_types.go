package constants

// Tour types a visitor can book
const (
	TourTypeGuided     = "guided"
	TourTypeSelfGuided = "self-guided"
	TourTypePrivate    = "private"
)

// Visitor limits per booking
const (
	MinVisitors            = 1
	MaxVisitors            = 20
	MaxSpecialRequestsRune = 500
	MinVisitorNameRune     = 2
)

// TourTypes lists the tour types in display order.
func TourTypes() []string {
	return []string{TourTypeGuided, TourTypeSelfGuided, TourTypePrivate}
}

// IsTourType reports whether value names a known tour type.
func IsTourType(value string) bool {
	switch value {
	case TourTypeGuided, TourTypeSelfGuided, TourTypePrivate:
		return true
	default:
		return false
	}
}
