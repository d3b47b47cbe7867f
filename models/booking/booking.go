package booking

import (
	"time"

	"museum-booking/types"
	"museum-booking/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking represents a museum visit booking. It is written once and never
// updated: id and created_at are create-only columns.
type Booking struct {
	ID               string     `gorm:"<-:create;type:varchar(36);primaryKey" json:"id"`
	VisitorName      string     `gorm:"type:varchar(255);not null" json:"visitorName"`
	Email            string     `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone            string     `gorm:"type:varchar(50);not null" json:"phone"`
	VisitDate        types.Date `gorm:"type:date;not null;index" json:"visitDate"`
	NumberOfVisitors int        `gorm:"not null" json:"numberOfVisitors"`
	TourType         string     `gorm:"type:varchar(20);not null;index" json:"tourType"`
	SpecialRequests  string     `gorm:"type:text" json:"specialRequests"`
	CreatedAt        time.Time  `gorm:"<-:create;not null;index" json:"createdAt"`
}

// FromValidated builds an unsaved booking from a validated request.
func FromValidated(v validation.Booking) Booking {
	return Booking{
		VisitorName:      v.VisitorName(),
		Email:            v.Email(),
		Phone:            v.Phone(),
		VisitDate:        v.VisitDate(),
		NumberOfVisitors: v.NumberOfVisitors(),
		TourType:         v.TourType(),
		SpecialRequests:  v.SpecialRequests(),
	}
}

// Fields returns the booking in the shape the schema checks.
func (b *Booking) Fields() validation.Fields {
	return validation.Fields{
		VisitorName:      b.VisitorName,
		Email:            b.Email,
		Phone:            b.Phone,
		VisitDate:        b.VisitDate.Time,
		NumberOfVisitors: b.NumberOfVisitors,
		TourType:         b.TourType,
		SpecialRequests:  b.SpecialRequests,
	}
}

// BeforeCreate assigns identity and creation time, then re-checks the
// booking schema against the database clock.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	clock := tx.NowFunc()
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	// createdAt is kept in UTC: sqlite compares it as text
	if b.CreatedAt.IsZero() {
		b.CreatedAt = clock.UTC()
	}
	if violations := validation.Check(b.Fields(), clock); len(violations) > 0 {
		return violations
	}
	return nil
}

// TableName sets the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}
