package repository

import (
	"context"
	"errors"

	bookingModel "museum-booking/models/booking"
	"museum-booking/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBookingRepository stores bookings in a relational database.
type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) Create(ctx context.Context, b validation.Booking) (*bookingModel.Booking, error) {
	record := bookingModel.FromValidated(b)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, persistenceError("create", err)
	}
	return &record, nil
}

func (r *GormBookingRepository) List(ctx context.Context, filter ListFilter) ([]bookingModel.Booking, error) {
	bookings := []bookingModel.Booking{}

	q := r.db.WithContext(ctx).Model(&bookingModel.Booking{})
	if filter.TourType != "" {
		q = q.Where("tour_type = ?", filter.TourType)
	}
	if filter.VisitDate != nil {
		q = q.Where("DATE(visit_date) = ?", filter.VisitDate.String())
	}

	if err := q.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, persistenceError("list", err)
	}
	return bookings, nil
}

func (r *GormBookingRepository) GetByID(ctx context.Context, id string) (*bookingModel.Booking, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}

	var b bookingModel.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistenceError("get", err)
	}
	return &b, nil
}

func (r *GormBookingRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return persistenceError("ping", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return persistenceError("ping", err)
	}
	return nil
}
