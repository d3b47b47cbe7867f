package repository

import (
	"context"
	"errors"
	"time"

	bookingModel "museum-booking/models/booking"
	"museum-booking/types"
	"museum-booking/validation"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// BookingCollection is the collection bookings are stored in.
const BookingCollection = "bookings"

// bookingDocument is the stored shape of a booking.
type bookingDocument struct {
	ID               primitive.ObjectID `bson:"_id"`
	VisitorName      string             `bson:"visitorName"`
	Email            string             `bson:"email"`
	Phone            string             `bson:"phone"`
	VisitDate        time.Time          `bson:"visitDate"`
	NumberOfVisitors int                `bson:"numberOfVisitors"`
	TourType         string             `bson:"tourType"`
	SpecialRequests  string             `bson:"specialRequests,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt"`
}

func (d bookingDocument) toModel() bookingModel.Booking {
	return bookingModel.Booking{
		ID:               d.ID.Hex(),
		VisitorName:      d.VisitorName,
		Email:            d.Email,
		Phone:            d.Phone,
		VisitDate:        types.DateOf(d.VisitDate.UTC()),
		NumberOfVisitors: d.NumberOfVisitors,
		TourType:         d.TourType,
		SpecialRequests:  d.SpecialRequests,
		CreatedAt:        d.CreatedAt,
	}
}

// MongoBookingRepository stores bookings in a MongoDB collection.
type MongoBookingRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewMongoBookingRepository(db *mongo.Database, now func() time.Time) *MongoBookingRepository {
	if now == nil {
		now = time.Now
	}
	return &MongoBookingRepository{
		collection: db.Collection(BookingCollection),
		now:        now,
	}
}

func (r *MongoBookingRepository) Create(ctx context.Context, b validation.Booking) (*bookingModel.Booking, error) {
	record := bookingModel.FromValidated(b)
	clock := r.now()
	if violations := validation.Check(record.Fields(), clock); len(violations) > 0 {
		return nil, persistenceError("create", violations)
	}

	doc := bookingDocument{
		ID:               primitive.NewObjectID(),
		VisitorName:      record.VisitorName,
		Email:            record.Email,
		Phone:            record.Phone,
		VisitDate:        record.VisitDate.Time,
		NumberOfVisitors: record.NumberOfVisitors,
		TourType:         record.TourType,
		SpecialRequests:  record.SpecialRequests,
		// BSON dates carry millisecond precision
		CreatedAt: clock.UTC().Truncate(time.Millisecond),
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, persistenceError("create", err)
	}

	created := doc.toModel()
	return &created, nil
}

func (r *MongoBookingRepository) List(ctx context.Context, filter ListFilter) ([]bookingModel.Booking, error) {
	query := bson.M{}
	if filter.TourType != "" {
		query["tourType"] = filter.TourType
	}
	if filter.VisitDate != nil {
		query["visitDate"] = filter.VisitDate.Time
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, persistenceError("list", err)
	}
	defer cursor.Close(ctx)

	var docs []bookingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, persistenceError("list", err)
	}

	bookings := make([]bookingModel.Booking, 0, len(docs))
	for _, d := range docs {
		bookings = append(bookings, d.toModel())
	}
	return bookings, nil
}

func (r *MongoBookingRepository) GetByID(ctx context.Context, id string) (*bookingModel.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var doc bookingDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, persistenceError("get", err)
	}

	b := doc.toModel()
	return &b, nil
}

func (r *MongoBookingRepository) Ping(ctx context.Context) error {
	if err := r.collection.Database().Client().Ping(ctx, readpref.Primary()); err != nil {
		return persistenceError("ping", err)
	}
	return nil
}

// EnsureBookingIndexes creates the indexes the listing queries rely on.
func EnsureBookingIndexes(ctx context.Context, db *mongo.Database) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "tourType", Value: 1}}},
		{Keys: bson.D{{Key: "visitDate", Value: 1}}},
	}
	if _, err := db.Collection(BookingCollection).Indexes().CreateMany(ctx, models); err != nil {
		return persistenceError("index", err)
	}
	return nil
}
