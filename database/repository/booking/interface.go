// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"
	"log"

	"homevista/database"
	"homevista/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned when an insert loses the arbitration for a
// (property, date, slot) triple. The unique index is the final arbiter;
// callers must not pre-check and retry around it.
var ErrSlotTaken = errors.New("slot already booked")

// ErrNotFound is returned when a booking id does not resolve to a record.
var ErrNotFound = errors.New("booking not found")

// BookingRepository owns the durable booking records and enforces the
// confirmed-slot uniqueness invariant at the point of insertion.
type BookingRepository interface {
	// InsertIfFree atomically inserts the booking unless a confirmed booking
	// already holds the same (property, date, slot) triple.
	InsertIfFree(ctx context.Context, booking *models.Booking) (string, error)

	// IsSlotFree is an advisory read over confirmed bookings. It must not be
	// used as the sole gate against double booking.
	IsSlotFree(ctx context.Context, propertyID, date, slot string) (bool, error)

	GetByID(ctx context.Context, id string) (*models.Booking, error)
	DeleteByID(ctx context.Context, id string) error
	// ListByProperty returns confirmed bookings for a property; date narrows
	// the result to a single day when non-empty.
	ListByProperty(ctx context.Context, propertyID, date string) ([]models.Booking, error)
	ListAll(ctx context.Context) ([]models.Booking, error)
}

// MongoBookingRepo is the MongoDB-backed BookingRepository.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a BookingRepository over the bookings
// collection and bootstraps its indexes. The partial unique index is what
// InsertIfFree's atomicity rests on, so failing to create it is fatal.
func NewMongoBookingRepo() *MongoBookingRepo {
	repo := &MongoBookingRepo{coll: database.DB().Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		log.Fatalf("booking repo: %v", err)
	}
	return repo
}
