package reservation

import (
	"context"

	bookingRepo "homevista/database/repository/booking"
	propertyRepo "homevista/database/repository/property"
	"homevista/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ReservationService orchestrates viewing-slot reservations: it validates
// the request, runs the advisory availability check and hands arbitration
// to the booking store's atomic insert.
type ReservationService interface {
	Create(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	// BookedSlots returns the confirmed bookings for a property, optionally
	// narrowed to a date. The UI uses it to grey out taken slots.
	BookedSlots(ctx context.Context, propertyID, date string) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]models.Booking, error)
}

// DefaultReservationService implements ReservationService.
type DefaultReservationService struct {
	Repo         bookingRepo.BookingRepository
	PropertyRepo propertyRepo.PropertyRepository
	Cache        *redis.Client // optional; nil disables the booked-slot cache
	Logger       *zap.Logger
}
