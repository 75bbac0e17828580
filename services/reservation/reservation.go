package reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bookingRepo "homevista/database/repository/booking"
	"homevista/models"

	"go.uber.org/zap"
)

// bookedSlotsTTL bounds how stale the advisory booked-slot projection may
// get; the unique index stays the arbiter either way.
const bookedSlotsTTL = time.Minute

func (s *DefaultReservationService) Create(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	property, err := s.PropertyRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve property: %w", err)
	}

	if err := validateRequest(req, property, time.Now()); err != nil {
		return nil, err
	}

	// Advisory pre-check. Saves a write round trip on an obviously taken
	// slot; the insert below is what actually decides conflicts.
	free, err := s.Repo.IsSlotFree(ctx, req.PropertyID, req.Date, req.TimeSlot)
	if err != nil {
		return nil, fmt.Errorf("availability check failed: %w", err)
	}
	if !free {
		return nil, bookingRepo.ErrSlotTaken
	}

	booking := &models.Booking{
		PropertyID:  req.PropertyID,
		UserID:      req.UserID,
		Name:        req.Name,
		Email:       req.Email,
		Contact:     req.Contact,
		MeetingType: req.MeetingType,
		Date:        req.Date,
		TimeSlot:    req.TimeSlot,
		Price:       models.MeetingPrices[req.MeetingType],
	}

	id, err := s.Repo.InsertIfFree(ctx, booking)
	if err != nil {
		return nil, err
	}
	booking.ID = id

	s.invalidateBookedSlots(ctx, booking.PropertyID, booking.Date)
	s.Logger.Info("booking confirmed",
		zap.String("booking", booking.ID),
		zap.String("property", booking.PropertyID),
		zap.String("date", booking.Date),
		zap.String("slot", booking.TimeSlot))
	return booking, nil
}

func (s *DefaultReservationService) BookedSlots(ctx context.Context, propertyID, date string) ([]models.Booking, error) {
	cacheKey := fmt.Sprintf("booked:%s:%s", propertyID, date)
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var bookings []models.Booking
			if err := json.Unmarshal([]byte(data), &bookings); err == nil {
				return bookings, nil
			}
		}
	}

	bookings, err := s.Repo.ListByProperty(ctx, propertyID, date)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(bookings); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, data, bookedSlotsTTL).Err(); err != nil {
				s.Logger.Warn("failed to cache booked slots", zap.Error(err))
			}
		}
	}
	return bookings, nil
}

func (s *DefaultReservationService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultReservationService) Delete(ctx context.Context, id string) error {
	booking, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.invalidateBookedSlots(ctx, booking.PropertyID, booking.Date)
	s.Logger.Info("booking deleted", zap.String("booking", id))
	return nil
}

func (s *DefaultReservationService) ListAll(ctx context.Context) ([]models.Booking, error) {
	return s.Repo.ListAll(ctx)
}

// invalidateBookedSlots drops the cached projections touched by a write,
// both the dated key and the all-dates key.
func (s *DefaultReservationService) invalidateBookedSlots(ctx context.Context, propertyID, date string) {
	if s.Cache == nil {
		return
	}
	keys := []string{
		fmt.Sprintf("booked:%s:%s", propertyID, date),
		fmt.Sprintf("booked:%s:", propertyID),
	}
	if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
		s.Logger.Warn("failed to invalidate booked-slot cache", zap.Error(err))
	}
}
