package reservation

import (
	"context"
	"errors"
	"sync"
	"testing"

	bookingRepo "homevista/database/repository/booking"
	propertyRepo "homevista/database/repository/property"
	"homevista/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeBookingRepo mirrors the store's insert-time arbitration: the check and
// the insert happen under one lock, so concurrent conflicting inserts can
// never both commit.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]models.Booking)}
}

func (f *fakeBookingRepo) InsertIfFree(ctx context.Context, b *models.Booking) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ex := range f.bookings {
		if ex.Status == models.BookingStatusConfirmed &&
			ex.PropertyID == b.PropertyID && ex.Date == b.Date && ex.TimeSlot == b.TimeSlot {
			return "", bookingRepo.ErrSlotTaken
		}
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	b.Status = models.BookingStatusConfirmed
	f.bookings[b.ID] = *b
	return b.ID, nil
}

func (f *fakeBookingRepo) IsSlotFree(ctx context.Context, propertyID, date, slot string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ex := range f.bookings {
		if ex.Status == models.BookingStatusConfirmed &&
			ex.PropertyID == propertyID && ex.Date == date && ex.TimeSlot == slot {
			return false, nil
		}
	}
	return true, nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	return &b, nil
}

func (f *fakeBookingRepo) DeleteByID(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrNotFound
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingRepo) ListByProperty(ctx context.Context, propertyID, date string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.PropertyID != propertyID || b.Status != models.BookingStatusConfirmed {
			continue
		}
		if date != "" && b.Date != date {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

type fakePropertyRepo struct {
	properties map[string]models.Property
}

func (f *fakePropertyRepo) GetByID(ctx context.Context, id string) (*models.Property, error) {
	p, ok := f.properties[id]
	if !ok {
		return nil, propertyRepo.ErrNotFound
	}
	return &p, nil
}

func newTestService() (*DefaultReservationService, *fakeBookingRepo) {
	repo := newFakeBookingRepo()
	svc := &DefaultReservationService{
		Repo: repo,
		PropertyRepo: &fakePropertyRepo{properties: map[string]models.Property{
			"P1": *testProperty,
		}},
		Logger: zap.NewNop(),
	}
	return svc, repo
}

func TestCreateBooking(t *testing.T) {
	svc, _ := newTestService()

	booking, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotEmpty(t, booking.ID)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, float64(10), booking.Price)
}

func TestCreateBookingVirtualPrice(t *testing.T) {
	svc, _ := newTestService()

	req := validRequest()
	req.MeetingType = models.MeetingVirtual
	booking, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, float64(30), booking.Price)
}

func TestCreateBookingUnknownProperty(t *testing.T) {
	svc, _ := newTestService()

	req := validRequest()
	req.PropertyID = "nope"
	_, err := svc.Create(context.Background(), req)
	require.ErrorIs(t, err, propertyRepo.ErrNotFound)
}

func TestCreateBookingSlotTaken(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	// Same triple again, different requester.
	req := validRequest()
	req.UserID = "u2"
	req.Name = "John Roe"
	_, err = svc.Create(context.Background(), req)
	require.ErrorIs(t, err, bookingRepo.ErrSlotTaken)

	// A different slot on the same day is fine.
	req.TimeSlot = "11-12"
	_, err = svc.Create(context.Background(), req)
	require.NoError(t, err)
}

func TestCreateBookingValidationPersistsNothing(t *testing.T) {
	svc, repo := newTestService()

	req := validRequest()
	req.Contact = "123"
	_, err := svc.Create(context.Background(), req)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, repo.bookings)
}

// Run with -race: N concurrent requests for the same triple must yield
// exactly one confirmed booking, everyone else a slot conflict.
func TestCreateBookingConcurrentSameSlot(t *testing.T) {
	svc, repo := newTestService()

	const n = 32
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errorsIsSlotTaken(err):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, n-1, conflicts)
	assert.Len(t, repo.bookings, 1)
}

func errorsIsSlotTaken(err error) bool {
	return errors.Is(err, bookingRepo.ErrSlotTaken)
}

func TestDeleteBooking(t *testing.T) {
	svc, _ := newTestService()

	booking, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), booking.ID))
	require.ErrorIs(t, svc.Delete(context.Background(), booking.ID), bookingRepo.ErrNotFound)

	// The slot is bookable again after the administrative delete.
	_, err = svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestBookedSlots(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.TimeSlot = "11-12"
	req.Date = "2030-01-17"
	_, err = svc.Create(context.Background(), req)
	require.NoError(t, err)

	all, err := svc.BookedSlots(context.Background(), "P1", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	day, err := svc.BookedSlots(context.Background(), "P1", "2030-01-16")
	require.NoError(t, err)
	require.Len(t, day, 1)
	assert.Equal(t, "10-11", day[0].TimeSlot)
}
