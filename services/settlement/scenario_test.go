package settlement

import (
	"context"
	"errors"
	"sync"
	"testing"

	bookingRepo "homevista/database/repository/booking"
	propertyRepo "homevista/database/repository/property"
	"homevista/models"
	"homevista/services/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memBookingRepo is just enough of a booking store for the checkout
// scenario: check and insert under one lock.
type memBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
}

func (m *memBookingRepo) InsertIfFree(ctx context.Context, b *models.Booking) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ex := range m.bookings {
		if ex.PropertyID == b.PropertyID && ex.Date == b.Date && ex.TimeSlot == b.TimeSlot {
			return "", bookingRepo.ErrSlotTaken
		}
	}
	b.ID = uuid.New().String()
	b.Status = models.BookingStatusConfirmed
	m.bookings[b.ID] = *b
	return b.ID, nil
}

func (m *memBookingRepo) IsSlotFree(ctx context.Context, propertyID, date, slot string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ex := range m.bookings {
		if ex.PropertyID == propertyID && ex.Date == date && ex.TimeSlot == slot {
			return false, nil
		}
	}
	return true, nil
}

func (m *memBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	return &b, nil
}

func (m *memBookingRepo) DeleteByID(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.bookings, id)
	return nil
}

func (m *memBookingRepo) ListByProperty(ctx context.Context, propertyID, date string) ([]models.Booking, error) {
	return nil, nil
}

func (m *memBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	return nil, nil
}

type memPropertyRepo struct{ property models.Property }

func (m *memPropertyRepo) GetByID(ctx context.Context, id string) (*models.Property, error) {
	if id != m.property.ID {
		return nil, propertyRepo.ErrNotFound
	}
	p := m.property
	return &p, nil
}

// Full checkout walkthrough: requester A books P1/2030-01-01/10-11, a rival
// request for the same triple loses, A pays through the hosted session and
// the provider's callback lands twice.
func TestReservationAndSettlementScenario(t *testing.T) {
	ctx := context.Background()

	reservations := &reservation.DefaultReservationService{
		Repo: &memBookingRepo{bookings: make(map[string]models.Booking)},
		PropertyRepo: &memPropertyRepo{property: models.Property{
			ID:    "P1",
			Slots: []string{"10-11", "11-12"},
		}},
		Logger: zap.NewNop(),
	}
	settlements, repo, users := newTestService(&fakeGateway{})

	bookingReq := models.BookingRequest{
		PropertyID:  "P1",
		UserID:      "requester-a",
		Name:        "Requester A",
		Contact:     "0712345678",
		MeetingType: models.MeetingPhysical,
		Date:        "2030-01-01",
		TimeSlot:    "10-11",
	}

	booking, err := reservations.Create(ctx, bookingReq)
	require.NoError(t, err)
	assert.Equal(t, float64(10), booking.Price)

	rival := bookingReq
	rival.UserID = "requester-b"
	rival.Name = "Requester B"
	_, err = reservations.Create(ctx, rival)
	require.True(t, errors.Is(err, bookingRepo.ErrSlotTaken))

	// A pays the viewing fee through the hosted checkout: 10 + 10 surcharge.
	payReq := models.PaymentRequest{
		UserID: "requester-a",
		Items:  []models.LineItem{{Name: "Property Viewing", Price: booking.Price, Quantity: 1}},
		Amount: 20,
	}
	result, err := settlements.Begin(ctx, payReq, models.PaymentMethodStripe)
	require.NoError(t, err)
	require.NotEmpty(t, result.RedirectURL)

	intent, err := repo.GetByID(ctx, result.IntentID)
	require.NoError(t, err)
	assert.Equal(t, float64(20), intent.Amount)

	require.NoError(t, settlements.Reconcile(ctx, result.IntentID, true))
	intent, err = repo.GetByID(ctx, result.IntentID)
	require.NoError(t, err)
	assert.True(t, intent.Payment)

	// Second identical callback: no error, no state change.
	require.NoError(t, settlements.Reconcile(ctx, result.IntentID, true))
	again, err := repo.GetByID(ctx, result.IntentID)
	require.NoError(t, err)
	assert.Equal(t, intent, again)
	assert.Equal(t, 1, users.clears("requester-a"))
}
