package reservation

import (
	"errors"
	"testing"
	"time"

	"homevista/models"
)

var testProperty = &models.Property{
	ID:    "P1",
	Slots: []string{"10-11", "11-12"},
}

// now is fixed so the future-date boundary is deterministic.
var testNow = time.Date(2030, 1, 15, 9, 30, 0, 0, time.UTC)

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		PropertyID:  "P1",
		UserID:      "u1",
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Contact:     "0712345678",
		MeetingType: models.MeetingPhysical,
		Date:        "2030-01-16",
		TimeSlot:    "10-11",
	}
}

func TestValidateRequest(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*models.BookingRequest)
		wantErr bool
		field   string
	}{
		{name: "valid request", mutate: func(r *models.BookingRequest) {}},
		{name: "name with digits", mutate: func(r *models.BookingRequest) { r.Name = "Jane D03" }, wantErr: true, field: "name"},
		{name: "empty name", mutate: func(r *models.BookingRequest) { r.Name = "" }, wantErr: true, field: "name"},
		{name: "contact 9 digits", mutate: func(r *models.BookingRequest) { r.Contact = "071234567" }, wantErr: true, field: "contact"},
		{name: "contact 11 digits", mutate: func(r *models.BookingRequest) { r.Contact = "07123456789" }, wantErr: true, field: "contact"},
		{name: "contact 10 digits", mutate: func(r *models.BookingRequest) { r.Contact = "0712345678" }},
		{name: "contact with letters", mutate: func(r *models.BookingRequest) { r.Contact = "07123456ab" }, wantErr: true, field: "contact"},
		{name: "date today rejected", mutate: func(r *models.BookingRequest) { r.Date = "2030-01-15" }, wantErr: true, field: "date"},
		{name: "date tomorrow accepted", mutate: func(r *models.BookingRequest) { r.Date = "2030-01-16" }},
		{name: "date in the past", mutate: func(r *models.BookingRequest) { r.Date = "2029-12-31" }, wantErr: true, field: "date"},
		{name: "date malformed", mutate: func(r *models.BookingRequest) { r.Date = "16/01/2030" }, wantErr: true, field: "date"},
		{name: "empty slot", mutate: func(r *models.BookingRequest) { r.TimeSlot = "" }, wantErr: true, field: "timeSlot"},
		{name: "undeclared slot", mutate: func(r *models.BookingRequest) { r.TimeSlot = "12-13" }, wantErr: true, field: "timeSlot"},
		{name: "bad meeting type", mutate: func(r *models.BookingRequest) { r.MeetingType = "hybrid" }, wantErr: true, field: "meetingType"},
		{name: "virtual meeting accepted", mutate: func(r *models.BookingRequest) { r.MeetingType = models.MeetingVirtual }},
		{name: "bad email", mutate: func(r *models.BookingRequest) { r.Email = "not-an-email" }, wantErr: true, field: "email"},
		{name: "empty email allowed", mutate: func(r *models.BookingRequest) { r.Email = "" }},
		{name: "missing user", mutate: func(r *models.BookingRequest) { r.UserID = "" }, wantErr: true, field: "userId"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			err := validateRequest(req, testProperty, testNow)
			if !tc.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, vErr.Field)
			}
		})
	}
}
