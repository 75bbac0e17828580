package reservation

import (
	"fmt"
	"regexp"
	"time"

	"homevista/models"
)

// ValidationError reports a malformed booking request field. Nothing is
// persisted when validation fails.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

var (
	nameRe    = regexp.MustCompile(`^[A-Za-z\s]+$`)
	contactRe = regexp.MustCompile(`^\d{10}$`)
	emailRe   = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

const dateLayout = "2006-01-02"

// validateRequest checks every field of a booking request against the
// declared slot set of the target property. A date equal to today is
// rejected; the viewing must be strictly in the future.
func validateRequest(req models.BookingRequest, property *models.Property, now time.Time) error {
	if req.UserID == "" {
		return &ValidationError{Field: "userId", Reason: "must not be empty"}
	}
	if !nameRe.MatchString(req.Name) {
		return &ValidationError{Field: "name", Reason: "must contain only letters and spaces"}
	}
	if req.Email != "" && !emailRe.MatchString(req.Email) {
		return &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	if !contactRe.MatchString(req.Contact) {
		return &ValidationError{Field: "contact", Reason: "must be exactly 10 digits"}
	}
	if _, ok := models.MeetingPrices[req.MeetingType]; !ok {
		return &ValidationError{Field: "meetingType", Reason: "must be physical or virtual"}
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return &ValidationError{Field: "date", Reason: "must be in YYYY-MM-DD format"}
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !date.After(today) {
		return &ValidationError{Field: "date", Reason: "must be a future date"}
	}

	if req.TimeSlot == "" {
		return &ValidationError{Field: "timeSlot", Reason: "must not be empty"}
	}
	if !property.HasSlot(req.TimeSlot) {
		return &ValidationError{Field: "timeSlot", Reason: "is not offered by this property"}
	}
	return nil
}
