package models

import "time"

// Booking statuses. Among bookings with status "confirmed" the
// (property, date, slot) triple is unique. Administrative cancellation is
// realized as a hard delete, so "cancelled" never appears in storage; the
// constant exists for clients that mirror the lifecycle label.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Meeting kinds form a closed set; each kind carries a flat viewing fee.
const (
	MeetingPhysical = "physical"
	MeetingVirtual  = "virtual"
)

// MeetingPrices maps a meeting kind to its flat viewing fee.
var MeetingPrices = map[string]float64{
	MeetingPhysical: 10,
	MeetingVirtual:  30,
}

// Booking represents a confirmed viewing appointment for a property slot.
type Booking struct {
	ID          string    `bson:"id" json:"id"`                    // Unique booking identifier (UUID)
	PropertyID  string    `bson:"property_id" json:"propertyId"`   // Property being viewed
	UserID      string    `bson:"user_id" json:"userId"`           // User who made the booking
	Name        string    `bson:"name" json:"name"`                // Visitor name (letters and spaces)
	Email       string    `bson:"email" json:"email"`              // Contact email for confirmations
	Contact     string    `bson:"contact" json:"contact"`          // Phone number, exactly 10 digits
	MeetingType string    `bson:"meeting_type" json:"meetingType"` // "physical" or "virtual"
	Date        string    `bson:"date" json:"date"`                // Viewing date in "YYYY-MM-DD" format
	TimeSlot    string    `bson:"time_slot" json:"timeSlot"`       // One of the property's declared slots
	Price       float64   `bson:"price" json:"price"`              // Flat fee derived from meeting type
	Status      string    `bson:"status" json:"status"`            // "confirmed" or "cancelled"
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// BookingRequest is the payload accepted when creating a booking.
type BookingRequest struct {
	PropertyID  string `json:"propertyId"`
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Contact     string `json:"contact"`
	MeetingType string `json:"meetingType"`
	Date        string `json:"date"`
	TimeSlot    string `json:"timeSlot"`
}
