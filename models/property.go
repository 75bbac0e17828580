package models

import "time"

// Property is a listed resource against which viewing slots are booked.
// The catalog itself is managed elsewhere; this core reads it for the
// declared slot set and display fields only.
type Property struct {
	ID            string    `bson:"id" json:"id"`
	OwnerID       string    `bson:"owner_id" json:"ownerId"`
	Type          string    `bson:"type" json:"type"`
	Description   string    `bson:"description" json:"description"`
	Price         float64   `bson:"price" json:"price"`
	Location      string    `bson:"location" json:"location"`
	ContactNumber string    `bson:"contact_number" json:"contactNumber"`
	Email         string    `bson:"email" json:"email"`
	Slots         []string  `bson:"slots" json:"slots"` // Declared viewing windows, e.g. "10-11"
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

// HasSlot reports whether slot is one of the property's declared windows.
func (p *Property) HasSlot(slot string) bool {
	for _, s := range p.Slots {
		if s == slot {
			return true
		}
	}
	return false
}
