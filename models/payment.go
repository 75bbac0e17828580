package models

import "time"

// Payment methods.
const (
	PaymentMethodCash   = "cash"
	PaymentMethodStripe = "stripe"
)

// Payment intent statuses tracked through settlement.
const (
	PaymentStatusCreated       = "created"
	PaymentStatusPendingCash   = "pending-cash"
	PaymentStatusPendingStripe = "pending-stripe"
)

// LineItem is a single billable entry on a payment intent.
type LineItem struct {
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"` // Unit price in base currency units
	Quantity int     `bson:"quantity" json:"quantity"`
}

// PaymentIntent records an amount owed and its settlement progress.
// It is correlated to a booking only through the user; the checkout flow
// carries the booking context in the request payload, not a stored reference.
type PaymentIntent struct {
	ID        string                 `bson:"id" json:"id"`
	UserID    string                 `bson:"user_id" json:"userId"`
	Items     []LineItem             `bson:"items" json:"items"`
	Amount    float64                `bson:"amount" json:"amount"` // Sum of items plus service charge, fixed at creation
	Address   map[string]interface{} `bson:"address" json:"address"`
	Method    string                 `bson:"payment_method" json:"paymentMethod"` // "cash" or "stripe"
	Payment   bool                   `bson:"payment" json:"payment"`              // True once settled
	Status    string                 `bson:"status" json:"status"`
	CreatedAt time.Time              `bson:"created_at" json:"createdAt"`
}

// PaymentRequest is the payload accepted when beginning settlement.
type PaymentRequest struct {
	UserID  string                 `json:"userId"`
	Items   []LineItem             `json:"items"`
	Amount  float64                `json:"amount"`
	Address map[string]interface{} `json:"address"`
}
