// File: database/repository/payment/interface.go
package paymentRepo

import (
	"context"
	"errors"

	"homevista/database"
	"homevista/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when an intent id does not resolve to a record.
// Deletion of a missing intent is not an error at this layer; provider
// callbacks are at-least-once delivered and reconciliation must stay
// idempotent.
var ErrNotFound = errors.New("payment intent not found")

// PaymentRepository owns payment-intent records and their status
// transitions. All mutating operations are idempotent with respect to
// repeated identical calls.
type PaymentRepository interface {
	Create(ctx context.Context, intent *models.PaymentIntent) (string, error)
	GetByID(ctx context.Context, id string) (*models.PaymentIntent, error)
	// SetPayment flips the settled flag. Re-setting the same value is a no-op.
	SetPayment(ctx context.Context, id string, settled bool) error
	SetStatus(ctx context.Context, id string, status string) error
	// DeleteByID removes the intent. A missing record is reported as success;
	// callers that need strict semantics check GetByID first.
	DeleteByID(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]models.PaymentIntent, error)
	ListAll(ctx context.Context) ([]models.PaymentIntent, error)
}

// MongoPaymentRepo is the MongoDB-backed PaymentRepository.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo constructs a PaymentRepository over the payments
// collection.
func NewMongoPaymentRepo() *MongoPaymentRepo {
	return &MongoPaymentRepo{coll: database.DB().Collection("payments")}
}
