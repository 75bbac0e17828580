// File: database/repository/payment/payment_mongo.go
package paymentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homevista/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const opTimeout = 5 * time.Second

func (r *MongoPaymentRepo) Create(ctx context.Context, intent *models.PaymentIntent) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if intent.ID == "" {
		intent.ID = uuid.New().String()
	}
	if intent.Status == "" {
		intent.Status = models.PaymentStatusCreated
	}
	if intent.CreatedAt.IsZero() {
		intent.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, intent); err != nil {
		return "", fmt.Errorf("failed to insert payment intent: %w", err)
	}
	return intent.ID, nil
}

func (r *MongoPaymentRepo) GetByID(ctx context.Context, id string) (*models.PaymentIntent, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var intent models.PaymentIntent
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&intent)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment intent %s: %w", id, err)
	}
	return &intent, nil
}

func (r *MongoPaymentRepo) SetPayment(ctx context.Context, id string, settled bool) error {
	return r.setField(ctx, id, bson.M{"payment": settled})
}

func (r *MongoPaymentRepo) SetStatus(ctx context.Context, id string, status string) error {
	return r.setField(ctx, id, bson.M{"status": status})
}

func (r *MongoPaymentRepo) setField(ctx context.Context, id string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update payment intent %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoPaymentRepo) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// Zero deletions is not an error: the record may already be gone from a
	// prior reconciliation or an administrative sweep.
	if _, err := r.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("failed to delete payment intent %s: %w", id, err)
	}
	return nil
}

func (r *MongoPaymentRepo) ListByUser(ctx context.Context, userID string) ([]models.PaymentIntent, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *MongoPaymentRepo) ListAll(ctx context.Context) ([]models.PaymentIntent, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoPaymentRepo) list(ctx context.Context, filter bson.M) ([]models.PaymentIntent, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment intents: %w", err)
	}
	defer cursor.Close(ctx)

	var intents []models.PaymentIntent
	if err := cursor.All(ctx, &intents); err != nil {
		return nil, fmt.Errorf("failed to decode payment intents: %w", err)
	}
	return intents, nil
}
