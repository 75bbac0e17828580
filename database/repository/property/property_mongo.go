// File: database/repository/property/property_mongo.go
package propertyRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"homevista/database"
	"homevista/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a property id does not resolve to a listing.
var ErrNotFound = errors.New("property not found")

// PropertyRepository is the read-only collaborator boundary to the listing
// catalog. The reservation core reads it for the declared slot set and
// display fields; catalog management lives elsewhere.
type PropertyRepository interface {
	GetByID(ctx context.Context, id string) (*models.Property, error)
}

// MongoPropertyRepo is the MongoDB-backed PropertyRepository.
type MongoPropertyRepo struct {
	coll *mongo.Collection
}

// NewMongoPropertyRepo constructs a PropertyRepository over the properties
// collection.
func NewMongoPropertyRepo() *MongoPropertyRepo {
	return &MongoPropertyRepo{coll: database.DB().Collection("properties")}
}

func (r *MongoPropertyRepo) GetByID(ctx context.Context, id string) (*models.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var property models.Property
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&property)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch property %s: %w", id, err)
	}
	return &property, nil
}
