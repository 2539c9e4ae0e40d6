// File: database/repository/tour/tourMongoCrud.go
package tourRepo

import (
	"errors"
	"fmt"
	"time"

	"safarihub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateBooking signals that the booking already has a tour.
var ErrDuplicateBooking = errors.New("a tour already exists for this booking")

// Create inserts a new tour document.
func (r *MongoTourRepo) Create(tour *models.Tour) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	tour.CreatedAt = now
	tour.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, tour)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateBooking
		}
		return fmt.Errorf("failed to create tour: %w", err)
	}
	return nil
}

// Update modifies an existing tour document.
func (r *MongoTourRepo) Update(tour *models.Tour) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	tour.UpdatedAt = time.Now()
	filter := bson.M{"id": tour.ID}
	update := bson.M{"$set": tour}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update tour with id %s: %w", tour.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("tour with id %s not found", tour.ID)
	}
	return nil
}

// UpdateSetDocument applies a $set update to a tour by ID.
func (r *MongoTourRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updated_at"] = time.Now()
	update := bson.M{"$set": updateDoc}

	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update tour with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("tour with id %s not found", id)
	}
	return nil
}
