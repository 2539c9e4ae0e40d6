// File: database/repository/tour/tourMongoQueries.go
package tourRepo

import (
	"fmt"
	"time"

	"safarihub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID retrieves a tour by its unique ID.
func (r *MongoTourRepo) GetByID(id string) (*models.Tour, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var tour models.Tour
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&tour); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch tour with id %s: %w", id, err)
	}
	return &tour, nil
}

// GetByBookingID retrieves the tour tied to a booking.
func (r *MongoTourRepo) GetByBookingID(bookingID string) (*models.Tour, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var tour models.Tour
	if err := r.coll.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&tour); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch tour for booking %s: %w", bookingID, err)
	}
	return &tour, nil
}

func (r *MongoTourRepo) find(filter bson.M) ([]models.Tour, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tours: %w", err)
	}
	defer cursor.Close(ctx)

	var tours []models.Tour
	if err := cursor.All(ctx, &tours); err != nil {
		return nil, fmt.Errorf("failed to decode tours: %w", err)
	}
	return tours, nil
}

// GetAll retrieves all tours, newest first.
func (r *MongoTourRepo) GetAll() ([]models.Tour, error) {
	return r.find(bson.M{})
}

// GetByStatus retrieves all tours with the given status.
func (r *MongoTourRepo) GetByStatus(status models.TourStatus) ([]models.Tour, error) {
	return r.find(bson.M{"status": status})
}

// GetByGuide retrieves all tours assigned to a guide.
func (r *MongoTourRepo) GetByGuide(guideID string) ([]models.Tour, error) {
	return r.find(bson.M{"assigned_tour_guide": guideID})
}

// GetByDriver retrieves all tours assigned to a driver.
func (r *MongoTourRepo) GetByDriver(driverID string) ([]models.Tour, error) {
	return r.find(bson.M{"assigned_driver": driverID})
}
