package tourRepo

import (
	"context"
	"fmt"
	"time"

	"safarihub/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTourRepo implements TourRepository using MongoDB. It also holds the
// staff and notifications collections so assignment can run as one
// multi-document transaction.
type MongoTourRepo struct {
	coll      *mongo.Collection
	staffColl *mongo.Collection
	notifColl *mongo.Collection
}

// NewMongoTourRepo creates a new instance of TourRepository using MongoDB.
func NewMongoTourRepo() TourRepository {
	db := database.DB()
	repo := &MongoTourRepo{
		coll:      db.Collection("tours"),
		staffColl: db.Collection("staff"),
		notifColl: db.Collection("notifications"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create tour indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries. The
// unique booking_id index enforces at-most-one tour per booking.
func (r *MongoTourRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "assigned_tour_guide", Value: 1}}},
		{Keys: bson.D{{Key: "assigned_driver", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
