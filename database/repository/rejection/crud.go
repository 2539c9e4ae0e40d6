package rejectionRepo

import (
	"context"
	"fmt"
	"time"

	"safarihub/database"
	"safarihub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRejectionRepo implements RejectionRepository using MongoDB.
type MongoRejectionRepo struct {
	coll *mongo.Collection
}

// NewMongoRejectionRepo creates a new instance of RejectionRepository using MongoDB.
func NewMongoRejectionRepo() RejectionRepository {
	coll := database.DB().Collection("tour_rejections")
	repo := &MongoRejectionRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create rejection indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoRejectionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tour_id", Value: 1}}},
		{Keys: bson.D{{Key: "tour_guide_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create appends a rejection record.
func (r *MongoRejectionRepo) Create(rejection *models.TourRejection) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	rejection.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, rejection)
	if err != nil {
		return fmt.Errorf("failed to create tour rejection: %w", err)
	}
	return nil
}

func (r *MongoRejectionRepo) find(filter bson.M) ([]models.TourRejection, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tour rejections: %w", err)
	}
	defer cursor.Close(ctx)

	var rejections []models.TourRejection
	if err := cursor.All(ctx, &rejections); err != nil {
		return nil, fmt.Errorf("failed to decode tour rejections: %w", err)
	}
	return rejections, nil
}

// GetByTour lists rejection records for a tour, newest first.
func (r *MongoRejectionRepo) GetByTour(tourID string) ([]models.TourRejection, error) {
	return r.find(bson.M{"tour_id": tourID})
}

// GetByGuide lists rejection records filed by a guide, newest first.
func (r *MongoRejectionRepo) GetByGuide(guideID string) ([]models.TourRejection, error) {
	return r.find(bson.M{"tour_guide_id": guideID})
}
