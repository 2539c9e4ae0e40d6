// File: database/repository/staff/staffMongoQueries.go
package staffRepo

import (
	"fmt"
	"time"

	"safarihub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetByID retrieves a staff member by its unique ID.
func (r *MongoStaffRepo) GetByID(id string) (*models.StaffMember, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var staff models.StaffMember
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&staff); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch staff member with id %s: %w", id, err)
	}
	return &staff, nil
}

// GetByEmail retrieves a staff member by email.
func (r *MongoStaffRepo) GetByEmail(email string) (*models.StaffMember, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var staff models.StaffMember
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&staff); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch staff member with email %s: %w", email, err)
	}
	return &staff, nil
}

// Release returns a staff member to Available and resets the mirrored tour
// status. Safe to call repeatedly.
func (r *MongoStaffRepo) Release(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"availability":        models.AvailabilityAvailable,
		"current_tour_status": models.GuideTourAvailable,
		"updated_at":          time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to release staff member %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("staff member with id %s not found", id)
	}
	return nil
}

// SetDailyAvailability records a per-date availability override.
func (r *MongoStaffRepo) SetDailyAvailability(id, date string, day models.DayAvailability) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"daily_availability." + date: day,
		"updated_at":                 time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set daily availability for staff member %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("staff member with id %s not found", id)
	}
	return nil
}

// FindAvailable lists staff of a role that are Available and not overridden
// unavailable on the given date. Overrides are consulted read-only.
func (r *MongoStaffRepo) FindAvailable(role models.StaffRole, date string) ([]models.StaffMember, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"role":         role,
		"availability": models.AvailabilityAvailable,
		"daily_availability." + date + ".is_available": bson.M{"$ne": false},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search available staff: %w", err)
	}
	defer cursor.Close(ctx)

	var staff []models.StaffMember
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, fmt.Errorf("failed to decode staff members: %w", err)
	}
	return staff, nil
}
