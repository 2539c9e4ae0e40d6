// File: database/repository/staff/staffMongoCrud.go
package staffRepo

import (
	"fmt"
	"time"

	"safarihub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new staff document.
func (r *MongoStaffRepo) Create(staff *models.StaffMember) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	staff.CreatedAt = now
	staff.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, staff)
	if err != nil {
		return fmt.Errorf("failed to create staff member: %w", err)
	}
	return nil
}

// Update modifies an existing staff document.
func (r *MongoStaffRepo) Update(staff *models.StaffMember) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	staff.UpdatedAt = time.Now()
	filter := bson.M{"id": staff.ID}
	update := bson.M{"$set": staff}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update staff member with id %s: %w", staff.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("staff member with id %s not found", staff.ID)
	}
	return nil
}

// UpdateSetDocument applies a $set update to a staff member by ID.
func (r *MongoStaffRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updated_at"] = time.Now()
	update := bson.M{"$set": updateDoc}

	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update staff member with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("staff member with id %s not found", id)
	}
	return nil
}

// Delete removes a staff document by its ID.
func (r *MongoStaffRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete staff member with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("staff member with id %s not found", id)
	}
	return nil
}
