package tourRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"safarihub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrStaffUnavailable signals that a conditional busy-marking matched no
// document: the staff member was already Busy when the transaction ran.
var ErrStaffUnavailable = errors.New("staff member is no longer available")

// markBusy flips one staff member from Available to Busy. The availability
// predicate in the filter makes concurrent double-assignment fail loudly.
func (r *MongoTourRepo) markBusy(sc mongo.SessionContext, staffID string, role models.StaffRole) error {
	filter := bson.M{
		"id":           staffID,
		"availability": models.AvailabilityAvailable,
	}
	set := bson.M{
		"availability": models.AvailabilityBusy,
		"updated_at":   time.Now(),
	}
	if role == models.RoleTourGuide {
		set["current_tour_status"] = models.GuideTourProcessing
	}

	res, err := r.staffColl.UpdateOne(sc, filter, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to mark staff %s busy: %w", staffID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("staff %s: %w", staffID, ErrStaffUnavailable)
	}
	return nil
}

// markAvailable returns a replaced staff member to Available.
func (r *MongoTourRepo) markAvailable(sc mongo.SessionContext, staffID string) error {
	set := bson.M{
		"availability":        models.AvailabilityAvailable,
		"current_tour_status": models.GuideTourAvailable,
		"updated_at":          time.Now(),
	}
	if _, err := r.staffColl.UpdateOne(sc, bson.M{"id": staffID}, bson.M{"$set": set}); err != nil {
		return fmt.Errorf("failed to release staff %s: %w", staffID, err)
	}
	return nil
}

// AssignTransactionally applies one assign operation as a single transaction.
func (r *MongoTourRepo) AssignTransactionally(ctx context.Context, a AssignmentUpdate) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		a.TourSet["updated_at"] = time.Now()
		res, err := r.coll.UpdateOne(sc, bson.M{"id": a.TourID}, bson.M{"$set": a.TourSet})
		if err != nil {
			return fmt.Errorf("tour update failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("tour with id %s not found", a.TourID)
		}

		if a.ReleaseGuideID != "" {
			if err := r.markAvailable(sc, a.ReleaseGuideID); err != nil {
				return err
			}
		}
		if a.ReleaseDriverID != "" {
			if err := r.markAvailable(sc, a.ReleaseDriverID); err != nil {
				return err
			}
		}

		if a.NewGuideID != "" {
			if err := r.markBusy(sc, a.NewGuideID, models.RoleTourGuide); err != nil {
				return err
			}
		}
		if a.NewDriverID != "" {
			if err := r.markBusy(sc, a.NewDriverID, models.RoleSafariDriver); err != nil {
				return err
			}
		}

		for i := range a.Notifications {
			if _, err := r.notifColl.InsertOne(sc, a.Notifications[i]); err != nil {
				return fmt.Errorf("insert notification failed: %w", err)
			}
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("assignment transaction failed: %w", err)
	}

	return nil
}
