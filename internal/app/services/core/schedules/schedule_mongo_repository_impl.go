package schedules

import (
	"context"
	"time"

	"clinicbook-service/internal/app/contracts"
	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ScheduleMongoRepository struct {
	Collection             *mongo.Collection
	AppointmentsCollection *mongo.Collection
}

func NewScheduleMongoRepository(db *mongo.Client, dbName string) contracts.ScheduleRepository {
	return &ScheduleMongoRepository{
		Collection:             db.Database(dbName).Collection(constvars.MongoCollectionSchedules),
		AppointmentsCollection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *ScheduleMongoRepository) Insert(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error) {
	now := time.Now()
	schedule.CreatedAt = now
	schedule.UpdatedAt = now

	result, err := r.Collection.InsertOne(ctx, schedule)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	schedule.ID = result.InsertedID.(primitive.ObjectID)
	return schedule, nil
}

func (r *ScheduleMongoRepository) FindByID(ctx context.Context, scheduleID string) (*models.Schedule, error) {
	objectID, err := primitive.ObjectIDFromHex(scheduleID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var schedule models.Schedule
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&schedule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, exceptions.ErrScheduleNotFound(err)
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &schedule, nil
}

func (r *ScheduleMongoRepository) FindByDoctor(ctx context.Context, doctorID string) ([]models.Schedule, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"doctor_id": doctorID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var schedules []models.Schedule
	err = cursor.All(ctx, &schedules)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return schedules, nil
}

// FindBookableSlot locates an open slot across all of a doctor's schedules.
// A slot that exists but is already booked yields ErrSlotUnavailable so the
// caller can distinguish contention from a bad id.
func (r *ScheduleMongoRepository) FindBookableSlot(ctx context.Context, doctorID, slotID string) (*models.Schedule, *models.Slot, error) {
	var schedule models.Schedule
	filter := bson.M{"doctor_id": doctorID, "slots.id": slotID}
	err := r.Collection.FindOne(ctx, filter).Decode(&schedule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil, exceptions.ErrSlotNotFound(err)
		}
		return nil, nil, exceptions.ErrMongoDBFindDocument(err)
	}

	slot := schedule.FindSlot(slotID)
	if slot == nil {
		return nil, nil, exceptions.ErrSlotNotFound(nil)
	}
	if slot.IsBooked {
		return nil, nil, exceptions.ErrSlotUnavailable(nil)
	}
	return &schedule, slot, nil
}

// BookSlotWithAppointment flips the slot and inserts the appointment inside
// one multi-document transaction. The slot update filter requires
// is_booked=false, so a concurrent booking of the same slot loses with
// ErrSlotUnavailable rather than double-writing.
func (r *ScheduleMongoRepository) BookSlotWithAppointment(ctx context.Context, scheduleID, slotID string, appointment *models.Appointment) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(scheduleID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	session, err := r.Collection.Database().Client().StartSession()
	if err != nil {
		return nil, exceptions.ErrMongoDBTransaction(err)
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		filter := bson.M{
			"_id": objectID,
			"slots": bson.M{
				"$elemMatch": bson.M{"id": slotID, "is_booked": false},
			},
		}
		update := bson.M{
			"$set": bson.M{
				"slots.$.is_booked": true,
				"updated_at":        time.Now(),
			},
		}

		updateResult, err := r.Collection.UpdateOne(sessCtx, filter, update)
		if err != nil {
			return nil, exceptions.ErrMongoDBUpdateDocument(err)
		}
		if updateResult.ModifiedCount == 0 {
			return nil, exceptions.ErrSlotUnavailable(nil)
		}

		now := time.Now()
		appointment.CreatedAt = now
		appointment.UpdatedAt = now
		insertResult, err := r.AppointmentsCollection.InsertOne(sessCtx, appointment)
		if err != nil {
			return nil, exceptions.ErrMongoDBInsertDocument(err)
		}
		appointment.ID = insertResult.InsertedID.(primitive.ObjectID)
		return appointment, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.Appointment), nil
}

// ReleaseSlot reopens a slot. Releasing an already-open slot is a no-op.
func (r *ScheduleMongoRepository) ReleaseSlot(ctx context.Context, doctorID, slotID string) error {
	filter := bson.M{"doctor_id": doctorID, "slots.id": slotID}
	update := bson.M{
		"$set": bson.M{
			"slots.$.is_booked": false,
			"updated_at":        time.Now(),
		},
	}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrSlotNotFound(nil)
	}
	return nil
}

// UpdatePeriod replaces a period and swaps its materialized slots inside one
// multi-document transaction. The guarded filter refuses to match while any
// of the period's slots is booked.
func (r *ScheduleMongoRepository) UpdatePeriod(ctx context.Context, scheduleID string, period models.AvailabilityPeriod, slots []models.Slot) error {
	objectID, err := primitive.ObjectIDFromHex(scheduleID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	session, err := r.Collection.Database().Client().StartSession()
	if err != nil {
		return exceptions.ErrMongoDBTransaction(err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		filter := bson.M{
			"_id":        objectID,
			"periods.id": period.ID,
			"slots": bson.M{
				"$not": bson.M{
					"$elemMatch": bson.M{"period_id": period.ID, "is_booked": true},
				},
			},
		}
		update := bson.M{
			"$set": bson.M{
				"periods.$":  period,
				"updated_at": time.Now(),
			},
			"$pull": bson.M{
				"slots": bson.M{"period_id": period.ID},
			},
		}

		result, err := r.Collection.UpdateOne(sessCtx, filter, update)
		if err != nil {
			return nil, exceptions.ErrMongoDBUpdateDocument(err)
		}
		if result.MatchedCount == 0 {
			return nil, r.classifyPeriodConflict(sessCtx, objectID, period.ID)
		}

		// $pull and $push cannot touch the slots array in the same update, so
		// the replacement slots go in a second write of the same transaction.
		if len(slots) > 0 {
			push := bson.M{
				"$push": bson.M{
					"slots": bson.M{"$each": slots},
				},
			}
			_, err = r.Collection.UpdateOne(sessCtx, bson.M{"_id": objectID}, push)
			if err != nil {
				return nil, exceptions.ErrMongoDBUpdateDocument(err)
			}
		}
		return nil, nil
	})
	return err
}

// DeletePeriod removes a period and every slot materialized from it. Blocked
// while any of those slots is booked.
func (r *ScheduleMongoRepository) DeletePeriod(ctx context.Context, scheduleID, periodID string) error {
	objectID, err := primitive.ObjectIDFromHex(scheduleID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"_id":        objectID,
		"periods.id": periodID,
		"slots": bson.M{
			"$not": bson.M{
				"$elemMatch": bson.M{"period_id": periodID, "is_booked": true},
			},
		},
	}
	update := bson.M{
		"$pull": bson.M{
			"periods": bson.M{"id": periodID},
			"slots":   bson.M{"period_id": periodID},
		},
		"$set": bson.M{"updated_at": time.Now()},
	}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.MatchedCount == 0 {
		return r.classifyPeriodConflict(ctx, objectID, periodID)
	}
	return nil
}

// classifyPeriodConflict decides why a guarded period mutation matched
// nothing: missing schedule, missing period, or a booked slot in the way.
func (r *ScheduleMongoRepository) classifyPeriodConflict(ctx context.Context, scheduleID primitive.ObjectID, periodID string) error {
	var schedule models.Schedule
	err := r.Collection.FindOne(ctx, bson.M{"_id": scheduleID}).Decode(&schedule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return exceptions.ErrScheduleNotFound(err)
		}
		return exceptions.ErrMongoDBFindDocument(err)
	}
	if schedule.FindPeriod(periodID) == nil {
		return exceptions.ErrPeriodNotFound(nil)
	}
	return exceptions.ErrHasBookedSlots(nil)
}
