package appointments

import (
	"context"

	"clinicbook-service/internal/app/models"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) *AppointmentMongoRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

// EnsureIndexes builds the sparse unique index on order_id. Uniqueness there
// is the storage-level backstop against two confirmations of the same payment
// both inserting an appointment.
func (r *AppointmentMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "order_id", Value: 1}},
		Options: options.Index().
			SetName(constvars.MongoIndexAppointmentOrderID).
			SetUnique(true).
			SetSparse(true),
	})
	return err
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var appointment models.Appointment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, exceptions.ErrAppointmentNotFound(err)
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

// FindByOrderID returns nil without error when no appointment carries the
// order id, so confirmation can use absence as "not yet committed".
func (r *AppointmentMongoRepository) FindByOrderID(ctx context.Context, orderID string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.Collection.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.findAll(ctx, bson.M{"patient_id": patientID})
}

func (r *AppointmentMongoRepository) FindByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return r.findAll(ctx, bson.M{"doctor_id": doctorID})
}

func (r *AppointmentMongoRepository) findAll(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "scheduled_time", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	err = cursor.All(ctx, &appointments)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return appointments, nil
}

func (r *AppointmentMongoRepository) Delete(ctx context.Context, appointmentID string) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrAppointmentNotFound(nil)
	}
	return nil
}
