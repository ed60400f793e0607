package appointments

import (
	"context"
	"time"

	"hospicare-service/internal/app/contracts"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/exceptions"
	"hospicare-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type appointmentMongoRepository struct {
	collection *mongo.Collection
}

// NewAppointmentMongoRepository builds the repository and creates the
// partial unique index on (doctorId, slotKey) over scheduled appointments.
// That index is the storage-level guard that makes exactly one of two
// concurrent bookings of the same slot succeed.
func NewAppointmentMongoRepository(ctx context.Context, client *mongo.Client, dbName string) (contracts.AppointmentRepository, error) {
	repository := &appointmentMongoRepository{
		collection: client.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}

	indexModel := mongo.IndexModel{
		Keys: bson.D{
			{Key: "doctorId", Value: 1},
			{Key: "slotKey", Value: 1},
		},
		Options: options.Index().
			SetName("uniq_doctor_slot_scheduled").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"status": string(models.AppointmentStatusScheduled)}),
	}
	_, err := repository.collection.Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return repository, nil
}

func (r *appointmentMongoRepository) Insert(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	if appointment.ID == "" {
		appointment.ID = uuid.NewString()
	}
	_, err := r.collection.InsertOne(ctx, appointment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, exceptions.ErrSlotTaken(err)
		}
		if utils.MongoUnavailable(err) {
			return nil, exceptions.ErrStorageUnavailable(err)
		}
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return appointment, nil
}

func (r *appointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.collection.FindOne(ctx, bson.M{"_id": appointmentID}).Decode(&appointment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		if utils.MongoUnavailable(err) {
			return nil, exceptions.ErrStorageUnavailable(err)
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *appointmentMongoRepository) FindActiveInWindow(ctx context.Context, doctorID string, from, to time.Time) ([]models.Appointment, error) {
	filter := bson.M{
		"doctorId": doctorID,
		"status":   bson.M{"$ne": string(models.AppointmentStatusCancelled)},
		"scheduledAt": bson.M{
			"$gt": from,
			"$lt": to,
		},
	}
	return r.findAll(ctx, filter)
}

func (r *appointmentMongoRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return r.findAll(ctx, bson.M{"doctorId": doctorID})
}

func (r *appointmentMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.findAll(ctx, bson.M{"patientId": patientID})
}

func (r *appointmentMongoRepository) findAll(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "scheduledAt", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		if utils.MongoUnavailable(err) {
			return nil, exceptions.ErrStorageUnavailable(err)
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	err = cursor.All(ctx, &appointments)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (r *appointmentMongoRepository) UpdateStatusFrom(ctx context.Context, appointmentID string, expected, next models.AppointmentStatus) (bool, error) {
	filter := bson.M{
		"_id":    appointmentID,
		"status": string(expected),
	}
	update := bson.M{
		"$set": bson.M{
			"status":    string(next),
			"updatedAt": time.Now(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		if utils.MongoUnavailable(err) {
			return false, exceptions.ErrStorageUnavailable(err)
		}
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount == 1, nil
}
