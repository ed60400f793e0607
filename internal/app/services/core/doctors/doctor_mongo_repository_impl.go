package doctors

import (
	"context"
	"time"

	"hospicare-service/internal/app/contracts"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/exceptions"
	"hospicare-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type doctorMongoRepository struct {
	collection *mongo.Collection
}

func NewDoctorMongoRepository(client *mongo.Client, dbName string) contracts.DoctorRepository {
	return &doctorMongoRepository{
		collection: client.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

func (r *doctorMongoRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.collection.FindOne(ctx, bson.M{"_id": doctorID}).Decode(&doctor)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		if utils.MongoUnavailable(err) {
			return nil, exceptions.ErrStorageUnavailable(err)
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (r *doctorMongoRepository) UpdateAvailability(ctx context.Context, doctorID string, availability models.WeeklyAvailability) error {
	update := bson.M{
		"$set": bson.M{
			"availability": availability,
			"updatedAt":    time.Now(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": doctorID}, update)
	if err != nil {
		if utils.MongoUnavailable(err) {
			return exceptions.ErrStorageUnavailable(err)
		}
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrDoctorNotFound(nil)
	}
	return nil
}
