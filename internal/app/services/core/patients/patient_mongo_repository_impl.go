package patients

import (
	"context"

	"hospicare-service/internal/app/contracts"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/exceptions"
	"hospicare-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type patientMongoRepository struct {
	collection *mongo.Collection
}

func NewPatientMongoRepository(client *mongo.Client, dbName string) contracts.PatientRepository {
	return &patientMongoRepository{
		collection: client.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

func (r *patientMongoRepository) Exists(ctx context.Context, patientID string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": patientID}, options.Count().SetLimit(1))
	if err != nil {
		if utils.MongoUnavailable(err) {
			return false, exceptions.ErrStorageUnavailable(err)
		}
		return false, exceptions.ErrMongoDBFindDocument(err)
	}
	return count > 0, nil
}
