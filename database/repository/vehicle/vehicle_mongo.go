package vehicleRepo

import (
	"context"
	"fmt"
	"time"

	"egarage/database"
	"egarage/models"
	"egarage/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoVehicleRepo implements VehicleRepository using MongoDB.
type MongoVehicleRepo struct {
	coll *mongo.Collection
}

// NewMongoVehicleRepo creates a new instance of VehicleRepository using MongoDB.
func NewMongoVehicleRepo() VehicleRepository {
	coll := database.Collection("vehicles")
	repo := &MongoVehicleRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Errorf("failed to create vehicle indexes: %v", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates the unique registration-number index. Registration
// numbers are unique globally, not per owner.
func (r *MongoVehicleRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "registrationNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new vehicle document.
func (r *MongoVehicleRepo) Create(v *models.Vehicle) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, v); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.NewConflictError("registration number must be unique")
		}
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// GetByID retrieves a vehicle by its unique ID.
func (r *MongoVehicleRepo) GetByID(id string) (*models.Vehicle, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var v models.Vehicle
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&v); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("vehicle not found")
		}
		return nil, fmt.Errorf("failed to fetch vehicle with id %s: %w", id, err)
	}
	return &v, nil
}

// GetByOwner retrieves all vehicles owned by the given account. An owner
// with no vehicles yields an empty slice, not an error.
func (r *MongoVehicleRepo) GetByOwner(userID string) ([]models.Vehicle, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve vehicles for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	vehicles := []models.Vehicle{}
	for cursor.Next(ctx) {
		var v models.Vehicle
		if err := cursor.Decode(&v); err != nil {
			return nil, fmt.Errorf("failed to decode vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}

// Update modifies an existing vehicle document.
func (r *MongoVehicleRepo) Update(v *models.Vehicle) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	v.UpdatedAt = time.Now()
	filter := bson.M{"id": v.ID}
	update := bson.M{"$set": v}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.NewConflictError("registration number must be unique")
		}
		return fmt.Errorf("failed to update vehicle with id %s: %w", v.ID, err)
	}
	if result.MatchedCount == 0 {
		return utils.NewNotFoundError("vehicle not found")
	}
	return nil
}

// Delete removes a vehicle document by its ID.
func (r *MongoVehicleRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete vehicle with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return utils.NewNotFoundError("vehicle not found")
	}
	return nil
}
