package appointmentRepo

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

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo creates a new instance of AppointmentRepository using MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	coll := database.Collection("appointments")
	repo := &MongoAppointmentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Errorf("failed to create appointment indexes: %v", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAppointmentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "serviceProviderId", Value: 1}, {Key: "preferredDate", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new appointment document.
func (r *MongoAppointmentRepo) Create(a *models.Appointment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment by its unique ID.
func (r *MongoAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var a models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("appointment not found")
		}
		return nil, fmt.Errorf("failed to fetch appointment with id %s: %w", id, err)
	}
	return &a, nil
}

// Update modifies an existing appointment document.
func (r *MongoAppointmentRepo) Update(a *models.Appointment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	a.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": a.ID}, bson.M{"$set": a})
	if err != nil {
		return fmt.Errorf("failed to update appointment with id %s: %w", a.ID, err)
	}
	if result.MatchedCount == 0 {
		return utils.NewNotFoundError("appointment not found")
	}
	return nil
}

// ListByUser retrieves all appointments booked by the given account.
func (r *MongoAppointmentRepo) ListByUser(userID string) ([]models.Appointment, error) {
	return r.list(bson.M{"userId": userID}, nil)
}

// ListByProvider retrieves all appointments referencing the given provider,
// ordered by preferred date ascending.
func (r *MongoAppointmentRepo) ListByProvider(providerID string) ([]models.Appointment, error) {
	sort := bson.D{{Key: "preferredDate", Value: 1}}
	return r.list(bson.M{"serviceProviderId": providerID}, sort)
}

// ListAll retrieves every appointment in the ledger.
func (r *MongoAppointmentRepo) ListAll() ([]models.Appointment, error) {
	return r.list(bson.M{}, nil)
}

func (r *MongoAppointmentRepo) list(filter bson.M, sort bson.D) ([]models.Appointment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointments: %w", err)
	}
	defer cursor.Close(ctx)

	appointments := []models.Appointment{}
	for cursor.Next(ctx) {
		var a models.Appointment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode appointment: %w", err)
		}
		appointments = append(appointments, a)
	}
	return appointments, nil
}
