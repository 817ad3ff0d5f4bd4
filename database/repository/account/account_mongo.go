package accountRepo

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

// MongoAccountRepo implements AccountRepository using MongoDB.
type MongoAccountRepo struct {
	coll *mongo.Collection
}

// NewMongoAccountRepo creates a new instance of AccountRepository using MongoDB.
func NewMongoAccountRepo() AccountRepository {
	coll := database.Collection("accounts")
	repo := &MongoAccountRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Sugar().Errorf("failed to create account indexes: %v", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoAccountRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new account document.
func (r *MongoAccountRepo) Create(acc *models.Account) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	acc.CreatedAt = now
	acc.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, acc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.NewConflictError("an account with this email already exists")
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account by its unique ID.
func (r *MongoAccountRepo) GetByID(id string) (*models.Account, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var acc models.Account
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&acc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("account not found")
		}
		return nil, fmt.Errorf("failed to fetch account with id %s: %w", id, err)
	}
	return &acc, nil
}

// GetByEmailWithProjection retrieves an account by email using a projection.
// Pass nil for projection to retrieve the full document.
func (r *MongoAccountRepo) GetByEmailWithProjection(email string, projection bson.M) (*models.Account, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var acc models.Account
	if err := r.coll.FindOne(ctx, bson.M{"email": email}, opts).Decode(&acc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch account with email %s: %w", email, err)
	}
	return &acc, nil
}

// GetByEmail retrieves an account by email (full document).
func (r *MongoAccountRepo) GetByEmail(email string) (*models.Account, error) {
	return r.GetByEmailWithProjection(email, nil)
}

// GetAll retrieves all accounts.
func (r *MongoAccountRepo) GetAll() ([]models.Account, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve accounts: %w", err)
	}
	defer cursor.Close(ctx)

	var accounts []models.Account
	for cursor.Next(ctx) {
		var a models.Account
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}
