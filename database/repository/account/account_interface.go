package accountRepo

import (
	"egarage/models"

	"go.mongodb.org/mongo-driver/bson"
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	Create(acc *models.Account) error
	GetByID(id string) (*models.Account, error)
	// GetByEmail returns (nil, nil) when no account has the email.
	GetByEmail(email string) (*models.Account, error)
	GetByEmailWithProjection(email string, projection bson.M) (*models.Account, error)
	GetAll() ([]models.Account, error)
}
