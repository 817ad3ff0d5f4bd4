package providerRepo

import "egarage/models"

// ProviderRepository defines persistence operations for provider profiles.
type ProviderRepository interface {
	Create(p *models.Provider) error
	GetByID(id string) (*models.Provider, error)
	// GetByEmail returns (nil, nil) when no provider has the email.
	GetByEmail(email string) (*models.Provider, error)
	// GetByUserID returns (nil, nil) when the account owns no provider.
	GetByUserID(userID string) (*models.Provider, error)
	List(filter models.ProviderFilter) ([]models.Provider, error)
}
