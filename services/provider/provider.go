package provider

import (
	"context"
	"encoding/json"
	"time"

	providerRepo "egarage/database/repository/provider"
	"egarage/models"
	"egarage/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	directoryCachePrefix = "providers:"
	directoryCacheTTL    = time.Minute
)

// ProviderService manages garage listings.
type ProviderService interface {
	Register(ownerID string, input models.ProviderInput) (*models.Provider, error)
	List(filter models.ProviderFilter) ([]models.Provider, error)
	// GetByAccount resolves the listing owned by an account.
	GetByAccount(ownerID string) (*models.Provider, error)
}

// DefaultProviderService implements ProviderService.
type DefaultProviderService struct {
	Repo  providerRepo.ProviderRepository
	Cache *redis.Client // directory cache; optional
}

// Register creates the provider profile for the authenticated account. Each
// contact email and each account may carry at most one listing.
func (s *DefaultProviderService) Register(ownerID string, input models.ProviderInput) (*models.Provider, error) {
	switch {
	case input.Name == "":
		return nil, utils.NewValidationError("name", "name is required")
	case input.Email == "":
		return nil, utils.NewValidationError("email", "email is required")
	case input.ContactNumber == "":
		return nil, utils.NewValidationError("contactNumber", "contact number is required")
	case input.Address == "":
		return nil, utils.NewValidationError("address", "address is required")
	case input.State == "":
		return nil, utils.NewValidationError("state", "state is required")
	case input.City == "":
		return nil, utils.NewValidationError("city", "city is required")
	case input.Description == "":
		return nil, utils.NewValidationError("description", "description is required")
	case len(input.Specialities) == 0:
		return nil, utils.NewValidationError("specialities", "at least one speciality is required")
	}

	existing, err := s.Repo.GetByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewConflictError("email already registered")
	}

	owned, err := s.Repo.GetByUserID(ownerID)
	if err != nil {
		return nil, err
	}
	if owned != nil {
		return nil, utils.NewConflictError("this account already owns a provider profile")
	}

	p := models.Provider{
		ID:            uuid.New().String(),
		UserID:        ownerID,
		Name:          input.Name,
		Email:         input.Email,
		ContactNumber: input.ContactNumber,
		Address:       input.Address,
		State:         input.State,
		City:          input.City,
		Description:   input.Description,
		Specialities:  input.Specialities,
		MainImage:     input.MainImage,
		GalleryImages: input.GalleryImages,
	}
	if err := s.Repo.Create(&p); err != nil {
		return nil, err
	}
	s.invalidateDirectoryCache()
	return &p, nil
}

// List returns providers matching the conjunctive filter. Results are
// cached briefly per filter since the directory is public and read-heavy.
func (s *DefaultProviderService) List(filter models.ProviderFilter) ([]models.Provider, error) {
	key := directoryCachePrefix + filter.State + "|" + filter.City + "|" + filter.Speciality

	if cached := s.cachedListing(key); cached != nil {
		return cached, nil
	}

	providers, err := s.Repo.List(filter)
	if err != nil {
		return nil, err
	}
	s.cacheListing(key, providers)
	return providers, nil
}

func (s *DefaultProviderService) cachedListing(key string) []models.Provider {
	if s.Cache == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		return nil
	}
	var providers []models.Provider
	if err := json.Unmarshal([]byte(data), &providers); err != nil {
		return nil
	}
	return providers
}

func (s *DefaultProviderService) cacheListing(key string, providers []models.Provider) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(providers)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.Cache.Set(ctx, key, data, directoryCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache provider directory", zap.Error(err))
	}
}

// invalidateDirectoryCache drops every cached directory page after a new
// registration so listings never miss a fresh garage for the full TTL.
func (s *DefaultProviderService) invalidateDirectoryCache() {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	iter := s.Cache.Scan(ctx, 0, directoryCachePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.Cache.Del(ctx, iter.Val()).Err(); err != nil {
			utils.GetLogger().Warn("failed to invalidate directory cache", zap.Error(err))
		}
	}
}

// GetByAccount resolves the provider profile owned by ownerID.
func (s *DefaultProviderService) GetByAccount(ownerID string) (*models.Provider, error) {
	p, err := s.Repo.GetByUserID(ownerID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.NewNotFoundError("no provider profile for this account")
	}
	return p, nil
}
