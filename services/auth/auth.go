package auth

import (
	"context"
	"time"

	accountRepo "egarage/database/repository/account"
	"egarage/models"
	"egarage/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultAuthService implements AuthService against the account repository.
type DefaultAuthService struct {
	Repo  accountRepo.AccountRepository
	Cache *redis.Client // auth cache; optional
}

// Signup creates a new account. The stored credential is a one-way bcrypt
// hash; the plaintext is never persisted or returned.
func (s *DefaultAuthService) Signup(req models.SignupRequest) (*AuthResponse, error) {
	if req.FullName == "" {
		return nil, utils.NewValidationError("fullName", "full name is required")
	}
	if req.Email == "" {
		return nil, utils.NewValidationError("email", "email is required")
	}
	if req.Password == "" {
		return nil, utils.NewValidationError("password", "password is required")
	}
	if !req.Role.Valid() {
		return nil, utils.NewValidationError("role", "invalid role, must be Customer, ServiceProvider, or Admin")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	// The confirmation credential is checked against the hash, never kept.
	if bcrypt.CompareHashAndPassword(hashed, []byte(req.ConfirmPassword)) != nil {
		return nil, utils.NewValidationError("confirmPassword", "passwords do not match")
	}

	existing, err := s.Repo.GetByEmailWithProjection(req.Email, bson.M{"id": 1})
	if err != nil {
		utils.GetLogger().Error("Failed to check for existing account", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewConflictError("an account with this email already exists")
	}

	acc := models.Account{
		ID:           uuid.New().String(),
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         req.Role,
	}
	if err := s.Repo.Create(&acc); err != nil {
		utils.GetLogger().Error("Failed to create account", zap.Error(err))
		return nil, err
	}

	token, err := utils.GenerateToken(acc.ID, string(acc.Role))
	if err != nil {
		utils.GetLogger().Error("Failed to generate auth token", zap.Error(err))
		return nil, err
	}
	s.invalidateAuthCache(token)

	return &AuthResponse{Token: token, User: acc.Summary()}, nil
}

// Login verifies credentials and issues a new 24h token embedding the
// account identifier and role.
func (s *DefaultAuthService) Login(email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, utils.NewValidationError("", "email and password are required")
	}

	acc, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch account for authentication", zap.Error(err))
		return nil, err
	}
	if acc == nil {
		return nil, utils.NewNotFoundError("email not found")
	}

	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)) != nil {
		return nil, utils.NewAuthError("incorrect password")
	}

	token, err := utils.GenerateToken(acc.ID, string(acc.Role))
	if err != nil {
		utils.GetLogger().Error("Failed to generate auth token", zap.Error(err))
		return nil, err
	}
	s.invalidateAuthCache(token)

	return &AuthResponse{Token: token, User: acc.Summary()}, nil
}

// invalidateAuthCache clears any stale role snapshot cached under the token
// hash.
func (s *DefaultAuthService) invalidateAuthCache(token string) {
	if s.Cache == nil {
		return
	}
	key := utils.AuthCachePrefix + utils.HashToken(token)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Del(ctx, key).Err(); err != nil {
		utils.GetLogger().Warn("Failed to clear auth cache", zap.Error(err))
	}
}
