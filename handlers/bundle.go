package handlers

import (
	accountRepo "egarage/database/repository/account"

	"github.com/go-redis/redis/v8"
)

// HandlerBundle groups all endpoint handlers into one struct so route
// registration takes a single dependency. The account repository and auth
// cache ride along for the authentication middleware.
type HandlerBundle struct {
	AccountRepo accountRepo.AccountRepository
	AuthCache   *redis.Client

	Auth        *AuthHandler
	Vehicle     *VehicleHandler
	Provider    *ProviderHandler
	Appointment *AppointmentHandler
	Message     *MessageHandler
}
