package vehicle

import (
	vehicleRepo "egarage/database/repository/vehicle"
	"egarage/models"
	"egarage/utils"

	"github.com/google/uuid"
)

// VehicleService manages a customer's vehicle registry.
type VehicleService interface {
	Add(ownerID string, input models.VehicleInput) (*models.Vehicle, error)
	ListByOwner(ownerID string) ([]models.Vehicle, error)
	// Get, Update and Delete require the actor to be the owner or an admin.
	Get(actorID string, role models.Role, id string) (*models.Vehicle, error)
	Update(actorID string, role models.Role, id string, input models.VehicleInput) (*models.Vehicle, error)
	Delete(actorID string, role models.Role, id string) error
}

// DefaultVehicleService implements VehicleService.
type DefaultVehicleService struct {
	Repo vehicleRepo.VehicleRepository
}

func validateInput(input models.VehicleInput) error {
	switch {
	case input.Make == "":
		return utils.NewValidationError("make", "make is required")
	case input.Model == "":
		return utils.NewValidationError("model", "model is required")
	case input.Year == 0:
		return utils.NewValidationError("year", "year is required")
	case input.FuelType == "":
		return utils.NewValidationError("fueltype", "fueltype is required")
	case !input.FuelType.Valid():
		return utils.NewValidationError("fueltype", "fueltype must be Petrol, Diesel, CNG, Electric, or Hybrid")
	case input.RegistrationNumber == "":
		return utils.NewValidationError("registrationNumber", "registrationNumber is required")
	case input.VehicleColor == "":
		return utils.NewValidationError("vehicleColor", "vehicleColor is required")
	}
	return nil
}

// Add registers a vehicle under the authenticated owner.
func (s *DefaultVehicleService) Add(ownerID string, input models.VehicleInput) (*models.Vehicle, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	v := models.Vehicle{
		ID:                 uuid.New().String(),
		UserID:             ownerID,
		Make:               input.Make,
		Model:              input.Model,
		Year:               input.Year,
		FuelType:           input.FuelType,
		RegistrationNumber: input.RegistrationNumber,
		VehicleColor:       input.VehicleColor,
		CustomNotes:        input.CustomNotes,
	}
	if err := s.Repo.Create(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

// ListByOwner returns all vehicles owned by the account; an empty registry
// is not an error.
func (s *DefaultVehicleService) ListByOwner(ownerID string) ([]models.Vehicle, error) {
	return s.Repo.GetByOwner(ownerID)
}

// authorize enforces the owner-or-admin rule.
func authorize(v *models.Vehicle, actorID string, role models.Role) error {
	if role == models.RoleAdmin || v.UserID == actorID {
		return nil
	}
	return utils.NewForbiddenError("only the vehicle owner may access this vehicle")
}

// Get fetches a vehicle, visible only to its owner or an admin.
func (s *DefaultVehicleService) Get(actorID string, role models.Role, id string) (*models.Vehicle, error) {
	v, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := authorize(v, actorID, role); err != nil {
		return nil, err
	}
	return v, nil
}

// Update mutates a vehicle after re-checking ownership.
func (s *DefaultVehicleService) Update(actorID string, role models.Role, id string, input models.VehicleInput) (*models.Vehicle, error) {
	v, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := authorize(v, actorID, role); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	v.Make = input.Make
	v.Model = input.Model
	v.Year = input.Year
	v.FuelType = input.FuelType
	v.RegistrationNumber = input.RegistrationNumber
	v.VehicleColor = input.VehicleColor
	v.CustomNotes = input.CustomNotes

	if err := s.Repo.Update(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Delete removes a vehicle after re-checking ownership.
func (s *DefaultVehicleService) Delete(actorID string, role models.Role, id string) error {
	v, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := authorize(v, actorID, role); err != nil {
		return err
	}
	return s.Repo.Delete(v.ID)
}
