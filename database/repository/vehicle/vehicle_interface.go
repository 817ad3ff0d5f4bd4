package vehicleRepo

import "egarage/models"

// VehicleRepository defines persistence operations for vehicles.
type VehicleRepository interface {
	Create(v *models.Vehicle) error
	GetByID(id string) (*models.Vehicle, error)
	GetByOwner(userID string) ([]models.Vehicle, error)
	Update(v *models.Vehicle) error
	Delete(id string) error
}
