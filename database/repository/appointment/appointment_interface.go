package appointmentRepo

import "egarage/models"

// AppointmentRepository defines persistence operations for the appointment
// ledger.
type AppointmentRepository interface {
	Create(a *models.Appointment) error
	GetByID(id string) (*models.Appointment, error)
	Update(a *models.Appointment) error
	ListByUser(userID string) ([]models.Appointment, error)
	// ListByProvider returns the provider's appointments ordered by
	// preferred date ascending.
	ListByProvider(providerID string) ([]models.Appointment, error)
	ListAll() ([]models.Appointment, error)
}
