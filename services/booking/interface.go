package booking

import (
	"context"
	"time"

	"egarage/models"
)

// BookingService is the appointment ledger: the system of record binding a
// customer, a provider, service line items and a scheduling preference.
type BookingService interface {
	// Book creates the appointment once, in pending_payment, and opens a
	// payment session for the computed amount.
	Book(accountID string, req models.BookingRequest) (*models.BookingResponse, error)
	// ConfirmPayment promotes pending_payment to pending when the supplied
	// transaction reference matches the opened payment session.
	ConfirmPayment(accountID, appointmentID, transactionID string) (*models.Appointment, error)
	// Transition applies a status change, enforcing the legal transition
	// table and the actor's relationship to the appointment.
	Transition(actorID string, role models.Role, appointmentID string, next models.AppointmentStatus) (*models.Appointment, error)
	ListForCustomer(accountID string) ([]models.Appointment, error)
	ListForProvider(accountID string) ([]models.Appointment, error)
	ListAll() ([]models.Appointment, error)
	TotalRevenue() (*models.RevenueReport, error)
	// ExpirePendingPayment cancels an appointment still awaiting payment.
	// Invoked by the background worker; a no-op once payment is confirmed.
	ExpirePendingPayment(appointmentID string) error
}

// PaymentGateway opens payment sessions with the external payment provider.
// The provider itself is opaque; only the session identifier and client
// secret cross the boundary.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount float64, currency string, metadata map[string]string) (*models.PaymentIntent, error)
}

// ExpiryScheduler schedules the garbage collection of appointments left in
// pending_payment beyond the payment TTL.
type ExpiryScheduler interface {
	ScheduleExpiry(appointmentID string, in time.Duration) error
}
